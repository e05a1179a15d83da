// Command bezier is a CLI tool for working with Bézier curves.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ha1tch/bezier-toolkit/pkg/bezdraw"
	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
)

const usage = `bezier - Bezier curve toolkit

Usage:
  bezier <command> [options]

Commands:
  eval       Evaluate a curve at parameter values
  info       Show curve information
  render     Render a curve to PNG or SVG

Control points are given inline as "x,y" arguments, or as a points
file with one pair per line (blank lines and # comments ignored,
- for stdin). An argument without a comma is taken as a file name.

Examples:
  bezier eval 10,10 50,90 90,10 -n 32
  bezier eval points.txt -t 0.5
  bezier eval points.txt --normalized -w 100 -h 100
  bezier info 0,0 30,90 60,-30 90,60
  bezier render points.txt -o curve.png
  bezier render points.txt -o curve.svg --no-polygon

Use "bezier <command> -h" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "eval":
		cmdEval(args)
	case "info":
		cmdInfo(args)
	case "render":
		cmdRender(args)
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}

func cmdEval(args []string) {
	if len(args) < 1 || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage: bezier eval <points> [-t value]... [-n count] [--normalized] [-w width] [-h height]")
		os.Exit(1)
	}

	var inputs []string
	var tValues []float64
	samples := 16
	normalized := false
	width, height := 900.0, 600.0

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-t":
			if i+1 < len(args) {
				v, err := strconv.ParseFloat(args[i+1], 64)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Bad parameter value: %s\n", args[i+1])
					os.Exit(1)
				}
				tValues = append(tValues, v)
				i++
			}
		case "-n", "--samples":
			if i+1 < len(args) {
				n, err := strconv.Atoi(args[i+1])
				if err != nil || n < 1 {
					fmt.Fprintf(os.Stderr, "Bad sample count: %s\n", args[i+1])
					os.Exit(1)
				}
				samples = n
				i++
			}
		case "--normalized":
			normalized = true
		case "-w", "--width":
			if i+1 < len(args) {
				v, err := strconv.ParseFloat(args[i+1], 64)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Bad width: %s\n", args[i+1])
					os.Exit(1)
				}
				width = v
				i++
			}
		case "-h", "--height":
			if i+1 < len(args) {
				v, err := strconv.ParseFloat(args[i+1], 64)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Bad height: %s\n", args[i+1])
					os.Exit(1)
				}
				height = v
				i++
			}
		default:
			inputs = append(inputs, args[i])
		}
	}

	ctrl := loadControls(inputs)

	var mapper bezier.Mapper
	if normalized {
		m, err := bezier.NewMapper(width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		mapper = m
	}

	emit := func(tv float64, p bezier.Point) {
		if normalized {
			p = mapper.ToNormalized(p)
		}
		fmt.Printf("%g\t%g\t%g\n", tv, p.X, p.Y)
	}

	// Tab-separated t, x, y - pipes straight into gnuplot or awk
	if len(tValues) > 0 {
		for _, tv := range tValues {
			p, _ := bezier.EvaluateAt(ctrl, tv)
			emit(tv, p)
		}
		return
	}

	curve := bezier.Evaluate(ctrl, samples)
	for i, p := range curve {
		emit(float64(i)/float64(samples), p)
	}
}

func cmdInfo(args []string) {
	if len(args) < 1 || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage: bezier info <points>")
		os.Exit(1)
	}

	ctrl := loadControls(args)

	curve := bezier.Evaluate(ctrl, 256)
	min, max, _ := bezdraw.Bounds(curve)

	fmt.Printf("Points:      %d\n", len(ctrl))
	fmt.Printf("Degree:      %d\n", len(ctrl)-1)
	fmt.Printf("Start:       %s\n", ctrl[0])
	fmt.Printf("End:         %s\n", ctrl[len(ctrl)-1])
	fmt.Printf("Bounds:      %s to %s\n", min, max)
	fmt.Printf("Chord:       %.4f\n", ctrl[0].Distance(ctrl[len(ctrl)-1]))
	fmt.Printf("Length:      %.4f\n", bezier.CurveLength(ctrl, 256))
	if tan, ok := bezier.Tangent(ctrl, 0); ok {
		fmt.Printf("Tangent t=0: %s\n", tan)
	}
	if tan, ok := bezier.Tangent(ctrl, 1); ok {
		fmt.Printf("Tangent t=1: %s\n", tan)
	}
}

func cmdRender(args []string) {
	if len(args) < 1 || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage: bezier render <points> [-o output] [-t title] [-n count] [-w width] [-h height] [--no-polygon] [--no-labels]")
		os.Exit(1)
	}

	var inputs []string
	var output, title string
	samples := 256
	width, height := 0, 0
	noPolygon := false
	noLabels := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		case "-t", "--title":
			if i+1 < len(args) {
				title = args[i+1]
				i++
			}
		case "-n", "--samples":
			if i+1 < len(args) {
				n, err := strconv.Atoi(args[i+1])
				if err != nil || n < 1 {
					fmt.Fprintf(os.Stderr, "Bad sample count: %s\n", args[i+1])
					os.Exit(1)
				}
				samples = n
				i++
			}
		case "-w", "--width":
			if i+1 < len(args) {
				n, err := strconv.Atoi(args[i+1])
				if err != nil || n < 1 {
					fmt.Fprintf(os.Stderr, "Bad width: %s\n", args[i+1])
					os.Exit(1)
				}
				width = n
				i++
			}
		case "-h", "--height":
			if i+1 < len(args) {
				n, err := strconv.Atoi(args[i+1])
				if err != nil || n < 1 {
					fmt.Fprintf(os.Stderr, "Bad height: %s\n", args[i+1])
					os.Exit(1)
				}
				height = n
				i++
			}
		case "--no-polygon":
			noPolygon = true
		case "--no-labels":
			noLabels = true
		default:
			inputs = append(inputs, args[i])
		}
	}

	ctrl := loadControls(inputs)

	// Determine output name
	if output == "" {
		if len(inputs) == 1 && !strings.Contains(inputs[0], ",") && inputs[0] != "-" {
			ext := filepath.Ext(inputs[0])
			output = strings.TrimSuffix(inputs[0], ext) + ".png"
		} else {
			output = "curve.png"
		}
	}
	if title == "" {
		title = fmt.Sprintf("Bezier curve, degree %d", len(ctrl)-1)
	}

	// The renderers fit whatever coordinate range they are given, so
	// the raw control points can go straight in.
	data := bezier.RenderData{
		Controls: ctrl,
		Curve:    bezier.Evaluate(ctrl, samples),
	}

	switch filepath.Ext(output) {
	case ".png":
		opts := bezdraw.DefaultPNGOptions()
		if width > 0 {
			opts.Width = width
		}
		if height > 0 {
			opts.Height = height
		}
		opts.ShowPolygon = !noPolygon
		opts.ShowLabels = !noLabels
		opts.Title = title
		f, err := os.Create(output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
			os.Exit(1)
		}
		if err := bezdraw.RenderPNG(data, f, opts); err != nil {
			f.Close()
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
			os.Exit(1)
		}
		f.Close()
	case ".svg":
		opts := bezdraw.DefaultSVGOptions()
		if width > 0 {
			opts.Width = width
		}
		if height > 0 {
			opts.Height = height
		}
		opts.ShowPolygon = !noPolygon
		opts.ShowLabels = !noLabels
		opts.Title = title
		svg := bezdraw.GenerateSVG(data, opts)
		if err := os.WriteFile(output, []byte(svg), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format: %s\n", filepath.Ext(output))
		os.Exit(1)
	}

	fmt.Printf("Written: %s\n", output)
}

// loadControls resolves the positional arguments to control points and
// exits with a message when they do not form a curve.
func loadControls(inputs []string) []bezier.Point {
	ctrl, err := resolvePoints(inputs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(ctrl) < 2 {
		fmt.Fprintf(os.Stderr, "Need at least 2 control points, got %d\n", len(ctrl))
		os.Exit(1)
	}
	return ctrl
}

// resolvePoints turns positional arguments into control points: inline
// "x,y" pairs, or a single file name (no comma) read line by line.
func resolvePoints(inputs []string) ([]bezier.Point, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no points given")
	}
	if len(inputs) == 1 && !strings.Contains(inputs[0], ",") {
		return loadPoints(inputs[0])
	}
	pts := make([]bezier.Point, 0, len(inputs))
	for _, arg := range inputs {
		p, err := parsePoint(arg)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

func loadPoints(path string) ([]bezier.Point, error) {
	if path == "-" {
		return readPoints(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readPoints(f)
}

func readPoints(r io.Reader) ([]bezier.Point, error) {
	var pts []bezier.Point
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := parsePoint(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		pts = append(pts, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}

// parsePoint accepts "x,y" or whitespace-separated "x y".
func parsePoint(s string) (bezier.Point, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) != 2 {
		return bezier.Point{}, fmt.Errorf("expected \"x,y\", got %q", s)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return bezier.Point{}, fmt.Errorf("bad x coordinate %q", fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return bezier.Point{}, fmt.Errorf("bad y coordinate %q", fields[1])
	}
	return bezier.Pt(x, y), nil
}
