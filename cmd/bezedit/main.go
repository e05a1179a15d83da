// Command bezedit is a TUI editor for Bézier curves.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/ha1tch/bezier-toolkit/pkg/bezdraw"
	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
)

const usage = `bezedit - interactive Bezier curve editor

Usage:
  bezedit [options]

Options:
  -d, --demo    Start with a sample four-point curve
  -h, --help    Show this help

Controls:
  Left click    Add a point, or grab the one under the cursor
  Left drag     Move the grabbed point
  Right click   Delete the point under the cursor
  Enter/Space   Clear all points
  p             Toggle the control polygon
  e             Export PNG (curve-NNN.png)
  s             Export SVG (curve-NNN.svg)
  d             Load the demo curve
  h, ?          Show the key reference
  q, Esc        Quit
`

// The bottom two rows hold the help line and the status bar; everything
// above them is curve canvas.
const statusRows = 2

// hitRadiusCells is how far a click may land from a point, in terminal
// cells, and still grab it.
const hitRadiusCells = 3

// Editor holds all editor state
type Editor struct {
	screen  tcell.Screen
	session *bezier.Session

	message           string
	messageType       MessageType
	messageFlashStart int64 // Unix milliseconds when message was shown

	// tcell reports the full button chord on every mouse event, so
	// press and release edges come from comparing consecutive masks.
	prevButtons tcell.ButtonMask

	// Last reported pointer position
	mouseX int
	mouseY int

	// Display options
	showPolygon bool
	showHelp    bool

	exportCount int
}

// MessageType for status messages
type MessageType int

const (
	MsgInfo    MessageType = iota // Informative, no flash
	MsgError                      // Errors, flash
	MsgSuccess                    // State changes, flash
	MsgWarning                    // Warnings, flash
)

func main() {
	demo := false
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-d", "--demo":
			demo = true
		case "-h", "--help":
			fmt.Print(usage)
			return
		default:
			fmt.Fprintf(os.Stderr, "Unknown option: %s\n", arg)
			fmt.Print(usage)
			os.Exit(1)
		}
	}

	// Initialize screen
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.Clear()

	// The session coordinate space is the canvas in terminal cells.
	// The canvas keeps its initial size across terminal resizes; cells
	// that fall outside a shrunken terminal are simply not drawn.
	w, h := screen.Size()
	cfg := bezier.DefaultConfig()
	cfg.Width = float64(w)
	cfg.Height = float64(canvasHeight(h))
	cfg.HitRadius = hitRadiusCells
	cfg.Samples = 2 * w
	if cfg.Samples < 64 {
		cfg.Samples = 64
	}
	session, err := bezier.NewSession(cfg)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error creating session: %v\n", err)
		os.Exit(1)
	}

	ed := &Editor{
		screen:      screen,
		session:     session,
		showPolygon: true,
	}
	if demo {
		ed.seedDemo()
	}

	// Main loop
	ed.run()

	screen.Fini()
}

// canvasHeight returns the number of rows available to the curve canvas.
func canvasHeight(h int) int {
	if h <= statusRows {
		return 1
	}
	return h - statusRows
}

func (ed *Editor) run() {
	// Periodic refresh events keep the message flash animating between
	// input events.
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond) // 20fps for smooth flash
		defer ticker.Stop()
		for range ticker.C {
			if ed.message != "" && ed.messageFlashStart > 0 {
				elapsed := time.Now().UnixMilli() - ed.messageFlashStart
				if elapsed >= 0 && elapsed < 700 {
					ed.screen.PostEvent(tcell.NewEventInterrupt(nil))
				}
			}
		}
	}()

	for {
		ed.draw()
		ed.screen.Show()

		ev := ed.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			ed.screen.Sync()
		case *tcell.EventKey:
			if ed.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			ed.handleMouse(ev)
		case *tcell.EventInterrupt:
			// Refresh event for flash animation - just redraw
		}
	}
}

// handleKey processes a key event and reports whether to quit.
func (ed *Editor) handleKey(ev *tcell.EventKey) bool {
	if ed.showHelp {
		// Any key dismisses the help overlay
		ed.showHelp = false
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		ed.clearPoints()
		return false
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return true
	case ' ':
		ed.clearPoints()
	case 'p', 'P':
		ed.showPolygon = !ed.showPolygon
		if ed.showPolygon {
			ed.showMessage("Control polygon on", MsgInfo)
		} else {
			ed.showMessage("Control polygon off", MsgInfo)
		}
	case 'e', 'E':
		ed.exportPNG()
	case 's', 'S':
		ed.exportSVG()
	case 'd', 'D':
		ed.seedDemo()
	case 'h', 'H', '?':
		ed.showHelp = true
	}
	return false
}

func (ed *Editor) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	prev := ed.prevButtons
	ed.prevButtons = buttons

	moved := x != ed.mouseX || y != ed.mouseY
	ed.mouseX = x
	ed.mouseY = y

	_, h := ed.screen.Size()
	ch := canvasHeight(h)
	onCanvas := y >= 0 && y < ch

	leftPressed, leftReleased := buttonEdges(prev, buttons, tcell.Button1)
	rightPressed, _ := buttonEdges(prev, buttons, tcell.Button2)

	if (leftPressed || rightPressed) && ed.showHelp {
		ed.showHelp = false
		return
	}

	// Motion first, so a drag has followed the pointer all the way to
	// any release handled below. Drag positions are clamped to the
	// canvas rows so a point cannot be parked under the status bar.
	if moved && !leftPressed && !rightPressed {
		my := y
		if my > ch-1 {
			my = ch - 1
		}
		if my < 0 {
			my = 0
		}
		ed.session.PointerMove(float64(x), float64(my))
	}

	if leftPressed && onCanvas {
		before := ed.session.Len()
		ed.session.PointerDown(bezier.ButtonLeft, float64(x), float64(y))
		if ed.session.Len() > before {
			ed.showMessage(fmt.Sprintf("Point %d added", ed.session.Len()-1), MsgInfo)
		}
	}
	if rightPressed && onCanvas {
		before := ed.session.Len()
		ed.session.PointerDown(bezier.ButtonRight, float64(x), float64(y))
		if ed.session.Len() < before {
			ed.showMessage("Point deleted", MsgSuccess)
		}
	}
	if leftReleased {
		state, _ := ed.session.State()
		ed.session.PointerUp(bezier.ButtonLeft, float64(x), float64(y))
		if state == bezier.Dragging {
			ed.showMessage("Point moved", MsgInfo)
		}
	}
}

// buttonEdges reports the press and release transitions of one button
// between two consecutive button masks.
func buttonEdges(prev, cur, btn tcell.ButtonMask) (pressed, released bool) {
	was := prev&btn != 0
	now := cur&btn != 0
	return now && !was, was && !now
}

func (ed *Editor) clearPoints() {
	n := ed.session.Len()
	ed.session.KeyPress(bezier.KeyClear, true)
	if n == 0 {
		ed.showMessage("Canvas already empty", MsgInfo)
		return
	}
	msg := fmt.Sprintf("Cleared %d points", n)
	if n == 1 {
		msg = "Cleared 1 point"
	}
	ed.showMessage(msg, MsgSuccess)
}

// demoSeeds are the demo control points in normalized coordinates.
var demoSeeds = []bezier.Point{
	{X: -0.8, Y: -0.8},
	{X: -0.4, Y: 0.9},
	{X: 0.4, Y: -0.9},
	{X: 0.8, Y: 0.8},
}

// seedDemo replaces the canvas contents with a sample cubic. The seeds
// go through the ordinary click path so the session sees them exactly
// as it would see user input.
func (ed *Editor) seedDemo() {
	ed.session.KeyPress(bezier.KeyClear, true)
	m := ed.session.Mapper()
	for _, seed := range demoSeeds {
		p := m.FromNormalized(seed)
		ed.session.PointerDown(bezier.ButtonLeft, p.X, p.Y)
		ed.session.PointerUp(bezier.ButtonLeft, p.X, p.Y)
	}
	ed.showMessage("Demo curve loaded", MsgSuccess)
}

func (ed *Editor) exportPNG() {
	if ed.session.Len() < 2 {
		ed.showMessage("Need at least 2 points to export", MsgError)
		return
	}

	name := ed.nextExportName(".png")
	f, err := os.Create(name)
	if err != nil {
		ed.showMessage("Failed to create "+name+": "+err.Error(), MsgError)
		return
	}

	opts := bezdraw.DefaultPNGOptions()
	opts.ShowPolygon = ed.showPolygon
	opts.Title = ed.exportTitle()
	if err := bezdraw.RenderPNG(ed.session.RenderData(), f, opts); err != nil {
		f.Close()
		os.Remove(name)
		ed.showMessage("Failed to render PNG: "+err.Error(), MsgError)
		return
	}
	if err := f.Close(); err != nil {
		ed.showMessage("Failed to write "+name+": "+err.Error(), MsgError)
		return
	}

	ed.showMessage("Written: "+name, MsgSuccess)
}

func (ed *Editor) exportSVG() {
	if ed.session.Len() < 2 {
		ed.showMessage("Need at least 2 points to export", MsgError)
		return
	}

	name := ed.nextExportName(".svg")
	opts := bezdraw.DefaultSVGOptions()
	opts.ShowPolygon = ed.showPolygon
	opts.Title = ed.exportTitle()
	svg := bezdraw.GenerateSVG(ed.session.RenderData(), opts)
	if err := os.WriteFile(name, []byte(svg), 0644); err != nil {
		ed.showMessage("Failed to write "+name+": "+err.Error(), MsgError)
		return
	}

	ed.showMessage("Written: "+name, MsgSuccess)
}

func (ed *Editor) exportTitle() string {
	return fmt.Sprintf("Bezier curve, degree %d", ed.session.Len()-1)
}

// nextExportName returns the first unused curve-NNN name with the given
// extension, continuing the numbering from the previous export.
func (ed *Editor) nextExportName(ext string) string {
	for {
		ed.exportCount++
		name := fmt.Sprintf("curve-%03d%s", ed.exportCount, ext)
		if _, err := os.Stat(name); os.IsNotExist(err) {
			return name
		}
	}
}

func (ed *Editor) showMessage(msg string, msgType MessageType) {
	ed.message = msg
	ed.messageType = msgType
	ed.messageFlashStart = time.Now().UnixMilli()
	// Trigger immediate refresh for flash animation
	if ed.screen != nil {
		ed.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}
