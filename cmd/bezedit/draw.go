package main

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/ha1tch/bezier-toolkit/pkg/bezdraw"
	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
)

// Styles
var (
	styleDefault    = tcell.StyleDefault
	styleMarker     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleMarkerDrag = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	stylePolygon    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLabel      = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleHeading    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleMsgInfo    = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleMsgError   = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorNavy).Bold(true)
	styleMsgSuccess = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleHelp       = tcell.StyleDefault.Foreground(tcell.ColorGray) // Help bar on default background
	styleBorder     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

const helpLine = "Click:Add/Drag  R-click:Delete  Enter:Clear  P:Polygon  E:PNG  S:SVG  D:Demo  H:Help  Q:Quit"

func (ed *Editor) draw() {
	ed.screen.Clear()
	w, h := ed.screen.Size()

	ed.drawCanvas(w, h)
	if ed.showHelp {
		ed.drawHelpOverlay(w, h)
	}
	ed.drawStatusBar(w, h)
}

func (ed *Editor) drawCanvas(w, h int) {
	ch := canvasHeight(h)
	controls := ed.session.ControlPoints()

	if len(controls) == 0 && !ed.showHelp {
		hint := "Click to add control points"
		x := (w - len(hint)) / 2
		if x < 0 {
			x = 0
		}
		ed.drawString(x, ch/2, hint, styleHelp)
		return
	}

	if ed.showPolygon {
		for i := 0; i+1 < len(controls); i++ {
			ed.drawSegment(controls[i].Pos, controls[i+1].Pos, w, ch)
		}
	}

	// Curve cells shaded along the same ramp the PNG renderer uses
	curve := ed.session.Curve()
	n := len(curve)
	for i, p := range curve {
		x, y := cell(p)
		if x < 0 || x >= w || y < 0 || y >= ch {
			continue
		}
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c := bezdraw.Ramp(t)
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		ed.screen.SetContent(x, y, '•', nil, style)
	}

	// Markers over the curve, the dragged one highlighted
	state, dragID := ed.session.State()
	for i, cp := range controls {
		x, y := cell(cp.Pos)
		if x < 0 || x >= w || y < 0 || y >= ch {
			continue
		}
		marker := '●'
		style := styleMarker
		if state == bezier.Dragging && cp.ID == dragID {
			marker = '◉'
			style = styleMarkerDrag
		}
		ed.screen.SetContent(x, y, marker, nil, style)
		if label := strconv.Itoa(i); x+1+len(label) <= w && y < ch {
			ed.drawString(x+1, y, label, styleLabel)
		}
	}
}

// drawSegment plots one control polygon edge as dotted cells.
func (ed *Editor) drawSegment(a, b bezier.Point, w, ch int) {
	steps := int(math.Ceil(a.Distance(b)))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		p := a.Lerp(b, float64(i)/float64(steps))
		x, y := cell(p)
		if x < 0 || x >= w || y < 0 || y >= ch {
			continue
		}
		ed.screen.SetContent(x, y, '·', nil, stylePolygon)
	}
}

// cell maps a pointer-space position to its terminal cell.
func cell(p bezier.Point) (x, y int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

func (ed *Editor) drawStatusBar(w, h int) {
	y := h - 1

	// Background
	for x := 0; x < w; x++ {
		ed.screen.SetContent(x, y, ' ', nil, styleStatus)
	}

	// Point count, sample count and drag indicator
	info := pointCountLabel(ed.session.Len())
	if n := len(ed.session.Curve()); n > 0 {
		info += fmt.Sprintf("  %d samples", n)
	}
	if state, _ := ed.session.State(); state == bezier.Dragging {
		info += "  [dragging]"
	}
	ed.drawString(1, y, info, styleStatus)

	// Message
	if ed.message != "" {
		style := styleMsgInfo
		switch ed.messageType {
		case MsgError:
			style = styleMsgError
		case MsgSuccess:
			style = styleMsgSuccess
		}
		if shouldFlashForType(ed.messageType) {
			elapsed := time.Now().UnixMilli() - ed.messageFlashStart
			if shouldBeInverted(elapsed) {
				style = style.Reverse(true)
			}
		}
		maxMsg := w - len(info) - 4
		if maxMsg > 0 {
			msg := truncate(ed.message, maxMsg)
			ed.drawString(w-len(msg)-2, y, msg, style)
		}
	}

	// Help bar
	y = h - 2
	for x := 0; x < w; x++ {
		ed.screen.SetContent(x, y, ' ', nil, styleDefault)
	}
	ed.drawString(1, y, helpLine, styleHelp)
}

func pointCountLabel(n int) string {
	switch n {
	case 0:
		return "No points"
	case 1:
		return "1 point"
	default:
		return fmt.Sprintf("%d points, degree %d", n, n-1)
	}
}

// shouldFlashForType reports whether a message type gets the attention
// flash. Informative messages stay steady.
func shouldFlashForType(msgType MessageType) bool {
	switch msgType {
	case MsgError, MsgSuccess, MsgWarning:
		return true
	}
	return false
}

// shouldBeInverted reports whether a flashing message is currently in
// an inverted phase. The flash runs four 125ms phases, inverted on the
// second and fourth, then settles.
func shouldBeInverted(elapsed int64) bool {
	if elapsed < 0 || elapsed >= 500 {
		return false
	}
	phase := elapsed / 125
	return phase == 1 || phase == 3
}

func (ed *Editor) drawHelpOverlay(w, h int) {
	lines := []string{
		"Left click     Add a point, or grab the one under the cursor",
		"Left drag      Move the grabbed point",
		"Right click    Delete the point under the cursor",
		"Enter, Space   Clear all points",
		"",
		"p    Toggle the control polygon",
		"e    Export PNG (curve-NNN.png)",
		"s    Export SVG (curve-NNN.svg)",
		"d    Load the demo curve",
		"q    Quit",
		"",
		"Press any key to close this help.",
	}

	boxW := 0
	for _, line := range lines {
		if len(line)+4 > boxW {
			boxW = len(line) + 4
		}
	}
	boxH := len(lines) + 4
	if boxW > w {
		boxW = w
	}
	if boxH > h {
		boxH = h
	}
	startX := (w - boxW) / 2
	startY := (h - boxH) / 2
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}

	ed.drawTitledBox(startX, startY, boxW, boxH, "bezedit")
	if boxW < 5 {
		return
	}

	for i, line := range lines {
		y := startY + 2 + i
		if y >= startY+boxH-1 {
			break
		}
		ed.drawString(startX+2, y, truncate(line, boxW-4), styleDefault)
	}
}

// drawTitledBox draws a bordered box with optional title
func (ed *Editor) drawTitledBox(x, y, w, h int, title string) {
	// Top border
	ed.screen.SetContent(x, y, '┌', nil, styleBorder)
	for i := 1; i < w-1; i++ {
		ed.screen.SetContent(x+i, y, '─', nil, styleBorder)
	}
	ed.screen.SetContent(x+w-1, y, '┐', nil, styleBorder)

	// Title if provided
	if title != "" {
		titleX := x + (w-len(title)-2)/2
		ed.screen.SetContent(titleX, y, ' ', nil, styleBorder)
		ed.drawString(titleX+1, y, title, styleHeading)
		ed.screen.SetContent(titleX+1+len(title), y, ' ', nil, styleBorder)
	}

	// Sides and fill
	for row := 1; row < h-1; row++ {
		ed.screen.SetContent(x, y+row, '│', nil, styleBorder)
		for col := 1; col < w-1; col++ {
			ed.screen.SetContent(x+col, y+row, ' ', nil, styleDefault)
		}
		ed.screen.SetContent(x+w-1, y+row, '│', nil, styleBorder)
	}

	// Bottom border
	ed.screen.SetContent(x, y+h-1, '└', nil, styleBorder)
	for i := 1; i < w-1; i++ {
		ed.screen.SetContent(x+i, y+h-1, '─', nil, styleBorder)
	}
	ed.screen.SetContent(x+w-1, y+h-1, '┘', nil, styleBorder)
}

func (ed *Editor) drawString(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		ed.screen.SetContent(x+i, y, r, nil, style)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
