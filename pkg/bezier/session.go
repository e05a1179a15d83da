// Package bezier implements an interactive Bézier curve editing core:
// an ordered store of identified control points, general-degree De
// Casteljau evaluation, and the pointer-driven state machine that ties
// them together. Front-ends translate their input events into
// PointerDown, PointerUp, PointerMove and KeyPress calls on a Session
// and read snapshots back through ControlPoints, Curve and RenderData.
//
// A Session is single-threaded. Each event is processed to completion
// before the next one is looked at, so the snapshot accessors only ever
// observe fully applied states.
package bezier

import (
	"errors"
	"fmt"
)

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
)

// Key identifies a keyboard command. Front-ends map their own key
// encodings onto these before calling KeyPress.
type Key int

const (
	// KeyClear removes every control point and abandons any drag.
	KeyClear Key = iota
)

// State is the interaction state of a session.
type State int

const (
	// Idle means no drag is in progress.
	Idle State = iota
	// Dragging means one control point is following the pointer.
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ErrInvalidConfig is wrapped by every configuration validation error.
var ErrInvalidConfig = errors.New("invalid session configuration")

// Config fixes the session parameters for its whole lifetime.
type Config struct {
	// Width and Height are the viewport dimensions in pixels.
	Width  float64
	Height float64
	// HitRadius is the pointer-space distance within which a press
	// grabs an existing point. A point at exactly HitRadius distance
	// is out of reach.
	HitRadius float64
	// Samples is the number of curve segments per recompute; the
	// sampled curve has Samples+1 points.
	Samples int
}

// DefaultConfig returns the editor defaults: a 900x600 viewport, a
// 10 pixel hit radius and 256 curve segments.
func DefaultConfig() Config {
	return Config{
		Width:     900,
		Height:    600,
		HitRadius: 10,
		Samples:   256,
	}
}

// Validate reports whether the configuration can drive a session.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: viewport %gx%g, dimensions must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.HitRadius <= 0 {
		return fmt.Errorf("%w: hit radius %g must be positive", ErrInvalidConfig, c.HitRadius)
	}
	if c.Samples < 1 {
		return fmt.Errorf("%w: sample count %d must be positive", ErrInvalidConfig, c.Samples)
	}
	return nil
}

// RenderData is a snapshot for renderers with both sequences already
// mapped to normalized space. Controls carries the control points in
// curve order; consecutive entries form the control polygon. Curve is
// empty whenever fewer than two control points exist.
type RenderData struct {
	Controls []Point
	Curve    []Point
}

// Session owns one editing interaction: the control-point store, the
// sampled curve derived from it and the drag state.
type Session struct {
	cfg    Config
	mapper Mapper
	store  *Store

	// curve holds the sampled points in pointer space. It is replaced
	// wholesale on every mutation, never patched in place.
	curve []Point

	state  State
	dragID PointID
}

// NewSession validates cfg and returns an empty session. A rejected
// configuration is the only error path; once constructed, a session
// never fails.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mapper, err := NewMapper(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &Session{
		cfg:    cfg,
		mapper: mapper,
		store:  NewStore(),
		state:  Idle,
	}, nil
}

// PointerDown feeds a button press at pointer-space (x, y).
//
// A left press near an existing point starts dragging it without moving
// it; a left press on empty canvas inserts a new point there and
// recomputes the curve immediately, before the button is released. A
// right press near a point removes it; a right press on empty canvas
// does nothing.
func (s *Session) PointerDown(btn Button, x, y float64) {
	s.dropStaleDrag()
	pos := Pt(x, y)
	switch btn {
	case ButtonLeft:
		s.leftDown(pos)
	case ButtonRight:
		s.rightDown(pos)
	}
}

func (s *Session) leftDown(pos Point) {
	if s.state == Dragging {
		// A desynced front-end can report a second press mid-drag.
		return
	}
	if id, ok := s.store.Nearest(pos, s.cfg.HitRadius); ok {
		s.state = Dragging
		s.dragID = id
		return
	}
	s.store.Insert(pos)
	s.recompute()
}

func (s *Session) rightDown(pos Point) {
	if id, ok := s.store.Nearest(pos, s.cfg.HitRadius); ok {
		s.store.Remove(id)
		s.recompute()
	}
}

// PointerMove feeds pointer motion. Outside a drag it is a no-op.
// During a drag every move commits the new position to the store and
// recomputes the curve, so all observers stay consistent at each
// intermediate step and there is no provisional position to lose.
func (s *Session) PointerMove(x, y float64) {
	s.dropStaleDrag()
	if s.state != Dragging {
		return
	}
	s.store.Move(s.dragID, Pt(x, y))
	s.recompute()
}

// PointerUp feeds a button release. A left release during a drag ends
// it; the dragged position was already committed by the last move, so
// nothing further is applied and there is no way to revert to the
// pre-drag position. Any other release is a no-op.
func (s *Session) PointerUp(btn Button, x, y float64) {
	s.dropStaleDrag()
	if btn != ButtonLeft {
		return
	}
	s.state = Idle
}

// KeyPress feeds a keyboard command. Commands act on press; releases
// are ignored.
func (s *Session) KeyPress(k Key, pressed bool) {
	if !pressed {
		return
	}
	s.dropStaleDrag()
	switch k {
	case KeyClear:
		s.Clear()
	}
}

// Clear removes every control point, abandons any drag in progress and
// leaves an empty curve.
func (s *Session) Clear() {
	s.store.Clear()
	s.state = Idle
	s.recompute()
}

// dropStaleDrag abandons a drag whose point no longer exists. The point
// can only disappear between events (a right press removes it while the
// left button is still held), so checking at each entry point keeps the
// session from ever acting on a missing id.
func (s *Session) dropStaleDrag() {
	if s.state != Dragging {
		return
	}
	if _, ok := s.store.Get(s.dragID); !ok {
		s.state = Idle
	}
}

func (s *Session) recompute() {
	s.curve = Evaluate(s.store.Positions(), s.cfg.Samples)
}

// ControlPoints returns the ordered control points, with ids, in
// pointer space.
func (s *Session) ControlPoints() []ControlPoint {
	return s.store.Points()
}

// Positions returns the ordered control positions in pointer space.
func (s *Session) Positions() []Point {
	return s.store.Positions()
}

// Curve returns a copy of the sampled curve in pointer space. It is
// empty whenever fewer than two control points exist.
func (s *Session) Curve() []Point {
	out := make([]Point, len(s.curve))
	copy(out, s.curve)
	return out
}

// Len returns the number of control points.
func (s *Session) Len() int {
	return s.store.Len()
}

// State returns the interaction state and, when it is Dragging, the id
// being dragged.
func (s *Session) State() (State, PointID) {
	if s.state != Dragging {
		return s.state, 0
	}
	return s.state, s.dragID
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Mapper returns the session's coordinate mapper.
func (s *Session) Mapper() Mapper {
	return s.mapper
}

// RenderData returns a snapshot with control and curve positions mapped
// to normalized space. Mapping is affine and interpolation commutes
// with it, so the normalized curve is the same whether evaluation runs
// before or after the mapping.
func (s *Session) RenderData() RenderData {
	controls := s.store.Positions()
	for i := range controls {
		controls[i] = s.mapper.ToNormalized(controls[i])
	}
	curve := make([]Point, len(s.curve))
	for i := range s.curve {
		curve[i] = s.mapper.ToNormalized(s.curve[i])
	}
	return RenderData{Controls: controls, Curve: curve}
}
