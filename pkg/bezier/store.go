package bezier

// PointID is a stable handle to a control point. IDs are assigned from a
// monotonic counter and never reused, so a held id either still refers
// to the same logical point or to nothing at all, no matter how many
// inserts and removals happened in between.
type PointID uint64

// ControlPoint is one user-placed point in pointer space.
type ControlPoint struct {
	ID  PointID
	Pos Point
}

// Store owns the ordered control-point sequence. Insertion order is
// curve order: the first point anchors t=0 and the last anchors t=1.
// Removal closes the gap without disturbing the rest of the order.
type Store struct {
	points []ControlPoint
	nextID PointID
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Len returns the number of stored points.
func (s *Store) Len() int {
	return len(s.points)
}

// Insert appends a point at the end of the sequence and returns its id.
func (s *Store) Insert(pos Point) PointID {
	id := s.nextID
	s.nextID++
	s.points = append(s.points, ControlPoint{ID: id, Pos: pos})
	return id
}

// Remove deletes the point with the given id and reports whether it was
// present. An unknown id leaves the store untouched.
func (s *Store) Remove(id PointID) bool {
	for i := range s.points {
		if s.points[i].ID == id {
			s.points = append(s.points[:i], s.points[i+1:]...)
			return true
		}
	}
	return false
}

// Move sets the position of the point with the given id and reports
// whether it was present.
func (s *Store) Move(id PointID, pos Point) bool {
	for i := range s.points {
		if s.points[i].ID == id {
			s.points[i].Pos = pos
			return true
		}
	}
	return false
}

// Get returns the position of the point with the given id.
func (s *Store) Get(id PointID) (Point, bool) {
	for i := range s.points {
		if s.points[i].ID == id {
			return s.points[i].Pos, true
		}
	}
	return Point{}, false
}

// Nearest returns the id of the point closest to pos among those
// strictly closer than threshold. A point at exactly threshold distance
// does not qualify. Distance ties go to the earliest inserted point.
func (s *Store) Nearest(pos Point, threshold float64) (PointID, bool) {
	limit := threshold * threshold
	best := -1
	var bestDist float64
	for i := range s.points {
		d := s.points[i].Pos.DistanceSquared(pos)
		if d >= limit {
			continue
		}
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return 0, false
	}
	return s.points[best].ID, true
}

// Positions returns the point positions in curve order. The slice is a
// copy and stays valid across later mutations.
func (s *Store) Positions() []Point {
	out := make([]Point, len(s.points))
	for i := range s.points {
		out[i] = s.points[i].Pos
	}
	return out
}

// Points returns a copy of the ordered control points with their ids.
func (s *Store) Points() []ControlPoint {
	out := make([]ControlPoint, len(s.points))
	copy(out, s.points)
	return out
}

// Clear removes every point. The id counter keeps running, so points
// inserted after a clear still get fresh ids.
func (s *Store) Clear() {
	s.points = s.points[:0]
}
