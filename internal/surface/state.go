package surface

import "foodmap/internal/paint"

// stateStore holds the per-feature interaction flags, keyed by renderer id.
// It lives inside the basemap surface and is mutated only through the
// surface's Set handle, never through the host UI's state. The paint
// expressions read it every frame.
type stateStore struct {
	m map[int]paint.Flags
}

func newStateStore() *stateStore {
	return &stateStore{m: make(map[int]paint.Flags)}
}

func (s *stateStore) setHovered(id int, on bool) {
	f := s.m[id]
	f.Hovered = on
	s.put(id, f)
}

func (s *stateStore) setSelected(id int, on bool) {
	f := s.m[id]
	f.Selected = on
	s.put(id, f)
}

func (s *stateStore) put(id int, f paint.Flags) {
	if !f.Hovered && !f.Selected {
		delete(s.m, id)
		return
	}
	s.m[id] = f
}

func (s *stateStore) flags(id int) paint.Flags {
	return s.m[id]
}

// flaggedHovered counts features currently carrying the hover flag; the
// synchronizer's contract keeps this at most 1.
func (s *stateStore) flaggedHovered() int {
	n := 0
	for _, f := range s.m {
		if f.Hovered {
			n++
		}
	}
	return n
}
