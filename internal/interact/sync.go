// Package interact routes pointer events from the overlay surface to the
// basemap's feature state and keeps hover, selection, and the tooltip
// consistent with each other.
package interact

// None is the null feature id; renderer ids start at 1.
const None = 0

// StateHandle is the basemap's feature-state mutator. The synchronizer is
// the only writer of the hover and selection flags, which is what keeps
// "at most one hovered, at most one selected" true.
type StateHandle interface {
	SetHovered(id int, on bool)
	SetSelected(id int, on bool)
}

// Synchronizer owns the authoritative hovered and selected ids and mirrors
// every transition onto the state handle, clearing the previous feature
// before flagging the next so no frame shows two flagged features.
type Synchronizer struct {
	handle   StateHandle
	hovered  int
	selected int
}

func NewSynchronizer(handle StateHandle) *Synchronizer {
	return &Synchronizer{handle: handle}
}

// Attach swaps the state handle, replaying the current ids onto it. Used
// when the surfaces are rebuilt.
func (s *Synchronizer) Attach(handle StateHandle) {
	s.handle = handle
	s.Reapply()
}

// SetHover moves the hover flag to id; None clears it. Redundant calls are
// no-ops.
func (s *Synchronizer) SetHover(id int) {
	if id == s.hovered {
		return
	}
	if s.hovered != None && s.handle != nil {
		s.handle.SetHovered(s.hovered, false)
	}
	s.hovered = id
	if id != None && s.handle != nil {
		s.handle.SetHovered(id, true)
	}
}

// SetSelected moves the selection to id; None clears it.
func (s *Synchronizer) SetSelected(id int) {
	if id == s.selected {
		return
	}
	if s.selected != None && s.handle != nil {
		s.handle.SetSelected(s.selected, false)
	}
	s.selected = id
	if id != None && s.handle != nil {
		s.handle.SetSelected(id, true)
	}
}

func (s *Synchronizer) Hovered() int  { return s.hovered }
func (s *Synchronizer) Selected() int { return s.selected }

// Reapply pushes the current ids onto the handle. Call after a handle swap
// or after the handle's own state was rebuilt.
func (s *Synchronizer) Reapply() {
	if s.handle == nil {
		return
	}
	if s.hovered != None {
		s.handle.SetHovered(s.hovered, true)
	}
	if s.selected != None {
		s.handle.SetSelected(s.selected, true)
	}
}

// DropRemoved clears any tracked id that a data refresh removed, so the
// synchronizer never points at a feature that no longer exists. The stale
// flags are cleared on the handle too.
func (s *Synchronizer) DropRemoved(removed []int) {
	for _, id := range removed {
		if id == s.hovered {
			s.hovered = None
			if s.handle != nil {
				s.handle.SetHovered(id, false)
			}
		}
		if id == s.selected {
			s.selected = None
			if s.handle != nil {
				s.handle.SetSelected(id, false)
			}
		}
	}
}
