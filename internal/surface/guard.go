package surface

// Guard defers surface construction until the host window has a measured
// non-zero size. Surfaces built against a zero-area canvas project through
// degenerate bounds, so the gate is structural: unmeasured to ready, one-way
// within a session. Later resizes only update the live size.
type Guard struct {
	ready bool
	w, h  int
}

// Observe records a measured container size. It returns true exactly once,
// on the first observation where width AND height are both non-zero: that is
// the signal to construct the surfaces. Zero-area observations are ignored
// entirely.
func (g *Guard) Observe(w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	g.w, g.h = w, h
	if g.ready {
		return false
	}
	g.ready = true
	return true
}

func (g *Guard) Ready() bool { return g.ready }

// Size returns the last non-zero measured size.
func (g *Guard) Size() (int, int) { return g.w, g.h }
