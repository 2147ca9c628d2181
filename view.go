package ink

import "image"

// View is a render-ready snapshot of a session. Renderers draw from it
// without reaching into session internals, so any frontend (GUI, TUI,
// test harness) presents the cycle the same way.
type View struct {
	// State is the current cycle position.
	State State

	// Digit is the shown prediction, or -1 when none is shown.
	Digit int

	// Confidence is the classifier's certainty for Digit, or -1 when the
	// classifier did not report one. Meaningless while Digit is -1.
	Confidence float64

	// GridValid reports whether a transmittable grid is held.
	GridValid bool

	// Busy reports whether a network call is outstanding.
	Busy bool

	// Err is the user-visible error from the last failed operation,
	// empty when the cycle is healthy. Feedback delivery failures never
	// appear here; they are logged only.
	Err string
}

// View returns a snapshot of the session for rendering.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := View{
		State:      s.state,
		Digit:      -1,
		Confidence: -1,
		GridValid:  s.grid.Valid(),
		Busy:       s.inFlight || s.state == StateSubmittingFeedback,
	}
	if s.pred != nil {
		v.Digit = s.pred.Digit
		v.Confidence = s.pred.Confidence
	}
	if s.lastErr != nil {
		v.Err = s.lastErr.Error()
	}
	return v
}

// SurfaceImage returns a copy of the raster, safe to hand to a renderer
// while completion goroutines keep mutating the session.
func (s *Session) SurfaceImage() *image.Gray {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surface.Pixmap().ToImage()
}
