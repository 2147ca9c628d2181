package ink

import (
	"context"
	"sync"
)

// Session sequences one user's draw/predict/feedback cycle. It owns a
// Surface and a Sampler, holds the current grid and prediction, and talks
// to a Classifier.
//
// Hosts translate pointer input into PenDown/PenMove/PenUp and user intent
// into RequestPrediction, FeedbackCorrect, FeedbackIncorrect, ChooseDigit
// and Clear, then render from the snapshot View returns. Calls arriving in
// a state that cannot accept them are ignored (pointer events) or refused
// with a sentinel error (intents); the session never panics on out-of-order
// input.
//
// All methods are safe for concurrent use. Network completions are applied
// on the session's own goroutines; responses that arrive after the drawing
// they belong to was abandoned are discarded via a generation counter, so
// at most one predict call is outstanding and a late response can never
// resurrect a finished cycle.
type Session struct {
	mu         sync.Mutex
	surface    *Surface
	sampler    *Sampler
	classifier Classifier
	notify     func()

	state    State
	grid     Grid
	pred     *Prediction
	lastErr  error
	gen      uint64 // advances whenever session data is discarded
	inFlight bool   // a predict call is outstanding
}

// NewSession creates an idle session driving the given classifier.
func NewSession(c Classifier, opts ...SessionOption) *Session {
	o := defaultSessionOptions()
	for _, opt := range opts {
		opt(&o)
	}
	surface := o.surface
	if surface == nil {
		surface = NewSurface()
	}
	return &Session{
		surface:    surface,
		sampler:    NewSampler(),
		classifier: c,
		notify:     o.notify,
		state:      StateIdle,
	}
}

// PenDown opens a stroke at p. Accepted in every state except
// SubmittingFeedback. Drawing over a pending or shown prediction abandons
// that prediction: the generation advances so a late response is discarded,
// and the cycle returns to Drawing with the existing ink kept for layering.
func (s *Session) PenDown(p Point) {
	s.mu.Lock()
	switch s.state {
	case StateSubmittingFeedback:
		s.mu.Unlock()
		return
	case StateAwaitingPrediction, StatePredictionShown, StateAwaitingFeedbackDetail:
		s.gen++
		s.pred = nil
		Logger().Debug("ink: drawing resumed, prediction abandoned", "state", s.state.String())
	}
	s.surface.BeginStroke(p)
	s.grid = nil
	s.lastErr = nil
	s.setState(StateDrawing)
	s.mu.Unlock()
	s.notifyHost()
}

// PenMove extends the open stroke to p. Ignored outside Drawing.
func (s *Session) PenMove(p Point) {
	s.mu.Lock()
	if s.state != StateDrawing {
		s.mu.Unlock()
		return
	}
	s.surface.ExtendStroke(p)
	s.mu.Unlock()
	s.notifyHost()
}

// PenUp ends the stroke and immediately computes the normalized grid for
// the finished drawing. Ignored outside Drawing.
func (s *Session) PenUp() {
	s.mu.Lock()
	if s.state != StateDrawing {
		s.mu.Unlock()
		return
	}
	s.surface.EndStroke()
	grid, err := s.sampler.ComputeGrid(s.surface)
	if err != nil {
		s.grid = nil
		s.lastErr = err
		Logger().Warn("ink: grid computation failed", "error", err)
	} else {
		s.grid = grid
	}
	s.setState(StateReady)
	s.mu.Unlock()
	s.notifyHost()
}

// PenLeave ends the stroke when the pointer leaves the drawing area,
// exactly as PenUp does.
func (s *Session) PenLeave() {
	s.PenUp()
}

// RequestPrediction sends the current grid to the classifier. It returns
// ErrNotReady outside Ready, ErrRequestInFlight while an earlier predict
// call is still outstanding, and ErrInvalidGrid when the held grid fails
// validation (the grid is never padded or truncated to fit; the user must
// redraw). On success the session enters AwaitingPrediction and the call
// proceeds on its own goroutine.
func (s *Session) RequestPrediction(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateReady {
		s.mu.Unlock()
		return ErrNotReady
	}
	if s.inFlight {
		s.mu.Unlock()
		return ErrRequestInFlight
	}
	if err := s.grid.Validate(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.inFlight = true
	s.lastErr = nil
	s.setState(StateAwaitingPrediction)
	gen := s.gen
	grid := s.grid.Clone()
	s.mu.Unlock()
	s.notifyHost()

	go func() {
		pred, err := s.classifier.Predict(ctx, grid)
		s.finishPrediction(gen, pred, err)
	}()
	return nil
}

// finishPrediction applies a predict completion. The in-flight mark is
// cleared unconditionally; the result itself is applied only when the
// generation still matches the drawing it was requested for.
func (s *Session) finishPrediction(gen uint64, pred Prediction, err error) {
	s.mu.Lock()
	s.inFlight = false
	if gen != s.gen {
		s.mu.Unlock()
		Logger().Debug("ink: discarded stale prediction response")
		return
	}
	if err != nil {
		s.lastErr = err
		s.setState(StateReady)
		s.mu.Unlock()
		Logger().Warn("ink: prediction failed", "error", err)
		s.notifyHost()
		return
	}
	p := pred
	s.pred = &p
	s.setState(StatePredictionShown)
	s.mu.Unlock()
	Logger().Info("ink: prediction received", "digit", pred.Digit, "confidence", pred.Confidence)
	s.notifyHost()
}

// FeedbackCorrect records that the shown prediction was right and submits
// the feedback. Returns ErrNoPrediction outside PredictionShown.
func (s *Session) FeedbackCorrect(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StatePredictionShown {
		s.mu.Unlock()
		return ErrNoPrediction
	}
	s.beginFeedback(ctx, true, nil)
	return nil
}

// FeedbackIncorrect records that the shown prediction was wrong and waits
// for the true digit. Returns ErrNoPrediction outside PredictionShown.
func (s *Session) FeedbackIncorrect() error {
	s.mu.Lock()
	if s.state != StatePredictionShown {
		s.mu.Unlock()
		return ErrNoPrediction
	}
	s.setState(StateAwaitingFeedbackDetail)
	s.mu.Unlock()
	s.notifyHost()
	return nil
}

// ChooseDigit supplies the true label after FeedbackIncorrect and submits
// the feedback. Returns ErrDigitRange for labels outside [0, 9] and
// ErrNoPrediction outside AwaitingFeedbackDetail.
func (s *Session) ChooseDigit(ctx context.Context, digit int) error {
	if digit < 0 || digit > 9 {
		return ErrDigitRange
	}
	s.mu.Lock()
	if s.state != StateAwaitingFeedbackDetail {
		s.mu.Unlock()
		return ErrNoPrediction
	}
	d := digit
	s.beginFeedback(ctx, false, &d)
	return nil
}

// beginFeedback builds the feedback record, enters SubmittingFeedback and
// submits on a fresh goroutine. Called with mu held; unlocks it.
func (s *Session) beginFeedback(ctx context.Context, correct bool, correctDigit *int) {
	fb := Feedback{
		Pixels:         s.grid.Clone(),
		PredictedDigit: s.pred.Digit,
		Correct:        correct,
		CorrectDigit:   correctDigit,
	}
	gen := s.gen
	s.setState(StateSubmittingFeedback)
	s.mu.Unlock()
	s.notifyHost()

	go func() {
		err := s.classifier.SubmitFeedback(ctx, fb)
		s.finishFeedback(gen, err)
	}()
}

// finishFeedback ends the cycle. Feedback is advisory: delivery failure is
// logged and the session resets to Idle either way, so the user can start
// the next drawing immediately.
func (s *Session) finishFeedback(gen uint64, err error) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		Logger().Debug("ink: discarded stale feedback response")
		return
	}
	s.reset()
	s.mu.Unlock()
	if err != nil {
		Logger().Warn("ink: feedback delivery failed", "error", err)
	} else {
		Logger().Info("ink: feedback submitted")
	}
	s.notifyHost()
}

// Clear wipes the surface and all held session data and returns to Idle.
// Refused with ErrBusy while a predict or feedback call is outstanding;
// accepted in every other state, including mid-stroke.
func (s *Session) Clear() error {
	s.mu.Lock()
	if s.state == StateAwaitingPrediction || s.state == StateSubmittingFeedback {
		s.mu.Unlock()
		return ErrBusy
	}
	s.reset()
	s.mu.Unlock()
	s.notifyHost()
	return nil
}

// reset discards all session data and returns to Idle. The generation
// advances so any response still in the air is discarded on arrival.
// Called with mu held.
func (s *Session) reset() {
	s.surface.Clear()
	s.grid = nil
	s.pred = nil
	s.lastErr = nil
	s.gen++
	s.setState(StateIdle)
}

// setState records a transition. Called with mu held.
func (s *Session) setState(next State) {
	if s.state == next {
		return
	}
	Logger().Debug("ink: state change", "from", s.state.String(), "to", next.String())
	s.state = next
}

// notifyHost fires the WithNotify hook. Called without mu so the hook can
// safely read the session.
func (s *Session) notifyHost() {
	if s.notify != nil {
		s.notify()
	}
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Grid returns a copy of the held normalized grid, or nil when none is
// held. After a failed prediction the grid remains retrievable so the
// request can be retried without redrawing.
func (s *Session) Grid() Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Clone()
}

// Surface returns the session's drawing surface. Pointer input must still
// go through the Pen methods; the surface is exposed for coordinate
// mapping and inspection.
func (s *Session) Surface() *Surface {
	return s.surface
}
