package ink

// State identifies where a Session is in the draw/predict/feedback cycle.
type State int

const (
	// StateIdle means the surface is blank and nothing has been drawn.
	StateIdle State = iota

	// StateDrawing means a stroke is in progress or further strokes may
	// be layered onto an existing drawing.
	StateDrawing

	// StateReady means a completed drawing and its grid are held and a
	// prediction may be requested.
	StateReady

	// StateAwaitingPrediction means a predict call is outstanding.
	StateAwaitingPrediction

	// StatePredictionShown means a label arrived and awaits the user's
	// correct/incorrect verdict.
	StatePredictionShown

	// StateAwaitingFeedbackDetail means the user marked the label wrong
	// and the true digit has yet to be chosen.
	StateAwaitingFeedbackDetail

	// StateSubmittingFeedback means a feedback call is outstanding; the
	// cycle ends when it completes, successfully or not.
	StateSubmittingFeedback
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDrawing:
		return "Drawing"
	case StateReady:
		return "Ready"
	case StateAwaitingPrediction:
		return "AwaitingPrediction"
	case StatePredictionShown:
		return "PredictionShown"
	case StateAwaitingFeedbackDetail:
		return "AwaitingFeedbackDetail"
	case StateSubmittingFeedback:
		return "SubmittingFeedback"
	default:
		return "Unknown"
	}
}
