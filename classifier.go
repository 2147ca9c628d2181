package ink

import "context"

// Classifier is the session's boundary to a digit classifier. Both methods
// may block on network I/O; the Session calls them from goroutines it
// spawns and keeps at most one predict call outstanding.
//
// The classify package provides the HTTP implementation; tests substitute
// their own.
type Classifier interface {
	// Predict returns the classifier's label for a valid grid.
	Predict(ctx context.Context, grid Grid) (Prediction, error)

	// SubmitFeedback delivers the user's verdict on an earlier prediction.
	// Failures are non-fatal to the interaction cycle.
	SubmitFeedback(ctx context.Context, fb Feedback) error
}

// Prediction is a classifier's answer for one grid.
type Prediction struct {
	// Digit is the predicted label, 0 through 9.
	Digit int

	// Confidence is the classifier's certainty in [0, 1], or -1 when the
	// classifier does not report one.
	Confidence float64
}

// Feedback bundles the user's verdict on a prediction together with the
// grid it was made for. A Session constructs it immediately before
// submission and discards it afterwards, whatever the outcome.
type Feedback struct {
	// Pixels is the grid the prediction was made for.
	Pixels Grid

	// PredictedDigit is the label the classifier returned.
	PredictedDigit int

	// Correct is the user's verdict.
	Correct bool

	// CorrectDigit is the true label chosen by the user, 0 through 9.
	// Set only when Correct is false.
	CorrectDigit *int
}
