package ink

import "errors"

// Sentinel errors for the ink package.
var (
	// ErrInvalidGrid is returned when a normalized grid does not contain
	// exactly GridLen values. Invalid grids are never padded, truncated
	// or transmitted; the drawing must be redone.
	ErrInvalidGrid = errors.New("ink: invalid grid")

	// ErrNotReady is returned when a prediction is requested in a state
	// that has no completed drawing to classify.
	ErrNotReady = errors.New("ink: no completed drawing to classify")

	// ErrRequestInFlight is returned when a prediction is requested while
	// an earlier prediction call is still outstanding.
	ErrRequestInFlight = errors.New("ink: prediction request already in flight")

	// ErrBusy is returned when the surface cannot be cleared because a
	// network call is being prepared or awaited.
	ErrBusy = errors.New("ink: session busy")

	// ErrNoPrediction is returned when feedback is given but no
	// prediction is awaiting review.
	ErrNoPrediction = errors.New("ink: no prediction awaiting review")

	// ErrDigitRange is returned when a corrected label is outside [0, 9].
	ErrDigitRange = errors.New("ink: digit out of range")
)
