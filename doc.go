// Package ink captures hand-drawn digits and prepares them for
// MNIST-style classification.
//
// # Overview
//
// ink provides the frontend core of a digit-recognition loop: a fixed-size
// Surface that records freehand pen strokes, a Sampler that reduces the
// drawing to a normalized 28x28 intensity grid, and a Session state machine
// that drives the predict/feedback cycle against a remote classifier.
// Rendering and transport are pluggable; the package itself owns only the
// raster, the grid contract, and the interaction sequencing.
//
// # Quick Start
//
//	import "github.com/digitink/ink"
//
//	// Create a drawing surface (300x300, black background, white pen)
//	s := ink.NewSurface()
//
//	// Record a stroke
//	s.BeginStroke(ink.Pt(50, 150))
//	s.ExtendStroke(ink.Pt(250, 150))
//	s.EndStroke()
//
//	// Reduce to the 784-value grid a classifier expects
//	grid, err := ink.NewSampler().ComputeGrid(s)
//
// # Interaction Cycle
//
// A Session wires a Surface and Sampler to a Classifier and sequences the
// states Idle, Drawing, Ready, AwaitingPrediction, PredictionShown,
// AwaitingFeedbackDetail and SubmittingFeedback. Hosts feed it pointer
// events (PenDown, PenMove, PenUp) and user intents (RequestPrediction,
// FeedbackCorrect, FeedbackIncorrect, ChooseDigit, Clear) and render from
// the snapshot returned by View.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Host coordinates translate through Surface.MapFromBox, so mouse and touch
// input are indistinguishable once mapped.
//
// # Grid Contract
//
// Grids are exactly 784 values (28x28, row-major), each in [0, 1] rounded
// to 3 decimals, 0 meaning no ink and 1 meaning full ink. A grid of any
// other shape is invalid and is refused before transmission.
package ink

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
