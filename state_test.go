package ink

import "testing"

func TestStateString(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  string
	}{
		{"Idle", StateIdle, "Idle"},
		{"Drawing", StateDrawing, "Drawing"},
		{"Ready", StateReady, "Ready"},
		{"AwaitingPrediction", StateAwaitingPrediction, "AwaitingPrediction"},
		{"PredictionShown", StatePredictionShown, "PredictionShown"},
		{"AwaitingFeedbackDetail", StateAwaitingFeedbackDetail, "AwaitingFeedbackDetail"},
		{"SubmittingFeedback", StateSubmittingFeedback, "SubmittingFeedback"},
		{"Unknown", State(99), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
			}
		})
	}
}
