package classify

// Wire shapes for the classifier service. The pixels array always carries
// exactly ink.GridLen values; the client refuses anything else before the
// request is built.

type predictRequest struct {
	Pixels []float64 `json:"pixels"`
}

// predictResponse uses pointers so a missing field is distinguishable from
// a zero value: a body without "prediction" is a transport error, while a
// missing "confidence" is allowed.
type predictResponse struct {
	Prediction *int     `json:"prediction"`
	Confidence *float64 `json:"confidence"`
}

type feedbackRequest struct {
	Pixels         []float64 `json:"pixels"`
	PredictedDigit int       `json:"predicted_digit"`
	Correct        bool      `json:"correct"`
	CorrectDigit   *int      `json:"correct_digit,omitempty"`
}
