// Package classify implements ink.Classifier over HTTP against a digit
// recognition service exposing POST /predict and POST /feedback.
package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/digitink/ink"
)

// Client talks to a classifier service. The zero value is not usable;
// construct with NewClient.
type Client struct {
	url    *url.URL
	client *http.Client
}

// Compile-time interface check.
var _ ink.Classifier = (*Client)(nil)

// NewClient creates a client for the service at rawURL. Pass nil to use
// http.DefaultClient; hosts wanting timeouts supply their own client.
func NewClient(rawURL string, client *http.Client) (*Client, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &Client{url: u, client: client}, nil
}

// Predict sends the grid to the service and returns its label. The grid
// is validated before any request is built; a response without a
// prediction field or with a label outside [0, 9] is a transport error.
func (c *Client) Predict(ctx context.Context, grid ink.Grid) (ink.Prediction, error) {
	if err := grid.Validate(); err != nil {
		return ink.Prediction{}, err
	}

	var resp predictResponse
	if err := c.postJSON(ctx, "/predict", predictRequest{Pixels: grid}, &resp); err != nil {
		return ink.Prediction{}, err
	}

	if resp.Prediction == nil {
		return ink.Prediction{}, fmt.Errorf("response missing prediction field")
	}
	if *resp.Prediction < 0 || *resp.Prediction > 9 {
		return ink.Prediction{}, fmt.Errorf("prediction out of range: %d", *resp.Prediction)
	}

	pred := ink.Prediction{Digit: *resp.Prediction, Confidence: -1}
	if resp.Confidence != nil {
		pred.Confidence = *resp.Confidence
	}
	return pred, nil
}

// SubmitFeedback delivers the user's verdict. The correct_digit field is
// sent only for incorrect verdicts; the grid is validated before any
// request is built.
func (c *Client) SubmitFeedback(ctx context.Context, fb ink.Feedback) error {
	if err := fb.Pixels.Validate(); err != nil {
		return err
	}

	req := feedbackRequest{
		Pixels:         fb.Pixels,
		PredictedDigit: fb.PredictedDigit,
		Correct:        fb.Correct,
	}
	if !fb.Correct {
		req.CorrectDigit = fb.CorrectDigit
	}
	return c.postJSON(ctx, "/feedback", req, nil)
}

// postJSON posts body to path and decodes the response into out when out
// is non-nil. Any non-2xx status is an error carrying the response body.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	u := c.url.JoinPath(path).String()
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.client.Do(request)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode/100 != 2 {
		resp, _ := io.ReadAll(response.Body)
		return fmt.Errorf("server response status code: %d, body: %s", response.StatusCode, resp)
	}

	if out == nil {
		return nil
	}
	if err = json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}
