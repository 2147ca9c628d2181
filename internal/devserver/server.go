// Package devserver implements a stand-in classifier backend for local
// development and integration tests. Predictions are uniformly random, the
// behavior of the real service when no model is loaded; feedback is
// validated against embedded JSON Schemas and persisted.
package devserver

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/digitink/ink"
	"github.com/digitink/ink/internal/feedback"
)

//go:embed predict.schema.json
var predictSchema string

//go:embed feedback.schema.json
var feedbackSchema string

// dummyConfidence is reported with every random prediction, matching the
// no-model fallback of the production service.
const dummyConfidence = 0.99

// Server serves the classifier API surface: GET /, POST /predict and
// POST /feedback.
type Server struct {
	store    *feedback.Store
	log      *slog.Logger
	predict  *jsonschema.Schema
	feedback *jsonschema.Schema
}

// New creates a Server persisting feedback to store. Pass nil to disable
// logging.
func New(store *feedback.Store, log *slog.Logger) (*Server, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	ps, err := compileSchema("predict.schema.json", predictSchema)
	if err != nil {
		return nil, fmt.Errorf("compile predict schema: %w", err)
	}
	fs, err := compileSchema("feedback.schema.json", feedbackSchema)
	if err != nil {
		return nil, fmt.Errorf("compile feedback schema: %w", err)
	}

	return &Server{
		store:    store,
		log:      log,
		predict:  ps,
		feedback: fs,
	}, nil
}

// compileSchema compiles an embedded JSON Schema document.
func compileSchema(name, src string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, strings.NewReader(src)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return compiler.Compile(name)
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("POST /predict", s.handlePredict)
	mux.HandleFunc("POST /feedback", s.handleFeedback)
	return mux
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": "ink digit recognition API is running",
		"version": ink.Version,
	})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	if _, err := decodeValid(r, s.predict); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	digit := rand.IntN(10)
	s.log.Info("prediction served", "digit", digit)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"prediction": digit,
		"confidence": dummyConfidence,
	})
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	body, err := decodeValid(r, s.feedback)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	var req feedbackRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("decode body: %w", err))
		return
	}

	rec, err := s.store.Add(req.Pixels, req.PredictedDigit, req.Correct, req.CorrectDigit)
	if err != nil {
		s.log.Error("store feedback", "error", err)
		s.writeError(w, http.StatusInternalServerError, fmt.Errorf("store feedback"))
		return
	}

	s.log.Info("feedback stored",
		"id", rec.ID,
		"predicted_digit", req.PredictedDigit,
		"correct", req.Correct,
	)
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": "feedback received",
		"id":      rec.ID,
	})
}

// feedbackRequest mirrors the wire shape accepted by POST /feedback.
type feedbackRequest struct {
	Pixels         []float64 `json:"pixels"`
	PredictedDigit int       `json:"predicted_digit"`
	Correct        bool      `json:"correct"`
	CorrectDigit   *int      `json:"correct_digit"`
}

// decodeValid reads the request body and validates it against the schema,
// returning the raw body for a second, typed decode.
func decodeValid(r *http.Request, schema *jsonschema.Schema) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var instance any
	if err := json.Unmarshal(body, &instance); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return nil, err
	}
	return body, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
