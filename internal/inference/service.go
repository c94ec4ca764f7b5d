package inference

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"medscan/internal/domain"
)

// Model ties a loaded predictor to its class labels.
type Model struct {
	Labels    []string
	Predictor Predictor
}

// Service serves the four prediction endpoints over a set of loaded models.
type Service struct {
	models map[domain.ModelID]Model
}

func NewService(models map[domain.ModelID]Model) *Service {
	return &Service{models: models}
}

func (s *Service) AddRoutes(r chi.Router) {
	r.Get("/health", restHandler(func(r *http.Request) (any, error) { return nil, nil }))
	r.Post("/predict_image/{model_id}", restHandler(s.PredictImage))
	r.Post("/predict_params/{model_id}", restHandler(s.PredictParams))
}

// PredictImage handles POST /predict_image/{model_id}: multipart file field
// "file" holding the raw image.
func (s *Service) PredictImage(r *http.Request) (any, error) {
	model, err := s.urlModel(r, domain.ModelID.IsImage)
	if err != nil {
		return nil, err
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, codedErrorf(http.StatusBadRequest, "No file provided")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, codedErrorf(http.StatusBadRequest, "unable to read file")
	}

	input, shape, err := PrepareImage(data)
	if err != nil {
		return nil, codedError(http.StatusInternalServerError, err)
	}

	probs, err := s.models[model].Predictor.Predict(input, shape)
	if err != nil {
		return nil, codedError(http.StatusInternalServerError, err)
	}

	return buildResult(s.models[model].Labels, probs)
}

type paramsRequest struct {
	// Pointer so a missing key is distinguishable from an empty list.
	Parameters *[]domain.Param `json:"parameters"`
}

// PredictParams handles POST /predict_params/{model_id}: JSON body with a
// "parameters" list of numbers and category strings.
func (s *Service) PredictParams(r *http.Request) (any, error) {
	model, err := s.urlModel(r, domain.ModelID.IsParametric)
	if err != nil {
		return nil, err
	}

	var req paramsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, codedErrorf(http.StatusBadRequest, "unable to parse request body")
	}
	if req.Parameters == nil {
		return nil, codedErrorf(http.StatusBadRequest, "No parameters provided")
	}

	var input []float32
	switch model {
	case domain.ModelHeartAttack:
		input, err = EncodeHeart(*req.Parameters)
	default:
		input, err = NumericVector(*req.Parameters)
	}
	if err != nil {
		return nil, codedError(http.StatusInternalServerError, err)
	}

	probs, err := s.models[model].Predictor.Predict(input, []int64{1, int64(len(input))})
	if err != nil {
		return nil, codedError(http.StatusInternalServerError, err)
	}

	return buildResult(s.models[model].Labels, probs)
}

func (s *Service) urlModel(r *http.Request, kind func(domain.ModelID) bool) (domain.ModelID, error) {
	raw := chi.URLParam(r, "model_id")
	model, ok := domain.ParseModelID(raw)
	if !ok || !kind(model) {
		return domain.ModelNone, codedErrorf(http.StatusNotFound, "unknown model %q", raw)
	}
	if _, loaded := s.models[model]; !loaded {
		return domain.ModelNone, codedErrorf(http.StatusNotFound, "model %q is not loaded", raw)
	}
	return model, nil
}

// buildResult picks the argmax label and rounds every probability to two
// decimals.
func buildResult(labels []string, probs []float32) (domain.PredictionResult, error) {
	argmax := 0
	for i := range probs {
		if probs[i] > probs[argmax] {
			argmax = i
		}
	}
	if len(probs) == 0 || argmax >= len(labels) {
		return domain.PredictionResult{}, fmt.Errorf("model output has %d classes, expected %d", len(probs), len(labels))
	}

	probabilities := make(map[string]float64, len(labels))
	for i, label := range labels {
		if i >= len(probs) {
			break
		}
		probabilities[label] = round2(probs[i])
	}

	return domain.PredictionResult{
		PredictedClass: labels[argmax],
		Probabilities:  probabilities,
	}, nil
}

func round2(v float32) float64 {
	return math.Round(float64(v)*100) / 100
}

type httpError struct {
	err  error
	code int
}

func (e *httpError) Error() string { return e.err.Error() }
func (e *httpError) Unwrap() error { return e.err }

func codedError(code int, err error) error {
	return &httpError{err: err, code: code}
}

func codedErrorf(code int, format string, args ...any) error {
	return &httpError{err: fmt.Errorf(format, args...), code: code}
}

type errorBody struct {
	Error string `json:"error"`
}

// restHandler adapts a handler returning (result, error) to http.HandlerFunc.
// Failures are written as {"error": message} with the coded status; anything
// uncoded is a 500.
func restHandler(handler func(r *http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()

		res, err := handler(r)
		if err != nil {
			code := http.StatusInternalServerError
			var herr *httpError
			if errors.As(err, &herr) {
				code = herr.code
			}
			if code == http.StatusInternalServerError {
				slog.Error("prediction failed", "request_id", requestID, "path", r.URL.Path, "error", err)
			} else {
				slog.Info("request rejected", "request_id", requestID, "path", r.URL.Path, "status", code, "error", err)
			}
			writeJSON(w, code, errorBody{Error: err.Error()})
			return
		}

		slog.Debug("request served", "request_id", requestID, "path", r.URL.Path)
		if res == nil {
			w.WriteHeader(http.StatusOK)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("error writing response", "error", err)
	}
}
