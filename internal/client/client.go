// Package client is the bot-side client of the inference service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"medscan/internal/domain"
)

// StatusError is a non-2xx reply from the inference service, carrying the
// server's message.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("inference service returned %d: %s", e.StatusCode, e.Message)
}

// Client calls the inference service over HTTP with a bounded timeout.
type Client struct {
	rc *resty.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		rc: resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
	}
}

// PredictImage submits a raw image to /predict_image/{model} as the
// multipart file field "file".
func (c *Client) PredictImage(ctx context.Context, model domain.ModelID, image []byte) (*domain.PredictionResult, error) {
	var result domain.PredictionResult
	res, err := c.rc.R().
		SetContext(ctx).
		SetFileReader("file", "image", bytes.NewReader(image)).
		SetResult(&result).
		Post("/predict_image/" + string(model))
	if err != nil {
		return nil, fmt.Errorf("call inference service: %w", err)
	}
	if !res.IsSuccess() {
		return nil, statusError(res)
	}
	return &result, nil
}

type paramsBody struct {
	Parameters []domain.Param `json:"parameters"`
}

// PredictParams submits a validated parameter vector to
// /predict_params/{model}.
func (c *Client) PredictParams(ctx context.Context, model domain.ModelID, params []domain.Param) (*domain.PredictionResult, error) {
	var result domain.PredictionResult
	res, err := c.rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(paramsBody{Parameters: params}).
		SetResult(&result).
		Post("/predict_params/" + string(model))
	if err != nil {
		return nil, fmt.Errorf("call inference service: %w", err)
	}
	if !res.IsSuccess() {
		return nil, statusError(res)
	}
	return &result, nil
}

func statusError(res *resty.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	message := res.String()
	if err := json.Unmarshal(res.Body(), &body); err == nil && body.Error != "" {
		message = body.Error
	}
	return &StatusError{StatusCode: res.StatusCode(), Message: message}
}
