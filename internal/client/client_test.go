package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medscan/internal/client"
	"medscan/internal/domain"
)

func TestPredictParams(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.PredictionResult{
			PredictedClass: "risk",
			Probabilities:  map[string]float64{"normal": 0.25, "risk": 0.75},
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL, 5*time.Second)
	result, err := c.PredictParams(context.Background(), domain.ModelHeartAttack, []domain.Param{
		domain.NumberParam(25),
		domain.CategoryParam("M"),
	})
	require.NoError(t, err)

	assert.Equal(t, "/predict_params/heart_attack", gotPath)
	// Numbers and categories keep their JSON types on the wire.
	assert.Equal(t, map[string]any{"parameters": []any{float64(25), "M"}}, gotBody)
	assert.Equal(t, "risk", result.PredictedClass)
	assert.Equal(t, 0.75, result.Probabilities["risk"])
}

func TestPredictImage(t *testing.T) {
	image := []byte{0x89, 'P', 'N', 'G'}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict_image/pneumonia", r.URL.Path)
		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		buf := make([]byte, len(image))
		_, err = file.Read(buf)
		require.NoError(t, err)
		assert.Equal(t, image, buf)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.PredictionResult{
			PredictedClass: "normal",
			Probabilities:  map[string]float64{"normal": 0.9, "pneumonia": 0.1},
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL, 5*time.Second)
	result, err := c.PredictImage(context.Background(), domain.ModelPneumonia, image)
	require.NoError(t, err)
	assert.Equal(t, "normal", result.PredictedClass)
}

func TestStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "No parameters provided"})
	}))
	defer srv.Close()

	c := client.New(srv.URL, 5*time.Second)
	_, err := c.PredictParams(context.Background(), domain.ModelDiabetes, nil)
	require.Error(t, err)

	var serr *client.StatusError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusBadRequest, serr.StatusCode)
	assert.Equal(t, "No parameters provided", serr.Message)
}

func TestServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "session run: invalid dims"})
	}))
	defer srv.Close()

	c := client.New(srv.URL, 5*time.Second)
	_, err := c.PredictImage(context.Background(), domain.ModelBrainTumor, []byte("img"))

	var serr *client.StatusError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusInternalServerError, serr.StatusCode)
	assert.Equal(t, "session run: invalid dims", serr.Message)
}

func TestConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := client.New(srv.URL, time.Second)
	_, err := c.PredictParams(context.Background(), domain.ModelDiabetes, []domain.Param{domain.NumberParam(1)})
	require.Error(t, err)

	var serr *client.StatusError
	assert.False(t, errors.As(err, &serr), "transport errors are not status errors")
}
