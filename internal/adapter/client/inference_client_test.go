package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferenceClient_Predict(t *testing.T) {
	t.Run("successful prediction", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/predict", r.URL.Path)
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Empty(t, r.Header.Get("Authorization"))

			var req PredictRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "test text", req.Inputs)
			assert.True(t, req.Truncate)

			w.Header().Set("Content-Type", "application/json")
			err = json.NewEncoder(w).Encode([]Prediction{
				{Label: "POSITIVE", Score: 0.85},
				{Label: "NEGATIVE", Score: 0.15},
			})
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewInferenceClient(server.URL, "", 5*time.Second)
		result, err := client.Predict(context.Background(), "test text")

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "POSITIVE", result[0].Label)
		assert.Equal(t, 0.85, result[0].Score)
	})

	t.Run("sends bearer token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer hf_secret", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`[{"label":"NEGATIVE","score":0.9}]`))
		}))
		defer server.Close()

		client := NewInferenceClient(server.URL+"/", "hf_secret", 5*time.Second)
		_, err := client.Predict(context.Background(), "test")

		assert.NoError(t, err)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, err := w.Write([]byte("internal error"))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewInferenceClient(server.URL, "", 5*time.Second)
		_, err := client.Predict(context.Background(), "test")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "500")
		assert.Contains(t, err.Error(), "internal error")
	})

	t.Run("malformed response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"error":`))
		}))
		defer server.Close()

		client := NewInferenceClient(server.URL, "", 5*time.Second)
		_, err := client.Predict(context.Background(), "test")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})

	t.Run("connection error", func(t *testing.T) {
		client := NewInferenceClient("http://localhost:99999", "", 1*time.Second)
		_, err := client.Predict(context.Background(), "test")

		assert.Error(t, err)
	})
}

func TestInferenceClient_Health(t *testing.T) {
	t.Run("healthy server", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			assert.Equal(t, "GET", r.Method)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewInferenceClient(server.URL, "", 5*time.Second)
		err := client.Health(context.Background())

		assert.NoError(t, err)
	})

	t.Run("unhealthy server", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewInferenceClient(server.URL, "", 5*time.Second)
		err := client.Health(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})
}

func TestInferenceClient_Info(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/info", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(InfoResponse{
			ModelID: "distilbert-base-uncased-finetuned-sst-2-english",
			Version: "1.5.0",
		})
		require.NoError(t, err)
	}))
	defer server.Close()

	client := NewInferenceClient(server.URL, "", 5*time.Second)
	info, err := client.Info(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "distilbert-base-uncased-finetuned-sst-2-english", info.ModelID)
}
