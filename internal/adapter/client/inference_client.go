package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// PredictRequest represents a request to the inference server
type PredictRequest struct {
	Inputs   string `json:"inputs"`
	Truncate bool   `json:"truncate"`
}

// Prediction represents one label/score pair returned by the inference server
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// InfoResponse represents the model information of the inference server
type InfoResponse struct {
	ModelID  string `json:"model_id"`
	ModelSHA string `json:"model_sha,omitempty"`
	Version  string `json:"version,omitempty"`
}

// InferenceClient is an HTTP client for a text-classification inference server
type InferenceClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewInferenceClient creates a new inference server client. token may be empty.
func NewInferenceClient(baseURL, token string, timeout time.Duration) *InferenceClient {
	return &InferenceClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Predict sends a single text for classification and returns every label score
func (c *InferenceClient) Predict(ctx context.Context, text string) ([]Prediction, error) {
	body, err := json.Marshal(PredictRequest{Inputs: text, Truncate: true})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result []Prediction
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result, nil
}

// Health checks the inference server health
func (c *InferenceClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()

	return nil
}

// Info returns the model served by the inference server
func (c *InferenceClient) Info(ctx context.Context) (*InfoResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/info", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result InfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// do sends req and turns any non-200 status into an error. The caller closes
// the body of a successful response.
func (c *InferenceClient) do(req *http.Request) (*http.Response, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if err != nil || len(respBody) == 0 {
			return nil, fmt.Errorf("inference server returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("inference server returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	return resp, nil
}
