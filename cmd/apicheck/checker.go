package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"github.com/affanSheikh15/NLP-Text-Classification/internal/adapter/http/handler"
)

// Texts sent by the single-text check
var SingleTexts = []string{
	"I absolutely love this product! It's amazing!",
	"This is terrible. I'm very disappointed.",
	"It's okay, nothing special.",
}

// Texts sent by the batch check
var BatchTexts = []string{
	"Great service and friendly staff!",
	"Worst experience ever. Never again.",
	"Average product, nothing to complain about.",
}

// Row is one line of a check report
type Row struct {
	Request string
	Status  int
	Result  string
	OK      bool
}

// Step is a named group of requests
type Step struct {
	Name string
	Run  func(ctx context.Context) ([]Row, error)
}

// Checker sends smoke requests to the API
type Checker struct {
	baseURL    string
	httpClient *http.Client
}

// NewChecker creates a new Checker
func NewChecker(baseURL string, httpClient *http.Client) *Checker {
	return &Checker{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Steps returns the checks in the order they run
func (c *Checker) Steps() []Step {
	return []Step{
		{Name: "Health Endpoint", Run: c.checkHealth},
		{Name: "Single Text Analysis", Run: c.checkSingle},
		{Name: "Batch Analysis", Run: c.checkBatch},
		{Name: "Error Handling", Run: c.checkErrors},
	}
}

func (c *Checker) checkHealth(ctx context.Context) ([]Row, error) {
	var body handler.HealthStatus
	status, err := c.call(ctx, http.MethodGet, "/health", nil, &body)
	if err != nil {
		return nil, err
	}

	return []Row{{
		Request: "GET /health",
		Status:  status,
		Result:  fmt.Sprintf("%s (model_loaded=%t)", body.Status, body.ModelLoaded),
		OK:      status == http.StatusOK && body.ModelLoaded,
	}}, nil
}

func (c *Checker) checkSingle(ctx context.Context) ([]Row, error) {
	rows := make([]Row, 0, len(SingleTexts))
	for _, text := range SingleTexts {
		var body handler.AnalyzeResponse
		status, err := c.call(ctx, http.MethodPost, "/analyze", map[string]string{"text": text}, &body)
		if err != nil {
			return nil, err
		}

		rows = append(rows, Row{
			Request: text,
			Status:  status,
			Result:  formatSentiment(body.Sentiment, body.Confidence),
			OK:      status == http.StatusOK && body.Text == text,
		})
	}
	return rows, nil
}

func (c *Checker) checkBatch(ctx context.Context) ([]Row, error) {
	var body handler.BatchAnalyzeResponse
	status, err := c.call(ctx, http.MethodPost, "/batch-analyze", map[string][]string{"texts": BatchTexts}, &body)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK || len(body.Results) != len(BatchTexts) {
		return []Row{{
			Request: "POST /batch-analyze",
			Status:  status,
			Result:  fmt.Sprintf("%d result(s)", len(body.Results)),
		}}, nil
	}

	rows := make([]Row, 0, len(body.Results))
	for i, item := range body.Results {
		rows = append(rows, Row{
			Request: item.Text,
			Status:  status,
			Result:  formatSentiment(item.Sentiment, item.Confidence),
			OK:      item.Text == BatchTexts[i],
		})
	}
	return rows, nil
}

func (c *Checker) checkErrors(ctx context.Context) ([]Row, error) {
	var body handler.ErrorBody
	status, err := c.call(ctx, http.MethodPost, "/analyze", map[string]string{"text": ""}, &body)
	if err != nil {
		return nil, err
	}

	return []Row{{
		Request: "Empty text",
		Status:  status,
		Result:  body.Detail,
		OK:      status == http.StatusBadRequest,
	}}, nil
}

func (c *Checker) call(ctx context.Context, method, path string, in, out any) (int, error) {
	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("%s %s: failed to decode response: %w", method, path, err)
	}
	return resp.StatusCode, nil
}

func formatSentiment(label string, confidence float64) string {
	return fmt.Sprintf("%s %.4f", label, confidence)
}

func renderRows(w io.Writer, rows []Row) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Request", "Status", "Result", ""})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, r := range rows {
		mark := color.Green.Render("PASS")
		if !r.OK {
			mark = color.Red.Render("FAIL")
		}
		table.Append([]string{r.Request, strconv.Itoa(r.Status), r.Result, mark})
	}
	table.Render()
}
