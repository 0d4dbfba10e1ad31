package handler

// AnalyzeRequest is the body of POST /analyze
type AnalyzeRequest struct {
	Text *string `json:"text" binding:"required" example:"I love this!"`
}

// BatchAnalyzeRequest is the body of POST /batch-analyze
type BatchAnalyzeRequest struct {
	Texts []string `json:"texts" binding:"required"`
}

// ScoreResponse is a raw label/score pair
type ScoreResponse struct {
	Label string  `json:"label" example:"POSITIVE"`
	Score float64 `json:"score" example:"0.9998"`
}

// AnalyzeResponse is the result of POST /analyze
type AnalyzeResponse struct {
	Text       string          `json:"text"`
	Sentiment  string          `json:"sentiment" example:"POSITIVE"`
	Confidence float64         `json:"confidence" example:"0.9998"`
	AllScores  []ScoreResponse `json:"all_scores"`
}

// BatchItemResponse is one entry of a batch result
type BatchItemResponse struct {
	Text       string  `json:"text"`
	Sentiment  string  `json:"sentiment" example:"NEGATIVE"`
	Confidence float64 `json:"confidence" example:"0.9876"`
}

// BatchAnalyzeResponse is the result of POST /batch-analyze
type BatchAnalyzeResponse struct {
	Results []BatchItemResponse `json:"results"`
}

// ServiceInfo is the result of GET /
type ServiceInfo struct {
	Message   string            `json:"message"`
	Model     string            `json:"model"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthStatus is the result of GET /health
type HealthStatus struct {
	Status      string `json:"status" example:"healthy"`
	ModelLoaded bool   `json:"model_loaded"`
}
