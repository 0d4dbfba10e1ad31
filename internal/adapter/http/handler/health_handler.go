package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ModelStatus reports whether the classifier is ready
type ModelStatus interface {
	ModelLoaded() bool
}

// HealthHandler handles service metadata and health check endpoints
type HealthHandler struct {
	model   ModelStatus
	modelID string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(model ModelStatus, modelID string) *HealthHandler {
	return &HealthHandler{
		model:   model,
		modelID: modelID,
	}
}

// Root handles GET /
//
//	@Summary	Service information
//	@Tags		meta
//	@Produce	json
//	@Success	200	{object}	ServiceInfo
//	@Router		/ [get]
func (h *HealthHandler) Root(c *gin.Context) {
	respondJSON(c, http.StatusOK, ServiceInfo{
		Message: "Sentiment Analysis API",
		Model:   h.modelID,
		Endpoints: map[string]string{
			"/analyze":       "POST - Analyze single text",
			"/batch-analyze": "POST - Analyze multiple texts",
			"/health":        "GET - Check API health",
		},
	})
}

// Health handles GET /health. It always answers 200; model_loaded tells
// whether requests can be served.
//
//	@Summary	Health check
//	@Tags		meta
//	@Produce	json
//	@Success	200	{object}	HealthStatus
//	@Router		/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	respondJSON(c, http.StatusOK, HealthStatus{
		Status:      "healthy",
		ModelLoaded: h.model.ModelLoaded(),
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if !h.model.ModelLoaded() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "model not loaded"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
