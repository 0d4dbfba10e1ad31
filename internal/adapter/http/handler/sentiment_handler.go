package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/affanSheikh15/NLP-Text-Classification/internal/usecase"
)

// SentimentHandler handles sentiment analysis requests
type SentimentHandler struct {
	sentimentUC usecase.SentimentUsecase
	logger      *zap.Logger
}

// NewSentimentHandler creates a new sentiment handler
func NewSentimentHandler(sentimentUC usecase.SentimentUsecase, logger *zap.Logger) *SentimentHandler {
	return &SentimentHandler{
		sentimentUC: sentimentUC,
		logger:      logger,
	}
}

// Analyze handles POST /analyze
//
//	@Summary	Analyze sentiment of a single text
//	@Tags		sentiment
//	@Accept		json
//	@Produce	json
//	@Param		request	body		AnalyzeRequest	true	"Text to analyze"
//	@Success	200		{object}	AnalyzeResponse
//	@Failure	400		{object}	ErrorBody
//	@Failure	422		{object}	ErrorBody
//	@Failure	500		{object}	ErrorBody
//	@Failure	503		{object}	ErrorBody
//	@Router		/analyze [post]
func (h *SentimentHandler) Analyze(c *gin.Context) {
	var input AnalyzeRequest
	if !bindJSON(c, &input) {
		return
	}

	result, err := h.sentimentUC.Analyze(c.Request.Context(), *input.Text)
	if err != nil {
		HandleUsecaseError(c, h.logger, err)
		return
	}

	respondJSON(c, http.StatusOK, toAnalyzeResponse(result))
}

// BatchAnalyze handles POST /batch-analyze
//
//	@Summary		Analyze sentiment of multiple texts
//	@Description	Only the first 10 texts are analyzed. Blank texts are skipped.
//	@Tags			sentiment
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BatchAnalyzeRequest	true	"Texts to analyze"
//	@Success		200		{object}	BatchAnalyzeResponse
//	@Failure		400		{object}	ErrorBody
//	@Failure		422		{object}	ErrorBody
//	@Failure		500		{object}	ErrorBody
//	@Failure		503		{object}	ErrorBody
//	@Router			/batch-analyze [post]
func (h *SentimentHandler) BatchAnalyze(c *gin.Context) {
	var input BatchAnalyzeRequest
	if !bindJSON(c, &input) {
		return
	}

	results, err := h.sentimentUC.AnalyzeBatch(c.Request.Context(), input.Texts)
	if err != nil {
		HandleUsecaseError(c, h.logger, err)
		return
	}

	respondJSON(c, http.StatusOK, toBatchAnalyzeResponse(results))
}
