package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/affanSheikh15/NLP-Text-Classification/internal/adapter/http/middleware"
	"github.com/affanSheikh15/NLP-Text-Classification/internal/usecase"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// MapUsecaseError maps usecase errors to HTTP error responses.
// Inference errors keep the underlying message.
func MapUsecaseError(err error) ErrorResponse {
	switch {
	case errors.Is(err, usecase.ErrModelUnavailable):
		return ErrorResponse{
			StatusCode: http.StatusServiceUnavailable,
			Code:       "MODEL_UNAVAILABLE",
			Message:    "Model not loaded",
		}
	case errors.Is(err, usecase.ErrEmptyInput):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       "EMPTY_INPUT",
			Message:    "Text cannot be empty",
		}
	case errors.Is(err, usecase.ErrEmptyBatch):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       "EMPTY_BATCH",
			Message:    "Texts list cannot be empty",
		}
	case errors.Is(err, usecase.ErrInference):
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       "INFERENCE_ERROR",
			Message:    err.Error(),
		}
	default:
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       "INTERNAL_ERROR",
			Message:    "internal server error",
		}
	}
}

// HandleUsecaseError handles a usecase error by sending an appropriate HTTP response.
// Server-side failures are logged once.
func HandleUsecaseError(c *gin.Context, logger *zap.Logger, err error) {
	errResp := MapUsecaseError(err)
	if errResp.StatusCode >= http.StatusInternalServerError && errResp.Code != "MODEL_UNAVAILABLE" {
		logger.Error("Error analyzing sentiment",
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.String("code", errResp.Code),
			zap.Error(err),
		)
	}
	respondError(c, errResp.StatusCode, errResp.Message)
}

// HandleInvalidRequest handles a request body that could not be bound
func HandleInvalidRequest(c *gin.Context, message string) {
	respondError(c, http.StatusUnprocessableEntity, message)
}
