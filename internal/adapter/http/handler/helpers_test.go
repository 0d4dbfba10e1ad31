package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/affanSheikh15/NLP-Text-Classification/internal/domain/entity"
)

func TestBindJSON(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{name: "valid body", body: `{"text": "hello"}`, expectedStatus: http.StatusOK},
		{name: "empty text is bound", body: `{"text": ""}`, expectedStatus: http.StatusOK},
		{name: "missing field", body: `{}`, expectedStatus: http.StatusUnprocessableEntity},
		{name: "wrong type", body: `{"text": 42}`, expectedStatus: http.StatusUnprocessableEntity},
		{name: "malformed json", body: `{"text": `, expectedStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.POST("/test", func(c *gin.Context) {
				var input AnalyzeRequest
				if !bindJSON(c, &input) {
					return
				}
				c.Status(http.StatusOK)
			})

			req, _ := http.NewRequest("POST", "/test", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestToAnalyzeResponse(t *testing.T) {
	result := entity.NewSentimentResult("meh", entity.RawPrediction{Label: entity.LabelNegative, Score: 0.52})

	resp := toAnalyzeResponse(result)

	assert.Equal(t, "meh", resp.Text)
	assert.Equal(t, "NEUTRAL", resp.Sentiment)
	assert.Equal(t, 0.52, resp.Confidence)
	assert.Equal(t, []ScoreResponse{{Label: "NEGATIVE", Score: 0.52}}, resp.AllScores)
}

func TestToBatchAnalyzeResponse(t *testing.T) {
	t.Run("maps items in order", func(t *testing.T) {
		resp := toBatchAnalyzeResponse([]*entity.BatchItemResult{
			{Text: "hello", Label: entity.LabelPositive, Confidence: 0.99},
			{Text: "world", Label: entity.LabelNeutral, Confidence: 0.51},
		})

		assert.Equal(t, []BatchItemResponse{
			{Text: "hello", Sentiment: "POSITIVE", Confidence: 0.99},
			{Text: "world", Sentiment: "NEUTRAL", Confidence: 0.51},
		}, resp.Results)
	})

	t.Run("empty results are not null", func(t *testing.T) {
		resp := toBatchAnalyzeResponse(nil)

		assert.NotNil(t, resp.Results)
		assert.Empty(t, resp.Results)
	})
}
