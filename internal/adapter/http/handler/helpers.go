package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/affanSheikh15/NLP-Text-Classification/internal/domain/entity"
)

// bindJSON binds the request body into obj and answers 422 when it cannot.
// It reports whether the handler may continue.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		HandleInvalidRequest(c, err.Error())
		return false
	}
	return true
}

func toAnalyzeResponse(r *entity.SentimentResult) AnalyzeResponse {
	return AnalyzeResponse{
		Text:       r.Text,
		Sentiment:  string(r.Label),
		Confidence: r.Confidence,
		AllScores: lo.Map(r.Details, func(d entity.ScoreDetail, _ int) ScoreResponse {
			return ScoreResponse{Label: string(d.Label), Score: d.Score}
		}),
	}
}

func toBatchAnalyzeResponse(results []*entity.BatchItemResult) BatchAnalyzeResponse {
	return BatchAnalyzeResponse{
		Results: lo.Map(results, func(r *entity.BatchItemResult, _ int) BatchItemResponse {
			return BatchItemResponse{
				Text:       r.Text,
				Sentiment:  string(r.Label),
				Confidence: r.Confidence,
			}
		}),
	}
}
