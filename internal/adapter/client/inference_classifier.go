package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/affanSheikh15/NLP-Text-Classification/internal/domain/entity"
	"github.com/affanSheikh15/NLP-Text-Classification/internal/domain/service"
)

// ErrNoPrediction is returned when the inference server answers with no scores
var ErrNoPrediction = errors.New("inference server returned no prediction")

// InferenceClassifier adapts InferenceClient to the Classifier interface
type InferenceClassifier struct {
	client *InferenceClient
}

// NewInferenceClassifier creates a new InferenceClassifier
func NewInferenceClassifier(client *InferenceClient) service.Classifier {
	return &InferenceClassifier{client: client}
}

// Classify returns the highest scoring label for text
func (c *InferenceClassifier) Classify(ctx context.Context, text string) (*entity.RawPrediction, error) {
	predictions, err := c.client.Predict(ctx, text)
	if err != nil {
		return nil, err
	}

	return bestPrediction(predictions)
}

func bestPrediction(predictions []Prediction) (*entity.RawPrediction, error) {
	if len(predictions) == 0 {
		return nil, ErrNoPrediction
	}

	best := predictions[0]
	for _, p := range predictions[1:] {
		if p.Score > best.Score {
			best = p
		}
	}

	label, ok := entity.ParseRawLabel(best.Label)
	if !ok {
		return nil, fmt.Errorf("unexpected label %q", best.Label)
	}
	if best.Score < 0 || best.Score > 1 {
		return nil, fmt.Errorf("score %v out of range for label %s", best.Score, label)
	}

	return &entity.RawPrediction{
		Label: label,
		Score: best.Score,
	}, nil
}
