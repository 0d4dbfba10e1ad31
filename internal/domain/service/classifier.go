package service

import (
	"context"

	"github.com/affanSheikh15/NLP-Text-Classification/internal/domain/entity"
)

// Classifier defines the interface for text classification.
// Implementations must be safe for concurrent use.
type Classifier interface {
	// Classify returns the best label and its score for text
	Classify(ctx context.Context, text string) (*entity.RawPrediction, error)
}
