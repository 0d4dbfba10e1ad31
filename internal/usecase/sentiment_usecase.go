package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/affanSheikh15/NLP-Text-Classification/internal/domain/entity"
	"github.com/affanSheikh15/NLP-Text-Classification/internal/domain/service"
)

// Error definitions for sentiment usecase
var (
	ErrModelUnavailable = errors.New("model not loaded")
	ErrEmptyInput       = errors.New("text cannot be empty")
	ErrEmptyBatch       = errors.New("texts list cannot be empty")
	ErrInference        = errors.New("inference failed")
)

// Input limits
const (
	MaxTextLength = 512
	MaxBatchSize  = 10
)

// Observer receives inference outcomes. It is used for metrics.
type Observer interface {
	ObserveInference(duration time.Duration, err error)
	ObserveDecision(label entity.Label)
}

// SentimentUsecase defines the interface for sentiment analysis
type SentimentUsecase interface {
	Analyze(ctx context.Context, text string) (*entity.SentimentResult, error)
	AnalyzeBatch(ctx context.Context, texts []string) ([]*entity.BatchItemResult, error)
	ModelLoaded() bool
}

type sentimentUsecase struct {
	classifier service.Classifier
	ready      bool
	observer   Observer
}

// NewSentimentUsecase creates a new sentiment usecase. A nil classifier means
// the model failed to load and every request fails with ErrModelUnavailable.
func NewSentimentUsecase(classifier service.Classifier, observer Observer) SentimentUsecase {
	return &sentimentUsecase{
		classifier: classifier,
		ready:      classifier != nil,
		observer:   observer,
	}
}

func (u *sentimentUsecase) ModelLoaded() bool {
	return u.ready
}

func (u *sentimentUsecase) Analyze(ctx context.Context, text string) (*entity.SentimentResult, error) {
	if !u.ready {
		return nil, ErrModelUnavailable
	}
	if isBlank(text) {
		return nil, ErrEmptyInput
	}

	prediction, err := u.classify(ctx, text)
	if err != nil {
		return nil, err
	}

	result := entity.NewSentimentResult(text, *prediction)
	u.observeDecision(result.Label)
	return result, nil
}

func (u *sentimentUsecase) AnalyzeBatch(ctx context.Context, texts []string) ([]*entity.BatchItemResult, error) {
	if !u.ready {
		return nil, ErrModelUnavailable
	}
	if len(texts) == 0 {
		return nil, ErrEmptyBatch
	}

	if len(texts) > MaxBatchSize {
		texts = texts[:MaxBatchSize]
	}

	results := make([]*entity.BatchItemResult, 0, len(texts))
	for _, text := range texts {
		if isBlank(text) {
			continue
		}

		// One failing item fails the whole batch.
		prediction, err := u.classify(ctx, text)
		if err != nil {
			return nil, err
		}

		d := entity.Decide(*prediction)
		u.observeDecision(d.Label)
		results = append(results, &entity.BatchItemResult{
			Text:       text,
			Label:      d.Label,
			Confidence: d.Confidence,
		})
	}

	return results, nil
}

func (u *sentimentUsecase) classify(ctx context.Context, text string) (*entity.RawPrediction, error) {
	start := time.Now()
	prediction, err := u.classifier.Classify(ctx, Truncate(text, MaxTextLength))
	if err == nil && prediction == nil {
		err = errors.New("classifier returned no prediction")
	}
	if u.observer != nil {
		u.observer.ObserveInference(time.Since(start), err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInference, err)
	}
	return prediction, nil
}

func (u *sentimentUsecase) observeDecision(label entity.Label) {
	if u.observer != nil {
		u.observer.ObserveDecision(label)
	}
}

// Truncate returns at most n characters of text, counting runes rather than bytes
func Truncate(text string, n int) string {
	if len(text) <= n {
		return text
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}

func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
