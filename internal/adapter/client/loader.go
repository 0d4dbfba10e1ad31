package client

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/affanSheikh15/NLP-Text-Classification/internal/domain/service"
)

// Loader brings up the classifier once at startup
type Loader struct {
	client  *InferenceClient
	modelID string
	wait    time.Duration
	logger  *zap.Logger
}

// NewLoader creates a new Loader. wait bounds how long Load polls the
// inference server before giving up.
func NewLoader(client *InferenceClient, modelID string, wait time.Duration, logger *zap.Logger) *Loader {
	return &Loader{
		client:  client,
		modelID: modelID,
		wait:    wait,
		logger:  logger,
	}
}

// Load waits for the inference server to become healthy and returns the
// classifier backed by it. Load is only called during startup; requests are
// never retried.
func (l *Loader) Load(ctx context.Context) (service.Classifier, error) {
	l.logger.Info("Loading model...", zap.String("model", l.modelID))

	b := retry.NewExponential(250 * time.Millisecond)
	b = retry.WithCappedDuration(5*time.Second, b)
	b = retry.WithMaxDuration(l.wait, b)

	attempt := 0
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		if err := l.client.Health(ctx); err != nil {
			l.logger.Debug("Inference server not ready", zap.Int("attempt", attempt), zap.Error(err))
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("inference server not healthy after %d attempts: %w", attempt, err)
	}

	info, err := l.client.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read model info: %w", err)
	}
	if info.ModelID != l.modelID {
		l.logger.Warn("Inference server serves a different model",
			zap.String("configured", l.modelID),
			zap.String("served", info.ModelID),
		)
	}

	l.logger.Info("Model loaded successfully!", zap.String("model", info.ModelID))
	return NewInferenceClassifier(l.client), nil
}
