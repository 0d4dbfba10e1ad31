package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/affanSheikh15/NLP-Text-Classification/internal/adapter/client"
	"github.com/affanSheikh15/NLP-Text-Classification/internal/adapter/http/router"
	"github.com/affanSheikh15/NLP-Text-Classification/internal/domain/service"
	"github.com/affanSheikh15/NLP-Text-Classification/internal/infrastructure/config"
	"github.com/affanSheikh15/NLP-Text-Classification/internal/infrastructure/logger"
	"github.com/affanSheikh15/NLP-Text-Classification/internal/infrastructure/metrics"
	"github.com/affanSheikh15/NLP-Text-Classification/internal/usecase"
)

const shutdownTimeout = 30 * time.Second

//	@title			Sentiment Analysis API
//	@version		1.0.0
//	@description	Real-time sentiment analysis using DistilBERT
//	@BasePath		/
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load model (optional, serve 503 without it)
	classifier := loadClassifier(ctx, cfg, log)

	// Initialize metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	opts := router.Options{
		Sentiment: usecase.NewSentimentUsecase(classifier, m),
		ModelID:   cfg.Model.ID,
		Logger:    log,
		Metrics:   m,
		Gatherer:  reg,
	}

	servers := []*http.Server{newServer(cfg.Server.Addr(), router.Setup(opts))}
	if cfg.UI.Enabled {
		servers = append(servers, newServer(cfg.UI.Addr(), router.SetupUI(opts)))
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			log.Info("Starting server", zap.String("address", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server %s failed: %w", srv.Addr, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down servers...")

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("Server forced to shutdown", zap.String("address", srv.Addr), zap.Error(err))
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("Server exited")
	return nil
}

// loadClassifier returns nil when the model cannot be loaded. The API keeps
// running and answers 503 on analysis routes.
func loadClassifier(ctx context.Context, cfg *config.Config, log *zap.Logger) service.Classifier {
	inference := client.NewInferenceClient(cfg.Model.InferenceURL, cfg.Model.Token, cfg.Model.Timeout)
	loader := client.NewLoader(inference, cfg.Model.ID, cfg.Model.StartupWait, log)

	classifier, err := loader.Load(ctx)
	if err != nil {
		log.Error("Error loading model", zap.Error(err))
		return nil
	}
	return classifier
}

func newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
