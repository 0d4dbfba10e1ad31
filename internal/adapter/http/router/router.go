package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/affanSheikh15/NLP-Text-Classification/docs"
	"github.com/affanSheikh15/NLP-Text-Classification/internal/adapter/http/handler"
	"github.com/affanSheikh15/NLP-Text-Classification/internal/adapter/http/middleware"
	"github.com/affanSheikh15/NLP-Text-Classification/internal/adapter/http/ui"
	"github.com/affanSheikh15/NLP-Text-Classification/internal/infrastructure/metrics"
	"github.com/affanSheikh15/NLP-Text-Classification/internal/usecase"
)

// Options holds the dependencies of the routers
type Options struct {
	Sentiment usecase.SentimentUsecase
	ModelID   string
	Logger    *zap.Logger
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
}

// Setup creates and configures the API router
func Setup(opts Options) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(opts.Logger))
	router.Use(middleware.Recovery(opts.Logger))
	router.Use(middleware.CORS())
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}

	// Metadata and health endpoints
	healthHandler := handler.NewHealthHandler(opts.Sentiment, opts.ModelID)
	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	// API docs
	docs.SwaggerInfo.Description = "Real-time sentiment analysis using " + opts.ModelID
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Sentiment routes
	sentimentHandler := handler.NewSentimentHandler(opts.Sentiment, opts.Logger)
	router.POST("/analyze", sentimentHandler.Analyze)
	router.POST("/batch-analyze", sentimentHandler.BatchAnalyze)

	return router
}

// SetupUI creates the demo UI router
func SetupUI(opts Options) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(opts.Logger.Named("ui")))
	router.Use(middleware.Recovery(opts.Logger))

	ui.NewHandler(opts.Sentiment, opts.ModelID, opts.Logger.Named("ui")).Register(router)

	return router
}
