// Package server assembles the HTTP router.
package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/promptcraft/guild-api/internal/catalog"
	"github.com/promptcraft/guild-api/internal/evaluation"
	"github.com/promptcraft/guild-api/internal/eventbus"
	"github.com/promptcraft/guild-api/internal/generation"
	"github.com/promptcraft/guild-api/internal/handlers"
	"github.com/promptcraft/guild-api/internal/latency"
	"github.com/promptcraft/guild-api/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/promptcraft/guild-api/docs" // Swagger docs
)

// Deps are the collaborators the router wires into handlers.
// Nil optional fields get in-process defaults.
type Deps struct {
	Logger *zap.Logger

	Generator     generation.Completer
	MockGenerator generation.Completer
	Evaluator     evaluation.Scorer
	MockEvaluator evaluation.Scorer

	Catalog *catalog.Catalog
	Rand    latency.RandSource

	// Registry receives the service metrics and backs /metrics
	Registry *prometheus.Registry

	// Optional
	Events         eventbus.Publisher
	Limiter        middleware.Limiter
	Breaker        *middleware.CircuitBreaker
	HealthChecks   map[string]handlers.Check
	AllowedOrigins []string
	BasePath       string
}

// NewRouter builds the gin engine serving the guild API
func NewRouter(d Deps) *gin.Engine {
	if d.Events == nil {
		d.Events = eventbus.NopPublisher{}
	}
	if d.Limiter == nil {
		d.Limiter = middleware.NewRateLimiter(100, 10, time.Minute)
	}
	if d.Breaker == nil {
		d.Breaker = middleware.NewCircuitBreaker()
	}
	if d.Registry == nil {
		d.Registry = prometheus.NewRegistry()
	}
	if len(d.AllowedOrigins) == 0 {
		d.AllowedOrigins = []string{"*"}
	}

	metrics := middleware.NewMetrics(d.Registry)
	metrics.SetCircuitState(d.Breaker.State())
	d.Breaker.OnStateChange = func(from, to middleware.CircuitState) {
		metrics.SetCircuitState(to)
		d.Logger.Warn("model circuit breaker changed state",
			zap.Stringer("from", from),
			zap.Stringer("to", to),
		)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(d.Logger))
	router.Use(middleware.CORS(d.AllowedOrigins))
	router.Use(metrics.Middleware())

	healthHandler := handlers.NewHealthHandler(d.HealthChecks)
	generationHandler := handlers.NewGenerationHandler(d.Generator, d.MockGenerator, metrics, d.Events, d.Logger)
	evaluationHandler := handlers.NewEvaluationHandler(d.Evaluator, d.MockEvaluator, metrics, d.Events, d.Logger)
	cardHandler := handlers.NewCardHandler(d.Catalog, d.Rand)

	// Operational routes stay at the root regardless of the base path
	router.GET("/health", healthHandler.Health)
	router.GET("/health/deep", healthHandler.DeepHealth)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{Registry: d.Registry})))
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	base := router.Group(d.BasePath)
	base.GET("/", healthHandler.Root)

	api := base.Group("/api")
	{
		// Real engines sit behind the rate limiter and the circuit breaker
		guarded := []gin.HandlerFunc{
			middleware.RateLimitMiddleware(d.Limiter, d.Logger),
			middleware.CircuitBreakerMiddleware(d.Breaker),
		}

		generate := api.Group("/generate")
		{
			generate.POST("", append(guarded, generationHandler.Generate)...)
			generate.POST("/", append(guarded, generationHandler.Generate)...)
			generate.POST("/mock", generationHandler.GenerateMock)
		}

		evaluate := api.Group("/evaluate")
		{
			evaluate.POST("", append(guarded, evaluationHandler.Evaluate)...)
			evaluate.POST("/", append(guarded, evaluationHandler.Evaluate)...)
			evaluate.POST("/mock", evaluationHandler.EvaluateMock)
		}

		cards := api.Group("/cards")
		{
			cards.GET("", cardHandler.ListCards)
			cards.GET("/", cardHandler.ListCards)
			cards.GET("/deal", cardHandler.DealHand)
			cards.GET("/:id", cardHandler.GetCard)
		}

		api.POST("/tokens/count", cardHandler.CountTokens)
	}

	return router
}
