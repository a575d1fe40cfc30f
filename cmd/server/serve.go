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
	"github.com/promptcraft/guild-api/internal/catalog"
	"github.com/promptcraft/guild-api/internal/config"
	"github.com/promptcraft/guild-api/internal/database"
	"github.com/promptcraft/guild-api/internal/evaluation"
	"github.com/promptcraft/guild-api/internal/eventbus"
	"github.com/promptcraft/guild-api/internal/generation"
	"github.com/promptcraft/guild-api/internal/handlers"
	"github.com/promptcraft/guild-api/internal/latency"
	"github.com/promptcraft/guild-api/internal/logging"
	"github.com/promptcraft/guild-api/internal/middleware"
	"github.com/promptcraft/guild-api/internal/server"
	"github.com/promptcraft/guild-api/internal/telemetry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

var (
	configPath string
	port       string
	logLevel   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path to a YAML config file overlaying the environment")
	serveCmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = port
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Promptcraft API starting...",
		zap.String("version", version),
		zap.String("environment", cfg.Environment),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, serviceName, version, cfg.OTLPEndpoint)
	if err != nil {
		// Tracing is optional; the collector may be down
		logger.Error("failed to initialize telemetry", zap.Error(err))
		shutdownTracer = func(context.Context) error { return nil }
	}

	checks := map[string]handlers.Check{"redis": nil, "nats": nil}

	var limiter middleware.Limiter = middleware.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitRefill, cfg.RateLimitPeriod)
	if cfg.RedisURL != "" {
		rdb, err := database.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("failed to connect to redis, using in-memory rate limiting", zap.Error(err))
		} else {
			defer rdb.Close()
			limiter = middleware.NewRedisRateLimiter(rdb.Client(), cfg.RateLimitMax, cfg.RateLimitPeriod)
			checks["redis"] = rdb.Ping
			logger.Info("connected to redis")
		}
	}

	var events eventbus.Publisher = eventbus.NopPublisher{}
	if cfg.NATSURL != "" {
		nc, err := eventbus.ConnectNATS(cfg.NATSURL, logger)
		if err != nil {
			logger.Error("failed to connect to NATS, events disabled", zap.Error(err))
		} else {
			events = nc
			checks["nats"] = func(context.Context) error { return nc.Ping() }
			logger.Info("connected to NATS")
		}
	}
	defer events.Close()

	cards, err := catalog.New()
	if err != nil {
		return fmt.Errorf("load card catalog: %w", err)
	}

	src := latency.NewRandSource(cfg.RandomSeed)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := server.NewRouter(server.Deps{
		Logger:         logger,
		Generator:      generation.NewGenerator(logger, src),
		MockGenerator:  generation.NewMockGenerator(logger, cfg.MockGenerateDelay),
		Evaluator:      evaluation.NewEvaluator(logger, src),
		MockEvaluator:  evaluation.NewMockEvaluator(logger, cfg.MockEvaluateDelay),
		Catalog:        cards,
		Rand:           src,
		Registry:       registry,
		Events:         events,
		Limiter:        limiter,
		Breaker:        middleware.NewCircuitBreaker(),
		HealthChecks:   checks,
		AllowedOrigins: cfg.AllowedOrigins,
		BasePath:       cfg.BasePath,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := shutdownTracer(shutdownCtx); err != nil {
			logger.Error("failed to shutdown telemetry", zap.Error(err))
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}
