// Package main is the entrypoint for the seoscribe API server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	authpkg "github.com/seoscribe/seoscribe/internal/auth"
	"github.com/seoscribe/seoscribe/internal/cache"
	"github.com/seoscribe/seoscribe/internal/config"
	"github.com/seoscribe/seoscribe/internal/handler"
	"github.com/seoscribe/seoscribe/internal/llm"
	"github.com/seoscribe/seoscribe/internal/metrics"
	"github.com/seoscribe/seoscribe/internal/middleware"
	"github.com/seoscribe/seoscribe/internal/repository"
	"github.com/seoscribe/seoscribe/internal/seo"
	"github.com/seoscribe/seoscribe/internal/server"
	"github.com/seoscribe/seoscribe/internal/storage"
	"github.com/seoscribe/seoscribe/internal/tasks"
	"github.com/seoscribe/seoscribe/internal/wiki"
)

func main() {
	ctx := context.Background()

	// Optional .env file for local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	if cfg.UsesDefaultJWTSecret() && !cfg.IsDevelopment() {
		logger.Warn("running with the default JWT secret; set JWT_SECRET")
	}
	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set; generation will use fallback templates")
	}

	// SQLite storage.
	repo, err := repository.New(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open database",
			slog.String("error", err.Error()),
			slog.String("database_path", cfg.DatabasePath),
		)
		os.Exit(1)
	}
	logger.Info("database ready", "path", cfg.DatabasePath)

	// Flat-file artifact storage.
	files, err := storage.New(cfg.StorageDir)
	if err != nil {
		logger.Error("failed to create storage dir", "error", err)
		os.Exit(1)
	}

	// Redis is optional; without it rate limiting is disabled.
	var redisClient *cache.Redis
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("failed to connect to Redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("connected to Redis")
	} else {
		logger.Info("Redis not configured; rate limiting disabled")
	}

	// Retrieval and generation pipeline.
	recorder := metrics.NewInMemory()
	wikiClient := wiki.NewClient(wiki.Config{
		APIURL:     cfg.WikipediaAPIURL,
		Timeout:    cfg.HTTPTimeout,
		MaxRetries: cfg.MaxRetries,
	})
	geminiClient := llm.NewGeminiClient(llm.GeminiConfig{
		APIKey:     cfg.GeminiAPIKey,
		BaseURL:    cfg.GeminiBaseURL,
		Model:      cfg.GeminiModel,
		Timeout:    cfg.HTTPTimeout,
		MaxRetries: cfg.MaxRetries,
	})
	pipeline := seo.NewPipeline(
		seo.NewRetriever(wikiClient, wiki.DefaultResultsLimit, logger),
		seo.NewGenerator(geminiClient, logger),
		cache.NewContextCache(cfg.CacheTTL, cfg.CacheMaxEntries),
		recorder,
		logger,
	)

	taskStore := tasks.NewStore(cfg.TaskRetention, logger)
	issuer := authpkg.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)

	// Handlers.
	h := handler.New()
	healthHandler := handler.NewHealthHandler(repo, healthChecker(redisClient))
	authHandler := handler.NewAuthHandler(repo, issuer, logger)
	projectHandler := handler.NewProjectHandler(repo, logger)
	seoHandler := handler.NewSEOHandler(pipeline, repo, files, taskStore, recorder,
		cfg.BulkMaxKeywords, cfg.CalendarMaxKeywords, logger)
	taskHandler := handler.NewTaskHandler(taskStore, logger)
	statsHandler := handler.NewStatsHandler(pipeline, repo, logger)

	r := setupRouter(routerDeps{
		base:     h,
		health:   healthHandler,
		auth:     authHandler,
		projects: projectHandler,
		seo:      seoHandler,
		tasks:    taskHandler,
		stats:    statsHandler,
		issuer:   issuer,
		redis:    redisClient,
		cfg:      cfg,
		logger:   logger,
	})

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	// LIFO: the task store drains before its backing stores close.
	srv.OnShutdown("database", func(ctx context.Context) error { return repo.Close() })
	if redisClient != nil {
		srv.OnShutdown("redis", func(ctx context.Context) error { return redisClient.Close() })
	}
	srv.OnShutdown("task store", taskStore.Shutdown)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// healthChecker converts a possibly-nil Redis client to the health
// check interface. A typed nil inside a non-nil interface would make
// the readiness probe panic.
func healthChecker(r *cache.Redis) handler.HealthChecker {
	if r == nil {
		return nil
	}
	return r
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// routerDeps bundles everything the router needs.
type routerDeps struct {
	base     *handler.Handler
	health   *handler.HealthHandler
	auth     *handler.AuthHandler
	projects *handler.ProjectHandler
	seo      *handler.SEOHandler
	tasks    *handler.TaskHandler
	stats    *handler.StatsHandler
	issuer   *authpkg.TokenIssuer
	redis    *cache.Redis
	cfg      *config.Config
	logger   *slog.Logger
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(d routerDeps) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.logger))
	r.Use(middleware.Recoverer(d.logger))
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment:      d.cfg.IsDevelopment(),
		MaxRequestBodySize: d.cfg.MaxRequestBodySize,
	}))
	r.Use(middleware.MaxBodySize(d.cfg.MaxRequestBodySize))

	if origins := d.cfg.GetCORSAllowedOrigins(); len(origins) > 0 {
		corsCfg := middleware.DefaultCORSConfig()
		corsCfg.AllowedOrigins = origins
		r.Use(middleware.CORS(corsCfg))
	}

	// Health endpoints (no auth required)
	r.Get("/healthz", d.health.Healthz)
	r.Get("/readyz", d.health.Readyz)

	// Root info endpoint
	r.Get("/", d.base.Info)

	// Registration and login
	r.Post("/auth/register", d.auth.Register)
	r.Post("/auth/login", d.auth.Login)

	rateLimitCfg := middleware.RateLimitConfig{
		Logger:  d.logger,
		Redis:   d.redis,
		Enabled: d.cfg.RateLimitEnabled && d.redis != nil,
		RPS:     d.cfg.RateLimitRPS,
		Burst:   d.cfg.RateLimitBurst,
	}

	// API v1 routes (require authentication)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(d.issuer, d.logger))
		r.Use(middleware.RateLimit(rateLimitCfg))

		r.Route("/seo", func(r chi.Router) {
			r.Post("/analyze", d.seo.Analyze)
			r.Post("/brief", d.seo.Brief)
			r.Post("/article", d.seo.Article)
			r.Post("/bulk", d.seo.Bulk)
			r.Post("/calendar", d.seo.Calendar)
			r.Get("/history/{kind}", d.seo.History)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Post("/", d.projects.Create)
			r.Get("/", d.projects.List)
			r.Get("/{id}", d.projects.Get)
			r.Patch("/{id}", d.projects.Update)
			r.Delete("/{id}", d.projects.Delete)
		})

		r.Get("/tasks/{id}", d.tasks.Get)
		r.Get("/stats", d.stats.Get)
	})

	// 404 and 405 handlers
	r.NotFound(d.base.NotFound)
	r.MethodNotAllowed(d.base.MethodNotAllowed)

	return r
}
