package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"wellness-engine/catalog"
	"wellness-engine/config"
	httpLayer "wellness-engine/http"
	"wellness-engine/logger"
	"wellness-engine/repository"
	"wellness-engine/service"
)

func main() {
	// .env carries the optional OPENAI_API_KEY; absence is fine.
	_ = godotenv.Load()

	cfg := loadConfig()
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		logger.Error().Err(err).Msg("invalid log config, keeping defaults")
	}

	cat, err := catalog.LoadDir(envOr("CATALOG_DIR", "catalog_data"))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load content catalog")
		os.Exit(1)
	}

	userRepo := repository.NewUserRepositoryMemory()
	repository.SeedDemoUsers(userRepo, time.Now())

	var cache repository.CacheRepository
	if cfg.Cache.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.Cache.RedisAddr)
		logger.Info().Str("addr", cfg.Cache.RedisAddr).Msg("using redis cache")
	} else {
		cache = repository.NewMemoryCache()
	}

	reviewQueue := repository.NewReviewQueueMemory()

	personaService := service.NewPersonaService(userRepo)
	contentService := service.NewContentService(cat, service.NewEligibilityService())
	aiService := service.NewAIService(cfg.AI.Enabled, cfg.AI.Model, cfg.AI.Timeout())

	recommendationService := service.NewRecommendationService(
		userRepo, cache, reviewQueue, personaService, contentService, aiService, cfg.Cache.TTL(),
	)
	recommendationService.SetDefaultBounds(
		cfg.Selection.EducationMin, cfg.Selection.EducationMax, cfg.Selection.OffersMax,
	)

	evaluationService := service.NewEvaluationService(userRepo, recommendationService)

	personaHandler := httpLayer.NewPersonaHandler(recommendationService)
	recommendationHandler := httpLayer.NewRecommendationHandler(recommendationService)
	reviewHandler := httpLayer.NewReviewHandler(reviewQueue, evaluationService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.RefillWindow())
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/persona/assign",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(personaHandler.AssignPersona),
		),
	)

	mux.Handle(
		"/recommendations",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(recommendationHandler.GenerateRecommendations),
		),
	)

	mux.Handle(
		"/review/queue",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(reviewHandler.ListQueue),
		),
	)

	mux.Handle(
		"/evaluation/report",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(reviewHandler.EvaluationReport),
		),
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
		IdleTimeout:  cfg.Server.IdleTimeout(),
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Server.Addr).Bool("ai_enabled", aiService.Enabled()).Msg("wellness engine listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error().Err(err).Msg("error starting server")
		return
	case <-quit:
		logger.Info().Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	logger.Info().Msg("server exited")
}

func loadConfig() *config.Config {
	path := envOr("CONFIG_PATH", "wellness-engine.yaml")
	cfg, err := config.Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn().Err(err).Str("path", path).Msg("config unreadable, using defaults")
		}
		return config.Default()
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
