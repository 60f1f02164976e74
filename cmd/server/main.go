package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scamcheck/backend/internal/auth"
	"scamcheck/backend/internal/cache"
	"scamcheck/backend/internal/config"
	"scamcheck/backend/internal/db"
	"scamcheck/backend/internal/handlers"
	"scamcheck/backend/internal/history"
	"scamcheck/backend/internal/logger"
	"scamcheck/backend/internal/middleware"
	"scamcheck/backend/internal/realtime"
	"scamcheck/backend/internal/router"
	"scamcheck/backend/internal/scam"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	checker := scam.NewChecker(scam.Options{
		Provider:     cfg.Provider,
		Model:        cfg.Model,
		Temperature:  cfg.Temperature,
		ForceOffline: cfg.OfflineMode,
		Logger:       &log,
	})

	var store *scam.Store
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		database, err := db.New(ctx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer database.Close()
		store = scam.NewStore(database)

		ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
		err = store.EnsureSchema(ctx)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to prepare telemetry schema")
		}
	}

	var verdicts *cache.Cache
	if cfg.RedisURL != "" {
		c, err := cache.New(cfg.RedisURL, 15*time.Minute)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer func() { _ = c.Close() }()
		verdicts = c
	}

	var authService *auth.Service
	if cfg.JWTSecret != "" {
		service, err := auth.NewService(cfg.JWTSecret, 24*time.Hour)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init auth")
		}
		authService = service
	}

	hub := realtime.NewHub()
	service := scam.NewService(checker, store, verdicts, hub, history.New(100))

	monitor := &scam.HealthMonitor{Checker: checker, Store: store, Log: log}
	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	go monitor.Run(monitorCtx)

	api := handlers.NewAPI(service, authService, hub, monitor, cfg.AccessKeyHash, log)
	limiter := middleware.NewRateLimiter(60, time.Minute)
	rt := router.New(api, limiter, cfg.FrontendOrigin, hub)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      rt,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
