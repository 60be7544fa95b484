package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"youtube-trigger-sidecar/config"
	"youtube-trigger-sidecar/driver"
	"youtube-trigger-sidecar/handler"
	"youtube-trigger-sidecar/repository"
	"youtube-trigger-sidecar/service"
	"youtube-trigger-sidecar/service/scheduler"
)

func main() {
	healthCheck := flag.Bool("health-check", false, "Perform health check and exit")
	runOnce := flag.String("run-once", "", "Evaluate one trigger cycle and exit (new_videos or new_comments)")
	flag.Parse()

	// Setup structured logging
	logLevel := os.Getenv("LOG_LEVEL")
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if *healthCheck {
		performHealthCheck()
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("YouTube trigger sidecar starting",
		"service", cfg.ServiceName,
		"video_channels", len(cfg.VideoTrigger.ChannelIDs),
		"comment_videos", len(cfg.CommentTrigger.VideoIDs))

	if err := run(cfg, *runOnce, logger); err != nil {
		logger.Error("Sidecar failed", "error", err)
		os.Exit(1)
	}
}

func performHealthCheck() {
	// Simple liveness probe for the container runtime
	fmt.Println("OK")
	os.Exit(0)
}

func run(cfg *config.Config, runOnce string, logger *slog.Logger) error {
	ctx := context.Background()

	// Token storage backend
	var tokenRepo repository.OAuth2TokenRepository
	if cfg.Kubernetes.InCluster {
		k8sRepo, err := repository.NewKubernetesSecretRepository(
			cfg.Kubernetes.Namespace, cfg.Kubernetes.TokenSecretName, logger)
		if err != nil {
			return fmt.Errorf("failed to create Kubernetes token repository: %w", err)
		}
		tokenRepo = k8sRepo
	} else {
		tokenRepo = repository.NewEnvVarTokenRepository(logger)
	}

	// OAuth2 token management
	oauth2Client := driver.NewOAuth2Client(
		cfg.OAuth2.ClientID, cfg.OAuth2.ClientSecret, cfg.OAuth2.TokenURL,
		cfg.ApplicationName, logger)

	tokenService := service.NewTokenService(tokenRepo, oauth2Client, cfg.OAuth2.RefreshBuffer, logger)
	if cfg.OAuth2.HasServiceAccount() {
		tokenService.UseServiceAccount(service.ServiceAccountCredentials{
			Email:         cfg.OAuth2.ServiceAccountEmail,
			PrivateKeyPEM: cfg.OAuth2.ServiceAccountPrivateKey,
			Scopes:        cfg.OAuth2.ServiceAccountScopes,
		})
	}
	if err := tokenService.Initialize(ctx); err != nil {
		return fmt.Errorf("token initialization failed: %w", err)
	}

	// Event sink: Postgres-backed when a DSN is configured, log-only otherwise
	var sink service.EventSink = service.NewLogEventSink(logger)
	if cfg.EventStore.DSN != "" {
		db, err := repository.OpenEventStore(cfg.EventStore.DSN)
		if err != nil {
			return fmt.Errorf("failed to open event store: %w", err)
		}
		defer db.Close()
		sink = service.NewRepositoryEventSink(repository.NewPostgreSQLEventRepository(db, logger), logger)
	}

	youtubeClient := driver.NewYouTubeClient(cfg.YouTube.BaseURL, cfg.ApplicationName, logger)

	// Register the enabled triggers
	var triggers []scheduler.Trigger
	if len(cfg.VideoTrigger.ChannelIDs) > 0 {
		triggers = append(triggers, service.NewVideoTriggerService(
			youtubeClient, tokenService, sink,
			service.VideoTriggerConfig{
				ChannelIDs:   cfg.VideoTrigger.ChannelIDs,
				PollInterval: cfg.VideoTrigger.PollInterval,
				MaxResults:   cfg.VideoTrigger.MaxResults,
			}, logger))
	}
	if len(cfg.CommentTrigger.VideoIDs) > 0 {
		triggers = append(triggers, service.NewCommentTriggerService(
			youtubeClient, tokenService, sink,
			service.CommentTriggerConfig{
				VideoIDs:     cfg.CommentTrigger.VideoIDs,
				PollInterval: cfg.CommentTrigger.PollInterval,
				MaxResults:   cfg.CommentTrigger.MaxResults,
				Order:        cfg.CommentTrigger.Order,
			}, logger))
	}

	sched := scheduler.NewScheduler(triggers, scheduler.DefaultConfig(), logger)

	// Single-cycle mode for CronJob-style deployments
	if runOnce != "" {
		cycleCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
		defer cancel()

		event, err := sched.RunOnce(cycleCtx, runOnce)
		if err != nil {
			return fmt.Errorf("trigger cycle failed: %w", err)
		}
		if event == nil {
			logger.Info("Cycle completed with no new items", "trigger", runOnce)
		}
		return nil
	}

	sched.Start()
	defer sched.Stop()

	// Admin API
	adminHandler := handler.NewAdminAPIHandler(sched, tokenService, logger)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AdminPort),
		Handler:           adminHandler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Admin API listening", "port", cfg.AdminPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Received shutdown signal", "signal", sig.String())
	case err := <-errChan:
		logger.Error("Admin API server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Admin API shutdown failed", "error", err)
	}

	return nil
}
