package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/copaops/copa-system/config"
	"github.com/copaops/copa-system/db"
	"github.com/copaops/copa-system/handlers"
	"github.com/copaops/copa-system/repositories"
	api "github.com/copaops/copa-system/routes"
	"github.com/copaops/copa-system/services"
	"github.com/copaops/copa-system/storage"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	cloudflareUploader, err := storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	})
	if err != nil {
		logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Cloudflare R2 uploader initialized")

	userRepo := repositories.NewPostgresUserRepository(dbConn)
	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	phaseRepo := repositories.NewPostgresPhaseRepository(dbConn)
	groupRepo := repositories.NewPostgresGroupRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	goalRepo := repositories.NewPostgresGoalRepository(dbConn)
	playerStatsRepo := repositories.NewPostgresPlayerStatsRepository(dbConn)
	teamStatsRepo := repositories.NewPostgresTeamStatsRepository(dbConn)
	logger.Info("repositories initialized")

	authService := services.NewAuthService(userRepo, cfg.JWTSecretKey)
	tournamentService := services.NewTournamentService(tournamentRepo, cloudflareUploader)
	phaseService := services.NewPhaseService(phaseRepo)
	groupService := services.NewGroupService(groupRepo, phaseRepo, matchRepo)
	teamService := services.NewTeamService(teamRepo, cloudflareUploader)
	playerService := services.NewPlayerService(playerRepo)
	matchService := services.NewMatchService(matchRepo)
	goalService := services.NewGoalService(goalRepo, matchRepo)
	standingsService := services.NewStandingsService(groupRepo, matchRepo, cloudflareUploader)
	playerStatsService := services.NewPlayerStatsService(playerStatsRepo, matchRepo, goalRepo)
	teamStatsService := services.NewTeamStatsService(teamStatsRepo, matchRepo)
	logger.Info("services initialized")

	authHandler := handlers.NewAuthHandler(authService)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService)
	phaseHandler := handlers.NewPhaseHandler(phaseService)
	groupHandler := handlers.NewGroupHandler(groupService, matchService)
	teamHandler := handlers.NewTeamHandler(teamService, playerService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	matchHandler := handlers.NewMatchHandler(matchService, goalService)
	goalHandler := handlers.NewGoalHandler(goalService)
	standingsHandler := handlers.NewStandingsHandler(standingsService, groupService)
	playerStatsHandler := handlers.NewPlayerStatsHandler(playerStatsService, playerService, tournamentService)
	teamStatsHandler := handlers.NewTeamStatsHandler(teamStatsService, teamService, tournamentService)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		authHandler,
		tournamentHandler,
		phaseHandler,
		groupHandler,
		teamHandler,
		playerHandler,
		matchHandler,
		goalHandler,
		standingsHandler,
		playerStatsHandler,
		teamStatsHandler,
		[]byte(cfg.JWTSecretKey),
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		} else {
			logger.Info("server stopped gracefully")
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}
