package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"blueprint-ai/backend/internal/api"
	"blueprint-ai/backend/internal/config"
	"blueprint-ai/backend/internal/database"
	"blueprint-ai/backend/internal/engine"
	apperrors "blueprint-ai/backend/internal/errors"
	"blueprint-ai/backend/internal/llm"
	"blueprint-ai/backend/internal/model"
	"blueprint-ai/backend/internal/repository"
	"blueprint-ai/backend/internal/service"
)

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		return 1
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()
	slog.Info("Successfully connected to SQLite database.")

	repo := repository.NewSQLiteRepository(db)

	// A missing AI configuration is not fatal: the server still serves
	// session state, export/import and schema summaries. Generation calls
	// fail with a clear "not configured" error until the key is provided.
	provider, err := llm.NewClient(llm.Config{
		BaseURL:       cfg.AIBaseURL,
		APIKey:        cfg.AIAPIKey,
		Timeout:       time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		RetryAttempts: cfg.RetryAttempts,
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotConfigured) {
			slog.Error("Failed to create AI client", "error", err)
			return 1
		}
		slog.Warn("AI provider is not configured; generation endpoints will be unavailable", "error", err)
		provider = nil
	}

	composer := engine.NewComposer(provider, cfg.InitialModel, cfg.InitialMaxTokens)
	refiner := engine.NewRefiner(provider, cfg.RefineModel, cfg.RefineMaxTokens)
	validator := engine.NewValidator(provider, cfg.ValidationModel, cfg.ValidationMaxTokens)

	defaults := model.TechStack{
		Framework:        cfg.DefaultFramework,
		ComponentLibrary: cfg.DefaultComponentLibrary,
		AppType:          cfg.DefaultAppType,
		Temperature:      cfg.DefaultTemperature,
	}

	sessionService := service.NewSessionService(repo, composer, refiner, validator, defaults)
	sessionService.Restore(context.Background())

	schemaService, err := service.NewSchemaService(cfg.SchemaCacheSize)
	if err != nil {
		slog.Error("Failed to create schema service", "error", err)
		return 1
	}

	sessionHandler := api.NewSessionHandler(sessionService)
	schemaHandler := api.NewSchemaHandler(schemaService)
	router := api.NewRouter(sessionHandler, schemaHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for streaming endpoints
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("Starting server", "port", cfg.AppPort)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
