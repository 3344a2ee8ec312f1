package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/englishk12/backend/internal/api"
	"github.com/englishk12/backend/internal/auth"
	"github.com/englishk12/backend/internal/author"
	"github.com/englishk12/backend/internal/infrastructure/config"
	"github.com/englishk12/backend/internal/lib/slogcustom"
	"github.com/englishk12/backend/internal/service"
	"github.com/englishk12/backend/internal/store"

	_ "github.com/englishk12/backend/docs" // generated swagger docs
)

// @title           English K12 Quiz API
// @version         1.0
// @description     English practice for grades 5-12: teachers manage questions and reports, students take randomized tests and review mistakes.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

func main() {
	envFile := pflag.String("env-file", "", "path to a .env file (default: ./.env if present)")
	addr := pflag.String("addr", "", "listen address, overrides SERVER_ADDRESS")
	pflag.Parse()

	cfg := config.Load(*envFile)
	if *addr != "" {
		cfg.ServerAddress = *addr
	}

	logger := setupLogger(cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(logger)

	// ── Dependencies ────────────────────────────────────────────────
	openCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := store.Open(openCtx, store.Driver(cfg.DBDriver), cfg.DBDSN)
	cancel()
	if err != nil {
		logger.Error("failed to open database", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	llm := author.NewLLMAuthor(cfg.LLMURL, cfg.LLMModel, cfg.LLMAPIKey, cfg.LLMTimeout)

	handler := api.NewHandler(api.Services{
		Gate:      auth.NewGate(db),
		Issuer:    auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL),
		Questions: service.NewQuestionBank(db, logger),
		Testing:   service.NewTesting(db, logger),
		Review:    service.NewReview(db),
		Settings:  service.NewSettings(db),
		Authoring: service.NewAuthoring(llm, logger),
		Transfer:  service.NewTransfer(db, logger),
	}, logger)

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           api.NewRouter(handler, logger, cfg.CORSOrigins),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// question drafting waits on the LLM
		WriteTimeout: cfg.LLMTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server",
		"address", cfg.ServerAddress,
		"db_driver", cfg.DBDriver,
		"llm_url", cfg.LLMURL,
		"llm_model", cfg.LLMModel,
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

// setupLogger returns a JSON logger, or the colored one for local runs.
func setupLogger(format string, level slog.Level) *slog.Logger {
	if format == "pretty" {
		return slog.New(slogcustom.NewPrettyHandler(os.Stdout, level))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
