package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/pflag"

	httpadapter "github.com/randomtoy/fortune-go/internal/adapters/http"
	"github.com/randomtoy/fortune-go/internal/adapters/llm/gemini"
	"github.com/randomtoy/fortune-go/internal/adapters/page"
	"github.com/randomtoy/fortune-go/internal/app"
	"github.com/randomtoy/fortune-go/internal/config"
)

type serveOptions struct {
	envFile  string
	host     string
	port     int
	basePath string
}

// loadEnvFile reads path into the process environment without overriding
// variables that are already set.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// applyFlags overrides cfg with flags the user set explicitly.
func applyFlags(cfg config.Config, flags *pflag.FlagSet, opts serveOptions) (config.Config, error) {
	if flags.Changed("host") {
		cfg.Host = opts.host
	}
	if flags.Changed("port") {
		if opts.port < 1 || opts.port > 65535 {
			return config.Config{}, fmt.Errorf("invalid --port %d: must be between 1 and 65535", opts.port)
		}
		cfg.Port = opts.port
	}
	if flags.Changed("base-path") {
		cfg.BasePath = config.NormalizeBasePath(opts.basePath)
	}
	return cfg, nil
}

func newServer(cfg config.Config, logger *slog.Logger) *echo.Echo {
	// No Timeout unless LLM_TIMEOUT is set.
	llmClient := gemini.NewClient(
		&http.Client{Timeout: cfg.LLMTimeout},
		cfg.APIKey,
		gemini.DefaultEndpoint,
		logger,
	)

	svc := app.NewFortuneService(cfg, llmClient, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc, page.NewEmbeddedStore(), cfg.BasePath)
	handler.Register(e)

	return e
}

func runServe(ctx context.Context, flags *pflag.FlagSet, opts serveOptions) error {
	if err := loadEnvFile(opts.envFile); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg, err = applyFlags(cfg, flags, opts)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if !cfg.APIKeyConfigured() {
		logger.Warn("GEMINI_API_KEY is not set; fortune requests will fail until it is configured")
	}

	e := newServer(cfg, logger)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr(), "url", "http://"+cfg.HTTPAddr()+cfg.BasePath+"/")
		if err := e.Start(cfg.HTTPAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	return nil
}
