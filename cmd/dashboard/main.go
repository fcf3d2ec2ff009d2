package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"attendance-dashboard/internal/config"
	"attendance-dashboard/internal/service/dashboard"
	generate_excel "attendance-dashboard/internal/service/generate-excel"
	"attendance-dashboard/internal/storage/filesystem"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustConfig()

	log := setupLogger(cfg.Env, cfg.ErrorLogPath)

	storage, err := filesystem.New(cfg.TemplatePath)
	if err != nil {
		log.Error("failed to init template storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	genService := generate_excel.NewGenerateService()

	if cfg.BootstrapTemplate {
		created, err := storage.EnsureTemplate(genService.DashboardLayout)
		if err != nil {
			log.Error("failed to bootstrap template", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if created {
			log.Info("template created", slog.String("path", storage.TemplatePath()))
		}
	}

	if _, err := os.Stat(storage.TemplatePath()); err != nil {
		// not fatal, requests answer with "Template file not found"
		log.Warn("template file is not available", slog.String("path", storage.TemplatePath()), slog.String("error", err.Error()))
	}

	dashboardService := dashboard.NewService(storage)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      routes(*cfg, log, dashboardService, genService),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log, srv, cfg.ShutdownTimeout); err != nil {
		log.Error("server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped")
}

// run serves until ctx is done, then shuts the server down gracefully.
func run(ctx context.Context, log *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server started", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// dualHandler sends every record to stdout and copies error records into a separate sink.
type dualHandler struct {
	stdout slog.Handler
	errors slog.Handler
}

func (h *dualHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.stdout.Enabled(ctx, lvl) || h.errors.Enabled(ctx, lvl)
}

func (h *dualHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.stdout.Enabled(ctx, r.Level) {
		if err := h.stdout.Handle(ctx, r); err != nil {
			return err
		}
	}

	if r.Level < slog.LevelError || !h.errors.Enabled(ctx, r.Level) {
		return nil
	}

	return h.errors.Handle(ctx, r.Clone())
}

func (h *dualHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dualHandler{stdout: h.stdout.WithAttrs(attrs), errors: h.errors.WithAttrs(attrs)}
}

func (h *dualHandler) WithGroup(name string) slog.Handler {
	return &dualHandler{stdout: h.stdout.WithGroup(name), errors: h.errors.WithGroup(name)}
}

// setupLogger builds the process logger for env. Output goes to stdout as JSON on dev
// and as text elsewhere; prod drops debug records.
//
// When errorLogPath is empty, or the file cannot be opened, the logger writes to stdout
// only: losing the error file must not keep the dashboard from starting.
func setupLogger(env, errorLogPath string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if env == envProd {
		opts.Level = slog.LevelInfo
	}

	var stdout slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if env == envDev {
		stdout = slog.NewJSONHandler(os.Stdout, opts)
	}

	if errorLogPath == "" {
		return slog.New(stdout)
	}

	errorFile, err := os.OpenFile(errorLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.New(stdout).Warn("error log disabled", slog.String("path", errorLogPath), slog.String("error", err.Error()))
		return slog.New(stdout)
	}

	return slog.New(&dualHandler{
		stdout: stdout,
		errors: slog.NewTextHandler(errorFile, &slog.HandlerOptions{Level: slog.LevelError}),
	})
}
