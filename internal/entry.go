// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/billabong/internal/api"
	"github.com/starford/billabong/internal/build"
	"github.com/starford/billabong/internal/content"
	"github.com/starford/billabong/internal/hydrate"
	"github.com/starford/billabong/internal/index"
	"github.com/starford/billabong/internal/mail"
	"github.com/starford/billabong/internal/mcpserver"
	"github.com/starford/billabong/internal/siteservice"
	"github.com/starford/billabong/internal/sse"
	"github.com/starford/billabong/internal/storage"
)

var errConfigRequired = errors.New("config is required")

func newLogger(cfg *Config, w io.Writer) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// siteRuntime holds the collaborators shared by serve and mcp.
type siteRuntime struct {
	db  *index.DB
	svc *siteservice.Service
}

func (rt *siteRuntime) Close() error { return rt.db.Close() }

func openRuntime(cfg *Config, logger *slog.Logger) (*siteRuntime, error) {
	src, err := storage.NewFS(cfg.Site.Root)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	db, err := index.Open(cfg.SQLite.Path)
	if err != nil {
		return nil, fmt.Errorf("init index: %w", err)
	}
	svc := siteservice.New(src, content.NewHolder(nil), db, hydrate.New(nil, logger), logger)
	return &siteRuntime{db: db, svc: svc}, nil
}

// initMail resolves the mail transport once the site config carries the
// account ids. Later calls are no-ops once it is ready.
func initMail(ready *mail.Readiness, cfg *Config, svc *siteservice.Service, logger *slog.Logger) {
	if ready.Ready() {
		return
	}
	st, err := svc.Store()
	if err != nil {
		return
	}
	if mail.Init(ready, cfg.Mail.Endpoint, cfg.Mail.PrivateKey, st.Config.EmailJS()) {
		logger.Info("mail transport ready", slog.String("endpoint", cfg.Mail.Endpoint))
		return
	}
	logger.Warn("mail transport not configured: emailjs ids missing in config.json")
}

// Run starts the HTTP server with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config

	logger := newLogger(cfg, os.Stdout)
	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("site_root", cfg.Site.Root),
		slog.String("sqlite_path", cfg.SQLite.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	rt, err := openRuntime(cfg, logger)
	if err != nil {
		return err
	}
	defer rt.Close()

	// The server starts even without content; /health/ready reports it.
	if _, err := rt.svc.Reload(ctx); err != nil {
		logger.Warn("initial content load failed", slog.String("error", err.Error()))
	}

	ready := mail.NewReadiness()
	initMail(ready, cfg, rt.svc, logger)
	dispatcher := mail.NewDispatcher(ready, mail.Options{
		ReadyTimeout: cfg.Mail.ReadyTimeout,
		Recipient:    cfg.Mail.Recipient,
		Log:          rt.db,
		Logger:       logger,
	})

	broker := sse.NewBroker(cfg.App.ReloadThrottle)
	defer broker.Close()
	if st, err := rt.svc.Store(); err == nil {
		broker.SetCurrent(st.Fingerprint)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints.
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !rt.svc.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"content unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Mount("/", api.NewRouter(api.Options{
		Service:     rt.svc,
		Mail:        dispatcher,
		Consent:     cfg.Consent.Jar(),
		Events:      broker,
		CORSOrigins: cfg.App.CORSOrigins,
		AuthEnabled: cfg.Auth.AuthEnabled(),
		Token:       cfg.Auth.Token,
		LiveReload:  cfg.App.LiveReload,
		AutoLocale:  cfg.Site.AutoLocale,
		Logger:      logger,
	}))

	httpServer := &http.Server{
		Addr:              cfg.App.HTTP.Address(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Reload content on file changes and tell open pages about it.
	if cfg.Site.Watch {
		g.Go(func() error {
			err := content.Watch(gCtx, cfg.Site.Root, cfg.Site.WatchDebounce, logger, func(paths []string) {
				if _, err := rt.svc.Reload(gCtx); err != nil {
					broker.Publish(sse.Event{Type: sse.EventContentFailed, Data: map[string]any{
						"error": err.Error(),
						"paths": paths,
					}})
					return
				}
				initMail(ready, cfg, rt.svc, logger)
				if st, err := rt.svc.Store(); err == nil {
					broker.PublishReload(st.Fingerprint, paths)
				}
			})
			if err != nil {
				logger.Warn("watcher disabled", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}
		return errShutdown
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errShutdown) {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// errShutdown cancels the group so the watcher stops with the server.
var errShutdown = errors.New("shutdown")

// Build renders the site into the output directory.
func Build(ctx context.Context, opts ...Option) (build.Stats, error) {
	app, err := newApplication(opts)
	if err != nil {
		return build.Stats{}, err
	}
	cfg := app.config
	logger := newLogger(cfg, os.Stdout)

	mode := app.buildMode
	if mode == "" {
		mode = cfg.Build.RuntimeMode()
	}
	outDir := app.outputDir
	if outDir == "" {
		outDir = cfg.Build.OutputDir
	}
	if err := checkOutputDir(cfg.Site.Root, outDir); err != nil {
		return build.Stats{}, err
	}

	src, err := storage.NewFS(cfg.Site.Root)
	if err != nil {
		return build.Stats{}, fmt.Errorf("init storage: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return build.Stats{}, fmt.Errorf("create output dir: %w", err)
	}
	out, err := storage.NewFS(outDir)
	if err != nil {
		return build.Stats{}, fmt.Errorf("init output: %w", err)
	}

	logger.Info("Build starting",
		slog.String("site_root", cfg.Site.Root),
		slog.String("output_dir", outDir),
		slog.String("mode", string(mode)))

	b := build.New(src, out, hydrate.New(nil, logger), build.Options{
		Mode:   mode,
		Minify: cfg.Build.Minify,
		Logger: logger,
	})
	return b.Run(ctx)
}

// checkOutputDir refuses output directories inside the site root, which
// the next build would copy into itself.
func checkOutputDir(root, out string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	absOut, err := filepath.Abs(out)
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(absRoot, absOut)
	if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("output dir %s must not be inside the site root %s", out, root)
	}
	return nil
}

// Check loads the content and validates its integrity.
func Check(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config
	logger := newLogger(cfg, os.Stdout)

	src, err := storage.NewFS(cfg.Site.Root)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	st, err := content.Load(ctx, src)
	if err != nil {
		return err
	}
	if err := st.Validate(); err != nil {
		return fmt.Errorf("content check: %w", err)
	}
	logger.Info("Content OK",
		slog.String("fingerprint", st.Fingerprint),
		slog.Int("articles", len(st.Blog.Articles)),
		slog.Int("categories", len(st.Blog.Categories)))
	return nil
}

// ServeMCP runs the MCP server on stdio. Logs go to stderr since stdout
// carries the protocol.
func ServeMCP(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config
	logger := newLogger(cfg, os.Stderr)

	rt, err := openRuntime(cfg, logger)
	if err != nil {
		return err
	}
	defer rt.Close()

	if _, err := rt.svc.Reload(ctx); err != nil {
		return err
	}
	return mcpserver.New(rt.svc).ServeStdio()
}
