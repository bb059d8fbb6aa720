package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/profile"
	"github.com/Zachkp/portfolio/internal/projects"
	"github.com/Zachkp/portfolio/internal/render"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/telemetry"
	"github.com/Zachkp/portfolio/internal/viewport"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "portfolio: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, logCloser, err := logging.New(level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Init(ctx, cfg.OTel, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("shutting down tracing", "error", err)
		}
	}()

	events, err := store.Open(cfg.Site.DBPath)
	if err != nil {
		return err
	}
	defer events.Close()

	renderer, err := render.New()
	if err != nil {
		return err
	}

	site := profile.Default().WithHandle(cfg.GitHub.User)
	a := &app{
		cfg:      cfg,
		site:     site,
		renderer: renderer,
		events:   events,
		viewport: viewport.Config{
			ScrollThreshold: cfg.Site.ScrollThreshold,
			RevealRatio:     cfg.Site.RevealRatio,
		},
		logger: logger,
	}
	a.loader = projects.NewLoader(
		projects.NewGitHubClient(cfg.GitHub.APIURL),
		projects.FromCuratedList(site.FeaturedProjects()),
		a.accountURL,
		logger,
	)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(logger))
	r.LoadHTMLGlob(cfg.Site.TemplatesGlob)
	r.Static("/static", cfg.Site.StaticDir)
	a.setupRoutes(r)

	if cfg.Admin.Enabled() {
		if err := a.initAdmin(); err != nil {
			return err
		}
		a.setupAdminRoutes(r)
		go a.cleanupOldLoadEvents(context.WithoutCancel(ctx))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("portfolio listening", "addr", srv.Addr, "handle", site.Profile().GitHub)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
