package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/sendnow-backend-go/internal/api"
	"github.com/jengzang/sendnow-backend-go/internal/config"
	"github.com/jengzang/sendnow-backend-go/internal/content"
	"github.com/jengzang/sendnow-backend-go/internal/database"
	"github.com/jengzang/sendnow-backend-go/internal/middleware"
	"github.com/jengzang/sendnow-backend-go/internal/repository"
	"github.com/jengzang/sendnow-backend-go/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	ln, err := net.Listen("tcp", cfg.Server.Port)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Server.Port, err)
	}
	return serve(ctx, ln, app.handler, cfg.GetShutdownTimeout(), logger)
}

// app is the wired HTTP application and the resources it owns
type app struct {
	handler http.Handler
	limiter *middleware.RateLimiter
	db      *sql.DB
}

func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	site := content.Default()
	if err := site.Validate(); err != nil {
		return nil, fmt.Errorf("invalid site content: %w", err)
	}
	intensity, err := cfg.IntensityScale()
	if err != nil {
		return nil, err
	}

	a := &app{}
	sinks := []service.Sink{service.NewLogSink(logger.Named("submission"))}
	if cfg.Journal.Enabled {
		a.db, err = database.Open(ctx, database.Config{Path: cfg.Journal.Path}, logger.Named("database"))
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, service.NewJournalSink(repository.NewSubmissionRepository(a.db)))
	}

	a.limiter = middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimitWindow())

	gin.SetMode(cfg.Server.Mode)
	a.handler = api.SetupRouter(api.Dependencies{
		Logger:         logger,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Limiter:        a.limiter,
		Submissions:    service.NewSubmissionService(logger.Named("submission"), sinks...),
		Charts:         service.NewChartService(site, cfg.Charts.Markers, intensity, logger.Named("chart")),
		Content:        service.NewContentService(site),
	})
	return a, nil
}

// Close stops the rate limiter and closes the journal
func (a *app) Close() error {
	a.limiter.Stop()
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// serve runs the server on ln until ctx is cancelled, then shuts it down
// within timeout.
func serve(ctx context.Context, ln net.Listener, handler http.Handler, timeout time.Duration, logger *zap.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", zap.Duration("timeout", timeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	})

	return g.Wait()
}
