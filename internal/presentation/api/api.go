package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dkarlsen/pulse/internal/infrastructure/configs"
	"github.com/dkarlsen/pulse/internal/infrastructure/json"
	"github.com/dkarlsen/pulse/internal/infrastructure/metrics"
	envHandler "github.com/dkarlsen/pulse/internal/presentation/handler/envdump"
	healthHandler "github.com/dkarlsen/pulse/internal/presentation/handler/health"
	statusHandler "github.com/dkarlsen/pulse/internal/presentation/handler/status"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

type Application struct {
	config        configs.Config
	statusHandler statusHandler.Handler
	healthHandler healthHandler.Handler
	envHandler    envHandler.Handler
	logger        *zap.SugaredLogger
	metrics       *metrics.Metrics
}

func NewApplication(
	config configs.Config,
	statusHandler statusHandler.Handler,
	healthHandler healthHandler.Handler,
	envHandler envHandler.Handler,
	logger *zap.SugaredLogger,
	metrics *metrics.Metrics,
) *Application {
	return &Application{
		config:        config,
		statusHandler: statusHandler,
		healthHandler: healthHandler,
		envHandler:    envHandler,
		logger:        logger,
		metrics:       metrics,
	}
}

func (app *Application) Mount() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(app.loggerMiddleware)
	r.Use(app.metricsMiddleware)
	r.Use(app.recovererMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", app.statusHandler.GetRoot)
	r.Get("/health", app.healthHandler.GetHealth)
	r.Get("/info", app.statusHandler.GetInfo)
	r.Get("/env", app.envHandler.GetEnv)
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	// Unmatched paths and methods both fall through to the same
	// structured 404 body.
	r.NotFound(app.notFoundHandler)
	r.MethodNotAllowed(app.notFoundHandler)

	return otelhttp.NewHandler(r, "http.server")
}

func (app *Application) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	json.WriteNotFound(w, r.URL.Path)
}

func (app *Application) Run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", app.config.HTTP.Host, app.config.HTTP.Port),
		Handler:      mux,
		WriteTimeout: app.config.HTTP.WriteTimeout,
		ReadTimeout:  app.config.HTTP.ReadTimeout,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", srv.Addr)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", srv.Addr)

	return nil
}
