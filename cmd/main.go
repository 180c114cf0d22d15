package main

import (
	"context"
	"expvar"
	"log"
	"runtime"

	"github.com/dkarlsen/pulse/internal/infrastructure/configs"
	"github.com/dkarlsen/pulse/internal/infrastructure/metrics"
	"github.com/dkarlsen/pulse/internal/infrastructure/sysinfo"
	"github.com/dkarlsen/pulse/internal/infrastructure/tracing"
	"github.com/dkarlsen/pulse/internal/presentation/api"
	"github.com/dkarlsen/pulse/internal/presentation/handler/envdump"
	"github.com/dkarlsen/pulse/internal/presentation/handler/health"
	"github.com/dkarlsen/pulse/internal/presentation/handler/status"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	serviceName = "pulse-api"
)

func main() {
	tracerCfg := tracing.NewDefaultConfig(serviceName)

	sh, err := tracing.InitTracer(tracerCfg)
	if err != nil {
		log.Fatalf("Failed to initialize the tracer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer sh(ctx)

	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	configPath := configs.DetermineConfigPath()
	cfg, err := configs.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	collector := sysinfo.NewCollector()
	instanceID := uuid.NewString()

	statusHandler := status.NewHandler(*cfg, instanceID)
	healthHandler := health.NewHandler(*cfg, collector)
	envHandler := envdump.NewHandler()

	m := metrics.New()

	app := api.NewApplication(*cfg, *statusHandler, *healthHandler, *envHandler, logger, m)

	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.Mount()
	logger.Fatal(app.Run(mux))
}
