// Package main is the entry point for the ledger service. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/go-command-invoker/internal/adapters/clients/notifier"
	adapthttp "github.com/jsamuelsen11/go-command-invoker/internal/adapters/http"
	"github.com/jsamuelsen11/go-command-invoker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-command-invoker/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-command-invoker/internal/adapters/store"
	"github.com/jsamuelsen11/go-command-invoker/internal/app"
	"github.com/jsamuelsen11/go-command-invoker/internal/platform/config"
	"github.com/jsamuelsen11/go-command-invoker/internal/platform/health"
	"github.com/jsamuelsen11/go-command-invoker/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-command-invoker/internal/platform/logging"
	"github.com/jsamuelsen11/go-command-invoker/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-command-invoker/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		closeStore(injector, logger)
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests, then release the store.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	closeStore(injector, logger)

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// closeStore closes the ledger store if the graph got far enough to open it.
func closeStore(injector do.Injector, logger *slog.Logger) {
	st, err := do.Invoke[store.Store](injector)
	if err != nil {
		return
	}
	if err := st.Close(); err != nil {
		logger.Error("store close error", slog.Any("error", err))
	}
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (store.Store, error) {
		return store.Open(ctx, cfg.Store)
	})

	// A disabled notifier resolves to a nil client.
	do.Provide(injector, func(i do.Injector) (*notifier.Client, error) {
		if !cfg.Notifier.Enabled {
			return nil, nil
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&cfg.Notifier, notifier.ServiceName, metrics, logger)
		return notifier.New(client, logger, notifier.WithSigningSecret(cfg.Notifier.SigningSecret)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		st, err := do.Invoke[store.Store](i)
		if err != nil {
			return nil, err
		}
		registry := health.New()
		registry.Register(st)
		if n := do.MustInvoke[*notifier.Client](i); n != nil {
			registry.Register(n)
		}
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TransferService, error) {
		st, err := do.Invoke[store.Store](i)
		if err != nil {
			return nil, err
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		// Keep the port nil rather than holding a nil *notifier.Client so
		// that the Notify step sees webhooks as disabled.
		var n ports.Notifier
		if c := do.MustInvoke[*notifier.Client](i); c != nil {
			n = c
		}
		return app.NewTransferService(st, n, cfg.Transfer.RequestTimeout, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.AccountHandler, error) {
		svc := do.MustInvoke[ports.TransferService](i)
		return handlers.NewAccountHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TransferHandler, error) {
		svc := do.MustInvoke[ports.TransferService](i)
		return handlers.NewTransferHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		accountH := do.MustInvoke[*handlers.AccountHandler](i)
		transferH := do.MustInvoke[*handlers.TransferHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(accountH, transferH, healthH,
			middleware.Stack(logger, metrics, cfg.Server.WriteTimeout)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
