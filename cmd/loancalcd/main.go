package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bibbank/loancalc/internal/application/usecase"
	"github.com/bibbank/loancalc/internal/domain/port"
	"github.com/bibbank/loancalc/internal/domain/service"
	"github.com/bibbank/loancalc/internal/infrastructure/config"
	"github.com/bibbank/loancalc/internal/infrastructure/messaging"
	"github.com/bibbank/loancalc/internal/infrastructure/telemetry"
	grpcPresentation "github.com/bibbank/loancalc/internal/presentation/grpc"
	"github.com/bibbank/loancalc/internal/presentation/rest"
	pkgkafka "github.com/bibbank/loancalc/pkg/kafka"
	"github.com/bibbank/loancalc/pkg/observability"
)

func main() {
	if err := run(); err != nil {
		slog.Error("loancalcd exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		ServiceName: cfg.ServiceName,
	})

	logger.Info("starting loancalc",
		"http_port", cfg.HTTP.Port,
		"grpc_port", cfg.GRPC.Port,
		"grpc_tls", cfg.GRPC.TLSEnabled(),
		"kafka", cfg.Kafka.Enabled(),
	)

	// Tracing is optional.
	if cfg.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: cfg.ServiceName,
			Endpoint:    cfg.OTLPEndpoint,
			Insecure:    true,
		})
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer func() {
				flushCtx, flushCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
				defer flushCancel()
				if err := shutdown(flushCtx); err != nil {
					logger.Warn("tracer shutdown", "error", err)
				}
			}()
		}
	}

	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }()

	metrics, err := telemetry.NewMetrics(meterProvider)
	if err != nil {
		return fmt.Errorf("register instruments: %w", err)
	}

	// Event publishing is optional.
	var publisher port.EventPublisher = messaging.NoopPublisher{}
	if cfg.Kafka.Enabled() {
		producer := pkgkafka.NewProducer(pkgkafka.Config{Brokers: cfg.Kafka.Brokers})
		defer func() {
			if err := producer.Close(); err != nil {
				logger.Warn("kafka producer close", "error", err)
			}
		}()
		publisher = messaging.NewKafkaEventPublisher(producer, cfg.Kafka.Topic, logger)
	}

	// Domain services and use cases.
	calculator := service.NewCalculator()
	scheduler := service.NewScheduleGenerator(time.Now)
	calculateUC := usecase.NewCalculateLoanUseCase(calculator, scheduler, publisher, metrics)
	penaltyUC := usecase.NewCalculatePenaltyUseCase(service.NewPenaltyCalculator(), publisher, metrics, time.Now)
	settlementUC := usecase.NewQuoteSettlementUseCase(calculator, scheduler, service.NewSettlementCalculator(), metrics)

	// gRPC server.
	grpcServer, err := grpcPresentation.NewServer(
		grpcPresentation.NewLoanCalculatorHandler(calculateUC, penaltyUC, settlementUC, logger),
		logger,
		grpcPresentation.ServerConfig{
			ServiceName: cfg.ServiceName,
			TLSCertFile: cfg.GRPC.TLSCertFile,
			TLSKeyFile:  cfg.GRPC.TLSKeyFile,
			Reflection:  cfg.GRPC.Reflection,
		},
	)
	if err != nil {
		return err
	}

	// HTTP server.
	health := rest.NewHealthHandler(cfg.ServiceName, logger)
	httpServer := &http.Server{
		Addr: cfg.HTTPAddr(),
		Handler: rest.NewRouter(rest.RouterConfig{
			Calculator:     rest.NewCalculatorHandler(calculateUC, penaltyUC, settlementUC, logger),
			Health:         health,
			Metrics:        metricsHandler,
			RequestTimeout: cfg.HTTP.RequestTimeout,
			Logger:         logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			return fmt.Errorf("gRPC server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server: %w", err)
		}
		return nil
	})

	health.SetReady(true)
	grpcServer.SetServing(true)

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		health.SetReady(false)
		grpcServer.SetServing(false)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		grpcServer.GracefulStop()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("loancalc stopped")
	return nil
}
