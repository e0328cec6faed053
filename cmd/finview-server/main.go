package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"finview/internal/amqp"
	"finview/internal/cli"
	"finview/internal/clients/rates"
	"finview/internal/clients/stocks"
	"finview/internal/homepage"
	"finview/internal/httpapi"
	applog "finview/internal/log"
	"finview/internal/middleware/ratelimit"
	"finview/internal/report"
	"finview/internal/source"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := source.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize record source",
			applog.FieldBackend, cfg.DataBackend, applog.FieldError, err.Error())
		os.Exit(1)
	}
	if src.Cleanup != nil {
		defer src.Cleanup()
	}

	ratesClient := rates.New(cfg.RatesBaseURL, cfg.RatesAPIKey, cfg.RatesTarget, logger)
	stocksClient := stocks.New(cfg.StocksBaseURL, cfg.StocksAPIKey, logger)
	assembler := homepage.NewAssembler(src.Reader, ratesClient, stocksClient, cfg.SettingsPath, logger)

	var events report.EventPublisher
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
		if err != nil {
			logger.Warn("failed to initialize AMQP client, continuing without report events",
				applog.FieldError, err.Error())
		} else {
			events = client
			defer client.Close()
		}
	}
	reports := report.NewService(src.Reader, report.NewFileSink(cfg.ReportPath), events, logger)

	var limiter *ratelimit.Limiter
	if cfg.RateLimitPerMinute > 0 {
		limiter = ratelimit.New(cfg.RateLimitPerMinute)
		defer limiter.Stop()
	}
	srv := httpapi.NewServer(":"+cfg.Port, assembler, reports, limiter, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting finview server",
			applog.FieldOperation, applog.OpStartup,
			"port", cfg.Port,
			applog.FieldBackend, cfg.DataBackend,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received", applog.FieldOperation, applog.OpShutdown)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", applog.FieldError, err.Error())
		os.Exit(1)
	}
	logger.Info("server stopped gracefully")
}
