package main

import (
	"context"
	"os"

	"finview/internal/amqp"
	"finview/internal/cli"
	"finview/internal/clients/rates"
	"finview/internal/clients/stocks"
	"finview/internal/homepage"
	applog "finview/internal/log"
	"finview/internal/report"
	"finview/internal/source"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx := context.Background()

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

	// Report events are optional; without a broker the reports are
	// still written to the file sink.
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

	logger.Info("finview started",
		applog.FieldOperation, applog.OpStartup,
		applog.FieldBackend, cfg.DataBackend,
	)
	menu := cli.NewMenu(os.Stdin, os.Stdout, assembler, reports)
	if err := menu.Run(ctx); err != nil {
		logger.Error("menu loop failed", applog.FieldError, err.Error())
		os.Exit(1)
	}
}
