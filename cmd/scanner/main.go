package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"SignalScope/internal/collector"
	"SignalScope/internal/config"
	"SignalScope/internal/notifier"
	"SignalScope/internal/recorder"
	"SignalScope/internal/scheduler"
)

func main() {
	once := flag.Bool("once", false, "run a single scan and exit")
	cfgPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	setupLogging()
	log.Info().Msg("SignalScope starting")

	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	if v := os.Getenv("CONFIG_PATH"); v != "" {
		*cfgPath = v
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}
	settings := cfg.Indicators.Settings()

	// Data source: local CSV wins when both are configured.
	var fetcher collector.Fetcher
	if cfg.DataSource.CSVPath != "" {
		fetcher = collector.NewCSVFetcher(cfg.DataSource.CSVPath)
	} else {
		fetcher = collector.NewHTTPFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	}
	log.Info().Str("source", fetcher.Name()).Str("symbol", cfg.Symbol).Msg("data source ready")

	col := collector.NewCollector(fetcher, cfg.Symbol, cfg.DataSource.BarLimit)

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("sqlite recorder unavailable, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	var n notifier.Notifier
	if cfg.Notify.WebhookURL != "" {
		n = notifier.NewWebhookNotifier(cfg.Notify.WebhookURL, cfg.Proxy)
	} else {
		n = notifier.LogNotifier{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, col, settings, n, rec)

	if *once {
		if err := sched.RunScanNow(); err != nil {
			log.Fatal().Err(err).Msg("scan")
		}
		return
	}

	if err := sched.Register(cfg.Schedule.ScanCron); err != nil {
		log.Fatal().Err(err).Msg("register cron task")
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, scanning now")
		go sched.RunScanNow()
	}

	log.Info().Str("cron", cfg.Schedule.ScanCron).Msg("SignalScope is running")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
	log.Info().Msg("SignalScope stopped")
}

func setupLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level := zerolog.InfoLevel
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if parsed, err := zerolog.ParseLevel(v); err == nil {
			level = parsed
		}
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
