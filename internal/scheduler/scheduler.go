package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"SignalScope/internal/collector"
	"SignalScope/internal/model"
	"SignalScope/internal/notifier"
	"SignalScope/internal/pipeline"
	"SignalScope/internal/recorder"
)

// Scheduler re-runs the analysis pipeline on a cron schedule. The pipeline
// itself is stateless; the scheduler is what turns "recompute whenever the
// data changes" into periodic scans.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Settings  model.IndicatorSettings
	Notifier  notifier.Notifier
	Recorder  recorder.Recorder
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, settings model.IndicatorSettings,
	n notifier.Notifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Settings:  settings,
		Notifier:  n,
		Recorder:  rec,
		Ctx:       ctx,
	}
}

// Register registers the scan task.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunScanNow executes the scan task immediately (manual trigger / run-once).
func (s *Scheduler) RunScanNow() error {
	return s.scan()
}

func (s *Scheduler) scanTask() {
	if err := s.scan(); err != nil {
		log.Error().Err(err).Msg("scan failed")
	}
}

func (s *Scheduler) scan() error {
	started := time.Now()
	symbol := s.Collector.Symbol

	bars, err := s.Collector.Collect()
	if err != nil {
		return fmt.Errorf("collect: %w", err)
	}

	enriched, err := pipeline.Compute(bars, s.Settings)
	if err != nil {
		return fmt.Errorf("compute: %w", err)
	}
	if len(enriched) == 0 {
		log.Warn().Str("symbol", symbol).Msg("empty series, nothing to scan")
		return nil
	}
	if len(bars) < model.PipelineFloor {
		log.Warn().Str("symbol", symbol).Int("bars", len(bars)).
			Msgf("need at least %d bars for enrichment", model.PipelineFloor)
	}

	latest := enriched[len(enriched)-1]
	sig := pipeline.LatestSignal(enriched, s.Settings)

	log.Info().
		Str("symbol", symbol).
		Int("bars", len(bars)).
		Dur("took", time.Since(started)).
		Bool("signal", sig != nil).
		Msg("scan complete")

	if sig != nil {
		report := notifier.FormatScanReport(symbol, latest, sig)
		log.Info().Str("type", string(sig.Type)).Int("strength", sig.Strength).
			Strs("reasons", sig.Reasons).Msg("actionable reversal signal")
		if err := s.Notifier.Send(report); err != nil {
			log.Error().Err(err).Msg("notify failed")
		}
	}

	if err := s.Recorder.RecordScan(&recorder.ScanSnapshot{
		Symbol:    symbol,
		ScannedAt: started,
		BarCount:  len(bars),
		Latest:    latest,
		Signal:    sig,
	}); err != nil {
		log.Error().Err(err).Msg("record scan failed")
	}
	return nil
}
