package recorder

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists scan snapshots to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read
	// while the scanner writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scan_snapshots (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			scanned_at       INTEGER NOT NULL,
			symbol           TEXT NOT NULL,
			bar_count        INTEGER,
			bar_time         INTEGER,
			open             REAL,
			high             REAL,
			low              REAL,
			close            REAL,
			volume           REAL,
			ema20            REAL,
			ema50            REAL,
			rsi              REAL,
			macd_line        REAL,
			macd_signal      REAL,
			macd_histogram   REAL,
			bb_upper         REAL,
			bb_middle        REAL,
			bb_lower         REAL,
			volume_ma        REAL,
			volume_ratio     REAL,
			buy_signal       REAL,
			sell_signal      REAL,
			signal_type      TEXT,
			signal_strength  INTEGER,
			signal_reasons   TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scan_ts ON scan_snapshots(scanned_at)`,
		`CREATE INDEX IF NOT EXISTS idx_scan_symbol ON scan_snapshots(symbol, scanned_at)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// RecordScan inserts one scan snapshot row.
func (r *SQLiteRecorder) RecordScan(snap *ScanSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sigType string
	var sigStrength int
	var sigReasons string
	if snap.Signal != nil {
		sigType = string(snap.Signal.Type)
		sigStrength = snap.Signal.Strength
		sigReasons = strings.Join(snap.Signal.Reasons, "; ")
	}

	e := snap.Latest
	_, err := r.db.Exec(
		`INSERT INTO scan_snapshots (
			scanned_at, symbol, bar_count, bar_time,
			open, high, low, close, volume,
			ema20, ema50, rsi,
			macd_line, macd_signal, macd_histogram,
			bb_upper, bb_middle, bb_lower,
			volume_ma, volume_ratio,
			buy_signal, sell_signal,
			signal_type, signal_strength, signal_reasons
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		snap.ScannedAt.Unix(), snap.Symbol, snap.BarCount, e.Time.Unix(),
		e.Open, e.High, e.Low, e.Close, e.Volume,
		nullable(e.EMA20), nullable(e.EMA50), e.RSI,
		nullable(e.MACDLine), nullable(e.MACDSignal), nullable(e.MACDHistogram),
		nullable(e.BBUpper), nullable(e.BBMiddle), nullable(e.BBLower),
		nullable(e.VolumeMA), nullable(e.VolumeRatio),
		nullable(e.BuySignal), nullable(e.SellSignal),
		sigType, sigStrength, sigReasons,
	)
	if err != nil {
		return fmt.Errorf("insert scan snapshot: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}

func nullable(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

var _ Recorder = (*SQLiteRecorder)(nil)
var _ Recorder = (*NoopRecorder)(nil)
