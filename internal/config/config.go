package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"SignalScope/internal/model"
)

// IndicatorConfig mirrors model.IndicatorSettings in YAML form. Toggles are
// pointers so that an absent key means "use the default" rather than false.
type IndicatorConfig struct {
	SMAPeriod        int     `yaml:"sma_period"`
	StdDevMultiplier float64 `yaml:"std_dev_multiplier"`
	RSIPeriod        int     `yaml:"rsi_period"`
	MACDFast         int     `yaml:"macd_fast"`
	MACDSlow         int     `yaml:"macd_slow"`
	MACDSignal       int     `yaml:"macd_signal"`

	ShowBollinger  *bool `yaml:"show_bollinger"`
	ShowEMA        *bool `yaml:"show_ema"`
	ShowRSI        *bool `yaml:"show_rsi"`
	ShowMACD       *bool `yaml:"show_macd"`
	ShowVolume     *bool `yaml:"show_volume"`
	ClassicSignals *bool `yaml:"classic_signals"`
	ReversalEngine *bool `yaml:"reversal_engine"`
}

// Settings converts the YAML form into normalized IndicatorSettings. This is
// the settings layer: periods are clamped here and nowhere else.
func (ic IndicatorConfig) Settings() model.IndicatorSettings {
	s := model.DefaultSettings()
	if ic.SMAPeriod > 0 {
		s.SMAPeriod = ic.SMAPeriod
	}
	if ic.StdDevMultiplier > 0 {
		s.StdDevMultiplier = ic.StdDevMultiplier
	}
	if ic.RSIPeriod != 0 {
		s.RSIPeriod = ic.RSIPeriod
	}
	if ic.MACDFast > 0 {
		s.MACDFast = ic.MACDFast
	}
	if ic.MACDSlow > 0 {
		s.MACDSlow = ic.MACDSlow
	}
	if ic.MACDSignal > 0 {
		s.MACDSignal = ic.MACDSignal
	}
	if ic.ShowBollinger != nil {
		s.ShowBollinger = *ic.ShowBollinger
	}
	if ic.ShowEMA != nil {
		s.ShowEMA = *ic.ShowEMA
	}
	if ic.ShowRSI != nil {
		s.ShowRSI = *ic.ShowRSI
	}
	if ic.ShowMACD != nil {
		s.ShowMACD = *ic.ShowMACD
	}
	if ic.ShowVolume != nil {
		s.ShowVolume = *ic.ShowVolume
	}
	if ic.ClassicSignals != nil {
		s.EnableClassicSignals = *ic.ClassicSignals
	}
	if ic.ReversalEngine != nil {
		s.EnableReversalEngine = *ic.ReversalEngine
	}
	s.Normalize()
	return s
}

// Config holds all application configuration.
type Config struct {
	Symbol     string `yaml:"symbol"`
	DataSource struct {
		BaseURL  string `yaml:"base_url"`
		APIKey   string `yaml:"api_key"`
		CSVPath  string `yaml:"csv_path"`
		BarLimit int    `yaml:"bar_limit"`
	} `yaml:"data_source"`
	Schedule struct {
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Notify struct {
		WebhookURL string `yaml:"webhook_url"`
	} `yaml:"notify"`
	Indicators IndicatorConfig `yaml:"indicators"`
	Proxy      string          `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; env vars and
// defaults alone can fully configure a scan.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SCAN_SYMBOL"); v != "" {
		cfg.Symbol = v
	}
	if v := os.Getenv("BARS_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("BARS_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("BARS_CSV_PATH"); v != "" {
		cfg.DataSource.CSVPath = v
	}
	if v := os.Getenv("CRON_SCAN"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("WEBHOOK_URL"); v != "" {
		cfg.Notify.WebhookURL = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("RSI_PERIOD"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Indicators.RSIPeriod = p
		}
	}

	// Defaults
	if cfg.Symbol == "" {
		cfg.Symbol = "SPX500"
	}
	if cfg.DataSource.BarLimit <= 0 {
		cfg.DataSource.BarLimit = 300
	}
	if cfg.Schedule.ScanCron == "" {
		cfg.Schedule.ScanCron = "0 */15 * * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/signalscope.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if c.DataSource.BaseURL == "" && c.DataSource.CSVPath == "" {
		return fmt.Errorf("data_source.base_url or data_source.csv_path is required")
	}
	return nil
}
