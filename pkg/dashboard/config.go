package dashboard

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/marketpanel/pkg/chart"
)

// Default values for optional configuration fields.
const (
	DefaultInterval     = 60 * time.Second
	DefaultTimeout      = 10 * time.Second
	DefaultSeriesLength = 24
)

// Entry binds a display slot to an upstream symbol.
type Entry struct {
	ID     string `yaml:"id"`
	Symbol string `yaml:"symbol"`
}

// Conversion divides every price of Symbol by the latest quote of RateSymbol.
type Conversion struct {
	Symbol     string `yaml:"symbol"`
	RateSymbol string `yaml:"rate_symbol"`
}

// Currency decides which symbols get a currency suffix in their price text.
type Currency struct {
	Suffix   string   `yaml:"suffix"`
	Exact    []string `yaml:"exact"`
	Contains []string `yaml:"contains"`
}

// SuffixFor returns the suffix for symbol, or "".
func (c Currency) SuffixFor(symbol string) string {
	for _, s := range c.Exact {
		if s == symbol {
			return c.Suffix
		}
	}
	for _, s := range c.Contains {
		if strings.Contains(symbol, s) {
			return c.Suffix
		}
	}
	return ""
}

func (c Currency) empty() bool {
	return c.Suffix == "" && len(c.Exact) == 0 && len(c.Contains) == 0
}

// Config is the dashboard registry and refresh settings.
type Config struct {
	Interval     time.Duration `yaml:"interval"`
	Timeout      time.Duration `yaml:"timeout"`
	SeriesLength int           `yaml:"series_length"`
	ChartWindow  int           `yaml:"chart_window"`
	Symbols      []Entry       `yaml:"symbols"`
	Conversion   Conversion    `yaml:"conversion"`
	Currency     Currency      `yaml:"currency"`
}

// DefaultSymbols is the built-in registry.
func DefaultSymbols() []Entry {
	return []Entry{
		{ID: "btc", Symbol: "BINANCE:BTCUSDT"},
		{ID: "oro", Symbol: "OANDA:XAU_EUR"},
		{ID: "sp500", Symbol: "INDEX:SPX"},
		{ID: "nvda", Symbol: "NASDAQ:NVDA"},
		{ID: "tsla", Symbol: "NASDAQ:TSLA"},
		{ID: "aapl", Symbol: "NASDAQ:AAPL"},
		{ID: "amzn", Symbol: "NASDAQ:AMZN"},
		{ID: "googl", Symbol: "NASDAQ:GOOGL"},
	}
}

// DefaultConfig returns the built-in registry: BTC is quoted in USD and shown in EUR.
func DefaultConfig() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads a YAML registry. Missing fields fall back to defaults;
// an empty path yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Interval == 0 {
		c.Interval = DefaultInterval
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.SeriesLength == 0 {
		c.SeriesLength = DefaultSeriesLength
	}
	if c.ChartWindow == 0 {
		c.ChartWindow = chart.DefaultChartWindow
	}
	if len(c.Symbols) == 0 {
		c.Symbols = DefaultSymbols()
	}
	if c.Conversion == (Conversion{}) {
		c.Conversion = Conversion{Symbol: "BINANCE:BTCUSDT", RateSymbol: "OANDA:EUR_USD"}
	}
	if c.Currency.empty() {
		c.Currency = Currency{
			Suffix:   " €",
			Exact:    []string{"OANDA:XAU_EUR"},
			Contains: []string{"BTC"},
		}
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Interval < 0 {
		return errors.New("interval must be positive")
	}
	if c.Timeout < 0 {
		return errors.New("timeout must be positive")
	}
	if c.SeriesLength < 0 {
		return fmt.Errorf("series_length (%d) must be positive", c.SeriesLength)
	}
	if c.ChartWindow < 0 {
		return fmt.Errorf("chart_window (%d) must be positive", c.ChartWindow)
	}

	seen := make(map[string]bool, len(c.Symbols))
	for i, e := range c.Symbols {
		if e.ID == "" {
			return fmt.Errorf("symbols[%d].id is required", i)
		}
		if e.Symbol == "" {
			return fmt.Errorf("symbols[%d].symbol is required", i)
		}
		if seen[e.ID] {
			return fmt.Errorf("symbols[%d].id %q is duplicated", i, e.ID)
		}
		seen[e.ID] = true
	}

	if (c.Conversion.Symbol == "") != (c.Conversion.RateSymbol == "") {
		return errors.New("conversion needs both symbol and rate_symbol")
	}
	return nil
}

// clone returns a deep copy so the poller never shares the registry with callers.
func (c Config) clone() Config {
	c.Symbols = append([]Entry(nil), c.Symbols...)
	c.Currency.Exact = append([]string(nil), c.Currency.Exact...)
	c.Currency.Contains = append([]string(nil), c.Currency.Contains...)
	return c
}
