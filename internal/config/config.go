// Package config loads carpro's TOML configuration and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvDB       = "CARPRO_DB"
	EnvLang     = "CARPRO_LANG"
	EnvCurrency = "CARPRO_CURRENCY"
)

// Config holds all carpro configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Display    DisplayConfig    `toml:"display"`
	Appearance AppearanceConfig `toml:"appearance"`
	Daemon     DaemonConfig     `toml:"daemon"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DBPath   string `toml:"db_path,omitempty"`
	Language string `toml:"language"`
	Currency string `toml:"currency"`
}

// DisplayConfig controls CLI output.
type DisplayConfig struct {
	Sparklines   bool `toml:"sparklines"`
	HistoryLimit int  `toml:"history_limit"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DaemonConfig holds background service settings.
type DaemonConfig struct {
	Addr           string `toml:"addr"`
	PollInterval   string `toml:"poll_interval"`
	DigestSchedule string `toml:"digest_schedule"`
	EventsBuffer   int    `toml:"events_buffer"`
}

// Poll returns the parsed poll interval, falling back to the default.
func (d DaemonConfig) Poll() time.Duration {
	if v, err := time.ParseDuration(d.PollInterval); err == nil && v > 0 {
		return v
	}
	return 30 * time.Second
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Language: "en",
			Currency: "EGP",
		},
		Display: DisplayConfig{
			Sparklines:   true,
			HistoryLimit: 20,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Daemon: DaemonConfig{
			Addr:           "127.0.0.1:8731",
			PollInterval:   "30s",
			DigestSchedule: "0 8 * * *",
			EventsBuffer:   200,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "carpro")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "carpro")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "carpro")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "carpro")
}

// DefaultDBPath is the record database location when none is configured.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "carpro.db")
}

// DBPath returns the record database path: the configured one if set,
// otherwise DefaultDBPath.
func (c Config) DBPath() string {
	if c.General.DBPath != "" {
		return c.General.DBPath
	}
	return DefaultDBPath()
}

// LoadEnv reads a .env file from the working directory into the process
// environment. A missing file is not an error.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// ApplyEnv overlays CARPRO_* environment variables onto cfg.
func ApplyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvDB)); v != "" {
		cfg.General.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLang)); v != "" {
		cfg.General.Language = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvCurrency)); v != "" {
		cfg.General.Currency = strings.ToUpper(v)
	}
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied on top.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			ApplyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	ApplyEnv(&cfg)
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
