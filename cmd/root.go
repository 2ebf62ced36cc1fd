// Package cmd implements the carpro CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/carpro/internal/config"
	"github.com/theirongolddev/carpro/internal/i18n"
	"github.com/theirongolddev/carpro/internal/ledger"
	"github.com/theirongolddev/carpro/internal/model"
	"github.com/theirongolddev/carpro/internal/pipeline"
	"github.com/theirongolddev/carpro/internal/store"
)

var (
	flagDB       string
	flagLang     string
	flagCurrency string
	flagAsOf     string
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:           "carpro",
	Short:         "Personal vehicle expense tracker",
	Long:          "Track fuel fill-ups, maintenance and other car expenses, with totals, trends and service reminders.",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Record database path (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagLang, "lang", "l", "", "Display language: en or ar")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "Currency code for amounts (e.g. EGP, USD)")
	rootCmd.PersistentFlags().StringVar(&flagAsOf, "as-of", "", "Reference date YYYY-MM-DD (default today)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadConfig reads .env, the config file and environment overrides, then
// applies command-line flags on top.
func loadConfig() (config.Config, error) {
	if err := config.LoadEnv(); err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Warning: %v\n", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagDB != "" {
		cfg.General.DBPath = flagDB
	}
	if flagCurrency != "" {
		cfg.General.Currency = flagCurrency
	}
	return cfg, nil
}

// openStore opens the SQLite record store named by the config.
func openStore(cfg config.Config) (*store.SQLite, error) {
	path := cfg.DBPath()
	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening record store %s: %w", path, err)
	}
	return s, nil
}

// referenceNow returns the instant analytics are computed against: noon of
// --as-of in local time, or the current time.
func referenceNow() (time.Time, error) {
	if flagAsOf == "" {
		return time.Now(), nil
	}
	d, err := model.ParseDate(flagAsOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --as-of: %w", err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.Local), nil
}

// resolveLanguage picks the display language: the --lang flag, then the
// language stored with the records, then the config file.
func resolveLanguage(cfg config.Config, stored string) string {
	for _, lang := range []string{flagLang, stored, cfg.General.Language} {
		if i18n.Supported(lang) {
			return lang
		}
	}
	return i18n.English
}

// session bundles everything a reporting or mutating command needs.
type session struct {
	cfg   config.Config
	store *store.SQLite
	data  pipeline.Collections
	loc   *i18n.Localizer
	now   time.Time
}

// openSession loads config, opens the store and snapshots every collection.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	now, err := referenceNow()
	if err != nil {
		return nil, err
	}
	s, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	data, err := pipeline.Load(ctx, s)
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	loc, err := i18n.New(resolveLanguage(cfg, data.Language), cfg.General.Currency)
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	return &session{cfg: cfg, store: s, data: data, loc: loc, now: now}, nil
}

func (s *session) Close() {
	_ = s.store.Close()
}

func (s *session) ledger() *ledger.Ledger {
	return ledger.New(s.store)
}

// reload refreshes the snapshot after a mutation.
func (s *session) reload(ctx context.Context) error {
	data, err := pipeline.Load(ctx, s.store)
	if err != nil {
		return err
	}
	s.data = data
	return nil
}

func (s *session) dashboard() model.Dashboard {
	return pipeline.BuildDashboard(s.data, s.now)
}

// withSession runs fn against an open session.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s *session) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(ctx, s)
}

func progress(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
