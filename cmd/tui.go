package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/carpro/internal/config"
	"github.com/theirongolddev/carpro/internal/i18n"
	"github.com/theirongolddev/carpro/internal/store"
	"github.com/theirongolddev/carpro/internal/tui"
	"github.com/theirongolddev/carpro/internal/tui/theme"
)

var flagTUINoRefresh bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&flagTUINoRefresh, "no-refresh", false, "Disable periodic reloading of records")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	now := time.Now
	if flagAsOf != "" {
		ref, err := referenceNow()
		if err != nil {
			return err
		}
		now = func() time.Time { return ref }
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	stored, err := s.Setting(cmd.Context(), store.SettingLanguage)
	if err != nil {
		return fmt.Errorf("reading language setting: %w", err)
	}
	loc, err := i18n.New(resolveLanguage(cfg, stored), cfg.General.Currency)
	if err != nil {
		return err
	}

	app := tui.NewApp(tui.Options{
		Store:       s,
		Localizer:   loc,
		Now:         now,
		AutoRefresh: !flagTUINoRefresh,
		NeedSetup:   !config.Exists(),
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
