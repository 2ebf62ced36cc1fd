package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/carpro/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Database: %s\n", cfg.DBPath())
	fmt.Printf("    Language: %s\n", cfg.General.Language)
	fmt.Printf("    Currency: %s\n", cfg.General.Currency)
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Sparklines:    %v\n", cfg.Display.Sparklines)
	if cfg.Display.HistoryLimit > 0 {
		fmt.Printf("    History limit: %d\n", cfg.Display.HistoryLimit)
	} else {
		fmt.Println("    History limit: none")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Daemon]")
	fmt.Printf("    Address:       %s\n", cfg.Daemon.Addr)
	fmt.Printf("    Poll interval: %s\n", cfg.Daemon.Poll())
	if cfg.Daemon.DigestSchedule != "" {
		fmt.Printf("    Alert digest:  %s\n", cfg.Daemon.DigestSchedule)
	} else {
		fmt.Println("    Alert digest:  disabled")
	}
	fmt.Printf("    Event buffer:  %d\n", cfg.Daemon.EventsBuffer)
	fmt.Println()

	fmt.Printf("  Environment overrides: %s, %s, %s\n", config.EnvDB, config.EnvLang, config.EnvCurrency)
	fmt.Println("  Run `carpro setup` to reconfigure.")
	return nil
}
