package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/carpro/internal/config"
	"github.com/theirongolddev/carpro/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("  Warning: %v (starting from defaults)\n", err)
		cfg = config.DefaultConfig()
	}

	vals := tui.SetupValuesFrom(cfg)
	if err := tui.NewSetupForm(&vals).Run(); err != nil {
		return fmt.Errorf("running setup form: %w", err)
	}
	vals.Apply(&cfg)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Printf("  Records are kept in %s\n", cfg.DBPath())
	fmt.Println("  Run `carpro setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
