package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/carpro/internal/i18n"
	"github.com/theirongolddev/carpro/internal/source"
	"github.com/theirongolddev/carpro/internal/store"
)

var (
	flagExportFormat string
	flagExportOutput string
	flagClearYes     bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a backup of every record (json) or a spreadsheet (xlsx)",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore a backup; collections in the file replace the stored ones",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every record and vehicle (the language setting is kept)",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

var languageCmd = &cobra.Command{
	Use:       "language [en|ar]",
	Short:     "Show or set the display language stored with the records",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{i18n.English, i18n.Arabic},
	RunE:      runLanguage,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportFormat, "format", "json", "Output format: json or xlsx")
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Output file, - for stdout (default carpro-backup-DATE.EXT)")
	clearCmd.Flags().BoolVarP(&flagClearYes, "yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(exportCmd, importCmd, clearCmd, languageCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	format := strings.ToLower(flagExportFormat)
	if format != "json" && format != "xlsx" {
		return fmt.Errorf("unknown export format %q (want json or xlsx)", flagExportFormat)
	}

	return withSession(cmd, func(_ context.Context, s *session) error {
		path := flagExportOutput
		if path == "" {
			path = source.BackupFilename(s.now, format)
		}

		out := os.Stdout
		if path != "-" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating %s: %w", path, err)
			}
			defer func() { _ = f.Close() }()
			out = f
		}

		var err error
		if format == "xlsx" {
			err = source.WriteWorkbook(out, s.data, s.dashboard())
		} else {
			err = source.WriteJSON(out, source.FromCollections(s.data))
		}
		if err != nil {
			return fmt.Errorf("exporting %s: %w", format, err)
		}
		if path != "-" {
			progress("  Exported to %s\n", path)
		}
		return nil
	})
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	imp, err := source.ReadBackup(f)
	if err != nil {
		return err
	}
	sections := imp.Sections()
	if len(sections) == 0 {
		return fmt.Errorf("importing %s: %w: no known sections", path, source.ErrInvalidBackup)
	}

	return withSession(cmd, func(ctx context.Context, s *session) error {
		if err := s.ledger().Restore(ctx, imp); err != nil {
			return err
		}
		fmt.Printf("  %s\n", s.loc.T("successImport"))
		progress("  Restored: %s\n", strings.Join(sections, ", "))
		return nil
	})
}

func runClear(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(ctx context.Context, s *session) error {
		if !flagClearYes {
			fmt.Printf("  %s [y/N] ", s.loc.T("confirmDelete"))
			answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				fmt.Println("  Aborted.")
				return nil
			}
		}
		if err := s.store.Clear(ctx); err != nil {
			return fmt.Errorf("clearing records: %w", err)
		}
		fmt.Printf("  %s\n", s.loc.T("successClear"))
		return nil
	})
}

func runLanguage(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(ctx context.Context, s *session) error {
		if len(args) == 0 {
			fmt.Printf("  %s: %s\n", s.loc.T("language"), s.loc.Lang())
			return nil
		}
		lang := strings.ToLower(args[0])
		if !i18n.Supported(lang) {
			return fmt.Errorf("unsupported language %q (want %s or %s)", args[0], i18n.English, i18n.Arabic)
		}
		if err := s.store.SetSetting(ctx, store.SettingLanguage, lang); err != nil {
			return fmt.Errorf("saving language: %w", err)
		}
		loc, err := i18n.New(lang, s.cfg.General.Currency)
		if err != nil {
			return err
		}
		fmt.Printf("  %s: %s\n", loc.T("language"), lang)
		return nil
	})
}
