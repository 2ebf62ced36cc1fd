package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/carpro/internal/cli"
	"github.com/theirongolddev/carpro/internal/model"
)

// parseID reads a record ID argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid record id %q", arg)
	}
	return id, nil
}

// recordDate returns the --date flag value, or the reference day when unset.
func recordDate(flag string, s *session) (model.Date, error) {
	if flag == "" {
		return model.DateOf(s.now), nil
	}
	d, err := model.ParseDate(flag)
	if err != nil {
		return model.Date{}, fmt.Errorf("parsing --date: %w", err)
	}
	return d, nil
}

// optionalFloat returns a pointer to v when the named flag was set.
func optionalFloat(cmd *cobra.Command, name string, v float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// limitHistory trims items to the configured history limit. Zero means no limit.
func limitHistory[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func printHistoryNote(shown, total int) {
	if shown < total {
		fmt.Println(cli.RenderMuted(fmt.Sprintf("  Showing %d of %d. Set display.history_limit = 0 to list everything.", shown, total)))
	}
}
