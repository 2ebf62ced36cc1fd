package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/carpro/internal/cli"
	"github.com/theirongolddev/carpro/internal/model"
	"github.com/theirongolddev/carpro/internal/pipeline"
)

var (
	flagExpenseDate     string
	flagExpenseCategory string
	flagExpenseTitle    string
	flagExpenseCost     float64
	flagExpenseNotes    string
)

var expenseCmd = &cobra.Command{
	Use:     "expense",
	Aliases: []string{"expenses"},
	Short:   "Other vehicle expenses (parking, tolls, insurance...)",
	RunE:    runExpenseList,
}

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log an expense",
	Args:  cobra.NoArgs,
	RunE:  runExpenseAdd,
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses, newest first",
	RunE:  runExpenseList,
}

var expenseRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseRm,
}

func init() {
	f := expenseAddCmd.Flags()
	f.StringVar(&flagExpenseDate, "date", "", "Expense date YYYY-MM-DD (default today)")
	f.StringVar(&flagExpenseCategory, "category", "other", "One of: "+strings.Join(categoryNames(), ", "))
	f.StringVar(&flagExpenseTitle, "title", "", "Short description")
	f.Float64Var(&flagExpenseCost, "cost", 0, "Amount spent")
	f.StringVar(&flagExpenseNotes, "notes", "", "Free-form notes")
	_ = expenseAddCmd.MarkFlagRequired("title")

	expenseCmd.AddCommand(expenseAddCmd, expenseListCmd, expenseRmCmd)
	rootCmd.AddCommand(expenseCmd)
}

// categoryNames returns the short category names accepted by --category,
// e.g. "parking" for expenseParking.
func categoryNames() []string {
	names := make([]string, len(model.ExpenseCategories))
	for i, c := range model.ExpenseCategories {
		names[i] = shortCategory(c)
	}
	return names
}

func shortCategory(c model.ExpenseCategory) string {
	return strings.ToLower(strings.TrimPrefix(string(c), "expense"))
}

// parseCategory accepts a short name ("carwash") or the stored key
// ("expenseCarWash"), case-insensitively.
func parseCategory(s string) (model.ExpenseCategory, error) {
	s = strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s))
	for _, c := range model.ExpenseCategories {
		if s == shortCategory(c) || s == strings.ToLower(string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown expense category %q (want one of %s)", s, strings.Join(categoryNames(), ", "))
}

func runExpenseAdd(cmd *cobra.Command, _ []string) error {
	category, err := parseCategory(flagExpenseCategory)
	if err != nil {
		return err
	}
	return withSession(cmd, func(ctx context.Context, s *session) error {
		date, err := recordDate(flagExpenseDate, s)
		if err != nil {
			return err
		}
		rec, err := s.ledger().AddExpense(ctx, model.ExpenseRecord{
			Date:     date,
			Category: category,
			Title:    strings.TrimSpace(flagExpenseTitle),
			Cost:     flagExpenseCost,
			Notes:    flagExpenseNotes,
		})
		if err != nil {
			return fmt.Errorf("adding expense: %w", err)
		}
		fmt.Printf("  Added %s %s: %s\n", s.loc.Category(rec.Category), formatID(rec.ID), s.loc.Money(rec.Cost))
		return nil
	})
}

func runExpenseList(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(_ context.Context, s *session) error {
		loc := s.loc
		if len(s.data.Expenses) == 0 {
			fmt.Printf("\n  %s\n", loc.T("noExpensesRecords"))
			return nil
		}

		rows := make([][]string, 0, len(s.data.Expenses)+3)
		shown := limitHistory(s.data.Expenses, s.cfg.Display.HistoryLimit)
		for _, r := range shown {
			rows = append(rows, []string{
				formatID(r.ID), r.Date.String(), loc.Category(r.Category),
				cli.Truncate(r.Title, 28), loc.Money(r.Cost),
			})
		}
		sum := pipeline.ExpenseSummary(s.data.Expenses, s.now)
		rows = append(rows, []string{"---"},
			[]string{loc.T("thisMonth"), "", "", "", loc.Money(sum.MonthlyCost)},
			[]string{loc.T("totalSpent"), "", "", "", loc.Money(sum.TotalCost)})

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   loc.T("expensesTracking"),
			Headers: []string{"ID", loc.T("date"), loc.T("category"), loc.T("titleDescription"), loc.T("cost")},
			Rows:    rows,
		}))
		printHistoryNote(len(shown), len(s.data.Expenses))
		return nil
	})
}

func runExpenseRm(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return withSession(cmd, func(ctx context.Context, s *session) error {
		if err := s.ledger().RemoveExpense(ctx, id); err != nil {
			return fmt.Errorf("removing expense: %w", err)
		}
		progress("  Removed expense %s\n", formatID(id))
		return nil
	})
}
