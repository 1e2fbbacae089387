package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/salarycalc/salary-calculator/internal/calculation"
	"github.com/salarycalc/salary-calculator/internal/config"
	"github.com/salarycalc/salary-calculator/internal/domain"
	"github.com/salarycalc/salary-calculator/internal/logging"
	"github.com/salarycalc/salary-calculator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type budgetOptions struct {
	format string
	rules  rulesFlags
}

func newBudgetCmd(root *rootOptions) *cobra.Command {
	opts := &budgetOptions{}

	cmd := &cobra.Command{
		Use:     "budget TAKE_HOME",
		Short:   "Split a periodic take-home amount across the budget plan",
		Example: "  salarycalc budget 4000\n  salarycalc budget 4000 --plan simple --format csv",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBudget(cmd, root, opts, args[0])
		},
	}
	cmd.Flags().StringVar(&opts.format, "format", "table", "Output format: table, csv or json")
	opts.rules.register(cmd)
	return cmd
}

func runBudget(cmd *cobra.Command, root *rootOptions, opts *budgetOptions, arg string) error {
	logger, err := root.newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	takeHome, err := decimal.NewFromString(strings.NewReplacer(",", "", "$", "").Replace(arg))
	if err != nil {
		return fmt.Errorf("%w: take-home %q is not a number", domain.ErrInvalidInput, arg)
	}

	parser := config.NewInputParser()
	parser.SetLogger(logging.Sugar(logger))
	rules, err := opts.rules.load(parser)
	if err != nil {
		return err
	}

	lines, groups := newEngine(rules, logger).AllocateBudget(takeHome)
	w := cmd.OutOrStdout()

	switch strings.ToLower(opts.format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Plan   string              `json:"plan"`
			Lines  []domain.BudgetLine `json:"lines"`
			Groups []domain.GroupTotal `json:"groups"`
		}{rules.Budget.Name, lines, groups})
	case "csv":
		return output.WriteBudgetCSV(w, lines, "")
	case "table", "":
		fmt.Fprintln(w, output.RenderTitle("BUDGET FOR "+output.FormatWholeCurrency(takeHome)))
		fmt.Fprintln(w, output.RenderTable(budgetTable(rules.Budget.Name, lines, groups)))
		return nil
	}
	return fmt.Errorf("%w: unknown budget format %q (want table, csv or json)", domain.ErrInvalidInput, opts.format)
}

func budgetTable(plan string, lines []domain.BudgetLine, groups []domain.GroupTotal) output.Table {
	t := output.Table{
		Title:   "Budget plan: " + plan,
		Headers: []string{"Category", "Percent", "Amount"},
	}
	for i, g := range groups {
		if i > 0 {
			t.Rows = append(t.Rows, []string{"---"})
		}
		t.Rows = append(t.Rows, []string{strings.ToUpper(g.Group.Label()), output.FormatRate(g.Percent), output.FormatWholeCurrency(g.Amount)})
		for _, l := range calculation.LinesForGroup(lines, g.Group) {
			t.Rows = append(t.Rows, []string{"  " + l.Category.Name, output.FormatRate(l.Category.Percent), output.FormatWholeCurrency(l.Amount)})
		}
	}
	return t
}
