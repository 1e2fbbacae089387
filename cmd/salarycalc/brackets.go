package main

import (
	"fmt"

	"github.com/salarycalc/salary-calculator/internal/config"
	"github.com/salarycalc/salary-calculator/internal/domain"
	"github.com/salarycalc/salary-calculator/internal/logging"
	"github.com/salarycalc/salary-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newBracketsCmd(root *rootOptions) *cobra.Command {
	rf := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "brackets",
		Short: "Show the federal brackets and the flat rates in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := root.newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			parser := config.NewInputParser()
			parser.SetLogger(logging.Sugar(logger))
			rules, err := rf.load(parser)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, output.RenderTitle("TAX RULES: "+rules.Name))
			if rules.TaxMode == domain.TaxModeFlat {
				fmt.Fprintf(w, "\nFederal tax: flat %s of gross salary\n", output.FormatRate(rules.FederalTax.FlatRate))
			} else {
				fmt.Fprintln(w, output.RenderTable(bracketTable("Single", rules.FederalTax.Single)))
				fmt.Fprintln(w, output.RenderTable(bracketTable("Married", rules.FederalTax.Married)))
			}
			fmt.Fprintln(w, output.RenderTable(output.Table{
				Title:   "Flat rates",
				Headers: []string{"Item", "Rate"},
				Rows: [][]string{
					{"State", output.FormatRate(rules.StateLocalTax.StateRate)},
					{"Local", output.FormatRate(rules.StateLocalTax.LocalRate)},
					{"Social Security", output.FormatRate(rules.FICA.SocialSecurityRate)},
					{"Social Security cap", output.FormatCurrency(rules.FICA.SocialSecurityCap)},
					{"Medicare", output.FormatRate(rules.FICA.MedicareRate)},
					{"Allowance step", output.FormatRate(rules.Allowances.Step)},
				},
			}))
			return nil
		},
	}
	rf.register(cmd)
	return cmd
}

func bracketTable(status string, table domain.BracketTable) output.Table {
	t := output.Table{
		Title:   fmt.Sprintf("%s (standard deduction %s)", status, output.FormatWholeCurrency(table.StandardDeduction)),
		Headers: []string{"Taxable income up to", "Rate"},
	}
	for _, b := range table.Brackets {
		limit := "and above"
		if !b.Unbounded() {
			limit = output.FormatWholeCurrency(*b.UpTo)
		}
		t.Rows = append(t.Rows, []string{limit, output.FormatRate(b.Rate)})
	}
	return t
}
