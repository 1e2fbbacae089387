package output

import (
	"bytes"
	"fmt"

	"github.com/salarycalc/salary-calculator/internal/domain"
)

// ConsoleFormatter provides a concise plain-text summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(calc *domain.Calculation) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "SALARY & BUDGET SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Annual Salary: %s\n", FormatCurrency(calc.AnnualSalary))
	fmt.Fprintf(&buf, "Taxes: Federal=%s State=%s Local=%s\n",
		FormatCurrency(calc.Deductions.FederalTax),
		FormatCurrency(calc.Deductions.StateTax),
		FormatCurrency(calc.Deductions.LocalTax))
	fmt.Fprintf(&buf, "FICA: SocialSecurity=%s Medicare=%s\n",
		FormatCurrency(calc.Deductions.SocialSecurity),
		FormatCurrency(calc.Deductions.Medicare))
	fmt.Fprintf(&buf, "Annual Take-Home: %s\n", FormatCurrency(calc.TakeHome.Annual))
	fmt.Fprintf(&buf, "%s Take-Home: %s\n", calc.TakeHome.Frequency.Label(), FormatWholeCurrency(calc.TakeHome.PerPeriod))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "Budget (%s):\n", calc.BudgetPlan)
	for _, g := range calc.BudgetGroups {
		fmt.Fprintf(&buf, "  %s %s: %s\n", g.Group.Label(), FormatRate(g.Percent), FormatWholeCurrency(g.Amount))
	}
	for _, l := range calc.Budget {
		fmt.Fprintf(&buf, "    %s: %s\n", l.Category.Name, FormatWholeCurrency(l.Amount))
	}

	summary := AnalyzeCalculation(calc)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Effective tax rate: %s\n", FormatPercentage(summary.EffectiveTaxRate))
	for _, w := range summary.Warnings {
		fmt.Fprintf(&buf, "Warning: %s\n", w)
	}
	return buf.Bytes(), nil
}
