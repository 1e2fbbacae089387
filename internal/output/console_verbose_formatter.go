package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/salarycalc/salary-calculator/internal/calculation"
	"github.com/salarycalc/salary-calculator/internal/domain"
	money "github.com/salarycalc/salary-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ConsoleVerboseFormatter renders the full styled console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(calc *domain.Calculation) ([]byte, error) {
	var buf bytes.Buffer
	summary := AnalyzeCalculation(calc)
	freq := calc.TakeHome.Frequency

	fmt.Fprintln(&buf, RenderTitle("SALARYCALC - SALARY & BUDGET CALCULATOR"))
	fmt.Fprintln(&buf)

	fmt.Fprint(&buf, RenderTable(Table{
		Title:   "WORK INFO",
		Headers: []string{"Field", "Value"},
		Rows:    workInfoRows(calc),
	}))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "  %s %s\n", headerStyle.Render(fmt.Sprintf("Estimated %s take home pay:", freq.Label())),
		moneyStyle.Render(FormatWholeCurrency(calc.TakeHome.PerPeriod)))
	fmt.Fprintf(&buf, "  %s\n\n", mutedStyle.Render(fmt.Sprintf("Gross %s pay %s, annual take-home %s",
		freq.Label(), FormatWholeCurrency(calc.TakeHome.GrossPerPeriod), FormatCurrency(calc.TakeHome.Annual))))

	fmt.Fprint(&buf, RenderTable(Table{
		Title:   "WHERE IS YOUR MONEY GOING?",
		Headers: []string{"Deduction", "Annual", freq.Label(), "Share"},
		Rows:    deductionRows(calc),
	}))
	fmt.Fprintln(&buf)
	for _, row := range calc.SalaryBreakdown {
		color := ColorRed
		if row.Label == "Take Home Salary" {
			color = ColorGreen
		}
		fmt.Fprintln(&buf, RenderHorizontalBar(row.Label, row.Percent.InexactFloat64(), 30, color))
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "  %s\n\n", mutedStyle.Render(fmt.Sprintf("Effective tax rate %s, all deductions %s, marginal federal rate %s",
		FormatPercentage(summary.EffectiveTaxRate), FormatPercentage(summary.EffectiveDeductionRate), FormatPercentage(summary.MarginalRate))))

	fmt.Fprint(&buf, RenderTable(Table{
		Title:   fmt.Sprintf("SUGGESTED %s BUDGET (%s plan)", strings.ToUpper(freq.Label()), calc.BudgetPlan),
		Headers: []string{"Category", "Share", "Amount"},
		Rows:    budgetRows(calc),
	}))
	fmt.Fprintln(&buf)
	for _, g := range calc.BudgetGroups {
		fmt.Fprintln(&buf, RenderHorizontalBar(g.Group.Label(), g.Percent.Mul(decimalHundred).InexactFloat64(), 30, groupColors[string(g.Group)]))
	}
	fmt.Fprintln(&buf)

	for _, w := range summary.Warnings {
		fmt.Fprintf(&buf, "  %s\n", warnStyle.Render("! "+w))
	}
	if len(summary.Warnings) > 0 {
		fmt.Fprintln(&buf)
	}

	fmt.Fprintf(&buf, "  %s\n", headerStyle.Render("KEY ASSUMPTIONS"))
	for _, a := range assumptionsFor(calc) {
		fmt.Fprintf(&buf, "  %s\n", mutedStyle.Render("• "+a))
	}
	return buf.Bytes(), nil
}

func workInfoRows(calc *domain.Calculation) [][]string {
	in := calc.Input
	rows := [][]string{
		{"Marital status", string(in.MaritalStatus)},
		{"Pay type", string(in.PayType)},
	}
	if in.PayType == domain.PayTypeHourly {
		rows = append(rows,
			[]string{"Hourly rate", FormatCurrency(in.Amount)},
			[]string{"Hours per week", in.HoursPerWeek.String()},
		)
	}
	rows = append(rows,
		[]string{"Annual salary", FormatCurrency(calc.AnnualSalary)},
		[]string{"Pay frequency", in.PayFrequency.Label()},
		[]string{"Allowances (fed/state/local)", fmt.Sprintf("%d / %d / %d", in.Allowances.Federal, in.Allowances.State, in.Allowances.Local)},
		[]string{"Tax exempt", boolToString(in.TaxExempt)},
		[]string{"Federal tax mode", string(calc.Taxes.Mode)},
	)
	return rows
}

func deductionRows(calc *domain.Calculation) [][]string {
	periods := calc.TakeHome.PeriodsPerYear
	salary := money.NewMoneyFromDecimal(calc.AnnualSalary)
	row := func(label string, amount decimal.Decimal) []string {
		m := money.NewMoneyFromDecimal(amount)
		perPeriod := decimal.Zero
		if periods > 0 {
			perPeriod = m.PerPeriod(periods).Decimal
		}
		return []string{label, FormatCurrency(amount), FormatCurrency(perPeriod), FormatPercentage(m.ShareOf(salary))}
	}
	d := calc.Deductions
	return [][]string{
		row("Federal income tax", d.FederalTax),
		row("State income tax", d.StateTax),
		row("Local income tax", d.LocalTax),
		row("Social Security", d.SocialSecurity),
		row("Medicare", d.Medicare),
		{"---"},
		row("Total deductions", d.Total()),
		row("Take home", calc.TakeHome.Annual),
	}
}

func budgetRows(calc *domain.Calculation) [][]string {
	var rows [][]string
	for i, g := range calc.BudgetGroups {
		if i > 0 {
			rows = append(rows, []string{"---"})
		}
		rows = append(rows, []string{
			strings.ToUpper(g.Group.Label()),
			FormatRate(g.Percent),
			FormatWholeCurrency(g.Amount),
		})
		for _, l := range calculation.LinesForGroup(calc.Budget, g.Group) {
			rows = append(rows, []string{"  " + l.Category.Name, FormatRate(l.Category.Percent), FormatWholeCurrency(l.Amount)})
		}
	}
	return rows
}
