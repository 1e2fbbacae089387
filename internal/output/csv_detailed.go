package output

import (
	"bytes"
	"encoding/csv"

	"github.com/salarycalc/salary-calculator/internal/domain"
	money "github.com/salarycalc/salary-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// CSVDetailedExporter exports every figure of a calculation: income, deductions,
// take-home and budget, one row per item.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(calc *domain.Calculation) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Section", "Item", "Annual", "PerPeriod", "PercentOfSalary"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	periods := calc.TakeHome.PeriodsPerYear
	salary := money.NewMoneyFromDecimal(calc.AnnualSalary)
	annualRow := func(section, item string, annual decimal.Decimal) []string {
		m := money.NewMoneyFromDecimal(annual)
		perPeriod := decimal.Zero
		if periods > 0 {
			perPeriod = m.PerPeriod(periods).Round().Decimal
		}
		return []string{section, item, annual.StringFixed(2), perPeriod.StringFixed(2), m.ShareOf(salary).StringFixed(2)}
	}

	d := calc.Deductions
	rows := [][]string{
		annualRow("Income", "Annual Salary", calc.AnnualSalary),
		annualRow("Tax", "Federal", d.FederalTax),
		annualRow("Tax", "State", d.StateTax),
		annualRow("Tax", "Local", d.LocalTax),
		annualRow("FICA", "Social Security", d.SocialSecurity),
		annualRow("FICA", "Medicare", d.Medicare),
		annualRow("Take-Home", "Annual", calc.TakeHome.Annual),
		{"Take-Home", "Periods Per Year", "", intToString(periods), ""},
		{"Take-Home", "Per Period (rounded)", "", calc.TakeHome.PerPeriod.StringFixed(2), ""},
	}
	for _, l := range calc.Budget {
		rows = append(rows, []string{"Budget " + l.Category.Group.Label(), l.Category.Name, "", l.Amount.StringFixed(2), ""})
	}
	for _, g := range calc.BudgetGroups {
		rows = append(rows, []string{"Budget Total", g.Group.Label(), "", g.Amount.StringFixed(2), ""})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
