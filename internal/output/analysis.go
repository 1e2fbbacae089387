package output

import (
	"github.com/salarycalc/salary-calculator/internal/domain"
	money "github.com/salarycalc/salary-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Summary holds the derived ratios shown next to a calculation.
type Summary struct {
	EffectiveTaxRate       decimal.Decimal // total tax / salary, 0-100
	EffectiveDeductionRate decimal.Decimal // tax + FICA / salary, 0-100
	MarginalRate           decimal.Decimal // 0-100
	Warnings               []string
}

// AnalyzeCalculation derives effective rates and user-facing warnings.
// Extracted from the formatters for testability.
func AnalyzeCalculation(calc *domain.Calculation) Summary {
	salary := money.NewMoneyFromDecimal(calc.AnnualSalary)
	s := Summary{
		EffectiveTaxRate:       money.NewMoneyFromDecimal(calc.Deductions.TotalTax()).ShareOf(salary),
		EffectiveDeductionRate: money.NewMoneyFromDecimal(calc.Deductions.Total()).ShareOf(salary),
		MarginalRate:           calc.Taxes.MarginalRate.Mul(decimalHundred),
	}

	if calc.TakeHome.Annual.IsNegative() {
		s.Warnings = append(s.Warnings, "Deductions exceed salary: take-home pay is negative.")
	}
	if calc.Input.TaxExempt {
		s.Warnings = append(s.Warnings, "Tax exempt: no income tax or FICA withheld.")
	}
	if calc.AnnualSalary.IsZero() {
		s.Warnings = append(s.Warnings, "Annual salary is zero.")
	}
	return s
}
