package calculation

import (
	"fmt"

	"github.com/salarycalc/salary-calculator/internal/domain"
	money "github.com/salarycalc/salary-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ComputeTakeHome subtracts deductions from salary and splits the rest into pay periods.
// The result is not floored: deductions larger than salary give a negative take-home.
func ComputeTakeHome(salary, totalTax, totalFica decimal.Decimal, frequency domain.PayFrequency) (domain.TakeHome, error) {
	periods := frequency.PeriodsPerYear()
	if periods == 0 {
		return domain.TakeHome{}, fmt.Errorf("%w: unknown pay frequency %q", domain.ErrInvalidInput, frequency)
	}

	annual := money.NewMoneyFromDecimal(salary.Sub(totalTax.Add(totalFica)))
	gross := money.NewMoneyFromDecimal(salary)

	return domain.TakeHome{
		Frequency:      frequency,
		PeriodsPerYear: periods,
		Annual:         annual.Decimal,
		PerPeriod:      annual.PerPeriod(periods).Whole().Decimal,
		GrossPerPeriod: gross.PerPeriod(periods).Whole().Decimal,
	}, nil
}

// BuildSalaryBreakdown splits gross salary into taxes, FICA and take-home with each
// share as a percentage of salary. Shares are zero when salary is zero.
func BuildSalaryBreakdown(salary decimal.Decimal, deductions domain.DeductionResult, annualTakeHome decimal.Decimal) []domain.BreakdownRow {
	gross := money.NewMoneyFromDecimal(salary)
	row := func(label string, amount decimal.Decimal) domain.BreakdownRow {
		return domain.BreakdownRow{
			Label:   label,
			Amount:  amount,
			Percent: money.NewMoneyFromDecimal(amount).ShareOf(gross),
		}
	}
	return []domain.BreakdownRow{
		row("Taxes", deductions.TotalTax()),
		row("FICA and State Insurance Taxes", deductions.TotalFICA()),
		row("Take Home Salary", annualTakeHome),
	}
}
