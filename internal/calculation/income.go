package calculation

import (
	"fmt"

	"github.com/salarycalc/salary-calculator/internal/domain"
	money "github.com/salarycalc/salary-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// WeeksPerYear annualizes an hourly wage.
const WeeksPerYear = 52

// NormalizeIncome converts the pay input amount into an annual salary.
// Hourly pay is rate * hours * 52 rounded to whole dollars; salaries pass through unrounded.
// Inputs are assumed non-negative.
func NormalizeIncome(payType domain.PayType, rateOrSalary, hoursPerWeek decimal.Decimal) (decimal.Decimal, error) {
	switch payType {
	case domain.PayTypeSalary:
		return rateOrSalary, nil
	case domain.PayTypeHourly:
		annual := rateOrSalary.Mul(hoursPerWeek).Mul(decimal.NewFromInt(WeeksPerYear))
		return money.Whole(annual), nil
	}
	return decimal.Zero, fmt.Errorf("%w: unknown pay type %q", domain.ErrInvalidInput, payType)
}
