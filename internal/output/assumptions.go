package output

import (
	"github.com/salarycalc/salary-calculator/internal/calculation"
	"github.com/salarycalc/salary-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultAssumptions lists the modeling assumptions of the built-in rules. Reports fall
// back to it when a calculation carries none.
var DefaultAssumptions = calculation.Assumptions(domain.DefaultRules())

func assumptionsFor(calc *domain.Calculation) []string {
	if len(calc.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return calc.Assumptions
}

var decimalHundred = decimal.NewFromInt(100)
