package output

import (
	"strings"
	"testing"

	"github.com/salarycalc/salary-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeCalculation(t *testing.T) {
	s := AnalyzeCalculation(buildTestCalculation(t))

	assert.Equal(t, "20.65", s.EffectiveTaxRate.StringFixed(2)) // 27045 / 131000
	assert.Equal(t, "28.30", s.EffectiveDeductionRate.StringFixed(2))
	assert.True(t, s.MarginalRate.Equal(decimal.NewFromInt(24)), "got %s", s.MarginalRate)
	assert.Empty(t, s.Warnings)
}

func TestAnalyzeCalculationWarnings(t *testing.T) {
	calc := &domain.Calculation{
		Input:    domain.PayInput{TaxExempt: true},
		TakeHome: domain.TakeHome{Annual: decimal.NewFromInt(-10)},
	}
	s := AnalyzeCalculation(calc)

	assert.True(t, s.EffectiveTaxRate.IsZero(), "zero salary yields zero rates")
	joined := strings.Join(s.Warnings, "\n")
	assert.Contains(t, joined, "negative")
	assert.Contains(t, joined, "Tax exempt")
	assert.Contains(t, joined, "zero")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$1,234.57", FormatCurrency(decimal.NewFromFloat(1234.567)))
	assert.Equal(t, "-$1,200.00", FormatCurrency(decimal.NewFromInt(-1200)))
	assert.Equal(t, "$7,828", FormatWholeCurrency(decimal.RequireFromString("7827.75")))
	assert.Equal(t, "12.35%", FormatPercentage(decimal.NewFromFloat(12.3456)))
	assert.Equal(t, "15%", FormatRate(decimal.NewFromFloat(0.15)))
	assert.Equal(t, "42", intToString(42))
	assert.Equal(t, "false", boolToString(false))
}
