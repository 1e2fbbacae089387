package calculation

import (
	"context"
	"strings"
	"testing"

	"github.com/salarycalc/salary-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleInput() domain.PayInput {
	return domain.PayInput{
		PayType:       domain.PayTypeSalary,
		Amount:        decimal.NewFromInt(131000),
		MaritalStatus: domain.StatusSingle,
		Allowances:    domain.Allowances{Federal: 1, State: 1, Local: 0},
		PayFrequency:  domain.FrequencyMonthly,
	}
}

// recordingLogger captures warnings for assertions.
type recordingLogger struct {
	NopLogger
	warnings []string
}

func (l *recordingLogger) Warnf(format string, args ...any) {
	l.warnings = append(l.warnings, format)
}

func TestCalculateExample(t *testing.T) {
	engine := NewCalculationEngine()
	calc, err := engine.Calculate(context.Background(), exampleInput())
	require.NoError(t, err)

	assert.True(t, calc.AnnualSalary.Equal(decimal.NewFromInt(131000)))
	assert.True(t, calc.Deductions.TotalTax().Equal(decimal.NewFromInt(27045)), "tax: got %s", calc.Deductions.TotalTax())
	assert.True(t, calc.Deductions.TotalFICA().Equal(decimal.NewFromInt(10022)), "fica: got %s", calc.Deductions.TotalFICA())
	assert.True(t, calc.TakeHome.Annual.Equal(decimal.NewFromInt(93933)), "annual: got %s", calc.TakeHome.Annual)
	assert.True(t, calc.TakeHome.PerPeriod.Equal(decimal.NewFromInt(7828)), "monthly: got %s", calc.TakeHome.PerPeriod)

	assert.Equal(t, "detailed", calc.BudgetPlan)
	require.Len(t, calc.Budget, 13)
	assert.True(t, calc.Budget[0].Amount.Equal(decimal.NewFromInt(1174)), "housing: got %s", calc.Budget[0].Amount) // 7828 * 0.15
	require.Len(t, calc.BudgetGroups, 3)
	require.Len(t, calc.SalaryBreakdown, 3)
	assert.NotEmpty(t, calc.Assumptions)
}

func TestCalculateHourly(t *testing.T) {
	in := domain.PayInput{
		PayType:       domain.PayTypeHourly,
		Amount:        decimal.NewFromInt(15),
		HoursPerWeek:  decimal.NewFromInt(40),
		MaritalStatus: domain.StatusSingle,
		PayFrequency:  domain.FrequencyBiWeekly,
	}
	calc, err := NewCalculationEngine().Calculate(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, calc.AnnualSalary.Equal(decimal.NewFromInt(31200)))
	assert.True(t, calc.Taxes.Federal.Equal(decimal.NewFromInt(2120)), "federal: got %s", calc.Taxes.Federal)
	assert.True(t, calc.Deductions.Total().Equal(decimal.NewFromInt(6378)), "deductions: got %s", calc.Deductions.Total())
	assert.True(t, calc.TakeHome.PerPeriod.Equal(decimal.NewFromInt(955)), "bi-weekly: got %s", calc.TakeHome.PerPeriod) // 24822 / 26
}

func TestCalculateTaxExempt(t *testing.T) {
	in := exampleInput()
	in.TaxExempt = true

	calc, err := NewCalculationEngine().Calculate(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, calc.Deductions.Total().IsZero())
	assert.True(t, calc.TakeHome.Annual.Equal(decimal.NewFromInt(131000)))
	assert.True(t, calc.TakeHome.PerPeriod.Equal(decimal.NewFromInt(10917)), "got %s", calc.TakeHome.PerPeriod)
	assert.Equal(t, domain.TaxModeProgressive, calc.Taxes.Mode)
}

func TestCalculateWithFlatRules(t *testing.T) {
	calc, err := NewCalculationEngineWithRules(domain.FlatRules()).Calculate(context.Background(), exampleInput())
	require.NoError(t, err)
	assert.Equal(t, domain.TaxModeFlat, calc.Taxes.Mode)
	assert.Equal(t, "simple", calc.BudgetPlan)
	assert.Len(t, calc.Budget, 3)
}

func TestCalculateInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.PayInput)
	}{
		{"unknown pay type", func(in *domain.PayInput) { in.PayType = "stipend" }},
		{"unknown marital status", func(in *domain.PayInput) { in.MaritalStatus = "widowed" }},
		{"unknown frequency", func(in *domain.PayInput) { in.PayFrequency = "daily" }},
	}

	engine := NewCalculationEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := exampleInput()
			tt.mutate(&in)
			_, err := engine.Calculate(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCalculateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCalculationEngine().Calculate(ctx, exampleInput())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateNegativeTakeHomeWarns(t *testing.T) {
	rules := domain.DefaultRules()
	rules.StateLocalTax.StateRate = decimal.NewFromInt(2)
	engine := NewCalculationEngineWithRules(rules)
	logger := &recordingLogger{}
	engine.SetLogger(logger)

	calc, err := engine.Calculate(context.Background(), exampleInput())
	require.NoError(t, err)
	assert.True(t, calc.TakeHome.Annual.IsNegative())
	require.Len(t, logger.warnings, 1)
	assert.True(t, strings.Contains(logger.warnings[0], "negative"))
}

func TestEngineAllocateBudget(t *testing.T) {
	lines, groups := NewCalculationEngine().AllocateBudget(decimal.NewFromInt(4000))
	assert.Len(t, lines, 13)
	require.Len(t, groups, 3)
	assert.True(t, groups[0].Amount.Equal(decimal.NewFromInt(2000)))
}

func TestSetLoggerNil(t *testing.T) {
	engine := NewCalculationEngine()
	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}

func TestAssumptions(t *testing.T) {
	lines := Assumptions(domain.DefaultRules())
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "progressive brackets")
	assert.Contains(t, joined, "$11,600")
	assert.Contains(t, joined, "5%")
	assert.Contains(t, joined, "floored at zero")
	assert.Contains(t, joined, "$9,932.40")
	assert.Contains(t, joined, "Needs 50%")

	flat := strings.Join(Assumptions(domain.FlatRules()), "\n")
	assert.Contains(t, flat, "flat 22%")
	assert.Contains(t, flat, "simple")
}
