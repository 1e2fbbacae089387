package integration

import (
	"context"
	"testing"

	"github.com/salarycalc/salary-calculator/internal/calculation"
	"github.com/salarycalc/salary-calculator/internal/config"
	"github.com/salarycalc/salary-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEndCalculation(t *testing.T) {
	tests := []struct {
		name          string
		file          string
		salary        int64
		totalTax      int64
		totalFICA     int64
		perPeriod     int64
		frequency     domain.PayFrequency
		firstCategory int64
	}{
		{
			name:          "single salary yaml",
			file:          "../testdata/single_salary.yaml",
			salary:        131000,
			totalTax:      27045,
			totalFICA:     10022,
			perPeriod:     7828,
			frequency:     domain.FrequencyMonthly,
			firstCategory: 1174,
		},
		{
			name:          "married salary json",
			file:          "../testdata/married_salary.json",
			salary:        131000,
			totalTax:      22167, // 14307 + 6550 + 1310
			totalFICA:     10022,
			perPeriod:     8234, // 98811 / 12
			frequency:     domain.FrequencyMonthly,
			firstCategory: 1235,
		},
		{
			name:          "hourly toml",
			file:          "../testdata/hourly_biweekly.toml",
			salary:        31200,
			frequency:     domain.FrequencyBiWeekly,
			perPeriod:     955,
			firstCategory: 143,
		},
	}

	parser := config.NewInputParser()
	engine := calculation.NewCalculationEngine()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := parser.LoadFromFile(tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.frequency, input.PayFrequency)

			calc, err := engine.Calculate(context.Background(), *input)
			require.NoError(t, err)

			assert.True(t, calc.AnnualSalary.Equal(decimal.NewFromInt(tt.salary)), "salary: got %s", calc.AnnualSalary)
			if tt.totalTax != 0 {
				assert.True(t, calc.Deductions.TotalTax().Equal(decimal.NewFromInt(tt.totalTax)), "tax: got %s", calc.Deductions.TotalTax())
				assert.True(t, calc.Deductions.TotalFICA().Equal(decimal.NewFromInt(tt.totalFICA)), "fica: got %s", calc.Deductions.TotalFICA())
			}
			assert.True(t, calc.TakeHome.PerPeriod.Equal(decimal.NewFromInt(tt.perPeriod)), "take-home: got %s", calc.TakeHome.PerPeriod)

			// annual take-home is salary minus every deduction
			assert.True(t, calc.TakeHome.Annual.Equal(calc.AnnualSalary.Sub(calc.Deductions.Total())))

			require.Len(t, calc.Budget, 13)
			assert.True(t, calc.Budget[0].Amount.Equal(decimal.NewFromInt(tt.firstCategory)), "housing: got %s", calc.Budget[0].Amount)
			require.Len(t, calc.BudgetGroups, 3)
			assert.NotEmpty(t, calc.Assumptions)
		})
	}
}

func TestEndToEndWithRulesFile(t *testing.T) {
	parser := config.NewInputParser()

	rules, err := parser.LoadRulesFromFile("../testdata/flat_rules.toml")
	require.NoError(t, err)
	assert.Equal(t, domain.TaxModeFlat, rules.TaxMode)
	assert.Equal(t, "simple", rules.Budget.Name)
	require.Len(t, rules.Budget.Categories, 3)
	assert.Len(t, rules.FederalTax.Single.Brackets, 7, "brackets the file omits keep their defaults")

	input, err := parser.LoadFromFile("../testdata/single_salary.yaml")
	require.NoError(t, err)

	calc, err := calculation.NewCalculationEngineWithRules(*rules).Calculate(context.Background(), *input)
	require.NoError(t, err)

	assert.Equal(t, "flat-simple", calc.RulesName)
	assert.True(t, calc.Taxes.Federal.Equal(decimal.NewFromInt(25938)), "federal: got %s", calc.Taxes.Federal)
	assert.True(t, calc.TakeHome.PerPeriod.Equal(decimal.NewFromInt(7320)), "take-home: got %s", calc.TakeHome.PerPeriod)

	want := []int64{3660, 2196, 1464}
	require.Len(t, calc.Budget, len(want))
	for i, w := range want {
		assert.True(t, calc.Budget[i].Amount.Equal(decimal.NewFromInt(w)), "%s: got %s", calc.Budget[i].Category.Name, calc.Budget[i].Amount)
	}
}

func TestTaxExemptEndToEnd(t *testing.T) {
	parser := config.NewInputParser()
	input, err := parser.LoadFromFile("../testdata/single_salary.yaml")
	require.NoError(t, err)
	input.TaxExempt = true

	calc, err := calculation.NewCalculationEngine().Calculate(context.Background(), *input)
	require.NoError(t, err)

	assert.True(t, calc.Deductions.Total().IsZero())
	assert.True(t, calc.TakeHome.Annual.Equal(decimal.NewFromInt(131000)))
	assert.True(t, calc.TakeHome.PerPeriod.Equal(decimal.NewFromInt(10917)))
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	input := parser.CreateExampleInput()
	assert.NoError(t, parser.ValidatePayInput(input))

	input.Amount = decimal.NewFromInt(-1)
	err := parser.ValidatePayInput(input)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = parser.LoadFromFile("../testdata/does_not_exist.yaml")
	assert.Error(t, err)
}
