package calculation

import (
	"testing"

	"github.com/salarycalc/salary-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTakeHomeExample(t *testing.T) {
	salary := decimal.NewFromInt(131000)
	tax := decimal.NewFromInt(27045)
	fica := decimal.NewFromInt(10022)

	tests := []struct {
		frequency domain.PayFrequency
		periods   int
		perPeriod int64
		gross     int64
	}{
		{domain.FrequencyMonthly, 12, 7828, 10917},    // 7827.75, 10916.67
		{domain.FrequencySemiMonthly, 24, 3914, 5458}, // 3913.875, 5458.33
		{domain.FrequencyBiWeekly, 26, 3613, 5038},    // 3612.81, 5038.46
		{domain.FrequencyWeekly, 52, 1806, 2519},      // 1806.40, 2519.23
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			result, err := ComputeTakeHome(salary, tax, fica, tt.frequency)
			require.NoError(t, err)
			assert.Equal(t, tt.periods, result.PeriodsPerYear)
			assert.True(t, result.Annual.Equal(decimal.NewFromInt(93933)), "annual: got %s", result.Annual)
			assert.True(t, result.PerPeriod.Equal(decimal.NewFromInt(tt.perPeriod)), "per period: got %s", result.PerPeriod)
			assert.True(t, result.GrossPerPeriod.Equal(decimal.NewFromInt(tt.gross)), "gross: got %s", result.GrossPerPeriod)
		})
	}
}

func TestComputeTakeHomeDivisors(t *testing.T) {
	// 624 divides evenly by every frequency
	for _, f := range domain.PayFrequencies {
		result, err := ComputeTakeHome(decimal.NewFromInt(624), decimal.Zero, decimal.Zero, f)
		require.NoError(t, err)
		expected := decimal.NewFromInt(int64(624 / f.PeriodsPerYear()))
		assert.True(t, result.PerPeriod.Equal(expected), "%s: expected %s, got %s", f, expected, result.PerPeriod)
	}
}

func TestComputeTakeHomeNegative(t *testing.T) {
	result, err := ComputeTakeHome(decimal.NewFromInt(1000), decimal.NewFromInt(2000), decimal.Zero, domain.FrequencyMonthly)
	require.NoError(t, err)
	assert.True(t, result.Annual.Equal(decimal.NewFromInt(-1000)), "annual: got %s", result.Annual)
	assert.True(t, result.PerPeriod.Equal(decimal.NewFromInt(-83)), "per period: got %s", result.PerPeriod)
}

func TestComputeTakeHomeUnknownFrequency(t *testing.T) {
	_, err := ComputeTakeHome(decimal.NewFromInt(1000), decimal.Zero, decimal.Zero, domain.PayFrequency("daily"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildSalaryBreakdown(t *testing.T) {
	deductions := domain.DeductionResult{
		FederalTax:     decimal.NewFromInt(20000),
		StateTax:       decimal.NewFromInt(5000),
		SocialSecurity: decimal.NewFromInt(5000),
	}
	rows := BuildSalaryBreakdown(decimal.NewFromInt(100000), deductions, decimal.NewFromInt(70000))
	require.Len(t, rows, 3)

	assert.Equal(t, "Taxes", rows[0].Label)
	assert.True(t, rows[0].Percent.Equal(decimal.NewFromInt(25)), "got %s", rows[0].Percent)
	assert.Equal(t, "FICA and State Insurance Taxes", rows[1].Label)
	assert.True(t, rows[1].Percent.Equal(decimal.NewFromInt(5)), "got %s", rows[1].Percent)
	assert.Equal(t, "Take Home Salary", rows[2].Label)
	assert.True(t, rows[2].Percent.Equal(decimal.NewFromInt(70)), "got %s", rows[2].Percent)

	zero := BuildSalaryBreakdown(decimal.Zero, domain.DeductionResult{}, decimal.Zero)
	for _, row := range zero {
		assert.True(t, row.Percent.IsZero(), "%s: expected zero share", row.Label)
	}
}
