package calculation

import (
	"testing"

	"github.com/salarycalc/salary-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFICACalculation(t *testing.T) {
	calculator := NewFICACalculator(domain.DefaultRules().FICA)

	tests := []struct {
		name             string
		salary           decimal.Decimal
		expectedSS       decimal.Decimal
		expectedMedicare decimal.Decimal
	}{
		{
			name:             "Zero salary",
			salary:           decimal.Zero,
			expectedSS:       decimal.Zero,
			expectedMedicare: decimal.Zero,
		},
		{
			name:             "Below the wage base",
			salary:           decimal.NewFromInt(131000),
			expectedSS:       decimal.NewFromInt(8122),
			expectedMedicare: decimal.NewFromInt(1900), // 1899.5 rounds half to even
		},
		{
			name:             "Exactly the wage base",
			salary:           decimal.NewFromInt(160200),
			expectedSS:       decimal.NewFromInt(9932),
			expectedMedicare: decimal.NewFromInt(2323),
		},
		{
			name:             "Above the wage base",
			salary:           decimal.NewFromInt(200000),
			expectedSS:       decimal.NewFromInt(9932),
			expectedMedicare: decimal.NewFromInt(2900),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calculator.ComputeFICA(tt.salary)
			assert.True(t, result.SocialSecurity.Equal(tt.expectedSS),
				"social security: expected %s, got %s", tt.expectedSS, result.SocialSecurity)
			assert.True(t, result.Medicare.Equal(tt.expectedMedicare),
				"medicare: expected %s, got %s", tt.expectedMedicare, result.Medicare)
		})
	}
}

func TestFICAExampleTotal(t *testing.T) {
	result := ComputeFICA(decimal.NewFromInt(131000))
	assert.True(t, result.Total().Equal(decimal.NewFromInt(10022)), "got %s", result.Total())
}

func TestFICASocialSecurityCapped(t *testing.T) {
	calculator := NewFICACalculator(domain.DefaultRules().FICA)
	assert.True(t, calculator.SSWageBase().Equal(decimal.NewFromInt(160200)), "got %s", calculator.SSWageBase())

	previousSS := decimal.Zero
	previousMedicare := decimal.Zero
	for salary := int64(0); salary <= 1000000; salary += 5000 {
		result := calculator.ComputeFICA(decimal.NewFromInt(salary))
		assert.True(t, result.SocialSecurity.LessThanOrEqual(decimal.NewFromInt(9932)), "salary %d: ss %s above cap", salary, result.SocialSecurity)
		assert.True(t, result.SocialSecurity.GreaterThanOrEqual(previousSS), "salary %d: ss decreased", salary)
		assert.True(t, result.Medicare.GreaterThanOrEqual(previousMedicare), "salary %d: medicare decreased", salary)
		previousSS = result.SocialSecurity
		previousMedicare = result.Medicare
	}
	assert.True(t, previousMedicare.Equal(decimal.NewFromInt(14500)), "medicare is uncapped, got %s", previousMedicare)
}
