package calculation

import (
	"testing"

	"github.com/salarycalc/salary-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIncome(t *testing.T) {
	tests := []struct {
		name     string
		payType  domain.PayType
		amount   string
		hours    string
		expected string
	}{
		{"Salary passes through", domain.PayTypeSalary, "131000", "0", "131000"},
		{"Salary keeps cents", domain.PayTypeSalary, "52000.50", "0", "52000.5"},
		{"Hourly full time", domain.PayTypeHourly, "15", "40", "31200"},
		{"Hourly part time", domain.PayTypeHourly, "22.50", "20", "23400"},
		{"Hourly rounds to whole dollars", domain.PayTypeHourly, "12.345", "37", "23752"}, // 23751.78
		{"Hourly zero hours", domain.PayTypeHourly, "30", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeIncome(tt.payType, decimal.RequireFromString(tt.amount), decimal.RequireFromString(tt.hours))
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestNormalizeIncomeUnknownPayType(t *testing.T) {
	_, err := NormalizeIncome(domain.PayType("commission"), decimal.NewFromInt(1), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
