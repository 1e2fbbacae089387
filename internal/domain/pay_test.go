package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayType(t *testing.T) {
	testCases := []struct {
		input    string
		expected PayType
	}{
		{"salary", PayTypeSalary},
		{"Salaried", PayTypeSalary},
		{" hourly ", PayTypeHourly},
		{"HOUR", PayTypeHourly},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParsePayType(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}

	_, err := ParsePayType("commission")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "commission")
}

func TestParseMaritalStatus(t *testing.T) {
	for input, expected := range map[string]MaritalStatus{
		"single":                 StatusSingle,
		"S":                      StatusSingle,
		"married":                StatusMarried,
		"MFJ":                    StatusMarried,
		"married_filing_jointly": StatusMarried,
		"Married Filing Jointly": StatusMarried,
	} {
		got, err := ParseMaritalStatus(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, got, input)
	}

	_, err := ParseMaritalStatus("widowed")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParsePayFrequency(t *testing.T) {
	testCases := []struct {
		input    string
		expected PayFrequency
		periods  int
	}{
		{"monthly", FrequencyMonthly, 12},
		{"Semi-Monthly", FrequencySemiMonthly, 24},
		{"semi_monthly", FrequencySemiMonthly, 24},
		{"biweekly", FrequencyBiWeekly, 26},
		{"Bi-weekly", FrequencyBiWeekly, 26},
		{"weekly", FrequencyWeekly, 52},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParsePayFrequency(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, tc.periods, got.PeriodsPerYear())
		})
	}

	_, err := ParsePayFrequency("daily")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPayFrequencyUnknown(t *testing.T) {
	f := PayFrequency("quarterly")
	assert.Equal(t, 0, f.PeriodsPerYear())
	assert.Equal(t, "quarterly", f.Label())
	assert.Equal(t, "Bi-weekly", FrequencyBiWeekly.Label())
}
