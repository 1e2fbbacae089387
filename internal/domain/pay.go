package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput is returned (wrapped) for negative amounts and unknown enum keys.
var ErrInvalidInput = errors.New("invalid input")

// PayType selects how PayInput.Amount is interpreted.
type PayType string

const (
	PayTypeSalary PayType = "salary"
	PayTypeHourly PayType = "hourly"
)

// MaritalStatus selects the federal bracket table.
type MaritalStatus string

const (
	StatusSingle  MaritalStatus = "single"
	StatusMarried MaritalStatus = "married"
)

// PayFrequency is the number of paychecks per year, named.
type PayFrequency string

const (
	FrequencyMonthly     PayFrequency = "monthly"
	FrequencySemiMonthly PayFrequency = "semi-monthly"
	FrequencyBiWeekly    PayFrequency = "bi-weekly"
	FrequencyWeekly      PayFrequency = "weekly"
)

// PayFrequencies lists the supported frequencies in display order.
var PayFrequencies = []PayFrequency{FrequencyMonthly, FrequencySemiMonthly, FrequencyBiWeekly, FrequencyWeekly}

// PeriodsPerYear returns the divisor for the frequency, or 0 if it is unknown.
func (f PayFrequency) PeriodsPerYear() int {
	switch f {
	case FrequencyMonthly:
		return 12
	case FrequencySemiMonthly:
		return 24
	case FrequencyBiWeekly:
		return 26
	case FrequencyWeekly:
		return 52
	}
	return 0
}

// Label returns the human readable frequency name.
func (f PayFrequency) Label() string {
	switch f {
	case FrequencyMonthly:
		return "Monthly"
	case FrequencySemiMonthly:
		return "Semi-monthly"
	case FrequencyBiWeekly:
		return "Bi-weekly"
	case FrequencyWeekly:
		return "Weekly"
	}
	return string(f)
}

// Allowances holds withholding allowance counts per jurisdiction.
type Allowances struct {
	Federal int `yaml:"federal" json:"federal" toml:"federal"`
	State   int `yaml:"state" json:"state" toml:"state"`
	Local   int `yaml:"local" json:"local" toml:"local"`
}

// PayInput is the complete, immutable input of one evaluation.
type PayInput struct {
	PayType       PayType         `yaml:"pay_type" json:"pay_type" toml:"pay_type"`
	Amount        decimal.Decimal `yaml:"amount" json:"amount" toml:"amount"` // annual salary, or hourly rate when PayType is hourly
	HoursPerWeek  decimal.Decimal `yaml:"hours_per_week,omitempty" json:"hours_per_week,omitempty" toml:"hours_per_week,omitempty"`
	MaritalStatus MaritalStatus   `yaml:"marital_status" json:"marital_status" toml:"marital_status"`
	Allowances    Allowances      `yaml:"allowances" json:"allowances" toml:"allowances"`
	TaxExempt     bool            `yaml:"tax_exempt" json:"tax_exempt" toml:"tax_exempt"`
	PayFrequency  PayFrequency    `yaml:"pay_frequency" json:"pay_frequency" toml:"pay_frequency"`
}

// normalizeKey lowercases and strips separators so "Bi-weekly", "biweekly" and
// "BI_WEEKLY" compare equal.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "", "/", "").Replace(s)
}

// ParsePayType resolves a user supplied pay type.
func ParsePayType(s string) (PayType, error) {
	switch normalizeKey(s) {
	case "salary", "salaried", "annual":
		return PayTypeSalary, nil
	case "hourly", "hour":
		return PayTypeHourly, nil
	}
	return "", fmt.Errorf("%w: unknown pay type %q (want salary or hourly)", ErrInvalidInput, s)
}

// ParseMaritalStatus resolves a user supplied marital status.
func ParseMaritalStatus(s string) (MaritalStatus, error) {
	switch normalizeKey(s) {
	case "single", "s":
		return StatusSingle, nil
	case "married", "m", "mfj", "marriedfilingjointly":
		return StatusMarried, nil
	}
	return "", fmt.Errorf("%w: unknown marital status %q (want single or married)", ErrInvalidInput, s)
}

// ParsePayFrequency resolves a user supplied pay frequency.
func ParsePayFrequency(s string) (PayFrequency, error) {
	switch normalizeKey(s) {
	case "monthly", "month":
		return FrequencyMonthly, nil
	case "semimonthly", "twicemonthly":
		return FrequencySemiMonthly, nil
	case "biweekly", "fortnightly":
		return FrequencyBiWeekly, nil
	case "weekly", "week":
		return FrequencyWeekly, nil
	}
	return "", fmt.Errorf("%w: unknown pay frequency %q (want monthly, semi-monthly, bi-weekly or weekly)", ErrInvalidInput, s)
}
