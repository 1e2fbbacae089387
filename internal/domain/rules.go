package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxMode selects the federal tax strategy.
type TaxMode string

const (
	// TaxModeProgressive applies the marginal bracket table after the standard deduction.
	TaxModeProgressive TaxMode = "progressive"
	// TaxModeFlat applies FederalTaxConfig.FlatRate to the whole salary.
	TaxModeFlat TaxMode = "flat"
)

// ParseTaxMode resolves a user supplied tax mode.
func ParseTaxMode(s string) (TaxMode, error) {
	switch normalizeKey(s) {
	case "", "progressive", "brackets", "marginal":
		return TaxModeProgressive, nil
	case "flat", "flatrate":
		return TaxModeFlat, nil
	}
	return "", fmt.Errorf("%w: unknown tax mode %q (want progressive or flat)", ErrInvalidInput, s)
}

// Rules holds every rate, table and plan the engines read. Values are illustrative
// placeholders, not current tax law.
type Rules struct {
	Name          string              `yaml:"name" json:"name" toml:"name"`
	TaxMode       TaxMode             `yaml:"tax_mode" json:"tax_mode" toml:"tax_mode"`
	FederalTax    FederalTaxConfig    `yaml:"federal_tax" json:"federal_tax" toml:"federal_tax"`
	StateLocalTax StateLocalTaxConfig `yaml:"state_local_tax" json:"state_local_tax" toml:"state_local_tax"`
	Allowances    AllowanceConfig     `yaml:"allowances" json:"allowances" toml:"allowances"`
	FICA          FICATaxConfig       `yaml:"fica" json:"fica" toml:"fica"`
	Budget        BudgetPlan          `yaml:"budget" json:"budget" toml:"budget"`
}

// FederalTaxConfig contains federal tax settings
type FederalTaxConfig struct {
	FlatRate decimal.Decimal `yaml:"flat_rate" json:"flat_rate" toml:"flat_rate"` // used only in flat mode
	Single   BracketTable    `yaml:"single" json:"single" toml:"single"`
	Married  BracketTable    `yaml:"married" json:"married" toml:"married"`
}

// Table returns the bracket table for a marital status.
func (c FederalTaxConfig) Table(status MaritalStatus) (BracketTable, error) {
	switch status {
	case StatusSingle:
		return c.Single, nil
	case StatusMarried:
		return c.Married, nil
	}
	return BracketTable{}, fmt.Errorf("%w: no bracket table for marital status %q", ErrInvalidInput, status)
}

// BracketTable is a progressive schedule with its matching standard deduction.
// Brackets are ordered by strictly increasing UpTo; the last bracket has no bound.
type BracketTable struct {
	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction" toml:"standard_deduction"`
	Brackets          []TaxBracket    `yaml:"brackets" json:"brackets" toml:"brackets"`
}

// TaxBracket is one slice of a progressive schedule. UpTo is inclusive; nil means unbounded.
type TaxBracket struct {
	UpTo *decimal.Decimal `yaml:"up_to,omitempty" json:"up_to,omitempty" toml:"up_to,omitempty"`
	Rate decimal.Decimal  `yaml:"rate" json:"rate" toml:"rate"`
}

// Unbounded reports whether the bracket extends to infinity.
func (b TaxBracket) Unbounded() bool { return b.UpTo == nil }

// StateLocalTaxConfig contains the flat state and local rates.
type StateLocalTaxConfig struct {
	StateRate decimal.Decimal `yaml:"state_rate" json:"state_rate" toml:"state_rate"`
	LocalRate decimal.Decimal `yaml:"local_rate" json:"local_rate" toml:"local_rate"`
}

// AllowanceConfig controls the per-allowance reduction multiplier (1 - Step*n).
type AllowanceConfig struct {
	Step decimal.Decimal `yaml:"step" json:"step" toml:"step"`
	// ClampAtZero floors the multiplier at 0. Disabling it lets ten or more allowances
	// produce a zero or negative tax.
	ClampAtZero bool `yaml:"clamp_at_zero" json:"clamp_at_zero" toml:"clamp_at_zero"`
}

// FICATaxConfig contains FICA tax settings
type FICATaxConfig struct {
	SocialSecurityRate decimal.Decimal `yaml:"social_security_rate" json:"social_security_rate" toml:"social_security_rate"`
	SocialSecurityCap  decimal.Decimal `yaml:"social_security_cap" json:"social_security_cap" toml:"social_security_cap"` // maximum annual contribution, not wage base
	MedicareRate       decimal.Decimal `yaml:"medicare_rate" json:"medicare_rate" toml:"medicare_rate"`
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func bound(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// progressiveRates are shared by both default tables.
var progressiveRates = []string{"0.10", "0.12", "0.22", "0.24", "0.32", "0.35", "0.37"}

func bracketTable(deduction string, bounds ...string) BracketTable {
	brackets := make([]TaxBracket, len(progressiveRates))
	for i, r := range progressiveRates {
		brackets[i] = TaxBracket{Rate: dec(r)}
		if i < len(bounds) {
			brackets[i].UpTo = bound(bounds[i])
		}
	}
	return BracketTable{StandardDeduction: dec(deduction), Brackets: brackets}
}

// DefaultRules returns the built-in progressive rules with the detailed budget plan.
func DefaultRules() Rules {
	return Rules{
		Name:    "default",
		TaxMode: TaxModeProgressive,
		FederalTax: FederalTaxConfig{
			FlatRate: dec("0.22"),
			Single:   bracketTable("11600", "11600", "44725", "95375", "182100", "231250", "578125"),
			Married:  bracketTable("23200", "23200", "89450", "190750", "364200", "462500", "693750"),
		},
		StateLocalTax: StateLocalTaxConfig{
			StateRate: dec("0.05"),
			LocalRate: dec("0.01"),
		},
		Allowances: AllowanceConfig{
			Step:        dec("0.1"),
			ClampAtZero: true,
		},
		FICA: FICATaxConfig{
			SocialSecurityRate: dec("0.062"),
			SocialSecurityCap:  dec("9932.40"),
			MedicareRate:       dec("0.0145"),
		},
		Budget: DetailedBudgetPlan(),
	}
}

// FlatRules returns DefaultRules switched to the flat federal rate with the simple 50/30/20 plan.
func FlatRules() Rules {
	r := DefaultRules()
	r.Name = "flat"
	r.TaxMode = TaxModeFlat
	r.Budget = SimpleBudgetPlan()
	return r
}
