package calculation

import (
	"fmt"

	"github.com/salarycalc/salary-calculator/internal/domain"
	money "github.com/salarycalc/salary-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal tax: progressive brackets per marital status after a flat standard deduction
//    (Single 11,600 / Married 23,200). Flat mode taxes the whole salary at one rate instead.
//
// 2. State and local tax: flat percentages of gross salary (5% / 1%), no deduction.
//
// 3. Allowances: each allowance removes 10% of the jurisdiction's computed tax.
//    The multiplier is floored at zero unless the rules disable clamping.
//
// 4. Rates are illustrative placeholders and are not indexed for inflation.

// FederalTaxCalculator handles federal income tax calculations
type FederalTaxCalculator struct {
	Mode     domain.TaxMode
	FlatRate decimal.Decimal
	Single   domain.BracketTable
	Married  domain.BracketTable
}

// NewFederalTaxCalculator creates a federal tax calculator for the given mode and tables
func NewFederalTaxCalculator(config domain.FederalTaxConfig, mode domain.TaxMode) *FederalTaxCalculator {
	if mode == "" {
		mode = domain.TaxModeProgressive
	}
	return &FederalTaxCalculator{
		Mode:     mode,
		FlatRate: config.FlatRate,
		Single:   config.Single,
		Married:  config.Married,
	}
}

func (ftc *FederalTaxCalculator) table(status domain.MaritalStatus) (domain.BracketTable, error) {
	return domain.FederalTaxConfig{Single: ftc.Single, Married: ftc.Married}.Table(status)
}

// CalculateFederalTax computes federal tax before the allowance adjustment.
// Only the deduction, taxable income, marginal rate and pre-allowance federal fields are set.
func (ftc *FederalTaxCalculator) CalculateFederalTax(salary decimal.Decimal, status domain.MaritalStatus) (domain.TaxBreakdown, error) {
	out := domain.TaxBreakdown{Mode: ftc.Mode}

	switch ftc.Mode {
	case domain.TaxModeFlat:
		out.TaxableIncome = salary
		out.MarginalRate = ftc.FlatRate
		out.FederalBeforeAllowances = salary.Mul(ftc.FlatRate)
		return out, nil
	case domain.TaxModeProgressive:
	default:
		return out, fmt.Errorf("%w: unknown tax mode %q", domain.ErrInvalidInput, ftc.Mode)
	}

	table, err := ftc.table(status)
	if err != nil {
		return out, err
	}
	out.StandardDeduction = table.StandardDeduction

	taxable := salary.Sub(table.StandardDeduction)
	if taxable.LessThan(decimal.Zero) {
		out.TaxableIncome = decimal.Zero
		out.MarginalRate = decimal.Zero
		out.FederalBeforeAllowances = decimal.Zero
		return out, nil
	}

	out.TaxableIncome = taxable
	out.MarginalRate = MarginalRate(taxable, table.Brackets)
	out.FederalBeforeAllowances = ProgressiveTax(taxable, table.Brackets)
	return out, nil
}

// ProgressiveTax walks the brackets in ascending order and taxes only the slice of
// taxable income that falls inside each one.
func ProgressiveTax(taxable decimal.Decimal, brackets []domain.TaxBracket) decimal.Decimal {
	tax := decimal.Zero
	lower := decimal.Zero
	for _, b := range brackets {
		if taxable.LessThanOrEqual(lower) {
			break
		}
		upper := taxable
		if !b.Unbounded() && b.UpTo.LessThan(taxable) {
			upper = *b.UpTo
		}
		tax = tax.Add(upper.Sub(lower).Mul(b.Rate))
		if b.Unbounded() {
			break
		}
		lower = *b.UpTo
	}
	return tax
}

// MarginalRate returns the rate applied to the next dollar of taxable income.
func MarginalRate(taxable decimal.Decimal, brackets []domain.TaxBracket) decimal.Decimal {
	for _, b := range brackets {
		if b.Unbounded() || taxable.LessThan(*b.UpTo) {
			return b.Rate
		}
	}
	return decimal.Zero
}

// AllowanceAdjuster turns an allowance count into a tax multiplier.
type AllowanceAdjuster struct {
	Step        decimal.Decimal
	ClampAtZero bool
}

// NewAllowanceAdjuster creates an adjuster from the allowance rules
func NewAllowanceAdjuster(config domain.AllowanceConfig) AllowanceAdjuster {
	return AllowanceAdjuster{Step: config.Step, ClampAtZero: config.ClampAtZero}
}

// Multiplier returns 1 - Step*allowances, floored at zero when clamping is enabled.
func (a AllowanceAdjuster) Multiplier(allowances int) decimal.Decimal {
	m := decimal.NewFromInt(1).Sub(a.Step.Mul(decimal.NewFromInt(int64(allowances))))
	if a.ClampAtZero && m.IsNegative() {
		return decimal.Zero
	}
	return m
}

// Apply scales tax by the allowance multiplier and rounds to whole dollars.
func (a AllowanceAdjuster) Apply(tax decimal.Decimal, allowances int) decimal.Decimal {
	return money.Whole(tax.Mul(a.Multiplier(allowances)))
}

// FlatRateTaxCalculator handles flat-percentage state or local tax
type FlatRateTaxCalculator struct {
	Name string
	Rate decimal.Decimal
}

// NewStateTaxCalculator creates the state tax calculator from the configured rate
func NewStateTaxCalculator(config domain.StateLocalTaxConfig) *FlatRateTaxCalculator {
	return &FlatRateTaxCalculator{Name: "state", Rate: config.StateRate}
}

// NewLocalTaxCalculator creates the local tax calculator from the configured rate
func NewLocalTaxCalculator(config domain.StateLocalTaxConfig) *FlatRateTaxCalculator {
	return &FlatRateTaxCalculator{Name: "local", Rate: config.LocalRate}
}

// CalculateTax returns salary * rate before allowances.
func (c *FlatRateTaxCalculator) CalculateTax(salary decimal.Decimal) decimal.Decimal {
	return salary.Mul(c.Rate)
}

// ComprehensiveTaxCalculator handles all tax calculations
type ComprehensiveTaxCalculator struct {
	FederalTaxCalc *FederalTaxCalculator
	StateTaxCalc   *FlatRateTaxCalculator
	LocalTaxCalc   *FlatRateTaxCalculator
	Allowances     AllowanceAdjuster
}

// NewComprehensiveTaxCalculator creates a tax calculator with the default rules
func NewComprehensiveTaxCalculator() *ComprehensiveTaxCalculator {
	return NewComprehensiveTaxCalculatorWithRules(domain.DefaultRules())
}

// NewComprehensiveTaxCalculatorWithRules creates a tax calculator with configurable values
func NewComprehensiveTaxCalculatorWithRules(rules domain.Rules) *ComprehensiveTaxCalculator {
	return &ComprehensiveTaxCalculator{
		FederalTaxCalc: NewFederalTaxCalculator(rules.FederalTax, rules.TaxMode),
		StateTaxCalc:   NewStateTaxCalculator(rules.StateLocalTax),
		LocalTaxCalc:   NewLocalTaxCalculator(rules.StateLocalTax),
		Allowances:     NewAllowanceAdjuster(rules.Allowances),
	}
}

// ComputeTaxes calculates federal, state and local tax for an annual salary.
// Each jurisdiction is scaled by its own allowance count and rounded to whole dollars.
func (ctc *ComprehensiveTaxCalculator) ComputeTaxes(salary decimal.Decimal, status domain.MaritalStatus, allowances domain.Allowances) (domain.TaxBreakdown, error) {
	out, err := ctc.FederalTaxCalc.CalculateFederalTax(salary, status)
	if err != nil {
		return domain.TaxBreakdown{}, err
	}
	out.Federal = ctc.Allowances.Apply(out.FederalBeforeAllowances, allowances.Federal)
	out.State = ctc.Allowances.Apply(ctc.StateTaxCalc.CalculateTax(salary), allowances.State)
	out.Local = ctc.Allowances.Apply(ctc.LocalTaxCalc.CalculateTax(salary), allowances.Local)
	return out, nil
}
