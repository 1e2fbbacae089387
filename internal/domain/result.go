package domain

import (
	"github.com/shopspring/decimal"
)

// TaxBreakdown is the Tax Engine output for one salary.
type TaxBreakdown struct {
	Mode                    TaxMode         `json:"mode"`
	StandardDeduction       decimal.Decimal `json:"standard_deduction"`
	TaxableIncome           decimal.Decimal `json:"taxable_income"`
	MarginalRate            decimal.Decimal `json:"marginal_rate"`
	FederalBeforeAllowances decimal.Decimal `json:"federal_before_allowances"`
	Federal                 decimal.Decimal `json:"federal"`
	State                   decimal.Decimal `json:"state"`
	Local                   decimal.Decimal `json:"local"`
}

// Total returns federal + state + local.
func (t TaxBreakdown) Total() decimal.Decimal {
	return t.Federal.Add(t.State).Add(t.Local)
}

// FICABreakdown is the FICA Engine output for one salary.
type FICABreakdown struct {
	SocialSecurity decimal.Decimal `json:"social_security"`
	Medicare       decimal.Decimal `json:"medicare"`
}

// Total returns Social Security + Medicare.
func (f FICABreakdown) Total() decimal.Decimal {
	return f.SocialSecurity.Add(f.Medicare)
}

// DeductionResult holds every computed deduction of one evaluation.
type DeductionResult struct {
	FederalTax     decimal.Decimal `json:"federal_tax"`
	StateTax       decimal.Decimal `json:"state_tax"`
	LocalTax       decimal.Decimal `json:"local_tax"`
	SocialSecurity decimal.Decimal `json:"social_security"`
	Medicare       decimal.Decimal `json:"medicare"`
}

// NewDeductionResult flattens the tax and FICA breakdowns.
func NewDeductionResult(tax TaxBreakdown, fica FICABreakdown) DeductionResult {
	return DeductionResult{
		FederalTax:     tax.Federal,
		StateTax:       tax.State,
		LocalTax:       tax.Local,
		SocialSecurity: fica.SocialSecurity,
		Medicare:       fica.Medicare,
	}
}

// TotalTax returns federal + state + local.
func (d DeductionResult) TotalTax() decimal.Decimal {
	return d.FederalTax.Add(d.StateTax).Add(d.LocalTax)
}

// TotalFICA returns Social Security + Medicare.
func (d DeductionResult) TotalFICA() decimal.Decimal {
	return d.SocialSecurity.Add(d.Medicare)
}

// Total returns every deduction combined.
func (d DeductionResult) Total() decimal.Decimal {
	return d.TotalTax().Add(d.TotalFICA())
}

// TakeHome is the Take-Home Calculator output. PerPeriod may be negative.
type TakeHome struct {
	Frequency      PayFrequency    `json:"frequency"`
	PeriodsPerYear int             `json:"periods_per_year"`
	Annual         decimal.Decimal `json:"annual"`
	PerPeriod      decimal.Decimal `json:"per_period"`
	GrossPerPeriod decimal.Decimal `json:"gross_per_period"`
}

// BudgetLine is one allocated category.
type BudgetLine struct {
	Category BudgetCategory  `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// GroupTotal aggregates the lines of one budget group.
type GroupTotal struct {
	Group   BudgetGroup     `json:"group"`
	Amount  decimal.Decimal `json:"amount"`
	Percent decimal.Decimal `json:"percent"`
}

// BreakdownRow is one slice of the salary breakdown (taxes, FICA, take-home).
type BreakdownRow struct {
	Label   string          `json:"label"`
	Amount  decimal.Decimal `json:"amount"`
	Percent decimal.Decimal `json:"percent"` // 0-100, share of gross salary
}

// Calculation is the complete result of one evaluation of a PayInput.
type Calculation struct {
	Input           PayInput        `json:"input"`
	RulesName       string          `json:"rules_name"`
	BudgetPlan      string          `json:"budget_plan"`
	AnnualSalary    decimal.Decimal `json:"annual_salary"`
	Taxes           TaxBreakdown    `json:"taxes"`
	FICA            FICABreakdown   `json:"fica"`
	Deductions      DeductionResult `json:"deductions"`
	TakeHome        TakeHome        `json:"take_home"`
	Budget          []BudgetLine    `json:"budget"`
	BudgetGroups    []GroupTotal    `json:"budget_groups"`
	SalaryBreakdown []BreakdownRow  `json:"salary_breakdown"`
	Assumptions     []string        `json:"assumptions,omitempty"`
}
