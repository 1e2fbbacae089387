package calculation

import (
	"context"
	"fmt"

	"github.com/salarycalc/salary-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine runs the full pay chain: normalize income, compute taxes and FICA,
// derive take-home and allocate the budget. It only reads its rules, so one engine may
// serve concurrent callers.
type CalculationEngine struct {
	Rules     domain.Rules
	TaxCalc   *ComprehensiveTaxCalculator
	FICACalc  *FICACalculator
	Allocator *BudgetAllocator
	Logger    Logger
}

// NewCalculationEngine creates a new calculation engine with the default rules
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithRules(domain.DefaultRules())
}

// NewCalculationEngineWithRules creates a calculation engine with configurable rules
func NewCalculationEngineWithRules(rules domain.Rules) *CalculationEngine {
	return &CalculationEngine{
		Rules:     rules,
		TaxCalc:   NewComprehensiveTaxCalculatorWithRules(rules),
		FICACalc:  NewFICACalculator(rules.FICA),
		Allocator: NewBudgetAllocator(rules.Budget),
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Calculate evaluates one pay input. Tax-exempt filers skip the tax and FICA engines
// entirely and keep their whole salary.
func (ce *CalculationEngine) Calculate(ctx context.Context, in domain.PayInput) (*domain.Calculation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	salary, err := NormalizeIncome(in.PayType, in.Amount, in.HoursPerWeek)
	if err != nil {
		return nil, err
	}
	ce.Logger.Debugf("normalized %s pay %s to annual salary %s", in.PayType, in.Amount, salary)

	var taxes domain.TaxBreakdown
	var fica domain.FICABreakdown
	if in.TaxExempt {
		ce.Logger.Debugf("tax exempt filer: skipping tax and FICA")
		taxes.Mode = ce.TaxCalc.FederalTaxCalc.Mode
	} else {
		taxes, err = ce.TaxCalc.ComputeTaxes(salary, in.MaritalStatus, in.Allowances)
		if err != nil {
			return nil, fmt.Errorf("compute taxes: %w", err)
		}
		fica = ce.FICACalc.ComputeFICA(salary)
	}
	deductions := domain.NewDeductionResult(taxes, fica)

	takeHome, err := ComputeTakeHome(salary, deductions.TotalTax(), deductions.TotalFICA(), in.PayFrequency)
	if err != nil {
		return nil, fmt.Errorf("compute take-home: %w", err)
	}
	if takeHome.Annual.IsNegative() {
		ce.Logger.Warnf("deductions %s exceed salary %s; take-home is negative", deductions.Total(), salary)
	}

	lines := ce.Allocator.Allocate(takeHome.PerPeriod)
	ce.Logger.Debugf("allocated %s per period across %d budget categories", takeHome.PerPeriod, len(lines))

	return &domain.Calculation{
		Input:           in,
		RulesName:       ce.Rules.Name,
		BudgetPlan:      ce.Allocator.Plan.Name,
		AnnualSalary:    salary,
		Taxes:           taxes,
		FICA:            fica,
		Deductions:      deductions,
		TakeHome:        takeHome,
		Budget:          lines,
		BudgetGroups:    GroupTotals(lines),
		SalaryBreakdown: BuildSalaryBreakdown(salary, deductions, takeHome.Annual),
		Assumptions:     Assumptions(ce.Rules),
	}, nil
}

// AllocateBudget allocates a periodic take-home directly, bypassing the tax chain.
func (ce *CalculationEngine) AllocateBudget(periodicTakeHome decimal.Decimal) ([]domain.BudgetLine, []domain.GroupTotal) {
	lines := ce.Allocator.Allocate(periodicTakeHome)
	return lines, GroupTotals(lines)
}

// defaultEngine backs the package-level helpers.
var defaultEngine = NewCalculationEngine()

// ComputeTaxes runs the default tax engine.
func ComputeTaxes(salary decimal.Decimal, status domain.MaritalStatus, allowances domain.Allowances) (domain.TaxBreakdown, error) {
	return defaultEngine.TaxCalc.ComputeTaxes(salary, status, allowances)
}

// ComputeFICA runs the default FICA engine.
func ComputeFICA(salary decimal.Decimal) domain.FICABreakdown {
	return defaultEngine.FICACalc.ComputeFICA(salary)
}

// AllocateBudget runs the default (detailed) budget allocator.
func AllocateBudget(periodicTakeHome decimal.Decimal) []domain.BudgetLine {
	return defaultEngine.Allocator.Allocate(periodicTakeHome)
}
