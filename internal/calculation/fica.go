package calculation

import (
	"github.com/salarycalc/salary-calculator/internal/domain"
	money "github.com/salarycalc/salary-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FICACalculator handles FICA tax calculations
type FICACalculator struct {
	SSRate       decimal.Decimal
	SSCap        decimal.Decimal // maximum annual Social Security contribution
	MedicareRate decimal.Decimal
}

// NewFICACalculator creates a new FICA calculator with configurable values
func NewFICACalculator(config domain.FICATaxConfig) *FICACalculator {
	return &FICACalculator{
		SSRate:       config.SocialSecurityRate,
		SSCap:        config.SocialSecurityCap,
		MedicareRate: config.MedicareRate,
	}
}

// ComputeFICA calculates Social Security (capped) and Medicare (uncapped) contributions.
// Allowances never apply to FICA.
func (fc *FICACalculator) ComputeFICA(salary decimal.Decimal) domain.FICABreakdown {
	ss := decimal.Min(salary.Mul(fc.SSRate), fc.SSCap)
	medicare := salary.Mul(fc.MedicareRate)
	return domain.FICABreakdown{
		SocialSecurity: money.Whole(ss),
		Medicare:       money.Whole(medicare),
	}
}

// SSWageBase is the salary at which the Social Security cap starts to bind.
func (fc *FICACalculator) SSWageBase() decimal.Decimal {
	if fc.SSRate.IsZero() {
		return decimal.Zero
	}
	return fc.SSCap.Div(fc.SSRate)
}
