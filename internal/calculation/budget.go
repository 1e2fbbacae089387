package calculation

import (
	"github.com/salarycalc/salary-calculator/internal/domain"
	money "github.com/salarycalc/salary-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// BudgetAllocator maps periodic take-home pay onto a budget plan.
type BudgetAllocator struct {
	Plan domain.BudgetPlan
}

// NewBudgetAllocator creates an allocator for a plan
func NewBudgetAllocator(plan domain.BudgetPlan) *BudgetAllocator {
	return &BudgetAllocator{Plan: plan}
}

// Allocate returns one line per plan category, in plan order, with
// amount = round(takeHome * percent). Zero and negative take-home scale linearly.
func (ba *BudgetAllocator) Allocate(periodicTakeHome decimal.Decimal) []domain.BudgetLine {
	lines := make([]domain.BudgetLine, 0, len(ba.Plan.Categories))
	for _, c := range ba.Plan.Categories {
		lines = append(lines, domain.BudgetLine{
			Category: c,
			Amount:   money.Whole(periodicTakeHome.Mul(c.Percent)),
		})
	}
	return lines
}

// GroupTotals sums line amounts and category percentages per group, in needs/wants/savings
// order. Groups without lines are omitted.
func GroupTotals(lines []domain.BudgetLine) []domain.GroupTotal {
	totals := make([]domain.GroupTotal, 0, len(domain.BudgetGroups))
	for _, g := range domain.BudgetGroups {
		gt := domain.GroupTotal{Group: g}
		found := false
		for _, l := range lines {
			if l.Category.Group != g {
				continue
			}
			found = true
			gt.Amount = gt.Amount.Add(l.Amount)
			gt.Percent = gt.Percent.Add(l.Category.Percent)
		}
		if found {
			totals = append(totals, gt)
		}
	}
	return totals
}

// LinesForGroup filters lines to one group, preserving order.
func LinesForGroup(lines []domain.BudgetLine, g domain.BudgetGroup) []domain.BudgetLine {
	var out []domain.BudgetLine
	for _, l := range lines {
		if l.Category.Group == g {
			out = append(out, l)
		}
	}
	return out
}
