package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BudgetGroup is one of the three top-level groups of the 50/30/20 model.
type BudgetGroup string

const (
	GroupNeeds   BudgetGroup = "needs"
	GroupWants   BudgetGroup = "wants"
	GroupSavings BudgetGroup = "savings"
)

// BudgetGroups lists the groups in display order.
var BudgetGroups = []BudgetGroup{GroupNeeds, GroupWants, GroupSavings}

// Label returns the capitalized group name.
func (g BudgetGroup) Label() string {
	switch g {
	case GroupNeeds:
		return "Needs"
	case GroupWants:
		return "Wants"
	case GroupSavings:
		return "Savings"
	}
	return string(g)
}

// ParseBudgetGroup resolves a group name from a rules file.
func ParseBudgetGroup(s string) (BudgetGroup, error) {
	switch normalizeKey(s) {
	case "needs", "necessities":
		return GroupNeeds, nil
	case "wants":
		return GroupWants, nil
	case "savings", "saving":
		return GroupSavings, nil
	}
	return "", fmt.Errorf("%w: unknown budget group %q", ErrInvalidInput, s)
}

// BudgetCategory is one row of the static budget table.
type BudgetCategory struct {
	Name    string          `yaml:"name" json:"name" toml:"name"`
	Group   BudgetGroup     `yaml:"group" json:"group" toml:"group"`
	Percent decimal.Decimal `yaml:"percent" json:"percent" toml:"percent"` // fraction of periodic take-home
	Tip     string          `yaml:"tip,omitempty" json:"tip,omitempty" toml:"tip,omitempty"`
}

// BudgetPlan is a named, ordered category table. Percentages are declared, not enforced.
type BudgetPlan struct {
	Name       string           `yaml:"name" json:"name" toml:"name"`
	Categories []BudgetCategory `yaml:"categories" json:"categories" toml:"categories"`
}

// GroupPercent sums the declared percentages of a group.
func (p BudgetPlan) GroupPercent(g BudgetGroup) decimal.Decimal {
	total := decimal.Zero
	for _, c := range p.Categories {
		if c.Group == g {
			total = total.Add(c.Percent)
		}
	}
	return total
}

// TotalPercent sums every declared percentage of the plan.
func (p BudgetPlan) TotalPercent() decimal.Decimal {
	total := decimal.Zero
	for _, c := range p.Categories {
		total = total.Add(c.Percent)
	}
	return total
}

// DetailedBudgetPlan is the subcategory breakdown of the 50/30/20 rule.
func DetailedBudgetPlan() BudgetPlan {
	return BudgetPlan{
		Name: "detailed",
		Categories: []BudgetCategory{
			{Name: "Housing (Rent/Mortgage)", Group: GroupNeeds, Percent: dec("0.15"), Tip: "Keep rent or mortgage payments at or below this share."},
			{Name: "Utilities", Group: GroupNeeds, Percent: dec("0.05"), Tip: "Electricity, water, internet and phone."},
			{Name: "Groceries", Group: GroupNeeds, Percent: dec("0.10"), Tip: "Plan meals and buy staples in bulk."},
			{Name: "Transportation", Group: GroupNeeds, Percent: dec("0.10"), Tip: "Car payment, fuel, transit passes and parking."},
			{Name: "Insurance", Group: GroupNeeds, Percent: dec("0.05"), Tip: "Renter's, home, auto and life premiums."},
			{Name: "Healthcare", Group: GroupNeeds, Percent: dec("0.05"), Tip: "Premiums, copays and prescriptions."},
			{Name: "Entertainment", Group: GroupWants, Percent: dec("0.10"), Tip: "Streaming, events and hobbies."},
			{Name: "Shopping", Group: GroupWants, Percent: dec("0.10"), Tip: "Clothing and non-essential purchases."},
			{Name: "Dining Out", Group: GroupWants, Percent: dec("0.05"), Tip: "Restaurants, takeout and coffee."},
			{Name: "Health & Fitness", Group: GroupWants, Percent: dec("0.05"), Tip: "Gym memberships and classes."},
			{Name: "Emergency Fund", Group: GroupSavings, Percent: dec("0.10"), Tip: "Build toward three to six months of expenses."},
			{Name: "Investments", Group: GroupSavings, Percent: dec("0.05"), Tip: "Retirement accounts and brokerage contributions."},
			{Name: "Financial Goals", Group: GroupSavings, Percent: dec("0.05"), Tip: "Down payment, education or debt payoff."},
		},
	}
}

// SimpleBudgetPlan is the three-category 50/30/20 view.
func SimpleBudgetPlan() BudgetPlan {
	return BudgetPlan{
		Name: "simple",
		Categories: []BudgetCategory{
			{Name: "Necessities", Group: GroupNeeds, Percent: dec("0.50")},
			{Name: "Wants", Group: GroupWants, Percent: dec("0.30")},
			{Name: "Savings", Group: GroupSavings, Percent: dec("0.20")},
		},
	}
}

// BudgetPlanByName returns a built-in plan.
func BudgetPlanByName(name string) (BudgetPlan, error) {
	switch normalizeKey(name) {
	case "", "detailed", "detail", "full":
		return DetailedBudgetPlan(), nil
	case "simple", "503020", "summary":
		return SimpleBudgetPlan(), nil
	}
	return BudgetPlan{}, fmt.Errorf("%w: unknown budget plan %q (want detailed or simple)", ErrInvalidInput, name)
}
