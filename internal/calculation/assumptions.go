package calculation

import (
	"fmt"
	"strings"

	"github.com/salarycalc/salary-calculator/internal/domain"
	money "github.com/salarycalc/salary-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func percentLabel(rate decimal.Decimal) string {
	return rate.Mul(hundred).String() + "%"
}

// Assumptions describes the rules in plain sentences for reports.
func Assumptions(rules domain.Rules) []string {
	var out []string

	switch rules.TaxMode {
	case domain.TaxModeFlat:
		out = append(out, fmt.Sprintf("Federal tax: flat %s of gross salary", percentLabel(rules.FederalTax.FlatRate)))
	default:
		out = append(out, fmt.Sprintf("Federal tax: progressive brackets after a standard deduction of %s (single) / %s (married)",
			money.NewMoneyFromDecimal(rules.FederalTax.Single.StandardDeduction).FormatWhole(),
			money.NewMoneyFromDecimal(rules.FederalTax.Married.StandardDeduction).FormatWhole()))
	}

	out = append(out, fmt.Sprintf("State tax: %s flat; local tax: %s flat",
		percentLabel(rules.StateLocalTax.StateRate), percentLabel(rules.StateLocalTax.LocalRate)))

	floor := "floored at zero"
	if !rules.Allowances.ClampAtZero {
		floor = "not floored"
	}
	out = append(out, fmt.Sprintf("Allowances: each reduces the jurisdiction's tax by %s (%s)", percentLabel(rules.Allowances.Step), floor))

	out = append(out, fmt.Sprintf("Social Security: %s capped at %s per year; Medicare: %s uncapped",
		percentLabel(rules.FICA.SocialSecurityRate),
		money.NewMoneyFromDecimal(rules.FICA.SocialSecurityCap).Format(),
		percentLabel(rules.FICA.MedicareRate)))

	groups := make([]string, 0, len(domain.BudgetGroups))
	for _, g := range domain.BudgetGroups {
		groups = append(groups, fmt.Sprintf("%s %s", g.Label(), percentLabel(rules.Budget.GroupPercent(g))))
	}
	out = append(out, fmt.Sprintf("Budget plan: %s (%s)", rules.Budget.Name, strings.Join(groups, " / ")))

	out = append(out, "Rates are illustrative placeholders, not current tax law")
	return out
}
