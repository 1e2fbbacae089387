package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/salarycalc/salary-calculator/internal/calculation"
	"github.com/salarycalc/salary-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// maxHoursPerWeek is the number of hours in a week.
const maxHoursPerWeek = 168

// InputParser handles parsing of pay input and rules files
type InputParser struct {
	logger calculation.Logger
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{logger: calculation.NopLogger{}}
}

// SetLogger sets the logger used for validation warnings. If nil is provided, a no-op logger is used.
func (ip *InputParser) SetLogger(l calculation.Logger) {
	if l == nil {
		ip.logger = calculation.NopLogger{}
		return
	}
	ip.logger = l
}

// decodeFile reads filename and decodes it into out. ".toml" files use TOML; everything
// else (.yaml, .yml, .json) goes through the YAML decoder, which also accepts JSON.
func decodeFile(filename string, out interface{}) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		if _, err := toml.Decode(string(data), out); err != nil {
			return fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	return nil
}

// LoadFromFile loads a pay input from a YAML, JSON or TOML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.PayInput, error) {
	var input domain.PayInput
	if err := decodeFile(filename, &input); err != nil {
		return nil, err
	}

	if err := ip.ValidatePayInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// LoadRulesFromFile loads rules from a YAML, JSON or TOML file. Fields the file omits
// keep their DefaultRules values; lists (brackets, budget categories) are replaced whole.
func (ip *InputParser) LoadRulesFromFile(filename string) (*domain.Rules, error) {
	rules := domain.DefaultRules()
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		// TOML arrays of tables decode into the existing elements, so any list the
		// file defines has to start empty.
		var scan domain.Rules
		if md, err := toml.DecodeFile(filename, &scan); err == nil {
			if md.IsDefined("federal_tax", "single", "brackets") {
				rules.FederalTax.Single.Brackets = nil
			}
			if md.IsDefined("federal_tax", "married", "brackets") {
				rules.FederalTax.Married.Brackets = nil
			}
			if md.IsDefined("budget", "categories") {
				rules.Budget.Categories = nil
			}
		}
	}
	if err := decodeFile(filename, &rules); err != nil {
		return nil, err
	}

	if err := ip.ValidateRules(&rules); err != nil {
		return nil, fmt.Errorf("rules validation failed: %w", err)
	}

	return &rules, nil
}

// ValidatePayInput normalizes enum spellings in place and rejects negative or
// out-of-range values. Empty enums default to salary, single and monthly.
func (ip *InputParser) ValidatePayInput(input *domain.PayInput) error {
	var err error

	if input.PayType == "" {
		input.PayType = domain.PayTypeSalary
	}
	if input.PayType, err = domain.ParsePayType(string(input.PayType)); err != nil {
		return err
	}

	if input.MaritalStatus == "" {
		input.MaritalStatus = domain.StatusSingle
	}
	if input.MaritalStatus, err = domain.ParseMaritalStatus(string(input.MaritalStatus)); err != nil {
		return err
	}

	if input.PayFrequency == "" {
		input.PayFrequency = domain.FrequencyMonthly
	}
	if input.PayFrequency, err = domain.ParsePayFrequency(string(input.PayFrequency)); err != nil {
		return err
	}

	if input.Amount.IsNegative() {
		return fmt.Errorf("%w: amount cannot be negative", domain.ErrInvalidInput)
	}
	if input.PayType == domain.PayTypeHourly {
		if input.HoursPerWeek.IsNegative() {
			return fmt.Errorf("%w: hours per week cannot be negative", domain.ErrInvalidInput)
		}
		if input.HoursPerWeek.GreaterThan(decimal.NewFromInt(maxHoursPerWeek)) {
			return fmt.Errorf("%w: hours per week cannot exceed %d", domain.ErrInvalidInput, maxHoursPerWeek)
		}
	}

	a := input.Allowances
	if a.Federal < 0 || a.State < 0 || a.Local < 0 {
		return fmt.Errorf("%w: allowances cannot be negative", domain.ErrInvalidInput)
	}

	return nil
}

// isRate reports whether d lies in [0, 1].
func isRate(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(1))
}

// ValidateRules checks the rate tables and budget plan. A plan whose percentages do not
// sum to 100% is allowed but logged as a warning.
func (ip *InputParser) ValidateRules(rules *domain.Rules) error {
	mode, err := domain.ParseTaxMode(string(rules.TaxMode))
	if err != nil {
		return err
	}
	rules.TaxMode = mode

	if !isRate(rules.FederalTax.FlatRate) {
		return fmt.Errorf("%w: federal flat rate must be between 0 and 1", domain.ErrInvalidInput)
	}
	if err := validateBracketTable("single", rules.FederalTax.Single); err != nil {
		return err
	}
	if err := validateBracketTable("married", rules.FederalTax.Married); err != nil {
		return err
	}

	if !isRate(rules.StateLocalTax.StateRate) || !isRate(rules.StateLocalTax.LocalRate) {
		return fmt.Errorf("%w: state and local rates must be between 0 and 1", domain.ErrInvalidInput)
	}
	if rules.Allowances.Step.IsNegative() {
		return fmt.Errorf("%w: allowance step cannot be negative", domain.ErrInvalidInput)
	}
	if !isRate(rules.FICA.SocialSecurityRate) || !isRate(rules.FICA.MedicareRate) {
		return fmt.Errorf("%w: FICA rates must be between 0 and 1", domain.ErrInvalidInput)
	}
	if rules.FICA.SocialSecurityCap.IsNegative() {
		return fmt.Errorf("%w: social security cap cannot be negative", domain.ErrInvalidInput)
	}

	return ip.validateBudgetPlan(&rules.Budget)
}

// validateBracketTable requires strictly increasing bounds with only the last bracket unbounded
func validateBracketTable(name string, table domain.BracketTable) error {
	if table.StandardDeduction.IsNegative() {
		return fmt.Errorf("%w: %s standard deduction cannot be negative", domain.ErrInvalidInput, name)
	}
	if len(table.Brackets) == 0 {
		return fmt.Errorf("%w: %s bracket table is empty", domain.ErrInvalidInput, name)
	}

	lower := decimal.Zero
	for i, b := range table.Brackets {
		if !isRate(b.Rate) {
			return fmt.Errorf("%w: %s bracket %d rate must be between 0 and 1", domain.ErrInvalidInput, name, i+1)
		}
		last := i == len(table.Brackets)-1
		if b.Unbounded() {
			if !last {
				return fmt.Errorf("%w: %s bracket %d is unbounded but not last", domain.ErrInvalidInput, name, i+1)
			}
			continue
		}
		if last {
			return fmt.Errorf("%w: %s last bracket must be unbounded", domain.ErrInvalidInput, name)
		}
		if !b.UpTo.GreaterThan(lower) {
			return fmt.Errorf("%w: %s bracket %d bound %s must exceed %s", domain.ErrInvalidInput, name, i+1, b.UpTo, lower)
		}
		lower = *b.UpTo
	}
	return nil
}

func (ip *InputParser) validateBudgetPlan(plan *domain.BudgetPlan) error {
	if len(plan.Categories) == 0 {
		return fmt.Errorf("%w: budget plan has no categories", domain.ErrInvalidInput)
	}
	if plan.Name == "" {
		plan.Name = "custom"
	}

	for i := range plan.Categories {
		c := &plan.Categories[i]
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("%w: budget category %d has no name", domain.ErrInvalidInput, i+1)
		}
		group, err := domain.ParseBudgetGroup(string(c.Group))
		if err != nil {
			return fmt.Errorf("budget category %q: %w", c.Name, err)
		}
		c.Group = group
		if !isRate(c.Percent) {
			return fmt.Errorf("%w: budget category %q percent must be between 0 and 1", domain.ErrInvalidInput, c.Name)
		}
	}

	if total := plan.TotalPercent(); !total.Equal(decimal.NewFromInt(1)) {
		ip.logger.Warnf("budget plan %q allocates %s%% of take-home, not 100%%", plan.Name, total.Mul(decimal.NewFromInt(100)).String())
	}
	return nil
}

// CreateExampleInput creates the example pay input used by the example command
func (ip *InputParser) CreateExampleInput() *domain.PayInput {
	return &domain.PayInput{
		PayType:       domain.PayTypeSalary,
		Amount:        decimal.NewFromInt(131000),
		MaritalStatus: domain.StatusSingle,
		Allowances: domain.Allowances{
			Federal: 1,
			State:   1,
			Local:   0,
		},
		PayFrequency: domain.FrequencyMonthly,
	}
}

// MarshalExampleInput renders the example input as YAML
func (ip *InputParser) MarshalExampleInput() ([]byte, error) {
	data, err := yaml.Marshal(ip.CreateExampleInput())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal example input: %w", err)
	}
	return data, nil
}
