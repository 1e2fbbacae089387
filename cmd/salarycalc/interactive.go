package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/salarycalc/salary-calculator/internal/config"
	"github.com/salarycalc/salary-calculator/internal/domain"
	"github.com/salarycalc/salary-calculator/internal/logging"
	"github.com/salarycalc/salary-calculator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// interactiveValues are the raw answers collected by the form.
type interactiveValues struct {
	status    string
	payType   string
	amount    string
	hours     string
	frequency string
	federal   string
	state     string
	local     string
	exempt    bool
}

func newInteractiveCmd(root *rootOptions) *cobra.Command {
	rf := &rulesFlags{}
	var format string

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Enter your work info in a terminal form",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vals := interactiveValues{
				status:    string(domain.StatusSingle),
				payType:   string(domain.PayTypeSalary),
				amount:    "131000",
				hours:     "40",
				frequency: string(domain.FrequencyMonthly),
				federal:   "1",
				state:     "1",
				local:     "0",
			}
			if err := newWorkInfoForm(&vals).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return err
			}

			logger, err := root.newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			parser := config.NewInputParser()
			parser.SetLogger(logging.Sugar(logger))
			rules, err := rf.load(parser)
			if err != nil {
				return err
			}

			in, err := vals.payInput()
			if err != nil {
				return err
			}
			if err := parser.ValidatePayInput(&in); err != nil {
				return err
			}
			calc, err := newEngine(rules, logger).Calculate(cmd.Context(), in)
			if err != nil {
				return err
			}
			return output.GenerateReport(cmd.OutOrStdout(), calc, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "console", "Report format")
	rf.register(cmd)
	return cmd
}

func newWorkInfoForm(vals *interactiveValues) *huh.Form {
	frequencies := make([]huh.Option[string], 0, len(domain.PayFrequencies))
	for _, f := range domain.PayFrequencies {
		frequencies = append(frequencies, huh.NewOption(f.Label(), string(f)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Marital status").
				Options(huh.NewOption("Single", string(domain.StatusSingle)), huh.NewOption("Married", string(domain.StatusMarried))).
				Value(&vals.status),
			huh.NewSelect[string]().
				Title("Job").
				Options(huh.NewOption("Salary", string(domain.PayTypeSalary)), huh.NewOption("Hourly", string(domain.PayTypeHourly))).
				Value(&vals.payType),
			huh.NewInput().
				Title("Salary per year or hourly rate").
				Validate(validateAmount).
				Value(&vals.amount),
			huh.NewInput().
				Title("Hours per week").
				Description("Only used for hourly pay").
				Validate(validateOptionalAmount).
				Value(&vals.hours),
			huh.NewSelect[string]().
				Title("Pay frequency").
				Options(frequencies...).
				Value(&vals.frequency),
		),
		huh.NewGroup(
			huh.NewInput().Title("Federal allowances").Validate(validateCount).Value(&vals.federal),
			huh.NewInput().Title("State allowances").Validate(validateCount).Value(&vals.state),
			huh.NewInput().Title("Local allowances").Validate(validateCount).Value(&vals.local),
			huh.NewConfirm().Title("Exempt from taxes?").Value(&vals.exempt),
		),
	)
}

func parseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer(",", "", "$", "", " ", "").Replace(s)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q cannot be negative", domain.ErrInvalidInput, s)
	}
	return d, nil
}

func validateAmount(s string) error {
	_, err := parseAmount(s)
	return err
}

func validateOptionalAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validateAmount(s)
}

func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q is not a whole number of allowances", domain.ErrInvalidInput, s)
	}
	return n, nil
}

func validateCount(s string) error {
	_, err := parseCount(s)
	return err
}

func (v interactiveValues) payInput() (domain.PayInput, error) {
	in := domain.PayInput{
		PayType:       domain.PayType(v.payType),
		MaritalStatus: domain.MaritalStatus(v.status),
		PayFrequency:  domain.PayFrequency(v.frequency),
		TaxExempt:     v.exempt,
	}
	var err error
	if in.Amount, err = parseAmount(v.amount); err != nil {
		return in, err
	}
	if strings.TrimSpace(v.hours) != "" {
		if in.HoursPerWeek, err = parseAmount(v.hours); err != nil {
			return in, err
		}
	}
	if in.Allowances.Federal, err = parseCount(v.federal); err != nil {
		return in, err
	}
	if in.Allowances.State, err = parseCount(v.state); err != nil {
		return in, err
	}
	if in.Allowances.Local, err = parseCount(v.local); err != nil {
		return in, err
	}
	return in, nil
}
