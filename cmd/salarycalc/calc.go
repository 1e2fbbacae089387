package main

import (
	"fmt"

	"github.com/salarycalc/salary-calculator/internal/config"
	"github.com/salarycalc/salary-calculator/internal/domain"
	"github.com/salarycalc/salary-calculator/internal/logging"
	"github.com/salarycalc/salary-calculator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type calcOptions struct {
	input     string
	payType   string
	amount    string
	hours     string
	status    string
	federal   int
	state     int
	local     int
	exempt    bool
	frequency string
	format    string
	outputDir string
	rules     rulesFlags
}

func newCalcCmd(root *rootOptions) *cobra.Command {
	opts := &calcOptions{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate taxes, take-home pay and the budget",
		Example: "  salarycalc calc --amount 131000 --federal 1 --state 1\n" +
			"  salarycalc calc --type hourly --amount 15 --hours 40 --frequency bi-weekly\n" +
			"  salarycalc calc --input pay.yaml --format html --output reports",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalc(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "Pay input file (YAML, JSON or TOML); flags override its values")
	f.StringVar(&opts.payType, "type", "salary", "Pay type: salary or hourly")
	f.StringVarP(&opts.amount, "amount", "a", "", "Annual salary, or hourly rate with --type hourly")
	f.StringVar(&opts.hours, "hours", "", "Hours per week (hourly pay only)")
	f.StringVarP(&opts.status, "status", "s", "single", "Marital status: single or married")
	f.IntVar(&opts.federal, "federal", 0, "Federal withholding allowances")
	f.IntVar(&opts.state, "state", 0, "State withholding allowances")
	f.IntVar(&opts.local, "local", 0, "Local withholding allowances")
	f.BoolVar(&opts.exempt, "exempt", false, "Exempt from taxes and FICA")
	f.StringVarP(&opts.frequency, "frequency", "f", "monthly", "Pay frequency: monthly, semi-monthly, bi-weekly or weekly")
	f.StringVar(&opts.format, "format", "console", "Report format, or 'all' with --output")
	f.StringVarP(&opts.outputDir, "output", "o", "", "Write the report to this directory instead of stdout")
	opts.rules.register(cmd)

	return cmd
}

// payInput merges the input file (if any) with the flags the user set explicitly.
func (o *calcOptions) payInput(cmd *cobra.Command, parser *config.InputParser) (*domain.PayInput, error) {
	in := &domain.PayInput{}
	if o.input != "" {
		loaded, err := parser.LoadFromFile(o.input)
		if err != nil {
			return nil, err
		}
		in = loaded
	} else if o.amount == "" {
		return nil, fmt.Errorf("%w: --amount or --input is required", domain.ErrInvalidInput)
	}

	flags := cmd.Flags()
	useFlag := func(name string) bool { return o.input == "" || flags.Changed(name) }

	if useFlag("type") {
		in.PayType = domain.PayType(o.payType)
	}
	if useFlag("amount") {
		amount, err := decimal.NewFromString(o.amount)
		if err != nil {
			return nil, fmt.Errorf("%w: --amount %q is not a number", domain.ErrInvalidInput, o.amount)
		}
		in.Amount = amount
	}
	if useFlag("hours") && o.hours != "" {
		hours, err := decimal.NewFromString(o.hours)
		if err != nil {
			return nil, fmt.Errorf("%w: --hours %q is not a number", domain.ErrInvalidInput, o.hours)
		}
		in.HoursPerWeek = hours
	}
	if useFlag("status") {
		in.MaritalStatus = domain.MaritalStatus(o.status)
	}
	if useFlag("federal") {
		in.Allowances.Federal = o.federal
	}
	if useFlag("state") {
		in.Allowances.State = o.state
	}
	if useFlag("local") {
		in.Allowances.Local = o.local
	}
	if useFlag("exempt") {
		in.TaxExempt = o.exempt
	}
	if useFlag("frequency") {
		in.PayFrequency = domain.PayFrequency(o.frequency)
	}

	if err := parser.ValidatePayInput(in); err != nil {
		return nil, err
	}
	return in, nil
}

func runCalc(cmd *cobra.Command, root *rootOptions, opts *calcOptions) error {
	logger, err := root.newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	parser := config.NewInputParser()
	parser.SetLogger(logging.Sugar(logger))

	rules, err := opts.rules.load(parser)
	if err != nil {
		return err
	}
	in, err := opts.payInput(cmd, parser)
	if err != nil {
		return err
	}

	calc, err := newEngine(rules, logger).Calculate(cmd.Context(), *in)
	if err != nil {
		return err
	}

	if opts.outputDir != "" {
		paths, err := output.SaveReport(calc, opts.format, opts.outputDir)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "Report saved to %s\n", p)
		}
		return nil
	}
	return output.GenerateReport(cmd.OutOrStdout(), calc, opts.format)
}
