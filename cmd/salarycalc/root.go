package main

import (
	"fmt"

	"github.com/salarycalc/salary-calculator/internal/calculation"
	"github.com/salarycalc/salary-calculator/internal/config"
	"github.com/salarycalc/salary-calculator/internal/domain"
	"github.com/salarycalc/salary-calculator/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootOptions struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "salarycalc",
		Short: "Salary, take-home and budget calculator",
		Long: "Compute federal, state and local taxes, FICA and take-home pay for a salary or hourly wage,\n" +
			"then split the take-home across a 50/30/20 needs/wants/savings budget.",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newCalcCmd(opts),
		newBudgetCmd(opts),
		newBracketsCmd(opts),
		newExampleCmd(),
		newInteractiveCmd(opts),
		newServeCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func (o *rootOptions) newLogger() (*zap.Logger, error) {
	logger, err := logging.NewCLI(o.logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return logger, nil
}

// rulesFlags selects and overrides the calculation rules.
type rulesFlags struct {
	file    string
	taxMode string
	plan    string
}

func (rf *rulesFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&rf.file, "rules", "", "Rules file (YAML, JSON or TOML) overlaid on the built-in rules")
	cmd.Flags().StringVar(&rf.taxMode, "tax-mode", "", "Federal tax mode: progressive or flat")
	cmd.Flags().StringVar(&rf.plan, "plan", "", "Budget plan: detailed or simple")
}

func (rf *rulesFlags) load(parser *config.InputParser) (domain.Rules, error) {
	rules := domain.DefaultRules()
	if rf.file != "" {
		loaded, err := parser.LoadRulesFromFile(rf.file)
		if err != nil {
			return domain.Rules{}, err
		}
		rules = *loaded
	}
	if rf.taxMode != "" {
		mode, err := domain.ParseTaxMode(rf.taxMode)
		if err != nil {
			return domain.Rules{}, err
		}
		rules.TaxMode = mode
	}
	if rf.plan != "" {
		plan, err := domain.BudgetPlanByName(rf.plan)
		if err != nil {
			return domain.Rules{}, err
		}
		rules.Budget = plan
	}
	return rules, nil
}

// newEngine builds a rules-aware engine logging through the CLI logger.
func newEngine(rules domain.Rules, logger *zap.Logger) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngineWithRules(rules)
	engine.SetLogger(logging.Sugar(logger))
	return engine
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "salarycalc %s\n", version)
		},
	}
}
