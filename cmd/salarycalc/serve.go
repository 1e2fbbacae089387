package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/salarycalc/salary-calculator/internal/config"
	"github.com/salarycalc/salary-calculator/internal/domain"
	"github.com/salarycalc/salary-calculator/internal/logging"
	"github.com/salarycalc/salary-calculator/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var envFile, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator page and JSON API over HTTP",
		Long: "Serve the interactive calculator at / and the JSON API under /api/v1.\n" +
			"Settings come from the environment, optionally loaded from a .env file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadServerConfig(envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = root.logLevel
			}

			logger, err := logging.New(logging.Config{Level: cfg.LogLevel, EnableJSON: cfg.LogJSON})
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			parser := config.NewInputParser()
			parser.SetLogger(logging.Sugar(logger))
			rules := domain.DefaultRules()
			if cfg.RulesFile != "" {
				loaded, err := parser.LoadRulesFromFile(cfg.RulesFile)
				if err != nil {
					return err
				}
				rules = *loaded
				logger.Info("Loaded rules", zap.String("file", cfg.RulesFile), zap.String("name", rules.Name))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, newEngine(rules, logger), logger).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "Environment file to load; missing files are ignored")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides SALARYCALC_ADDR)")
	return cmd
}
