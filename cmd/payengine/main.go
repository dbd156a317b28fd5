package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	csvadapter "github.com/iho/payengine/internal/adapter/csv"
	"github.com/iho/payengine/internal/domain"
	"github.com/iho/payengine/internal/infrastructure/config"
	"github.com/iho/payengine/internal/infrastructure/logger"
	"github.com/iho/payengine/internal/infrastructure/metrics"
	"github.com/iho/payengine/internal/usecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "payengine",
		Short: "Payment transaction engine",
		Long: `Applies a CSV of deposits, withdrawals and disputes to per-client
accounts and reports the final balances as CSV.`,
		SilenceUsage: true,
	}

	var outputPath string
	processCmd := &cobra.Command{
		Use:   "process <transactions.csv>",
		Short: "Process a transactions file and print the account report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
			return runProcess(cmd.Context(), log, args[0], outputPath)
		},
	}
	processCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the report to a file instead of stdout")
	rootCmd.AddCommand(processCmd)

	return rootCmd
}

func runProcess(ctx context.Context, log zerolog.Logger, inputPath, outputPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	input, err := os.Open(inputPath)
	if err != nil {
		log.Error().Err(err).Str("path", inputPath).Msg("cannot open transactions file")
		return err
	}
	defer func() { _ = input.Close() }()

	var output io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			log.Error().Err(err).Str("path", outputPath).Msg("cannot create report file")
			return err
		}
		defer func() { _ = f.Close() }()
		output = f
	}

	ledger := domain.NewLedger()
	engine := usecase.NewEngine(ledger, log, metrics.New(prometheus.NewRegistry()))

	report, err := engine.Run(ctx, csvadapter.NewReader(input))
	if err != nil {
		log.Error().Err(err).Str("run_id", report.RunID).Msg("run aborted")
		return err
	}

	if err := engine.WriteSnapshot(csvadapter.NewWriter(output)); err != nil {
		log.Error().Err(err).Str("run_id", report.RunID).Msg("cannot write report")
		return err
	}

	log.Info().
		Str("run_id", report.RunID).
		Int("processed", report.Processed).
		Int("applied", report.Applied).
		Int("rejected", report.Rejected).
		Int("accounts", ledger.Size()).
		Msg("run complete")

	return nil
}
