package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/parsec/formatter"
	"github.com/gnolang/parsec/ingest"
)

var errParseFailed = fmt.Errorf("some files failed to parse: %w", errReported)

var (
	parseJsonOutput bool
	outPath         string
	watch           bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [paths...]",
	Short: "Parse record files and directories",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := ingest.New(cfgFile)
		if err != nil {
			logger.Error("Failed to initialize parse engine", zap.Error(err))
			return err
		}

		if watch {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return runWatch(ctx, logger, engine, args, cmd.OutOrStdout())
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return runParseProcess(ctx, logger, engine, args, cmd.OutOrStdout(), parseJsonOutput, outPath)
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseJsonOutput, "json", false, "Output reports in JSON format")
	parseCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	parseCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-parse files when they change")
}

func runParseProcess(
	ctx context.Context,
	logger *zap.Logger,
	engine ingest.RecordEngine,
	paths []string,
	out io.Writer,
	isJson bool,
	jsonOutput string,
) error {
	reports, err := ingest.ProcessFiles(ctx, logger, engine, paths, ingest.ProcessFile)
	if err != nil && !errors.Is(err, ingest.ErrUnreadable) {
		logger.Error("Error processing files", zap.Error(err))
		return err
	}
	unreadable := err

	if err := printReports(reports, out, isJson, jsonOutput); err != nil {
		logger.Error("Error writing reports", zap.Error(err))
		return err
	}

	if unreadable != nil {
		logger.Error("Some files could not be read", zap.Error(unreadable))
		return fmt.Errorf("%w: %w", errParseFailed, unreadable)
	}
	for _, report := range reports {
		if report.Failed() {
			return errParseFailed
		}
	}
	return nil
}

func printReports(reports []ingest.Report, out io.Writer, isJson bool, jsonOutput string) error {
	if !isJson {
		// text output
		_, err := fmt.Fprint(out, formatter.GenerateFormattedReports(reports, verbose))
		return err
	}

	// JSON output
	d, err := json.Marshal(reports)
	if err != nil {
		return fmt.Errorf("error marshalling reports to JSON: %w", err)
	}
	if jsonOutput == "" {
		_, err = fmt.Fprintln(out, string(d))
		return err
	}
	return os.WriteFile(jsonOutput, d, 0o644)
}

func runWatch(ctx context.Context, logger *zap.Logger, engine ingest.RecordEngine, paths []string, out io.Writer) error {
	logger.Info("Watching for changes", zap.Strings("paths", paths))
	return ingest.Watch(ctx, logger, engine, paths, func(report ingest.Report) {
		fmt.Fprint(out, formatter.FormatReport(report, verbose))
	})
}
