package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/use-agent/seoscan/bootstrap"
	"github.com/use-agent/seoscan/config"
	"github.com/use-agent/seoscan/models"
	"github.com/use-agent/seoscan/report"
	"github.com/use-agent/seoscan/scan"
)

// scanner is the subset of *scan.Scanner the command uses.
type scanner interface {
	Scan(ctx context.Context, rawURL string) (*models.ScanResult, error)
}

// newScanner is replaced in tests.
var newScanner = func(cfg *config.Config) scanner {
	return bootstrap.NewScanner(cfg, bootstrap.NewLogger(cfg.Log, os.Stderr))
}

// newScanCmd creates the scan command.
func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <url>",
		Short: "Scan one URL and print the report",
		Long: `Scan runs one audit of the given URL and prints the result.

Examples:
  # JSON output (same shape as POST /scan)
  seoscan-cli scan https://example.com

  # Markdown report
  seoscan-cli scan --markdown https://example.com`,
		Args: cobra.ExactArgs(1),
		RunE: runScanCmd,
	}

	cmd.Flags().BoolP("markdown", "m", false, "Output the report in Markdown format")
	cmd.Flags().DurationP("timeout", "t", 0, "Per-call provider timeout (default from SEOSCAN_CALL_TIMEOUT, 30s)")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	markdownOutput, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil {
		return err
	}

	// Validate before loading providers so bad input fails fast.
	target, err := scan.Validate(args[0])
	if err != nil {
		return userError(err)
	}

	cfg := config.Load()
	cfg.Log.Format = "text"
	if timeout > 0 {
		cfg.Scan.CallTimeout = timeout
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := newScanner(cfg).Scan(ctx, target)
	if err != nil {
		return userError(err)
	}

	var w report.Writer = report.NewJSONWriter(cmd.OutOrStdout())
	if markdownOutput {
		w = report.NewMarkdownWriter(cmd.OutOrStdout())
	}
	return w.Write(target, result)
}

// userError reduces a scan failure to its user-facing message.
func userError(err error) error {
	var se *models.ScanError
	if errors.As(err, &se) {
		return errors.New(se.Message)
	}
	return err
}
