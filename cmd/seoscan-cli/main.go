package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seoscan-cli",
		Short: "Run Lighthouse-backed SEO scans from the command line",
		Long: `seoscan-cli audits a page through PageSpeed Insights, extracts its title,
meta description, first heading and scores, and asks Gemini for improvement
suggestions.

Configuration comes from the same environment variables as the server:
PAGESPEED_API_KEY and GEMINI_API_KEY are required.`,
		SilenceUsage: true,
	}
	cmd.SetErr(os.Stderr)
	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "seoscan-cli "+version)
		},
	})
	return cmd
}

const version = "0.1.0"
