// Package main provides the fieldscore binary entry point.
// Fieldscore evaluates baseball defensive statistics against
// position-specific rule sets, predicts performance at unplayed
// positions, and serves the results over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "fieldscore"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Baseball defensive performance scoring",
		Long: `Fieldscore scores baseball players' defensive performance on a
0-100 scale using position-specific boolean rule sets, and predicts how a
player would perform at positions they have not played using curated
position-similarity tables.

Run "fieldscore serve" to expose the scoring API over HTTP, or use the
analyze and matchup subcommands for one-shot file processing.`,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(analyzeCmd())
	cmd.AddCommand(matchupCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}
