package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	app "github.com/dugoutlabs/fieldscore/internal/app"
	"github.com/dugoutlabs/fieldscore/pkg/logger"
)

func matchupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matchup <matchup-file>",
		Short: "Score a lineup of batters against a pitcher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatchup(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}

func runMatchup(ctx context.Context, out io.Writer, path string) error {
	if err := logger.Init(); err != nil {
		return err
	}

	svc := app.New()
	if err := svc.Start(ctx); err != nil {
		return err
	}
	defer svc.Stop()

	results, err := svc.ScoreMatchupFile(ctx, path)
	if err != nil {
		return err
	}

	// Best matchups first, name as tiebreaker.
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if results[names[i]] != results[names[j]] {
			return results[names[i]] > results[names[j]]
		}
		return names[i] < names[j]
	})

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BATTER\tSCORE")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.1f\n", name, results[name])
	}
	return w.Flush()
}
