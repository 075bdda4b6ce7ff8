package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dugoutlabs/fieldscore/internal/adapters/repository"
	app "github.com/dugoutlabs/fieldscore/internal/app"
	"github.com/dugoutlabs/fieldscore/pkg/logger"
)

func analyzeCmd() *cobra.Command {
	var (
		predict    bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <stats-file>",
		Short: "Score a defensive stats file (JSON or CSV)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), cmd.OutOrStdout(), args[0], predict, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&predict, "predict", true, "predict scores for unplayed positions")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit JSON instead of a table")
	return cmd
}

func runAnalyze(ctx context.Context, out io.Writer, path string, predict, jsonOutput bool) error {
	if err := logger.Init(); err != nil {
		return err
	}

	svc := app.New(app.WithPredictAllPositions(predict))
	if err := svc.Start(ctx); err != nil {
		return err
	}
	defer svc.Stop()

	summary, err := svc.AnalyzeFile(ctx, path)
	if err != nil {
		return err
	}

	players := svc.Players(ctx)
	table := make(map[string][]repository.PositionScore, len(players))
	for _, player := range players {
		scores, err := svc.PlayerScores(ctx, player)
		if err != nil {
			return err
		}
		table[player] = scores
	}

	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Summary app.Summary                            `json:"summary"`
			Scores  map[string][]repository.PositionScore `json:"scores"`
		}{Summary: summary, Scores: table})
	}

	sort.Strings(players)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLAYER\tPOSITION\tSCORE\tPREDICTED")
	for _, player := range players {
		for _, ps := range table[player] {
			mark := ""
			if ps.Predicted {
				mark = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\n", player, ps.Position, ps.Score, mark)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d players, %d facts, %d predictions\n",
		summary.Players, summary.Facts, summary.Predictions)
	return nil
}
