package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/JoBlockins/concept2-data-analyzer/internal/config"
	"github.com/JoBlockins/concept2-data-analyzer/internal/recorder"
	"github.com/JoBlockins/concept2-data-analyzer/internal/report"
	"github.com/JoBlockins/concept2-data-analyzer/internal/xslog"
)

const maxAnalyzeConcurrency = 4

func analyzeCmd() *cobra.Command {
	var (
		splitDistance float64
		asJSON        bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [recording...]",
		Short: "Analyze recorded workout files",
		Long:  "Loads one or more recording CSVs, computes the workout summary and split analysis, and prints a report per file.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			ctx = xslog.WithLogger(ctx, xslog.NewLogger(os.Stderr, cfg.Level()))

			if splitDistance == 0 {
				splitDistance = cfg.SplitDistance
			}
			if splitDistance <= 0 {
				return fmt.Errorf("split distance must be positive, got %g", splitDistance)
			}

			type analyzed struct {
				workout report.Workout
				ok      bool
			}
			results := make([]analyzed, len(args))

			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(maxAnalyzeConcurrency)
			for i, path := range args {
				g.Go(func() error {
					samples, err := recorder.Load(path)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}

					workout, ok := report.Build(path, samples, splitDistance)
					xslog.FromContext(gctx).DebugContext(gctx, "analyzed recording",
						xslog.Path(path),
						xslog.Samples(len(samples)),
						xslog.Splits(len(workout.Splits)),
					)

					results[i] = analyzed{workout: workout, ok: ok}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			// reports print in argument order regardless of load order
			for i, res := range results {
				if !res.ok {
					fmt.Fprintf(os.Stderr, "%s: no data to analyze\n", args[i])
					continue
				}

				if asJSON {
					if err := res.workout.WriteJSON(os.Stdout); err != nil {
						return err
					}
					continue
				}

				if len(args) > 1 {
					fmt.Printf("%s\n", args[i])
				}
				fmt.Print(res.workout.Text())
			}

			return nil
		},
	}

	cmd.Flags().Float64Var(&splitDistance, "split", 0, "split distance in meters (defaults to C2_SPLIT_DISTANCE)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit reports as JSON")

	return cmd
}
