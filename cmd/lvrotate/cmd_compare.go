// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvfactor/rotation"
)

func compareCmd() *cobra.Command {
	var (
		f       rotateFlags
		workers int
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Rotate the same loadings with every criterion and summarize",
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers < 1 {
				return errInvalidWorkers
			}
			opts, err := f.options()
			if err != nil {
				return err
			}
			in, b, err := readInput(f.input, cmd.InOrStdin())
			if err != nil {
				return err
			}

			if err = interrupted(cmd); err != nil {
				return err
			}

			results, err := rotation.RotateKinds(b, rotation.Kinds(), f.maxIter, append(opts, rotation.WithWorkers(workers))...)
			if err != nil {
				return err
			}
			reports := make([]*report, len(results))
			for i, res := range results {
				if err = interrupted(cmd); err != nil {
					return err
				}
				logResult(res)
				if reports[i], err = newReport(res, in.Variables, in.Factors); err != nil {
					return err
				}
			}

			if strings.EqualFold(f.format, "summary") {
				return writeSummary(cmd.OutOrStdout(), reports)
			}

			return writeReports(cmd.OutOrStdout(), f.format, reports...)
		},
	}
	f.register(cmd, "summary")
	cmd.Flags().IntVar(&workers, "workers", len(rotation.Kinds()), "criteria rotated concurrently")
	if err := cmd.Flags().MarkHidden("criterion"); err != nil {
		log.Debug().Err(err).Msg("hide criterion flag")
	}
	if err := cmd.Flags().MarkHidden("plot"); err != nil {
		log.Debug().Err(err).Msg("hide plot flag")
	}

	return cmd
}

// writeSummary prints one line per criterion: sweeps, convergence, the
// variance carried by each factor and the largest factor's share of the total.
func writeSummary(w io.Writer, reports []*report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "criterion\titerations\tconverged\tvariance\tmax share\n")
	for _, r := range reports {
		parts := make([]string, len(r.ExplainedVariance))
		for i, v := range r.ExplainedVariance {
			parts[i] = fmt.Sprintf("%.4f", v)
		}
		share := 0.0
		if r.TotalVariance > 0 {
			share = floats.Max(r.ExplainedVariance) / r.TotalVariance
		}
		fmt.Fprintf(tw, "%s\t%d\t%t\t%s\t%.4f\n", r.Criterion, r.Iterations, r.Converged, strings.Join(parts, " "), share)
	}

	return tw.Flush()
}
