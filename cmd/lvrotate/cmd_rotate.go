// SPDX-License-Identifier: MIT

package main

import (
	"math"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfactor/rotation"
)

// rotateFlags are shared by every command that runs a rotation.
type rotateFlags struct {
	input     string
	criterion string
	maxIter   int
	precision float64
	format    string
	plotPath  string
}

func (f *rotateFlags) register(cmd *cobra.Command, formatDefault string) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "-", "input YAML/JSON file (- for stdin)")
	cmd.Flags().StringVar(&f.criterion, "criterion", rotation.KindVarimax.String(), "criterion: varimax|equimax|quartimax")
	cmd.Flags().IntVar(&f.maxIter, "max-iter", rotation.DefaultMaxIterations, "maximum number of sweeps")
	cmd.Flags().Float64Var(&f.precision, "precision", rotation.MaxPrecision, "convergence threshold on sin|phi|")
	cmd.Flags().StringVar(&f.format, "format", formatDefault, "output format: yaml|json|table")
	cmd.Flags().StringVar(&f.plotPath, "plot", "", "write a factor 1 vs factor 2 scatter plot (png, svg, pdf)")
}

// options validates flag values before they reach the panicking constructors.
func (f *rotateFlags) options() ([]rotation.Option, error) {
	if !(f.precision > 0) || math.IsInf(f.precision, 0) {
		return nil, errInvalidPrecision
	}

	return []rotation.Option{
		rotation.WithPrecision(f.precision),
		rotation.WithLogger(log.Logger),
	}, nil
}

func rotateCmd() *cobra.Command {
	var f rotateFlags
	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Rotate a loading matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := rotation.ParseKind(f.criterion)
			if err != nil {
				return err
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

			res, err := rotation.Rotate(b, kind.Criterion(), f.maxIter, opts...)
			if err != nil {
				return err
			}
			logResult(res)

			rep, err := newReport(res, in.Variables, in.Factors)
			if err != nil {
				return err
			}
			if f.plotPath != "" {
				if err = savePlot(f.plotPath, rep); err != nil {
					return err
				}
				log.Info().Str("path", f.plotPath).Msg("plot written")
			}

			if err = interrupted(cmd); err != nil {
				return err
			}

			return writeReports(cmd.OutOrStdout(), f.format, rep)
		},
	}
	f.register(cmd, "yaml")

	return cmd
}

func logResult(res *rotation.Result) {
	ev := log.Info()
	if !res.Converged {
		ev = log.Warn()
	}
	ev.Str("criterion", res.Criterion).Int("iterations", res.Iterations).Bool("converged", res.Converged).Msg("rotation done")
}
