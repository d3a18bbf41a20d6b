// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfactor/factor"
	"github.com/katalvlaran/lvfactor/rotation"
)

// noRotation skips the rotation step of pca.
const noRotation = "none"

func pcaCmd() *cobra.Command {
	var (
		f       rotateFlags
		factors int
	)
	cmd := &cobra.Command{
		Use:   "pca",
		Short: "Extract principal-component loadings from data, then rotate them",
		Long: "Reads a data matrix (rows = observations, columns = variables), extracts\n" +
			"principal components from its correlation matrix and rotates the loadings.\n" +
			"Column labels come from the columns key.\n" +
			"--factors 0 keeps components with eigenvalue >= 1 (at least two).\n" +
			"--criterion none prints the unrotated loadings.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if factors < 0 {
				return errInvalidFactors
			}
			in, data, err := readInput(f.input, cmd.InOrStdin())
			if err != nil {
				return err
			}

			var popts []factor.Option
			if factors > 0 {
				popts = append(popts, factor.WithComponents(factors))
			}
			if err = interrupted(cmd); err != nil {
				return err
			}

			ex, err := factor.PCA(data, popts...)
			if err != nil {
				return err
			}
			log.Info().Int("components", ex.Components).Floats64("eigenvalues", ex.Eigenvalues).Msg("components extracted")

			// Columns of the data are the variables of the loading matrix.
			variables := in.Columns
			components := make([]string, ex.Components)
			for i := range components {
				components[i] = fmt.Sprintf("PC%d", i+1)
			}

			if err = interrupted(cmd); err != nil {
				return err
			}

			var rep *report
			if strings.EqualFold(strings.TrimSpace(f.criterion), noRotation) {
				if rep, err = unrotatedReport(ex.Loadings, variables, components); err != nil {
					return err
				}
			} else {
				kind, err := rotation.ParseKind(f.criterion)
				if err != nil {
					return err
				}
				opts, err := f.options()
				if err != nil {
					return err
				}
				res, err := rotation.Rotate(ex.Loadings, kind.Criterion(), f.maxIter, opts...)
				if err != nil {
					return err
				}
				logResult(res)
				if rep, err = newReport(res, variables, components); err != nil {
					return err
				}
			}
			rep.Eigenvalues = ex.Eigenvalues

			if f.plotPath != "" {
				if err = savePlot(f.plotPath, rep); err != nil {
					return err
				}
				log.Info().Str("path", f.plotPath).Msg("plot written")
			}

			return writeReports(cmd.OutOrStdout(), f.format, rep)
		},
	}
	f.register(cmd, "yaml")
	cmd.Flags().IntVar(&factors, "factors", 0, "number of components to keep (0 = Kaiser rule)")

	return cmd
}
