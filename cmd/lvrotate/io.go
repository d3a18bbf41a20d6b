// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvfactor/matrix"
	"github.com/katalvlaran/lvfactor/rotation"
)

// inputFile is the on-disk matrix document. JSON input parses as YAML.
//
// For a loading matrix, variables label the rows and factors the columns.
// For a data matrix (pca), columns label the variables.
type inputFile struct {
	Variables []string    `yaml:"variables,omitempty"`
	Factors   []string    `yaml:"factors,omitempty"`
	Columns   []string    `yaml:"columns,omitempty"`
	Matrix    [][]float64 `yaml:"matrix"`
}

// readInput decodes path ("-" for stdin) and builds the matrix.
// Missing labels are generated as v1..vn, F1..Fm and v1..vm.
func readInput(path string, stdin io.Reader) (*inputFile, *matrix.Dense, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	var in inputFile
	if err = yaml.Unmarshal(raw, &in); err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(in.Matrix) == 0 {
		return nil, nil, fmt.Errorf("decode %s: %w", path, errNoMatrix)
	}
	m, err := matrix.NewDenseFromRows(in.Matrix)
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}

	r, c := m.Shape()
	if in.Variables, err = labels(in.Variables, r, "v"); err != nil {
		return nil, nil, fmt.Errorf("variables: %w", err)
	}
	if in.Factors, err = labels(in.Factors, c, "F"); err != nil {
		return nil, nil, fmt.Errorf("factors: %w", err)
	}
	if in.Columns, err = labels(in.Columns, c, "v"); err != nil {
		return nil, nil, fmt.Errorf("columns: %w", err)
	}

	return &in, m, nil
}

func labels(given []string, n int, prefix string) ([]string, error) {
	if len(given) == 0 {
		out := make([]string, n)
		for i := range out {
			out[i] = fmt.Sprintf("%s%d", prefix, i+1)
		}
		return out, nil
	}
	if len(given) != n {
		return nil, fmt.Errorf("got %d, want %d: %w", len(given), n, errLabelMismatch)
	}

	return given, nil
}

// report is what every command prints.
type report struct {
	Criterion         string      `yaml:"criterion" json:"criterion"`
	Iterations        int         `yaml:"iterations" json:"iterations"`
	Converged         bool        `yaml:"converged" json:"converged"`
	Variables         []string    `yaml:"variables" json:"variables"`
	Factors           []string    `yaml:"factors" json:"factors"`
	Loadings          [][]float64 `yaml:"loadings" json:"loadings"`
	Transformation    [][]float64 `yaml:"transformation,omitempty" json:"transformation,omitempty"`
	Communalities     []float64   `yaml:"communalities" json:"communalities"`
	ExplainedVariance []float64   `yaml:"explained_variance" json:"explained_variance"`
	TotalVariance     float64     `yaml:"total_variance" json:"total_variance"`
	Eigenvalues       []float64   `yaml:"eigenvalues,omitempty" json:"eigenvalues,omitempty"`
}

// newReport freezes a rotation result together with its labels.
func newReport(res *rotation.Result, variables, factors []string) (*report, error) {
	explained, err := res.ExplainedVariance()
	if err != nil {
		return nil, err
	}

	return &report{
		Criterion:         res.Criterion,
		Iterations:        res.Iterations,
		Converged:         res.Converged,
		Variables:         variables,
		Factors:           factors,
		Loadings:          res.Rotated.ToRows(),
		Transformation:    res.Transformation.ToRows(),
		Communalities:     res.Communalities,
		ExplainedVariance: explained,
		TotalVariance:     floats.Sum(explained),
	}, nil
}

// unrotatedReport describes loadings that were not rotated.
func unrotatedReport(l *matrix.Dense, variables, factors []string) (*report, error) {
	h2, err := matrix.RowSumSquares(l)
	if err != nil {
		return nil, err
	}
	explained, err := matrix.ColSumSquares(l)
	if err != nil {
		return nil, err
	}

	return &report{
		Criterion:         "none",
		Converged:         true,
		Variables:         variables,
		Factors:           factors,
		Loadings:          l.ToRows(),
		Communalities:     h2,
		ExplainedVariance: explained,
		TotalVariance:     floats.Sum(explained),
	}, nil
}

// writeReports encodes reports in the requested format.
// yaml and json print a single document for one report and a list otherwise.
func writeReports(w io.Writer, format string, reports ...*report) error {
	if len(reports) == 0 {
		return errNoReports
	}
	var doc any = reports
	if len(reports) == 1 {
		doc = reports[0]
	}

	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		buf, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", buf)
		return err
	case "table":
		for i, r := range reports {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if err := writeTable(w, r); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", format, errUnknownFormat)
	}
}

// writeTable prints loadings with a communality column and a variance footer.
func writeTable(w io.Writer, r *report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\t", r.Criterion)
	for _, f := range r.Factors {
		fmt.Fprintf(tw, "%s\t", f)
	}
	fmt.Fprint(tw, "h2\t\n")

	for i, row := range r.Loadings {
		fmt.Fprintf(tw, "%s\t", r.Variables[i])
		for _, v := range row {
			fmt.Fprintf(tw, "%.4f\t", v)
		}
		fmt.Fprintf(tw, "%.4f\t\n", r.Communalities[i])
	}

	fmt.Fprint(tw, "variance\t")
	for _, v := range r.ExplainedVariance {
		fmt.Fprintf(tw, "%.4f\t", v)
	}
	fmt.Fprintf(tw, "%.4f\t\n", r.TotalVariance)
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "iterations=%d converged=%t\n", r.Iterations, r.Converged)

	return err
}
