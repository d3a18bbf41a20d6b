// SPDX-License-Identifier: MIT

package factor

import (
	"errors"
	"fmt"
)

// Sentinel errors for extraction. Match with errors.Is.
var (
	// ErrTooFewObservations is returned when the data matrix has fewer than two rows.
	ErrTooFewObservations = errors.New("factor: need at least 2 observations")

	// ErrTooFewVariables is returned when fewer than two variables are given;
	// a rotation needs at least two retained components.
	ErrTooFewVariables = errors.New("factor: need at least 2 variables")

	// ErrComponentsOutOfRange is returned when WithComponents asks for more
	// components than there are variables.
	ErrComponentsOutOfRange = errors.New("factor: requested components exceed variables")
)

const (
	opPCA                = "factor.PCA"
	opPCAFromCorrelation = "factor.PCAFromCorrelation"
)

func factorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
