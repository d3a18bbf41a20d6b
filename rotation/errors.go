// SPDX-License-Identifier: MIT

package rotation

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match with errors.Is; facades wrap them with an operation tag.
var (
	// ErrTooFewFactors is returned when the loading matrix has fewer than two
	// factor columns or no variable rows; a pairwise rotation needs a pair.
	ErrTooFewFactors = errors.New("rotation: loading matrix needs at least 1 row and 2 factor columns")

	// ErrNilCriterion is returned when New receives a nil Criterion.
	ErrNilCriterion = errors.New("rotation: criterion is nil")

	// ErrUnknownCriterion is returned by ParseKind for names outside
	// varimax/equimax/quartimax.
	ErrUnknownCriterion = errors.New("rotation: unknown criterion")

	// ErrInvalidMaxIterations is returned when Iterate gets a bound below 1.
	ErrInvalidMaxIterations = errors.New("rotation: max iterations must be >= 1")

	// ErrAlreadyIterated is returned by a second Iterate call on the same engine.
	// A rotation run owns its working state; build a fresh engine per run.
	ErrAlreadyIterated = errors.New("rotation: engine already iterated; construct a new one")
)

// Operation tags for error wrapping.
const (
	opNew       = "rotation.New"
	opIterate   = "rotation.Iterate"
	opRotate    = "rotation.Rotate"
	opRotateAll = "rotation.RotateAll"
	opParseKind = "rotation.ParseKind"
)

// rotationErrorf wraps err with an operation tag, preserving it for errors.Is.
func rotationErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
