// SPDX-License-Identifier: MIT

package main

import "errors"

// Flag and input errors reported by the commands.
var (
	errNoMatrix         = errors.New("input has no matrix")
	errLabelMismatch    = errors.New("label count does not match matrix shape")
	errUnknownFormat    = errors.New("unknown output format")
	errNoReports        = errors.New("nothing to print")
	errInvalidPrecision = errors.New("precision must be finite and > 0")
	errInvalidFactors   = errors.New("factors must be >= 0")
	errInvalidWorkers   = errors.New("workers must be >= 1")
)
