// SPDX-License-Identifier: MIT

package factor

// Test bridge: exposes unexported kernels to factor_test only.
// The _test.go suffix keeps it out of production builds.

// NormalizeSigns_TestOnly is normalizeSigns.
var NormalizeSigns_TestOnly = normalizeSigns
