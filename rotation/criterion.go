// SPDX-License-Identifier: MIT

package rotation

import "strings"

// Criterion is the simplicity objective a rotation maximizes.
//
// For every factor pair the engine reduces the two normalized loading columns
// x, y to four scalars over the n variable rows:
//
//	u_k = x_k² − y_k²,  v_k = 2·x_k·y_k
//	a = Σu,  b = Σv,  c = Σ(u² − v²),  d = Σ(2·u·v)
//
// and rotates the pair by phi = atan2(X(...), Y(...)) / 4.
// Implementations are stateless and must be safe for concurrent use.
type Criterion interface {
	// Name is the lower-case criterion identifier ("varimax", ...).
	Name() string
	// X is the numerator of tan(4·phi).
	X(a, b, c, d float64, n, m int) float64
	// Y is the denominator of tan(4·phi).
	Y(a, b, c, d float64, n, m int) float64
}

// Varimax maximizes the variance of squared loadings within each factor.
type Varimax struct{}

// Name implements Criterion.
func (Varimax) Name() string { return "varimax" }

// X returns d − 2ab/n.
func (Varimax) X(a, b, _, d float64, n, _ int) float64 {
	return d - (2 * a * b / float64(n))
}

// Y returns c − (a² − b²)/n.
func (Varimax) Y(a, b, c, _ float64, n, _ int) float64 {
	return c - ((a*a - b*b) / float64(n))
}

// Equimax blends Varimax with a weight proportional to the number of factors.
type Equimax struct{}

// Name implements Criterion.
func (Equimax) Name() string { return "equimax" }

// X returns d − m·a·b/n.
func (Equimax) X(a, b, _, d float64, n, m int) float64 {
	return d - (float64(m) * a * b / float64(n))
}

// Y returns c − m·(a² − b²)/(2n).
func (Equimax) Y(a, b, c, _ float64, n, m int) float64 {
	return c - float64(m)*((a*a-b*b)/(2*float64(n)))
}

// Quartimax simplifies each variable's row across all factors jointly.
type Quartimax struct{}

// Name implements Criterion.
func (Quartimax) Name() string { return "quartimax" }

// X returns d.
func (Quartimax) X(_, _, _, d float64, _, _ int) float64 { return d }

// Y returns c.
func (Quartimax) Y(_, _, c, _ float64, _, _ int) float64 { return c }

// Compile-time assertions.
var (
	_ Criterion = Varimax{}
	_ Criterion = Equimax{}
	_ Criterion = Quartimax{}
)

// Kind enumerates the built-in criteria so they can be selected by name.
type Kind int

const (
	KindVarimax Kind = iota
	KindEquimax
	KindQuartimax
)

// Kinds lists every built-in criterion in declaration order.
func Kinds() []Kind { return []Kind{KindVarimax, KindEquimax, KindQuartimax} }

// String returns the criterion name, or "unknown".
func (k Kind) String() string {
	switch k {
	case KindVarimax:
		return Varimax{}.Name()
	case KindEquimax:
		return Equimax{}.Name()
	case KindQuartimax:
		return Quartimax{}.Name()
	default:
		return "unknown"
	}
}

// Criterion returns the strategy for k, or nil for an unknown kind.
func (k Kind) Criterion() Criterion {
	switch k {
	case KindVarimax:
		return Varimax{}
	case KindEquimax:
		return Equimax{}
	case KindQuartimax:
		return Quartimax{}
	default:
		return nil
	}
}

// ParseKind maps a case-insensitive name to a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "varimax":
		return KindVarimax, nil
	case "equimax":
		return KindEquimax, nil
	case "quartimax":
		return KindQuartimax, nil
	default:
		return 0, rotationErrorf(opParseKind, ErrUnknownCriterion)
	}
}
