package euler

import (
	"gonum.org/v1/gonum/mat"
	"zappem.net/pub/math/orient/traits"
)

// Wrap is a read-only view of a rotation matrix that applies the sign
// convention of trait table entries.
type Wrap struct {
	m mat.Matrix
}

// NewWrap binds a view to m. The matrix is never modified.
func NewWrap(m mat.Matrix) Wrap {
	return Wrap{m: m}
}

// Value returns the entry corrected by its sign, ready to be fed to a
// trig function.
func (w Wrap) Value(e traits.Entry) float64 {
	return e.Sign * w.m.At(e.R, e.C)
}

// Raw returns the uncorrected matrix entry. Thresholds are tested on
// this value.
func (w Wrap) Raw(e traits.Entry) float64 {
	return w.m.At(e.R, e.C)
}

// Sign returns the sign of the entry. The sign is stored on the entry
// itself, so the result does not depend on the wrapped matrix. The
// derivative of an angle with respect to the true matrix entry is Sign
// times the derivative with respect to Value.
func (w Wrap) Sign(e traits.Entry) float64 {
	return e.Sign
}
