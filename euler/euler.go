// Package euler converts rotation matrices to Euler angles for any
// Tait-Bryan or proper Euler axis sequence, optionally with the
// Jacobian of the three angles with respect to the nine matrix
// entries.
//
// The input matrix is assumed to be a proper rotation; it is not
// checked. Near gimbal lock, when the middle angle reaches an extreme,
// the first and third angles collapse into one observable combination.
// That combination is reported as the first angle, the third angle is
// reported as 0, and the Jacobian is undefined: every element is NaN.
package euler

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"zappem.net/pub/math/orient/axis"
	"zappem.net/pub/math/orient/traits"
)

// Threshold bounds the raw middle entry of the ordinary case: values
// at or beyond +/-Threshold are gimbal lock. It is one minus the single
// precision machine epsilon, a deliberately wider margin than double
// precision rounding needs.
const Threshold = 1 - 1.0/(1<<23)

// Angles holds (a1, a2, a3) in radians. a1 is the angle of the first
// axis of the sequence.
type Angles [3]float64

// Jacobian holds the partial derivatives of the angles with respect to
// the rotation matrix entries. Row k is angle k, and the column of
// entry (r, c) is r + 3*c.
type Jacobian [3][9]float64

// At returns the derivative of angle k with respect to entry (r, c).
func (j *Jacobian) At(k, r, c int) float64 {
	return j[k][r+3*c]
}

// Undefined reports whether j is the gimbal lock sentinel, in which
// every element is NaN. No local linearization exists there, so
// callers must special case it instead of using the values.
func (j *Jacobian) Undefined() bool {
	for k := range j {
		for _, v := range j[k] {
			if !math.IsNaN(v) {
				return false
			}
		}
	}
	return true
}

// Dense returns a copy of j as a 3x9 gonum matrix.
func (j *Jacobian) Dense() *mat.Dense {
	d := mat.NewDense(3, 9, nil)
	for k := range j {
		d.SetRow(k, j[k][:])
	}
	return d
}

func undefinedJacobian() Jacobian {
	var j Jacobian
	nan := math.NaN()
	for k := range j {
		for i := range j[k] {
			j[k][i] = nan
		}
	}
	return j
}

// Extractor recovers the angles of one valid sequence. It is immutable
// and safe for concurrent use.
type Extractor struct {
	t *traits.Table
}

// New validates s and returns its extractor. Malformed sequences
// yield an error matching axis.ErrMalformed.
func New(s axis.Sequence) (*Extractor, error) {
	t, err := traits.For(s)
	if err != nil {
		return nil, err
	}
	return &Extractor{t: t}, nil
}

// MustNew is like New but panics if s is not a valid sequence. It is
// intended for sequences fixed in the source.
func MustNew(s axis.Sequence) *Extractor {
	x, err := New(s)
	if err != nil {
		panic(err)
	}
	return x
}

// Sequence returns the sequence of the extractor.
func (x *Extractor) Sequence() axis.Sequence {
	return x.t.Seq
}

// Table returns a copy of the trait table in use.
func (x *Extractor) Table() traits.Table {
	return *x.t
}

// Angles extracts the angles of r. It panics with mat.ErrShape if r
// is not 3x3.
func (x *Extractor) Angles(r mat.Matrix) Angles {
	mustBe3x3(r)
	w := NewWrap(r)
	if x.t.Family == axis.ProperEuler {
		return properEuler(x.t, w)
	}
	return taitBryan(x.t, w)
}

// AnglesJacobian extracts the angles of r and their Jacobian. At
// gimbal lock the Jacobian is undefined, see Jacobian.Undefined.
func (x *Extractor) AnglesJacobian(r mat.Matrix) (Angles, Jacobian) {
	mustBe3x3(r)
	w := NewWrap(r)
	if x.t.Family == axis.ProperEuler {
		return properEulerJacobian(x.t, w)
	}
	return taitBryanJacobian(x.t, w)
}

// FromMatrix extracts the angles of r for the sequence s.
func FromMatrix(s axis.Sequence, r mat.Matrix) (Angles, error) {
	x, err := New(s)
	if err != nil {
		return Angles{}, err
	}
	return x.Angles(r), nil
}

// FromMatrixJacobian extracts the angles of r for the sequence s and
// their Jacobian.
func FromMatrixJacobian(s axis.Sequence, r mat.Matrix) (Angles, Jacobian, error) {
	x, err := New(s)
	if err != nil {
		return Angles{}, Jacobian{}, err
	}
	a, j := x.AnglesJacobian(r)
	return a, j, nil
}
