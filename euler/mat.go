package euler

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"zappem.net/pub/math/orient/axis"
)

// Mat3 is a 3x3 matrix indexed [row][col]. It implements mat.Matrix
// without allocating, so poses can be copied and perturbed as values.
type Mat3 [3][3]float64

// NewMat3 copies a 3x3 matrix into a Mat3. It panics with
// mat.ErrShape if m is not 3x3.
func NewMat3(m mat.Matrix) Mat3 {
	mustBe3x3(m)
	var r Mat3
	for i := range r {
		for j := range r[i] {
			r[i][j] = m.At(i, j)
		}
	}
	return r
}

// Dims returns 3, 3.
func (m Mat3) Dims() (r, c int) {
	return 3, 3
}

// At returns the element at row i and column j.
func (m Mat3) At(i, j int) float64 {
	return m[i][j]
}

// T returns the transpose view of m.
func (m Mat3) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

func mustBe3x3(m mat.Matrix) {
	if r, c := m.Dims(); r != 3 || c != 3 {
		panic(mat.ErrShape)
	}
}

// MaxDiff returns the largest absolute elementwise difference between
// a and b.
func MaxDiff(a, b mat.Matrix) float64 {
	var d mat.Dense
	d.Sub(a, b)
	return math.Max(mat.Max(&d), -mat.Min(&d))
}

// Elemental returns the matrix rotating anticlockwise by theta radians
// around a. An invalid axis yields the identity.
func Elemental(a axis.Axis, theta float64) *mat.Dense {
	s, c := math.Sincos(theta)
	switch a {
	case axis.X:
		return mat.NewDense(3, 3, []float64{
			1, 0, 0,
			0, c, -s,
			0, s, c,
		})
	case axis.Y:
		return mat.NewDense(3, 3, []float64{
			c, 0, s,
			0, 1, 0,
			-s, 0, c,
		})
	case axis.Z:
		return mat.NewDense(3, 3, []float64{
			c, -s, 0,
			s, c, 0,
			0, 0, 1,
		})
	}
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

// Compose builds R_A1(a1) * R_A2(a2) * R_A3(a3) for the sequence s.
func Compose(s axis.Sequence, a Angles) *mat.Dense {
	var p, r mat.Dense
	p.Mul(Elemental(s[0], a[0]), Elemental(s[1], a[1]))
	r.Mul(&p, Elemental(s[2], a[2]))
	return &r
}
