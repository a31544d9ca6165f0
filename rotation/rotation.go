// Package rotation generates symbolic matrices for 3D rotations.
//
// This package prefixes angles with 's' or 'c' for sine and cosine
// respectively, so the sine of angle "2" is the symbol "s2".
package rotation

import (
	"zappem.net/pub/math/orient/axis"
	"zappem.net/pub/math/orient/factor"
	"zappem.net/pub/math/orient/matrix"
	"zappem.net/pub/math/orient/terms"
)

var one = terms.NewExp([]factor.Value{factor.D(1, 1)})

// Sin names the sine symbol of angle theta.
func Sin(theta string) string {
	return "s" + theta
}

// Cos names the cosine symbol of angle theta.
func Cos(theta string) string {
	return "c" + theta
}

// sc returns the expressions s, c and -s for angle theta.
func sc(theta string) (s, c, mS *terms.Exp) {
	s = terms.NewExp([]factor.Value{factor.S(Sin(theta))})
	c = terms.NewExp([]factor.Value{factor.S(Cos(theta))})
	mS = terms.NewExp([]factor.Value{factor.D(-1, 1), factor.S(Sin(theta))})
	return
}

// A matrix for rotating anticlockwise around the X-axis.
func RX(theta string) *matrix.Matrix {
	m, _ := matrix.NewMatrix(3, 3)
	s, c, mS := sc(theta)

	m.Set(0, 0, one)
	m.Set(1, 1, c)
	m.Set(2, 2, c)

	m.Set(1, 2, mS)
	m.Set(2, 1, s)
	return m
}

// A matrix for rotating anticlockwise around the Y-axis.
func RY(theta string) *matrix.Matrix {
	m, _ := matrix.NewMatrix(3, 3)
	s, c, mS := sc(theta)

	m.Set(0, 0, c)
	m.Set(1, 1, one)
	m.Set(2, 2, c)

	m.Set(0, 2, s)
	m.Set(2, 0, mS)

	return m
}

// A matrix for rotating anticlockwise around the Z-axis.
func RZ(theta string) *matrix.Matrix {
	m, _ := matrix.NewMatrix(3, 3)
	s, c, mS := sc(theta)

	m.Set(0, 0, c)
	m.Set(1, 1, c)
	m.Set(2, 2, one)

	m.Set(0, 1, mS)
	m.Set(1, 0, s)

	return m
}

// R returns the matrix rotating anticlockwise by theta around a. It
// returns nil for an invalid axis.
func R(a axis.Axis, theta string) *matrix.Matrix {
	switch a {
	case axis.X:
		return RX(theta)
	case axis.Y:
		return RY(theta)
	case axis.Z:
		return RZ(theta)
	}
	return nil
}

// Compose returns the symbolic product R_A1(1) * R_A2(2) * R_A3(3) for
// the sequence s, with angles named "1", "2" and "3". Malformed
// sequences are rejected.
func Compose(s axis.Sequence) (*matrix.Matrix, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return R(s[0], "1").Mx(R(s[1], "2")).Mx(R(s[2], "3")), nil
}
