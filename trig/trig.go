// Package trig provides the inverse trigonometric functions used to
// recover angles, each with a variant that also returns the analytic
// derivative of the angle with respect to its input(s).
//
// The plain variants cost no more than the math package functions they
// wrap. The D variants are the only place derivative formulas live.
package trig

import "math"

// Asin returns the arcsine of x.
func Asin(x float64) float64 {
	return math.Asin(x)
}

// AsinD returns the arcsine of x and its derivative 1/sqrt(1-x^2).
func AsinD(x float64) (a, d float64) {
	return math.Asin(x), 1 / math.Sqrt(1-x*x)
}

// Acos returns the arccosine of x.
func Acos(x float64) float64 {
	return math.Acos(x)
}

// AcosD returns the arccosine of x and its derivative -1/sqrt(1-x^2).
func AcosD(x float64) (a, d float64) {
	return math.Acos(x), -1 / math.Sqrt(1-x*x)
}

// Atan2 returns the angle of the point (x, y).
func Atan2(y, x float64) float64 {
	return math.Atan2(y, x)
}

// Atan2D returns the angle of the point (x, y) and the partial
// derivatives of that angle with respect to y and x.
func Atan2D(y, x float64) (a, dy, dx float64) {
	r := x*x + y*y
	return math.Atan2(y, x), x / r, -y / r
}
