// Package axis names the coordinate axes and classifies ordered
// triples of them as rotation sequences.
//
// A Sequence (A1, A2, A3) composes three elemental rotations as
// R = R_A1(a1) * R_A2(a2) * R_A3(a3). Of the 27 possible triples, six
// are Tait-Bryan (three distinct axes), six are proper Euler (first and
// last axis equal, middle different) and the remaining fifteen are
// malformed.
package axis

import (
	"errors"
	"fmt"
	"strings"
)

// Axis is one of the three coordinate axes of a frame.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

// Valid confirms a is one of X, Y or Z.
func (a Axis) Valid() bool {
	return a >= X && a <= Z
}

// String displays an axis as an upper case letter.
func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Other returns the axis that is neither a nor b. The two axes must
// be distinct.
func Other(a, b Axis) Axis {
	return 3 - a - b
}

// Family is the classification of a rotation sequence.
type Family int

const (
	Malformed Family = iota
	TaitBryan
	ProperEuler
)

func (f Family) String() string {
	switch f {
	case TaitBryan:
		return "Tait-Bryan"
	case ProperEuler:
		return "proper Euler"
	}
	return "malformed"
}

// Sequence is an ordered triple of rotation axes. The first axis
// carries the first angle.
type Sequence [3]Axis

// The valid rotation sequences.
var (
	XYZ = Sequence{X, Y, Z}
	XZY = Sequence{X, Z, Y}
	YXZ = Sequence{Y, X, Z}
	YZX = Sequence{Y, Z, X}
	ZXY = Sequence{Z, X, Y}
	ZYX = Sequence{Z, Y, X}

	XYX = Sequence{X, Y, X}
	XZX = Sequence{X, Z, X}
	YXY = Sequence{Y, X, Y}
	YZY = Sequence{Y, Z, Y}
	ZXZ = Sequence{Z, X, Z}
	ZYZ = Sequence{Z, Y, Z}
)

// Sequences returns all twelve valid sequences, Tait-Bryan first.
func Sequences() []Sequence {
	return []Sequence{
		XYZ, XZY, YXZ, YZX, ZXY, ZYX,
		XYX, XZX, YXY, YZY, ZXZ, ZYZ,
	}
}

// String displays a sequence as three axis letters, e.g. "ZYX".
func (s Sequence) String() string {
	return s[0].String() + s[1].String() + s[2].String()
}

// Classify decides the family of the axis triple (a1, a2, a3).
func Classify(a1, a2, a3 Axis) Family {
	if !a1.Valid() || !a2.Valid() || !a3.Valid() {
		return Malformed
	}
	switch {
	case a1 != a2 && a2 != a3 && a1 != a3:
		return TaitBryan
	case a1 == a3 && a1 != a2:
		return ProperEuler
	}
	return Malformed
}

// Family classifies the sequence.
func (s Sequence) Family() Family {
	return Classify(s[0], s[1], s[2])
}

// Validate returns a *MalformedError if s is neither a Tait-Bryan nor
// a proper Euler sequence.
func (s Sequence) Validate() error {
	if s.Family() == Malformed {
		return &MalformedError{Seq: s}
	}
	return nil
}

var (
	// ErrMalformed is matched by every *MalformedError.
	ErrMalformed = errors.New("axis: malformed rotation sequence")

	// ErrSyntax indicates text that does not name three axes.
	ErrSyntax = errors.New("axis: syntax problem")
)

// MalformedError names a rejected rotation sequence.
type MalformedError struct {
	Seq Sequence
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("axis: malformed rotation sequence %v: choose either a proper Euler sequence or a Tait-Bryan sequence", e.Seq)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}

// Parse reads a sequence such as "zyx", "Z-Y-X" or "x y x". Text
// naming a malformed sequence yields a *MalformedError along with the
// parsed sequence.
func Parse(text string) (Sequence, error) {
	var s Sequence
	n := 0
	for _, r := range strings.ToLower(text) {
		var a Axis
		switch r {
		case ' ', '\t', '-':
			continue
		case 'x':
			a = X
		case 'y':
			a = Y
		case 'z':
			a = Z
		default:
			return s, fmt.Errorf("%w: %q in %q is not an axis", ErrSyntax, r, text)
		}
		if n == len(s) {
			return s, fmt.Errorf("%w: %q names more than three axes", ErrSyntax, text)
		}
		s[n] = a
		n++
	}
	if n != len(s) {
		return s, fmt.Errorf("%w: %q names %d axes, not 3", ErrSyntax, text, n)
	}
	return s, s.Validate()
}
