// Package factor defines basic factors: rationals and symbols.
//
// Rotation algebra uses one symbol per sine or cosine of an angle, so
// a product of factors is a monomial such as -1*c2*s1.
package factor

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// Value captures a single factor. It is either a number or a symbol.
type Value struct {
	num *big.Rat

	pow int
	sym string
}

// IsNum indicates that v is a rational number.
func (v Value) IsNum() bool {
	return v.num != nil
}

// Num simply returns the num value of the term.
func (v Value) Num() *big.Rat {
	return v.num
}

// Pow returns the power of a symbol value. Numbers have power 0.
func (v Value) Pow() int {
	return v.pow
}

// String displays a single factor.
func (v Value) String() string {
	if v.num != nil {
		return v.num.RatString()
	}
	if v.sym != "" {
		if v.pow == 1 {
			return v.sym
		}
		return fmt.Sprintf("%s^%d", v.sym, v.pow)
	}
	return "<ERROR>"
}

// Symbol returns the symbol associated with this value or "" if no
// symbol is present in v.
func (v Value) Symbol() string {
	return v.sym
}

// zero is a constant zero for comparisons.
var zero = big.NewRat(0, 1)

// one is a constant one for comparisons.
var one = big.NewRat(1, 1)

// minusOne is a constant -one for comparisons.
var minusOne = big.NewRat(-1, 1)

// R copies a rational value into a number value.
func R(n *big.Rat) Value {
	c := new(big.Rat)
	return Value{num: c.Set(n)}
}

// D converts two integers to a rational number value.
func D(num, den int64) Value {
	return Value{num: big.NewRat(num, den)}
}

// S converts a string into a symbol value.
func S(sym string) Value {
	return Value{sym: sym, pow: 1}
}

// Sp converts a string, power to a symbol value.
func Sp(sym string, pow int) Value {
	if pow == 0 {
		return D(1, 1)
	}
	return Value{sym: sym, pow: pow}
}

type ByAlpha []Value

func (a ByAlpha) Len() int      { return len(a) }
func (a ByAlpha) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a ByAlpha) Less(i, j int) bool {
	if a[i].sym < a[j].sym {
		return true
	}
	if a[i].sym > a[j].sym {
		return false
	}
	// Higher powers first (after simplify this is moot).
	return a[i].pow > a[j].pow
}

// Simplify condenses an unsorted array (product) of values into a
// simplified (ordered) form. A zero product simplifies to nil.
func Simplify(vs ...Value) []Value {
	if len(vs) == 0 {
		return nil
	}

	var syms []Value
	n := big.NewRat(1, 1)
	for _, v := range vs {
		if v.num != nil {
			if zero.Cmp(v.num) == 0 {
				return nil
			}
			n.Mul(n, v.num)
			continue
		}
		syms = append(syms, v)
	}
	sort.Sort(ByAlpha(syms))

	res := []Value{R(n)}
	for _, s := range syms {
		i := len(res) - 1
		last := res[i]
		if last.sym != s.sym {
			res = append(res, s)
			continue
		}
		last.pow += s.pow
		if last.pow == 0 {
			res = res[:i]
			continue
		}
		res = append(res[:i], last)
	}
	return res
}

// Prod returns a string representing a product of values. This
// function does not attempt to simplify the array first.
func Prod(vs ...Value) string {
	if len(vs) == 0 {
		return "0"
	}
	var x []string
	prefix := ""
	for i, v := range vs {
		if v.num != nil && i == 0 && len(vs) != 1 {
			if one.Cmp(v.num) == 0 {
				continue
			}
			if minusOne.Cmp(v.num) == 0 {
				prefix = "-"
				continue
			}
		}
		x = append(x, v.String())
	}
	return prefix + strings.Join(x, "*")
}

// Segment simplifies a set of factors and returns the numerical
// coefficient, the non-numeric array of factors and a string
// representation of this array of non-numeric factors.
func Segment(vs ...Value) (*big.Rat, []Value, string) {
	x := Simplify(vs...)
	if len(x) == 0 {
		return nil, nil, ""
	}
	return x[0].num, x[1:], Prod(x[1:]...)
}

// Has reports whether the symbol sym appears in vs.
func Has(vs []Value, sym string) bool {
	for _, v := range vs {
		if v.sym == sym {
			return true
		}
	}
	return false
}

// Pin replaces every occurrence of the symbol sym in the product vs
// with the number n, raised to the power of that occurrence. The
// result is simplified, so pinning to zero yields nil.
func Pin(vs []Value, sym string, n *big.Rat) []Value {
	var res []Value
	for _, v := range vs {
		if v.sym != sym {
			res = append(res, v)
			continue
		}
		p := v.pow
		b := new(big.Rat).Set(n)
		if p < 0 {
			if n.Sign() == 0 {
				panic(fmt.Sprintf("pinning %s^%d to zero", sym, p))
			}
			b.Inv(b)
			p = -p
		}
		x := big.NewRat(1, 1)
		for i := 0; i < p; i++ {
			x.Mul(x, b)
		}
		res = append(res, R(x))
	}
	return Simplify(res...)
}
