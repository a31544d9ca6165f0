// Package terms abstracts sums of products of factors.
//
// Entries of a symbolic rotation matrix are expressions of this kind:
// sums of signed monomials in the sine and cosine symbols of each
// angle.
package terms

import (
	"math"
	"math/big"
	"sort"
	"strings"

	"zappem.net/pub/math/orient/factor"
)

// Term is a product of a coefficient and a set of non-numerical factors.
type Term struct {
	Coeff *big.Rat
	Fact  []factor.Value
}

// Exp is a an expression or sum of terms.
type Exp struct {
	terms map[string]Term
}

// NewExp creates a new expression.
func NewExp(ts ...[]factor.Value) *Exp {
	e := &Exp{
		terms: make(map[string]Term),
	}
	for _, t := range ts {
		n, fs, s := factor.Segment(t...)
		if n == nil {
			continue
		}
		e.insert(n, fs, s)
	}
	return e
}

// IsZero confirms a simplified expression is zero.
func (e *Exp) IsZero() bool {
	return e == nil || len(e.terms) == 0
}

// String represents an expression of Terms as a string.
func (e *Exp) String() string {
	if e.IsZero() {
		return "0"
	}
	var s []string
	for x := range e.terms {
		s = append(s, x)
	}
	sort.Strings(s)
	for i, x := range s {
		f := e.terms[x]
		v := []factor.Value{factor.R(f.Coeff)}
		t := factor.Prod(append(v, f.Fact...)...)
		if i != 0 && t[0] != '-' {
			s[i] = "+" + t
		} else {
			s[i] = t
		}
	}
	return strings.Join(s, "")
}

// insert merges a coefficient, a product of factors to an expression
// indexed by s.
func (e *Exp) insert(n *big.Rat, fs []factor.Value, s string) {
	old, ok := e.terms[s]
	if !ok {
		e.terms[s] = Term{
			Coeff: n,
			Fact:  fs,
		}
		return
	}
	// Combine with existing term.
	old.Coeff = n.Add(n, e.terms[s].Coeff)
	if old.Coeff.Cmp(&big.Rat{}) == 0 {
		delete(e.terms, s)
		return
	}
	e.terms[s] = old
}

// Sum adds together expressions. With only one argument, Sum is a
// simple duplicate function.
func Sum(as ...*Exp) *Exp {
	e := &Exp{
		terms: make(map[string]Term),
	}
	for _, a := range as {
		if a == nil {
			continue
		}
		for s, t := range a.terms {
			m := &big.Rat{}
			e.insert(m.Set(t.Coeff), t.Fact, s)
		}
	}
	return e
}

// Add adds together two expressions and returns a single expression:
// a+b.
func (a *Exp) Add(b *Exp) *Exp {
	return Sum(a, b)
}

// Sub subtracts b from a into a new expression.
func (a *Exp) Sub(b *Exp) *Exp {
	e := &Exp{
		terms: make(map[string]Term),
	}
	if a != nil {
		for s, t := range a.terms {
			m := &big.Rat{}
			e.insert(m.Set(t.Coeff), t.Fact, s)
		}
	}
	if b != nil {
		for s, t := range b.terms {
			m := big.NewRat(-1, 1)
			e.insert(m.Mul(m, t.Coeff), t.Fact, s)
		}
	}
	return e
}

// Mul computes the product of a series of expressions.
func Mul(as ...*Exp) *Exp {
	var e *Exp
	for i, a := range as {
		if i == 0 {
			e = Sum(a)
			continue
		}
		f := &Exp{
			terms: make(map[string]Term),
		}
		if a != nil {
			for _, p := range a.terms {
				for _, q := range e.terms {
					x := []factor.Value{factor.R(p.Coeff), factor.R(q.Coeff)}
					n, fs, s := factor.Segment(append(x, append(p.Fact, q.Fact...)...)...)
					f.insert(n, fs, s)
				}
			}
		}
		e = f
	}
	return e
}

// Mul computes the product of this expression with some others.
func (e *Exp) Mul(es ...*Exp) *Exp {
	return Mul(append([]*Exp{e}, es...)...)
}

// Equals compares two expressions and determines if they are always
// equal.
func (e *Exp) Equals(x *Exp) bool {
	return e.Sub(x).IsZero()
}

// Terms returns the map of simplified terms of an expression, indexed
// by the string form of their symbolic factors.
func (e *Exp) Terms() map[string]Term {
	if e == nil {
		return nil
	}
	return e.terms
}

// Coeff returns the coefficient of the term whose symbolic factors
// print as tag, e.g. "c2*s1". The boolean is false if e holds no
// such term.
func (e *Exp) Coeff(tag string) (*big.Rat, bool) {
	if e == nil {
		return nil, false
	}
	t, ok := e.terms[tag]
	if !ok {
		return nil, false
	}
	return t.Coeff, true
}

// Monomial returns the single term of an expression that holds
// exactly one term.
func (e *Exp) Monomial() (Term, bool) {
	if e == nil || len(e.terms) != 1 {
		return Term{}, false
	}
	for _, t := range e.terms {
		return t, true
	}
	return Term{}, false
}

// Pin substitutes the number n for every occurrence of the symbol
// sym. This is how an angle is fixed at a known value: pinning "c2"
// to 0 and "s2" to 1 evaluates an expression at a2 = pi/2.
func (e *Exp) Pin(sym string, n *big.Rat) *Exp {
	f := &Exp{
		terms: make(map[string]Term),
	}
	if e == nil {
		return f
	}
	for s, t := range e.terms {
		if !factor.Has(t.Fact, sym) {
			m := &big.Rat{}
			f.insert(m.Set(t.Coeff), t.Fact, s)
			continue
		}
		x := append([]factor.Value{factor.R(t.Coeff)}, t.Fact...)
		c, fs, tag := factor.Segment(factor.Pin(x, sym, n)...)
		if c == nil {
			continue
		}
		f.insert(c, fs, tag)
	}
	return f
}

// Float evaluates an expression numerically. Every symbol of e must
// be present in env.
func (e *Exp) Float(env map[string]float64) float64 {
	if e == nil {
		return 0
	}
	sum := 0.0
	for _, t := range e.terms {
		v, _ := t.Coeff.Float64()
		for _, f := range t.Fact {
			v *= math.Pow(env[f.Symbol()], float64(f.Pow()))
		}
		sum += v
	}
	return sum
}

// Symbols returns a sorted array of unique symbols found in an
// expression. The returned array should be considered a list and not
// a meaninful product of factors.
func (e *Exp) Symbols() (syms []factor.Value) {
	if e == nil {
		return nil
	}
	ss := make(map[string]bool)
	for _, t := range e.terms {
		for _, v := range t.Fact {
			if s := v.Symbol(); s != "" && !ss[s] {
				ss[s] = true
				syms = append(syms, factor.S(s))
			}
		}
	}
	sort.Sort(factor.ByAlpha(syms))
	return
}
