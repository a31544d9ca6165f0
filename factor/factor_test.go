package factor

import (
	"math/big"
	"testing"
)

func TestString(t *testing.T) {
	vs := []struct {
		v Value
		s string
	}{
		{v: D(1, 1), s: "1"},
		{v: D(0, 1), s: "0"},
		{v: D(-3, 1), s: "-3"},
		{v: S("s1"), s: "s1"},
		{v: Sp("c2", 0), s: "1"},
		{v: Sp("c3", -2), s: "c3^-2"},
	}
	for i, x := range vs {
		if s := x.v.String(); s != x.s {
			t.Errorf("[%d] got=%q want=%q", i, s, x.s)
		}
	}
}

func TestSimplify(t *testing.T) {
	vs := []struct {
		v []Value
		s string
		c string
	}{
		{
			v: []Value{},
			s: "0",
			c: "0",
		},
		{
			v: []Value{S("s1"), D(-1, 1), S("c2")},
			s: "s1*-1*c2",
			c: "-c2*s1",
		},
		{
			v: []Value{S("c3"), S("c2"), D(1, 1), S("c1")},
			s: "c3*c2*1*c1",
			c: "c1*c2*c3",
		},
		{
			v: []Value{D(3, 1), S("s2"), D(1, 3), S("c1")},
			s: "3*s2*1/3*c1",
			c: "c1*s2",
		},
		{
			v: []Value{D(2, 1), S("s1"), Sp("s1", -1), D(-1, 2)},
			s: "2*s1*s1^-1*-1/2",
			c: "-1",
		},
		{
			v: []Value{S("s1"), D(0, 1), S("c1")},
			s: "s1*0*c1",
			c: "0",
		},
	}
	for i, x := range vs {
		if s := Prod(x.v...); s != x.s {
			t.Errorf("[%d] got=%q want=%q", i, s, x.s)
		}
		if c := Prod(Simplify(x.v...)...); c != x.c {
			t.Errorf("[%d] got=%q want=%q", i, c, x.c)
		}
	}
}

func TestSegment(t *testing.T) {
	n, fs, s := Segment(S("s3"), D(-2, 1), S("c2"))
	if n == nil || n.Cmp(big.NewRat(-2, 1)) != 0 {
		t.Errorf("coefficient: got=%v want=-2", n)
	}
	if len(fs) != 2 {
		t.Errorf("factors: got=%v want=[c2 s3]", fs)
	}
	if s != "c2*s3" {
		t.Errorf("tag: got=%q want=%q", s, "c2*s3")
	}
	if n, fs, s := Segment(D(0, 1), S("s1")); n != nil || fs != nil || s != "" {
		t.Errorf("zero segment: got=(%v, %v, %q)", n, fs, s)
	}
}

func TestHas(t *testing.T) {
	vs := []Value{S("c1"), S("s2")}
	if !Has(vs, "s2") {
		t.Error("s2 not found in c1*s2")
	}
	if Has(vs, "c2") {
		t.Error("c2 found in c1*s2")
	}
}

func TestPin(t *testing.T) {
	vs := []struct {
		v   []Value
		sym string
		n   *big.Rat
		c   string
	}{
		{
			v:   []Value{S("c2"), S("s1")},
			sym: "c2",
			n:   big.NewRat(0, 1),
			c:   "0",
		},
		{
			v:   []Value{S("s1"), S("s2")},
			sym: "s2",
			n:   big.NewRat(-1, 1),
			c:   "-s1",
		},
		{
			v:   []Value{Sp("s2", 2), S("c1")},
			sym: "s2",
			n:   big.NewRat(-1, 1),
			c:   "c1",
		},
		{
			v:   []Value{S("c3"), S("c1")},
			sym: "s2",
			n:   big.NewRat(1, 1),
			c:   "c1*c3",
		},
		{
			v:   []Value{Sp("c2", -2)},
			sym: "c2",
			n:   big.NewRat(2, 1),
			c:   "1/4",
		},
	}
	for i, x := range vs {
		if c := Prod(Pin(x.v, x.sym, x.n)...); c != x.c {
			t.Errorf("[%d] got=%q want=%q", i, c, x.c)
		}
	}
}
