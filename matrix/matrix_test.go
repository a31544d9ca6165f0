package matrix

import (
	"fmt"
	"math/big"
	"testing"

	"zappem.net/pub/math/orient/factor"
	"zappem.net/pub/math/orient/terms"
)

func TestNewMatrix(t *testing.T) {
	one, err := Identity(2)
	if err != nil {
		t.Fatalf("failed to make a 2x2 identity matrix!: %v", err)
	}
	if got, want := one.String(), "[[1, 0], [0, 1]]"; got != want {
		t.Errorf("one failed: got=%q, want=%q", got, want)
	}
	if r, c := one.Dims(); r != 2 || c != 2 {
		t.Errorf("dims: got=%dx%d, want=2x2", r, c)
	}
	if _, err := NewMatrix(0, 3); err == nil {
		t.Error("made a 0x3 matrix")
	}
	if _, err := Identity(-1); err == nil {
		t.Error("made a -1 dimensional identity")
	}
	if err := one.Set(2, 0, nil); err == nil {
		t.Error("set a cell outside a 2x2 matrix")
	}
}

func sym(s string) *terms.Exp {
	return terms.NewExp([]factor.Value{factor.S(s)})
}

func TestMul(t *testing.T) {
	a, err := Identity(2)
	if err != nil {
		t.Fatalf("failed to make 2x2 identity: %v", err)
	}
	b, err := Identity(2)
	if err != nil {
		t.Fatalf("failed to make 2x2 identity: %v", err)
	}
	b.Set(0, 1, terms.Mul(a.El(0, 0), terms.NewExp([]factor.Value{factor.Sp("s1", 2)})))

	c, err := a.Mul(b)
	if err != nil {
		t.Fatalf("failed to multiply 2x2 matrices: %v", err)
	}
	if got, want := c.String(), b.String(); got != want {
		t.Errorf("matrix multiply %v*%v: got=%v, want=%v", a, b, got, want)
	}

	x, err := NewMatrix(2, 3)
	if err != nil {
		t.Fatalf("failed to make 2x3 matrix: %v", err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			x.Set(i, j, sym(fmt.Sprintf("x%d%d", i, j)))
		}
	}
	y, err := NewMatrix(3, 2)
	if err != nil {
		t.Fatalf("failed to make 3x2 matrix: %v", err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			y.Set(i, j, sym(fmt.Sprintf("y%d%d", i, j)))
		}
	}
	if z, err := x.Mul(y); err != nil {
		t.Errorf("matrix multiply failure %v*%v: %v", x, y, err)
	} else if got, want := z.String(), "[[x00*y00+x01*y10+x02*y20, x00*y01+x01*y11+x02*y21], [x10*y00+x11*y10+x12*y20, x10*y01+x11*y11+x12*y21]]"; got != want {
		t.Errorf("z: got=%q, want=%q", got, want)
	}
	if _, err := x.Mul(x); err == nil {
		t.Errorf("multiplied 2x3 by 2x3")
	}
}

func TestPinFloat(t *testing.T) {
	m, _ := NewMatrix(2, 2)
	m.Set(0, 0, sym("c2"))
	m.Set(0, 1, terms.NewExp([]factor.Value{factor.D(-1, 1), factor.S("s2")}))
	m.Set(1, 0, sym("s2"))
	m.Set(1, 1, sym("c2"))

	p := m.Pin("c2", big.NewRat(0, 1)).Pin("s2", big.NewRat(1, 1))
	if got, want := p.String(), "[[0, -1], [1, 0]]"; got != want {
		t.Errorf("pinned: got=%q, want=%q", got, want)
	}
	v := m.Float(map[string]float64{"c2": 0.25, "s2": 0.5})
	want := []float64{0.25, -0.5, 0.5, 0.25}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("[%d] got=%g, want=%g", i, v[i], want[i])
		}
	}
}
