// Package traits holds, for each valid rotation sequence, the matrix
// entries from which the three angles are recovered and the signs that
// turn those entries into plain sines and cosines.
//
// Tables are not typed in by hand. Derive expands the symbolic product
// of the three elemental rotations and locates each entry by the
// monomial it holds: for a Tait-Bryan sequence the middle angle's sine
// sits alone in one entry (s2), and the outer angles appear as c2*s1,
// c1*c2, c2*s3 and c2*c3; for a proper Euler sequence the middle
// angle's cosine sits alone (c2) and the outer angles appear multiplied
// by s2.
package traits

import (
	"fmt"
	"math/big"
	"strings"
	"sync"

	"zappem.net/pub/math/orient/axis"
	"zappem.net/pub/math/orient/factor"
	"zappem.net/pub/math/orient/matrix"
	"zappem.net/pub/math/orient/rotation"
)

// Entry refers to one element of a 3x3 rotation matrix. Sign times
// the element is the sine or cosine the entry stands for.
type Entry struct {
	R, C int
	Sign float64
}

// Col is the column of the entry in a 3x9 Jacobian, i.e. the index of
// the element when the matrix is flattened column major.
func (e Entry) Col() int {
	return e.R + 3*e.C
}

func (e Entry) String() string {
	s := "+"
	if e.Sign < 0 {
		s = "-"
	}
	return fmt.Sprintf("%sR[%d,%d]", s, e.R, e.C)
}

// GimbalLock holds the two entries that give the single observable
// angle when the middle angle is at an extreme. They are signed for
// the lock reached with a positive raw middle entry; the lock with a
// negative raw entry yields the negated angle.
type GimbalLock struct {
	A1s, A1c Entry
}

// Table is the immutable trait table of one sequence. A2 holds the
// sine of the middle angle for Tait-Bryan sequences and its cosine for
// proper Euler sequences.
type Table struct {
	Seq    axis.Sequence
	Family axis.Family

	A1s, A1c Entry
	A2       Entry
	A3s, A3c Entry

	Lock GimbalLock
}

func (t *Table) String() string {
	a2 := "a2s"
	if t.Family == axis.ProperEuler {
		a2 = "a2c"
	}
	return fmt.Sprintf("%v (%v): %s=%v a1s=%v a1c=%v a3s=%v a3c=%v lock{a1s=%v a1c=%v}",
		t.Seq, t.Family, a2, t.A2, t.A1s, t.A1c, t.A3s, t.A3c, t.Lock.A1s, t.Lock.A1c)
}

var (
	one  = big.NewRat(1, 1)
	zero = big.NewRat(0, 1)
)

// sign converts a +1 or -1 coefficient to a float.
func sign(c *big.Rat) (float64, error) {
	switch {
	case c.Cmp(one) == 0:
		return 1, nil
	case c.Cmp(new(big.Rat).Neg(one)) == 0:
		return -1, nil
	}
	return 0, fmt.Errorf("coefficient %v is not a unit", c.RatString())
}

// find locates the element of m that holds the lone monomial tag.
func find(m *matrix.Matrix, tag string) (Entry, error) {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			t, ok := m.El(r, c).Monomial()
			if !ok {
				continue
			}
			if factor.Prod(t.Fact...) != tag {
				continue
			}
			s, err := sign(t.Coeff)
			if err != nil {
				return Entry{}, fmt.Errorf("[%d,%d]=%v: %v", r, c, m.El(r, c), err)
			}
			return Entry{R: r, C: c, Sign: s}, nil
		}
	}
	return Entry{}, fmt.Errorf("no element of %v is ±%s", m, tag)
}

// term returns the entry (r, c) signed by the coefficient of tag in
// that element of m.
func term(m *matrix.Matrix, r, c int, tag string) (Entry, error) {
	f, ok := m.El(r, c).Coeff(tag)
	if !ok {
		return Entry{}, fmt.Errorf("[%d,%d]=%v has no %s term", r, c, m.El(r, c), tag)
	}
	s, err := sign(f)
	if err != nil {
		return Entry{}, fmt.Errorf("[%d,%d]=%v: %v", r, c, m.El(r, c), err)
	}
	return Entry{R: r, C: c, Sign: s}, nil
}

// Derive builds the trait table of s from the symbolic product of its
// elemental rotations.
func Derive(s axis.Sequence) (*Table, error) {
	m, err := rotation.Compose(s)
	if err != nil {
		return nil, err
	}
	t := &Table{Seq: s, Family: s.Family()}

	var tags [5]string
	if t.Family == axis.TaitBryan {
		tags = [5]string{"s2", "c2*s1", "c1*c2", "c2*s3", "c2*c3"}
	} else {
		tags = [5]string{"c2", "s1*s2", "c1*s2", "s2*s3", "c3*s2"}
	}
	for i, e := range []*Entry{&t.A2, &t.A1s, &t.A1c, &t.A3s, &t.A3c} {
		if *e, err = find(m, tags[i]); err != nil {
			return nil, fmt.Errorf("%v: %v", s, err)
		}
	}

	// Pin the middle angle at the lock reached when the raw middle
	// entry is +1. The lock entries sit in the row of the middle axis:
	// R[j,i] and R[j,j] for Tait-Bryan, R[j,k] and R[j,j] for proper
	// Euler.
	i, j := int(s[0]), int(s[1])
	var lock *matrix.Matrix
	var col int
	if t.Family == axis.TaitBryan {
		lock = m.Pin(rotation.Cos("2"), zero).Pin(rotation.Sin("2"), big.NewRat(int64(t.A2.Sign), 1))
		col = i
	} else {
		lock = m.Pin(rotation.Sin("2"), zero).Pin(rotation.Cos("2"), one)
		col = int(axis.Other(s[0], s[1]))
	}
	if t.Lock.A1s, err = term(lock, j, col, "c3*s1"); err != nil {
		return nil, fmt.Errorf("%v gimbal lock: %v", s, err)
	}
	if t.Lock.A1c, err = term(lock, j, j, "c1*c3"); err != nil {
		return nil, fmt.Errorf("%v gimbal lock: %v", s, err)
	}
	return t, nil
}

// deriveAll derives the tables of seqs. Sequences that fail are left
// out of the map and their errors are combined.
func deriveAll(seqs []axis.Sequence) (map[axis.Sequence]*Table, error) {
	tables := make(map[axis.Sequence]*Table)
	var errs []string
	for _, q := range seqs {
		t, err := Derive(q)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		tables[q] = t
	}
	if len(errs) != 0 {
		return tables, fmt.Errorf("trait derivation failed: %s", strings.Join(errs, "; "))
	}
	return tables, nil
}

var (
	once   sync.Once
	tables map[axis.Sequence]*Table
	derr   error
)

// For returns the cached trait table of s. All tables are derived the
// first time any is requested.
func For(s axis.Sequence) (*Table, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	once.Do(func() {
		tables, derr = deriveAll(axis.Sequences())
	})
	if t, ok := tables[s]; ok {
		return t, nil
	}
	if derr != nil {
		return nil, derr
	}
	return nil, fmt.Errorf("no trait table for %v", s)
}
