package euler

import (
	"math"

	"zappem.net/pub/math/orient/traits"
	"zappem.net/pub/math/orient/trig"
)

// angle recovers an outer angle from its signed sine and cosine
// entries.
func angle(w Wrap, s, c traits.Entry) float64 {
	return trig.Atan2(w.Value(s), w.Value(c))
}

// angleD is angle that also writes the derivatives with respect to
// the two true matrix entries into row k of j.
func angleD(w Wrap, s, c traits.Entry, j *Jacobian, k int) float64 {
	a, dy, dx := trig.Atan2D(w.Value(s), w.Value(c))
	j[k][s.Col()] = dy * w.Sign(s)
	j[k][c.Col()] = dx * w.Sign(c)
	return a
}

// locked recovers the combined angle at gimbal lock.
func locked(w Wrap, g traits.GimbalLock) float64 {
	return trig.Atan2(w.Value(g.A1s), w.Value(g.A1c))
}

func taitBryan(t *traits.Table, w Wrap) Angles {
	var a Angles
	lone := w.Raw(t.A2)
	if lone < Threshold {
		if lone > -Threshold {
			a[1] = trig.Asin(w.Value(t.A2))
			a[0] = angle(w, t.A1s, t.A1c)
			a[2] = angle(w, t.A3s, t.A3c)
		} else {
			// Gimbal lock, lone ~= -1.
			a[1] = -w.Sign(t.A2) * math.Pi / 2
			a[0] = -locked(w, t.Lock)
		}
	} else {
		// Gimbal lock, lone ~= +1.
		a[1] = w.Sign(t.A2) * math.Pi / 2
		a[0] = locked(w, t.Lock)
	}
	return a
}

func taitBryanJacobian(t *traits.Table, w Wrap) (Angles, Jacobian) {
	var a Angles
	var j Jacobian
	lone := w.Raw(t.A2)
	if lone < Threshold {
		if lone > -Threshold {
			var d float64
			a[1], d = trig.AsinD(w.Value(t.A2))
			j[1][t.A2.Col()] = d * w.Sign(t.A2)
			a[0] = angleD(w, t.A1s, t.A1c, &j, 0)
			a[2] = angleD(w, t.A3s, t.A3c, &j, 2)
		} else {
			a[1] = -w.Sign(t.A2) * math.Pi / 2
			a[0] = -locked(w, t.Lock)
			j = undefinedJacobian()
		}
	} else {
		a[1] = w.Sign(t.A2) * math.Pi / 2
		a[0] = locked(w, t.Lock)
		j = undefinedJacobian()
	}
	return a, j
}

func properEuler(t *traits.Table, w Wrap) Angles {
	var a Angles
	lone := w.Raw(t.A2)
	if lone < Threshold {
		if lone > -Threshold {
			a[1] = trig.Acos(w.Value(t.A2))
			a[0] = angle(w, t.A1s, t.A1c)
			a[2] = angle(w, t.A3s, t.A3c)
		} else {
			// Gimbal lock, lone ~= -1.
			a[1] = math.Pi
			a[0] = -locked(w, t.Lock)
		}
	} else {
		// Gimbal lock, lone ~= +1.
		a[1] = 0
		a[0] = locked(w, t.Lock)
	}
	return a
}

func properEulerJacobian(t *traits.Table, w Wrap) (Angles, Jacobian) {
	var a Angles
	var j Jacobian
	lone := w.Raw(t.A2)
	if lone < Threshold {
		if lone > -Threshold {
			var d float64
			a[1], d = trig.AcosD(w.Value(t.A2))
			j[1][t.A2.Col()] = d * w.Sign(t.A2)
			a[0] = angleD(w, t.A1s, t.A1c, &j, 0)
			a[2] = angleD(w, t.A3s, t.A3c, &j, 2)
		} else {
			a[1] = math.Pi
			a[0] = -locked(w, t.Lock)
			j = undefinedJacobian()
		}
	} else {
		a[1] = 0
		a[0] = locked(w, t.Lock)
		j = undefinedJacobian()
	}
	return a, j
}
