package dynamo

import (
	"math"
)

// State is laid out positions first, velocities second, so second-order
// steppers can split it in half.
type State []float64

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// System writes dX/dt at x into dx, which has the length of x.
type System interface {
	Derive(dx, x State, t float64)
	StateDim() int
}

// Integrator advances x by dt in place.
type Integrator interface {
	Step(sys System, x State, t, dt float64)
}
