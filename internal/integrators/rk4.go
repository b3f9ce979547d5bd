package integrators

import "github.com/san-kum/gallery/internal/dynamo"

// RK4 is the classic fourth-order Runge-Kutta stepper.
type RK4 struct {
	k1, k2, k3, k4 dynamo.State
	probe          dynamo.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(sys dynamo.System, x dynamo.State, t, dt float64) {
	n := len(x)
	r.k1, r.k2 = grow(r.k1, n), grow(r.k2, n)
	r.k3, r.k4 = grow(r.k3, n), grow(r.k4, n)
	r.probe = grow(r.probe, n)

	sys.Derive(r.k1, x, t)
	r.offset(x, r.k1, dt*0.5)
	sys.Derive(r.k2, r.probe, t+dt*0.5)
	r.offset(x, r.k2, dt*0.5)
	sys.Derive(r.k3, r.probe, t+dt*0.5)
	r.offset(x, r.k3, dt)
	sys.Derive(r.k4, r.probe, t+dt)

	dt6 := dt / 6.0
	for i := range x {
		x[i] += dt6 * (r.k1[i] + 2*r.k2[i] + 2*r.k3[i] + r.k4[i])
	}
}

// offset fills probe with x + h·k.
func (r *RK4) offset(x, k dynamo.State, h float64) {
	for i := range x {
		r.probe[i] = x[i] + h*k[i]
	}
}
