package integrators

import "github.com/san-kum/gallery/internal/dynamo"

// Verlet is velocity Verlet. Like the other second-order steppers it needs
// the positions-then-velocities layout and an acceleration that does not
// depend on velocity to stay second order.
type Verlet struct {
	a0, a1 dynamo.State
}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Step(sys dynamo.System, x dynamo.State, t, dt float64) {
	half := len(x) / 2
	v.a0, v.a1 = grow(v.a0, len(x)), grow(v.a1, len(x))

	sys.Derive(v.a0, x, t)
	for i := 0; i < half; i++ {
		x[i] += x[half+i]*dt + 0.5*v.a0[half+i]*dt*dt
	}

	// x now holds the new positions with the old velocities.
	sys.Derive(v.a1, x, t+dt)
	for i := 0; i < half; i++ {
		x[half+i] += (v.a0[half+i] + v.a1[half+i]) * 0.5 * dt
	}
}

// Leapfrog is kick-drift-kick: half a velocity step, a full position step,
// then the second half velocity step at the new positions.
type Leapfrog struct {
	dx dynamo.State
}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Step(sys dynamo.System, x dynamo.State, t, dt float64) {
	half := len(x) / 2
	halfDt := dt * 0.5
	l.dx = grow(l.dx, len(x))

	sys.Derive(l.dx, x, t)
	for i := 0; i < half; i++ {
		x[half+i] += l.dx[half+i] * halfDt
		x[i] += x[half+i] * dt
	}

	sys.Derive(l.dx, x, t+dt)
	for i := 0; i < half; i++ {
		x[half+i] += l.dx[half+i] * halfDt
	}
}
