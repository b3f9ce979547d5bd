package integrators

import "github.com/san-kum/gallery/internal/dynamo"

// grow returns buf resized to n, reusing its backing array when it can.
func grow(buf dynamo.State, n int) dynamo.State {
	if cap(buf) < n {
		return make(dynamo.State, n)
	}
	return buf[:n]
}

type Euler struct {
	dx dynamo.State
}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys dynamo.System, x dynamo.State, t, dt float64) {
	e.dx = grow(e.dx, len(x))
	sys.Derive(e.dx, x, t)
	for i := range x {
		x[i] += dt * e.dx[i]
	}
}

// Symplectic is semi-implicit Euler: velocities first, then positions
// advanced with the new velocities. State must be laid out positions then
// velocities.
type Symplectic struct {
	dx dynamo.State
}

func NewSymplectic() *Symplectic {
	return &Symplectic{}
}

func (s *Symplectic) Step(sys dynamo.System, x dynamo.State, t, dt float64) {
	half := len(x) / 2
	s.dx = grow(s.dx, len(x))
	sys.Derive(s.dx, x, t)
	for i := 0; i < half; i++ {
		x[half+i] += dt * s.dx[half+i]
		x[i] += dt * x[half+i]
	}
}
