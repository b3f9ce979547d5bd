// Package dynamo provides the math and simulation primitives shared by the
// gallery physics, collision and orchestration layers.
//
// The package defines:
//
//   - [Vector3]: value-type 3D vector
//   - [Quaternion]: orientation, with vector rotation and angular updates
//   - [Matrix3]: 3x3 matrix used for inertia tensors
//   - [State]: flat state vector stepped by an [Integrator]
//   - [System]: interface for motion equations (dX/dt = f(X, t))
//
// # Example
//
//	x := dynamo.State{px, py, pz, vx, vy, vz}
//	integ := integrators.NewSymplectic()
//	integ.Step(body, x, t, dt) // x now holds the state at t+dt
//
// # Thread Safety
//
// All types are plain values or caller-owned slices. Integrators keep
// derivative buffers sized to the last state they stepped and must not be
// shared between goroutines.
package dynamo
