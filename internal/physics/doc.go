// Package physics provides the rigid body used for every pooled gallery
// object.
//
// [RigidBody] keeps linear state as a [dynamo.State] laid out
// {px, py, pz, vx, vy, vz} and hands it to a pluggable [dynamo.Integrator];
// angular motion is advanced with a first-order quaternion update. Damping is
// applied per second of simulated time, so results do not depend on the frame
// rate beyond the integrator's own error.
//
// # Determinism
//
// Given the same inputs and a fixed time step, integration is deterministic.
// Bodies are not safe for concurrent use.
//
//	body := physics.NewRigidBody(integrators.NewSymplectic())
//	body.SetMass(1.5)
//	body.SetVelocity(dynamo.Vec3(0, 0, 20))
//	body.Integrate(0.016)
package physics
