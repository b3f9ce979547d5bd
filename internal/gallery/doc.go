// Package gallery is the game-state layer of the shooting gallery: a fixed
// pool of projectiles, a fixed pool of oscillating targets, the stationary
// emitter that aims and launches rounds, and [State], which runs one frame at
// a time and turns collisions into score and ammo changes.
//
// Rigid-body motion, collision primitives and drawing are collaborators
// reached through [Body], [Detector] and [Drawable], so the core can run
// against the real engine or against deterministic stand-ins.
//
// # Frame order
//
// A frame is: input commands ([State.Apply], [State.Fire], ...), then
// [State.Update], which advances the logical clock, integrates projectiles
// and targets, expires projectiles and dispatches contacts. Rendering reads
// the result through [State.Render].
//
// # Failure policy
//
// Nothing in the core returns an error. A fire request with no ammo or no
// free slot is refused, an exhausted contact budget defers the remaining
// pairs to the next frame, and an aim increment that reaches a limit is
// clamped.
//
// # Thread Safety
//
// State is single-threaded. Observers are called synchronously from inside
// the operation that produced the event and must not call back into State.
package gallery
