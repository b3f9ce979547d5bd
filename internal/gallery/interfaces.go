package gallery

import (
	"github.com/san-kum/gallery/internal/collide"
	"github.com/san-kum/gallery/internal/dynamo"
)

// Body is the rigid-body motion capability every pooled object owns.
type Body interface {
	collide.Frame

	SetMass(mass float64)
	Mass() float64
	SetInertiaTensor(m dynamo.Matrix3)
	SetPosition(p dynamo.Vector3)
	SetOrientation(q dynamo.Quaternion)
	SetVelocity(v dynamo.Vector3)
	Velocity() dynamo.Vector3
	SetRotation(v dynamo.Vector3)
	SetAcceleration(a dynamo.Vector3)
	SetDamping(linear, angular float64)
	SetAwake(awake bool)
	Awake() bool
	SetCanSleep(canSleep bool)
	ClearAccumulators()
	AddImpulseAtPoint(impulse, point dynamo.Vector3)
	Integrate(dt float64)
}

// BodyFactory creates one body per pool slot at construction time.
type BodyFactory func() Body

// Detector is the collision-testing capability. Both tests append into the
// shared, budgeted contact buffer and report whether they found contact.
type Detector interface {
	BoxAndHalfSpace(box collide.Box, plane collide.Plane, data *collide.ContactData) bool
	BoxAndSphere(box collide.Box, sphere collide.Sphere, data *collide.ContactData) bool
}

// Drawable receives one call per visible object when a frame is rendered.
type Drawable interface {
	Draw(s Shape)
}

type Observer interface {
	OnEvent(e Event)
}

type ObserverFunc func(e Event)

func (f ObserverFunc) OnEvent(e Event) { f(e) }
