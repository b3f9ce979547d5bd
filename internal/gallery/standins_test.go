package gallery

import (
	"github.com/san-kum/gallery/internal/collide"
	"github.com/san-kum/gallery/internal/dynamo"
)

// stubBody moves with constant acceleration and no damping so tests can
// predict positions exactly.
type stubBody struct {
	mass        float64
	position    dynamo.Vector3
	orientation dynamo.Quaternion
	velocity    dynamo.Vector3
	rotation    dynamo.Vector3
	accel       dynamo.Vector3
	awake       bool
	canSleep    bool
	impulses    []dynamo.Vector3
	steps       int
}

func newStubBody() Body { return &stubBody{orientation: dynamo.Identity(), awake: true} }

func (b *stubBody) SetMass(m float64)                  { b.mass = m }
func (b *stubBody) Mass() float64                      { return b.mass }
func (b *stubBody) SetInertiaTensor(dynamo.Matrix3)    {}
func (b *stubBody) SetPosition(p dynamo.Vector3)       { b.position = p }
func (b *stubBody) Position() dynamo.Vector3           { return b.position }
func (b *stubBody) SetOrientation(q dynamo.Quaternion) { b.orientation = q }
func (b *stubBody) Orientation() dynamo.Quaternion     { return b.orientation }
func (b *stubBody) SetVelocity(v dynamo.Vector3)       { b.velocity = v }
func (b *stubBody) Velocity() dynamo.Vector3           { return b.velocity }
func (b *stubBody) SetRotation(v dynamo.Vector3)       { b.rotation = v }
func (b *stubBody) SetAcceleration(a dynamo.Vector3)   { b.accel = a }
func (b *stubBody) SetDamping(float64, float64)        {}
func (b *stubBody) Awake() bool                        { return b.awake }
func (b *stubBody) SetCanSleep(c bool)                 { b.canSleep = c }
func (b *stubBody) ClearAccumulators()                 {}
func (b *stubBody) SetAwake(awake bool) {
	b.awake = awake
	if !awake {
		b.velocity = dynamo.Vector3{}
		b.rotation = dynamo.Vector3{}
	}
}

func (b *stubBody) AddImpulseAtPoint(impulse, _ dynamo.Vector3) {
	b.impulses = append(b.impulses, impulse)
	b.velocity = b.velocity.AddScaled(impulse, 1/b.mass)
	b.awake = true
}

func (b *stubBody) Integrate(dt float64) {
	if !b.awake {
		return
	}
	b.steps++
	b.velocity = b.velocity.AddScaled(b.accel, dt)
	b.position = b.position.AddScaled(b.velocity, dt)
}

type pair struct {
	box    collide.Frame
	sphere collide.Frame
}

// scriptedDetector reports contact for whatever bodies a test marks, and
// records the order it was asked in.
type scriptedDetector struct {
	grounded map[collide.Frame]bool
	hits     map[pair]bool
	perHit   int
	calls    []string
}

func newScriptedDetector() *scriptedDetector {
	return &scriptedDetector{
		grounded: map[collide.Frame]bool{},
		hits:     map[pair]bool{},
		perHit:   1,
	}
}

func (d *scriptedDetector) ground(b Body)        { d.grounded[b] = true }
func (d *scriptedDetector) hit(box, sphere Body) { d.hits[pair{box, sphere}] = true }

func (d *scriptedDetector) BoxAndHalfSpace(box collide.Box, _ collide.Plane, data *collide.ContactData) bool {
	d.calls = append(d.calls, "plane")
	if !d.grounded[box.Body] || !data.HasMoreContacts() {
		return false
	}
	return d.record(data, box.Body, nil)
}

func (d *scriptedDetector) BoxAndSphere(box collide.Box, sphere collide.Sphere, data *collide.ContactData) bool {
	d.calls = append(d.calls, "sphere")
	if !d.hits[pair{box.Body, sphere.Body}] || !data.HasMoreContacts() {
		return false
	}
	return d.record(data, box.Body, sphere.Body)
}

func (d *scriptedDetector) record(data *collide.ContactData, a, b collide.Frame) bool {
	for i := 0; i < d.perHit && data.HasMoreContacts(); i++ {
		data.Contacts = append(data.Contacts, collide.Contact{Bodies: [2]collide.Frame{a, b}})
	}
	return true
}

type eventLog struct{ events []Event }

func (l *eventLog) OnEvent(e Event) { l.events = append(l.events, e) }

func (l *eventLog) kinds() []EventKind {
	out := make([]EventKind, len(l.events))
	for i, e := range l.events {
		out[i] = e.Kind
	}
	return out
}

func (l *eventLog) count(k EventKind) int {
	n := 0
	for _, e := range l.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

type recorder struct{ shapes []Shape }

func (r *recorder) Draw(s Shape) { r.shapes = append(r.shapes, s) }

func newTestState(opts ...Option) (*State, *scriptedDetector) {
	det := newScriptedDetector()
	return New(DefaultParams(), newStubBody, det, opts...), det
}
