package physics

import (
	"math"

	"github.com/san-kum/gallery/internal/dynamo"
)

// sleepEpsilon is the motion below which a body that may sleep is put to rest.
const sleepEpsilon = 0.3

type RigidBody struct {
	integ dynamo.Integrator

	inverseMass         float64
	inverseInertia      dynamo.Matrix3
	inverseInertiaWorld dynamo.Matrix3
	linearDamping       float64
	angularDamping      float64

	position     dynamo.Vector3
	orientation  dynamo.Quaternion
	velocity     dynamo.Vector3
	rotation     dynamo.Vector3
	acceleration dynamo.Vector3

	forceAccum  dynamo.Vector3
	torqueAccum dynamo.Vector3

	awake    bool
	canSleep bool
	motion   float64
	time     float64
	state    dynamo.State
}

func NewRigidBody(integ dynamo.Integrator) *RigidBody {
	b := &RigidBody{
		integ:          integ,
		inverseMass:    1,
		orientation:    dynamo.Identity(),
		linearDamping:  1,
		angularDamping: 1,
		awake:          true,
		state:          make(dynamo.State, 6),
	}
	b.deriveData()
	return b
}

// SetMass panics on non-positive mass, which is a programming error.
func (b *RigidBody) SetMass(mass float64) {
	if mass <= 0 {
		panic("physics: mass must be positive")
	}
	b.inverseMass = 1 / mass
}

func (b *RigidBody) Mass() float64 {
	if b.inverseMass == 0 {
		return math.MaxFloat64
	}
	return 1 / b.inverseMass
}

func (b *RigidBody) InverseMass() float64 { return b.inverseMass }

func (b *RigidBody) SetInertiaTensor(m dynamo.Matrix3) {
	b.inverseInertia = m.Inverse()
	b.deriveData()
}

func (b *RigidBody) SetPosition(p dynamo.Vector3) { b.position = p }
func (b *RigidBody) Position() dynamo.Vector3     { return b.position }

func (b *RigidBody) SetOrientation(q dynamo.Quaternion) {
	b.orientation = q.Normalize()
	b.deriveData()
}

func (b *RigidBody) Orientation() dynamo.Quaternion { return b.orientation }

func (b *RigidBody) SetVelocity(v dynamo.Vector3) { b.velocity = v }
func (b *RigidBody) Velocity() dynamo.Vector3     { return b.velocity }

func (b *RigidBody) SetRotation(v dynamo.Vector3) { b.rotation = v }
func (b *RigidBody) Rotation() dynamo.Vector3     { return b.rotation }

func (b *RigidBody) SetAcceleration(a dynamo.Vector3) { b.acceleration = a }
func (b *RigidBody) Acceleration() dynamo.Vector3     { return b.acceleration }

func (b *RigidBody) SetDamping(linear, angular float64) {
	b.linearDamping = linear
	b.angularDamping = angular
}

// SetAwake(false) also zeroes velocity and rotation.
func (b *RigidBody) SetAwake(awake bool) {
	if awake {
		b.awake = true
		b.motion = sleepEpsilon * 2
		return
	}
	b.awake = false
	b.velocity = dynamo.Vector3{}
	b.rotation = dynamo.Vector3{}
}

func (b *RigidBody) Awake() bool { return b.awake }

func (b *RigidBody) SetCanSleep(canSleep bool) {
	b.canSleep = canSleep
	if !canSleep && !b.awake {
		b.SetAwake(true)
	}
}

func (b *RigidBody) ClearAccumulators() {
	b.forceAccum = dynamo.Vector3{}
	b.torqueAccum = dynamo.Vector3{}
}

func (b *RigidBody) AddForce(f dynamo.Vector3) {
	b.forceAccum = b.forceAccum.Add(f)
	b.awake = true
}

// AddImpulseAtPoint applies an instantaneous change of momentum at a
// world-space point, changing both linear and angular velocity.
func (b *RigidBody) AddImpulseAtPoint(impulse, point dynamo.Vector3) {
	b.velocity = b.velocity.AddScaled(impulse, b.inverseMass)
	arm := point.Sub(b.position)
	b.rotation = b.rotation.Add(b.inverseInertiaWorld.Transform(arm.Cross(impulse)))
	b.SetAwake(true)
}

// Derive gives {v, a} for the linear state {p, v}.
func (b *RigidBody) Derive(dx, x dynamo.State, t float64) {
	acc := b.acceleration.AddScaled(b.forceAccum, b.inverseMass)
	dx[0], dx[1], dx[2] = x[3], x[4], x[5]
	dx[3], dx[4], dx[5] = acc.X, acc.Y, acc.Z
}

func (b *RigidBody) StateDim() int { return 6 }

func (b *RigidBody) Integrate(dt float64) {
	if !b.awake {
		return
	}

	b.state[0], b.state[1], b.state[2] = b.position.X, b.position.Y, b.position.Z
	b.state[3], b.state[4], b.state[5] = b.velocity.X, b.velocity.Y, b.velocity.Z
	b.integ.Step(b, b.state, b.time, dt)

	x := b.state
	b.position = dynamo.Vec3(x[0], x[1], x[2])
	b.velocity = dynamo.Vec3(x[3], x[4], x[5]).Scale(math.Pow(b.linearDamping, dt))

	angular := b.inverseInertiaWorld.Transform(b.torqueAccum)
	b.rotation = b.rotation.AddScaled(angular, dt).Scale(math.Pow(b.angularDamping, dt))
	b.orientation = b.orientation.AddScaledVector(b.rotation, dt)

	b.deriveData()
	b.ClearAccumulators()
	b.time += dt

	if b.canSleep {
		current := b.velocity.SquareMagnitude() + b.rotation.SquareMagnitude()
		bias := math.Pow(0.5, dt)
		b.motion = bias*b.motion + (1-bias)*current
		if b.motion < sleepEpsilon {
			b.SetAwake(false)
		} else if b.motion > 10*sleepEpsilon {
			b.motion = 10 * sleepEpsilon
		}
	}
}

func (b *RigidBody) deriveData() {
	b.orientation = b.orientation.Normalize()
	rot := b.orientation.Matrix()
	b.inverseInertiaWorld = rot.Mul(b.inverseInertia).Mul(rot.Transpose())
}
