package gallery

import (
	"github.com/san-kum/gallery/internal/collide"
	"github.com/san-kum/gallery/internal/control"
	"github.com/san-kum/gallery/internal/dynamo"
)

// Phase is a target's place in its round: swinging on the rail, knocked
// loose by a projectile, or struck down onto the ground plane.
type Phase int

const (
	Oscillating Phase = iota
	Knocked
	Struck
)

var phaseNames = [...]string{"oscillating", "knocked", "struck"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// targetFacing turns the bullseye half a turn about Y so it faces the emitter.
var targetFacing = dynamo.Quaternion{R: 0, I: 0, J: 1, K: 0}

type Target struct {
	Phase    Phase
	HalfSize dynamo.Vector3
	body     Body
}

func (t *Target) Body() Body { return t.body }

func (t *Target) Struck() bool { return t.Phase == Struck }

// Collapsed reports whether the collision footprint has shrunk to nothing.
func (t *Target) Collapsed() bool { return t.HalfSize.IsZero() }

type targetPool struct {
	params TargetParams
	slots  []Target
	osc    *control.BangBang
}

func newTargetPool(p TargetParams, newBody BodyFactory) *targetPool {
	pool := &targetPool{
		params: p,
		slots:  make([]Target, p.Count),
		osc:    control.NewBangBang(p.Bound, p.Speed),
	}
	for i := range pool.slots {
		pool.slots[i].body = newBody()
	}
	return pool
}

// Layout returns the rest position of slot i: the first FrontRow targets
// sit at FrontZ, FrontSpacing apart, and the rest continue laterally at
// BackZ with the wider BackSpacing.
func (p TargetParams) Layout(i int) dynamo.Vector3 {
	front := i
	if front > p.FrontRow {
		front = p.FrontRow
	}
	x := p.StartX + float64(front)*p.FrontSpacing
	if i < p.FrontRow {
		return dynamo.Vec3(x, p.Height, p.FrontZ)
	}
	x += float64(i-p.FrontRow) * p.BackSpacing
	return dynamo.Vec3(x, p.Height, p.BackZ)
}

func (tp *targetPool) reset() {
	hs := tp.params.HalfSize
	mass := hs.X * hs.Y * hs.Z * tp.params.Density
	for i := range tp.slots {
		t := &tp.slots[i]
		t.Phase = Oscillating
		t.HalfSize = hs

		b := t.body
		b.SetMass(mass)
		b.SetInertiaTensor(dynamo.BlockInertia(hs, mass))
		b.SetPosition(tp.params.Layout(i))
		b.SetOrientation(targetFacing)
		b.SetVelocity(dynamo.Vec3(tp.params.Speed, 0, 0))
		b.SetRotation(dynamo.Vector3{})
		b.SetAcceleration(dynamo.Vector3{})
		b.SetDamping(tp.params.LinearDamping, tp.params.AngularDamping)
		b.SetCanSleep(false)
		b.SetAwake(true)
		b.ClearAccumulators()
	}
}

func (tp *targetPool) advance(dt float64) {
	for i := range tp.slots {
		t := &tp.slots[i]
		prev := t.body.Position()
		t.body.Integrate(dt)
		if t.Phase != Oscillating {
			continue
		}
		pos, vel := t.body.Position(), t.body.Velocity()
		x, v := tp.osc.Apply(prev.X, pos.X, vel.X)
		if x != pos.X {
			pos.X = x
			t.body.SetPosition(pos)
		}
		if v != vel.X {
			t.body.SetVelocity(dynamo.Vec3(v, 0, 0))
		}
	}
}

// knock stops the target on its rail and hands it to gravity, with the
// projectile's momentum applied where it landed.
func (tp *targetPool) knock(i int, impulse, point dynamo.Vector3) {
	t := &tp.slots[i]
	if t.Phase == Struck {
		return
	}
	t.Phase = Knocked
	t.body.SetVelocity(dynamo.Vector3{})
	t.body.SetAcceleration(tp.params.FallAcceleration)
	t.body.AddImpulseAtPoint(impulse, point)
}

// collapse puts the target to rest with an empty footprint and reports
// whether this call is the one that struck it.
func (tp *targetPool) collapse(i int) bool {
	t := &tp.slots[i]
	t.HalfSize = dynamo.Vector3{}
	t.body.SetAwake(false)
	if t.Phase == Struck {
		return false
	}
	t.Phase = Struck
	return true
}

func (tp *targetPool) box(i int) collide.Box {
	return collide.Box{Body: tp.slots[i].body, HalfSize: tp.slots[i].HalfSize}
}

func (tp *targetPool) remaining() int {
	n := 0
	for i := range tp.slots {
		if tp.slots[i].Phase != Struck {
			n++
		}
	}
	return n
}
