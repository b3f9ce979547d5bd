package gallery

import (
	"time"

	"github.com/san-kum/gallery/internal/collide"
	"github.com/san-kum/gallery/internal/dynamo"
)

type Lifecycle int

const (
	Unused Lifecycle = iota
	InFlight
)

func (l Lifecycle) String() string {
	if l == InFlight {
		return "in-flight"
	}
	return "unused"
}

// Expiry says why an in-flight projectile left the air.
type Expiry int

const (
	ExpiryNone Expiry = iota
	ExpiryFloor
	ExpiryFar
	ExpiryTTL
)

var expiryNames = [...]string{"none", "floor", "far", "ttl"}

func (e Expiry) String() string {
	if e < 0 || int(e) >= len(expiryNames) {
		return "unknown"
	}
	return expiryNames[e]
}

type Projectile struct {
	Lifecycle  Lifecycle
	LaunchedAt time.Duration
	body       Body
}

func (p *Projectile) Body() Body { return p.body }

func (p *Projectile) InFlight() bool { return p.Lifecycle == InFlight }

// projectilePool owns a fixed number of slots for the life of the session.
// Slots are reused, never reallocated.
type projectilePool struct {
	params ProjectileParams
	slots  []Projectile
}

func newProjectilePool(p ProjectileParams, newBody BodyFactory) *projectilePool {
	pool := &projectilePool{
		params: p,
		slots:  make([]Projectile, p.Capacity),
	}
	for i := range pool.slots {
		pool.slots[i].body = newBody()
	}
	return pool
}

// fire launches the lowest-index unused slot and returns its index, or -1
// when every slot is in flight.
func (pp *projectilePool) fire(at dynamo.Vector3, aim Angles, now time.Duration) int {
	for i := range pp.slots {
		p := &pp.slots[i]
		if p.Lifecycle != Unused {
			continue
		}
		b := p.body
		b.SetMass(pp.params.Mass)
		b.SetInertiaTensor(dynamo.SphereInertia(pp.params.Radius, pp.params.Mass))
		b.SetPosition(at)
		b.SetOrientation(dynamo.Identity())
		b.SetVelocity(Rotate(pp.params.LaunchVelocity, aim))
		b.SetRotation(dynamo.Vector3{})
		b.SetAcceleration(pp.params.Acceleration)
		b.SetDamping(pp.params.LinearDamping, pp.params.AngularDamping)
		b.SetCanSleep(false)
		b.SetAwake(true)
		b.ClearAccumulators()

		p.Lifecycle = InFlight
		p.LaunchedAt = now
		return i
	}
	return -1
}

// advance integrates every in-flight slot and releases the ones that left
// the play volume or outlived their TTL, reporting each through expired.
func (pp *projectilePool) advance(dt float64, now time.Duration, expired func(slot int, why Expiry)) {
	for i := range pp.slots {
		p := &pp.slots[i]
		if p.Lifecycle != InFlight {
			continue
		}
		p.body.Integrate(dt)
		if why := pp.expiry(p, now); why != ExpiryNone {
			p.Lifecycle = Unused
			expired(i, why)
		}
	}
}

func (pp *projectilePool) expiry(p *Projectile, now time.Duration) Expiry {
	pos := p.body.Position()
	switch {
	case pos.Y < pp.params.FloorY:
		return ExpiryFloor
	case pos.Z > pp.params.FarZ:
		return ExpiryFar
	case p.LaunchedAt+pp.params.TTL < now:
		return ExpiryTTL
	}
	return ExpiryNone
}

func (pp *projectilePool) release(i int) { pp.slots[i].Lifecycle = Unused }

func (pp *projectilePool) sphere(i int) collide.Sphere {
	return collide.Sphere{Body: pp.slots[i].body, Radius: pp.params.Radius}
}

func (pp *projectilePool) inFlight() int {
	n := 0
	for i := range pp.slots {
		if pp.slots[i].Lifecycle == InFlight {
			n++
		}
	}
	return n
}

func (pp *projectilePool) clear() {
	for i := range pp.slots {
		pp.slots[i].Lifecycle = Unused
		pp.slots[i].LaunchedAt = 0
	}
}
