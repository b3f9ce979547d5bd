package physics

import (
	"math"
	"testing"

	"github.com/san-kum/gallery/internal/dynamo"
	"github.com/san-kum/gallery/internal/integrators"
)

func newBody() *RigidBody {
	return NewRigidBody(integrators.NewSymplectic())
}

func TestRigidBody_FreeFlight(t *testing.T) {
	b := newBody()
	b.SetMass(1.5)
	b.SetPosition(dynamo.Vec3(0, 4, 0))
	b.SetVelocity(dynamo.Vec3(0, 0, 20))
	b.SetAcceleration(dynamo.Vec3(0, -0.5, 0))
	b.SetDamping(1, 1)

	for i := 0; i < 10; i++ {
		b.Integrate(0.1)
	}

	p := b.Position()
	if math.Abs(p.Z-20) > 1e-9 {
		t.Errorf("z = %v, want 20", p.Z)
	}
	if p.Y >= 4 {
		t.Errorf("y = %v, expected the body to drop", p.Y)
	}
}

func TestRigidBody_Damping(t *testing.T) {
	b := newBody()
	b.SetVelocity(dynamo.Vec3(5, 0, 0))
	b.SetDamping(0.5, 1)
	b.Integrate(1)

	if got := b.Velocity().X; math.Abs(got-2.5) > 1e-9 {
		t.Errorf("vx = %v, want 2.5 after one second at damping 0.5", got)
	}
}

func TestRigidBody_SleepStopsIntegration(t *testing.T) {
	b := newBody()
	b.SetPosition(dynamo.Vec3(1, 2, 3))
	b.SetVelocity(dynamo.Vec3(5, 0, 0))
	b.SetAcceleration(dynamo.Vec3(0, -10, 0))
	b.SetAwake(false)

	if !b.Velocity().IsZero() {
		t.Errorf("sleeping body kept velocity %v", b.Velocity())
	}

	b.Integrate(0.5)
	if b.Position() != dynamo.Vec3(1, 2, 3) {
		t.Errorf("sleeping body moved to %v", b.Position())
	}
}

func TestRigidBody_CanSleepFalseWakes(t *testing.T) {
	b := newBody()
	b.SetAwake(false)
	b.SetCanSleep(false)
	if !b.Awake() {
		t.Error("SetCanSleep(false) should wake the body")
	}
}

func TestRigidBody_ImpulseAtPoint(t *testing.T) {
	b := newBody()
	b.SetMass(2)
	b.SetInertiaTensor(dynamo.BlockInertia(dynamo.Vec3(1, 1, 1), 2))

	// through the centre of mass: no spin
	b.AddImpulseAtPoint(dynamo.Vec3(0, 0, 4), b.Position())
	if got := b.Velocity(); !got.Near(dynamo.Vec3(0, 0, 2), 1e-12) {
		t.Errorf("velocity = %v, want (0, 0, 2)", got)
	}
	if !b.Rotation().IsZero() {
		t.Errorf("central impulse produced rotation %v", b.Rotation())
	}

	// off-centre: spin about Y
	b.AddImpulseAtPoint(dynamo.Vec3(0, 0, 4), dynamo.Vec3(1, 0, 0))
	if r := b.Rotation(); r.Y == 0 || r.X != 0 || r.Z != 0 {
		t.Errorf("off-centre impulse rotation = %v, want pure Y spin", r)
	}
}

func TestRigidBody_Deterministic(t *testing.T) {
	run := func() dynamo.Vector3 {
		b := newBody()
		b.SetMass(0.36)
		b.SetInertiaTensor(dynamo.BlockInertia(dynamo.Vec3(1.2, 3, 1), 0.36))
		b.SetVelocity(dynamo.Vec3(5, 0, 0))
		b.SetAcceleration(dynamo.Vec3(0, -10, 0))
		b.SetDamping(0.95, 0.8)
		b.AddImpulseAtPoint(dynamo.Vec3(0, 0, 1), dynamo.Vec3(0.5, 1, 0))
		for i := 0; i < 120; i++ {
			b.Integrate(1.0 / 60)
		}
		return b.Position()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("integration not deterministic: %v vs %v", a, b)
	}
}

func TestRigidBody_MassPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on zero mass")
		}
	}()
	newBody().SetMass(0)
}

func TestRigidBody_IntegrateReusesState(t *testing.T) {
	for _, name := range integrators.Names() {
		t.Run(name, func(t *testing.T) {
			integ, _ := integrators.New(name)
			b := NewRigidBody(integ)
			b.SetVelocity(dynamo.Vec3(0, 0, 20))
			b.SetAcceleration(dynamo.Vec3(0, -0.5, 0))
			b.Integrate(0.016)
			if allocs := testing.AllocsPerRun(50, func() { b.Integrate(0.016) }); allocs != 0 {
				t.Errorf("Integrate allocates %.0f times", allocs)
			}
		})
	}
}
