package gallery

import (
	"testing"
	"time"

	"github.com/san-kum/gallery/internal/dynamo"
)

func TestTargetLayout(t *testing.T) {
	p := DefaultParams().Target
	want := []dynamo.Vector3{
		{X: -40, Y: 2.9, Z: 9.5}, {X: -30, Y: 2.9, Z: 9.5}, {X: -20, Y: 2.9, Z: 9.5},
		{X: -10, Y: 2.9, Z: 9.5}, {X: 0, Y: 2.9, Z: 9.5},
		{X: 10, Y: 2.9, Z: 19.5}, {X: 25, Y: 2.9, Z: 19.5}, {X: 40, Y: 2.9, Z: 19.5},
		{X: 55, Y: 2.9, Z: 19.5}, {X: 70, Y: 2.9, Z: 19.5},
	}
	for i, w := range want {
		if got := p.Layout(i); !got.Near(w, 1e-12) {
			t.Errorf("Layout(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestTargetPool_Reset(t *testing.T) {
	p := DefaultParams().Target
	pool := newTargetPool(p, newStubBody)
	pool.slots[2].Phase = Struck
	pool.slots[2].HalfSize = dynamo.Vector3{}
	pool.reset()

	for i := range pool.slots {
		tg := &pool.slots[i]
		b := tg.body.(*stubBody)
		if tg.Phase != Oscillating || tg.HalfSize != p.HalfSize {
			t.Errorf("target %d: phase %v half size %v after reset", i, tg.Phase, tg.HalfSize)
		}
		if b.velocity != dynamo.Vec3(5, 0, 0) {
			t.Errorf("target %d: velocity %v, want (5,0,0)", i, b.velocity)
		}
		if b.mass != 1.2*3*1*0.1 {
			t.Errorf("target %d: mass %v", i, b.mass)
		}
		if b.canSleep || !b.awake {
			t.Errorf("target %d: canSleep=%v awake=%v", i, b.canSleep, b.awake)
		}
	}
	if pool.remaining() != p.Count {
		t.Errorf("remaining = %d, want %d", pool.remaining(), p.Count)
	}
}

func TestTargetPool_Oscillation(t *testing.T) {
	p := DefaultParams().Target
	pool := newTargetPool(p, newStubBody)
	pool.reset()

	reversals := 0
	lastV := 5.0
	for frame := 0; frame < 20000; frame++ {
		pool.advance(0.016)
		for _, i := range []int{3, 4} {
			x := pool.slots[i].body.Position().X
			if x < -p.Bound || x > p.Bound {
				t.Fatalf("frame %d: target %d left the band at x=%v", frame, i, x)
			}
		}
		if v := pool.slots[4].body.Velocity().X; v != lastV {
			reversals++
			lastV = v
		}
	}
	if reversals < 10 {
		t.Errorf("only %d reversals, expected sustained back-and-forth", reversals)
	}
}

func TestTargetPool_OutOfBandDriftsIn(t *testing.T) {
	p := DefaultParams().Target
	pool := newTargetPool(p, newStubBody)
	pool.reset()
	pool.advance(0.05)

	for frame := 0; frame < 2000; frame++ {
		prev := pool.slots[9].body.Position().X
		pool.advance(0.05)
		x := pool.slots[9].body.Position().X
		if prev > p.Bound && x > prev {
			t.Fatalf("frame %d: target outside the band moved outward %v -> %v", frame, prev, x)
		}
	}
	if x := pool.slots[9].body.Position().X; !pool.osc.InBand(x) {
		t.Errorf("x = %v, expected the target to reach the band", x)
	}
}

func TestTargetPool_KnockedIgnoresRail(t *testing.T) {
	pool := newTargetPool(DefaultParams().Target, newStubBody)
	pool.reset()
	pool.knock(4, dynamo.Vec3(0, 0, 1), dynamo.Vec3(0, 3, 9.5))

	if pool.slots[4].Phase != Knocked {
		t.Fatalf("phase = %v, want knocked", pool.slots[4].Phase)
	}
	for i := 0; i < 100; i++ {
		pool.advance(0.1)
	}
	b := pool.slots[4].body.(*stubBody)
	if b.velocity.X != 0 {
		t.Errorf("knocked target kept lateral velocity %v", b.velocity.X)
	}
	if b.position.Y >= 2.9 {
		t.Errorf("knocked target did not fall: y=%v", b.position.Y)
	}
}

func TestTargetPool_CollapseOnce(t *testing.T) {
	pool := newTargetPool(DefaultParams().Target, newStubBody)
	pool.reset()

	if !pool.collapse(1) {
		t.Fatal("first collapse did not report the strike")
	}
	if pool.collapse(1) {
		t.Error("second collapse reported another strike")
	}
	tg := &pool.slots[1]
	if !tg.Collapsed() || !tg.Struck() || tg.body.Awake() {
		t.Errorf("collapsed=%v struck=%v awake=%v", tg.Collapsed(), tg.Struck(), tg.body.Awake())
	}

	pool.knock(1, dynamo.Vec3(0, 0, 1), dynamo.Vector3{})
	if tg.Phase != Struck || tg.body.Awake() {
		t.Errorf("a struck target was knocked back into play: %v", tg.Phase)
	}
}

func TestProjectilePool_Fire(t *testing.T) {
	p := DefaultParams().Projectile
	pool := newProjectilePool(p, newStubBody)

	for want := 0; want < p.Capacity; want++ {
		if got := pool.fire(dynamo.Vector3{}, Angles{}, 0); got != want {
			t.Fatalf("fire #%d took slot %d", want, got)
		}
	}
	if got := pool.fire(dynamo.Vector3{}, Angles{}, 0); got != -1 {
		t.Errorf("full pool returned slot %d", got)
	}

	pool.release(3)
	if got := pool.fire(dynamo.Vec3(1, 2, 3), Angles{Yaw: 90}, time.Second); got != 3 {
		t.Fatalf("reuse took slot %d, want 3", got)
	}
	b := pool.slots[3].body.(*stubBody)
	if b.position != dynamo.Vec3(1, 2, 3) {
		t.Errorf("position = %v", b.position)
	}
	if !b.velocity.Near(dynamo.Vec3(20, 0, 0), 1e-9) {
		t.Errorf("velocity = %v, want (20,0,0)", b.velocity)
	}
	if b.mass != 1.5 || b.accel != p.Acceleration || b.canSleep {
		t.Errorf("mass=%v accel=%v canSleep=%v", b.mass, b.accel, b.canSleep)
	}
	if pool.slots[3].LaunchedAt != time.Second {
		t.Errorf("launchedAt = %v", pool.slots[3].LaunchedAt)
	}
}

func TestProjectilePool_Expiry(t *testing.T) {
	tests := []struct {
		name     string
		velocity dynamo.Vector3
		accel    dynamo.Vector3
		want     Expiry
		maxFrame int
	}{
		{"falls below floor", dynamo.Vec3(0, 0, 20), dynamo.Vec3(0, -0.5, 0), ExpiryFloor, 100},
		{"flies past far plane", dynamo.Vec3(0, 0, 100), dynamo.Vector3{}, ExpiryFar, 100},
		{"outlives ttl", dynamo.Vec3(0, 0, 1), dynamo.Vector3{}, ExpiryTTL, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams().Projectile
			p.LaunchVelocity = tt.velocity
			p.Acceleration = tt.accel
			pool := newProjectilePool(p, newStubBody)
			pool.fire(dynamo.Vec3(0, 4.25, -1), Angles{}, 0)

			var got []Expiry
			now := time.Duration(0)
			for f := 0; f < tt.maxFrame && len(got) == 0; f++ {
				now += 100 * time.Millisecond
				pool.advance(0.1, now, func(slot int, why Expiry) { got = append(got, why) })
			}
			if len(got) != 1 || got[0] != tt.want {
				t.Fatalf("expiries = %v, want [%v]", got, tt.want)
			}
			if pool.inFlight() != 0 {
				t.Errorf("slot still in flight after expiry")
			}
		})
	}
}

func TestProjectilePool_TTLIsStrict(t *testing.T) {
	p := DefaultParams().Projectile
	p.Acceleration = dynamo.Vector3{}
	p.LaunchVelocity = dynamo.Vector3{}
	pool := newProjectilePool(p, newStubBody)
	pool.fire(dynamo.Vec3(0, 1, 0), Angles{}, 0)

	expired := false
	pool.advance(0.5, p.TTL, func(int, Expiry) { expired = true })
	if expired {
		t.Fatal("projectile expired exactly at its ttl")
	}
	pool.advance(0.5, p.TTL+time.Millisecond, func(int, Expiry) { expired = true })
	if !expired {
		t.Fatal("projectile survived past its ttl")
	}
}
