package gallery

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gallery/internal/collide"
	"github.com/san-kum/gallery/internal/dynamo"
	"github.com/san-kum/gallery/internal/integrators"
	"github.com/san-kum/gallery/internal/physics"
)

var _ = Describe("State", func() {
	var (
		s   *State
		det *scriptedDetector
		log *eventLog
	)

	BeforeEach(func() {
		log = &eventLog{}
		s, det = newTestState(WithObserver(log))
	})

	It("starts a full round", func() {
		Expect(s.Score()).To(Equal(0))
		Expect(s.Ammo()).To(Equal(6))
		Expect(s.TargetsRemaining()).To(Equal(10))
		Expect(s.InFlight()).To(Equal(0))
		Expect(log.kinds()).To(Equal([]EventKind{EventReset}))
	})

	Describe("firing", func() {
		It("never puts more rounds in flight than the pool holds", func() {
			for i := 0; i < 20; i++ {
				s.Fire()
				Expect(s.InFlight()).To(BeNumerically("<=", 6))
			}
			Expect(s.ProjectileCount()).To(Equal(6))
		})

		It("does not claim a slot or touch ammo with an empty magazine", func() {
			for i := 0; i < 6; i++ {
				Expect(s.Fire()).To(BeTrue())
			}
			s.projectiles.release(0)

			Expect(s.Fire()).To(BeFalse())
			Expect(s.Ammo()).To(Equal(0))
			Expect(s.Projectile(0).InFlight()).To(BeFalse())
		})

		It("launches from the muzzle along the aim", func() {
			s.AdjustAim(Yaw, 5)
			s.AdjustAim(Pitch, -5)
			want := s.LaunchPosition()
			Expect(s.Fire()).To(BeTrue())

			b := s.Projectile(0).Body()
			Expect(b.Position()).To(Equal(want))
			Expect(b.Velocity().Near(Rotate(dynamo.Vec3(0, 0, 20), Angles{Pitch: -5, Yaw: 5}), 1e-12)).To(BeTrue())
			Expect(b.Velocity().Y).To(BeNumerically(">", 0))
		})
	})

	Describe("ammo", func() {
		It("refills only on the first slot release after running dry", func() {
			for i := 0; i < 6; i++ {
				s.Fire()
				Expect(s.Ammo()).To(Equal(5 - i))
			}
			det.hit(s.Target(0).Body(), s.Projectile(2).Body())
			det.hit(s.Target(1).Body(), s.Projectile(4).Body())
			s.Update(0.016)

			Expect(s.Ammo()).To(Equal(6))
			Expect(log.count(EventRefilled)).To(Equal(1))
			Expect(log.kinds()).To(ContainElements(EventHit, EventRefilled))
		})
	})

	Describe("scoring", func() {
		It("collapses a grounded target and scores it once", func() {
			det.ground(s.Target(3).Body())
			s.Update(0.016)

			tg := s.Target(3)
			Expect(tg.Struck()).To(BeTrue())
			Expect(tg.HalfSize).To(Equal(dynamo.Vector3{}))
			Expect(s.Score()).To(Equal(1))
			Expect(s.TargetsRemaining()).To(Equal(9))

			s.Fire()
			det.hit(tg.Body(), s.Projectile(0).Body())
			for i := 0; i < 10; i++ {
				s.Update(0.016)
			}
			Expect(s.Score()).To(Equal(1))
			Expect(log.count(EventScored)).To(Equal(1))
			Expect(s.Projectile(0).InFlight()).To(BeFalse())
			Expect(tg.Body().Awake()).To(BeFalse())
		})

		It("scores a knocked target when it reaches the ground", func() {
			s.Fire()
			det.hit(s.Target(5).Body(), s.Projectile(0).Body())
			s.Update(0.016)
			Expect(s.Target(5).Phase).To(Equal(Knocked))
			Expect(s.Score()).To(Equal(0))

			det.ground(s.Target(5).Body())
			s.Update(0.016)
			Expect(s.Target(5).Phase).To(Equal(Struck))
			Expect(s.Score()).To(Equal(1))
		})

		It("tests the ground before projectiles for each target", func() {
			s.Fire()
			tg := s.Target(0).Body()
			det.ground(tg)
			det.hit(tg, s.Projectile(0).Body())
			s.Update(0.016)

			Expect(log.kinds()[len(log.kinds())-2:]).To(Equal([]EventKind{EventScored, EventHit}))
			Expect(s.Target(0).Phase).To(Equal(Struck))
		})

		It("reports a cleared gallery once", func() {
			for i := 0; i < s.TargetCount(); i++ {
				det.ground(s.Target(i).Body())
			}
			s.Update(0.016)
			s.Update(0.016)

			Expect(s.Cleared()).To(BeTrue())
			Expect(s.Score()).To(Equal(10))
			Expect(log.count(EventCleared)).To(Equal(1))
		})
	})

	Describe("aim", func() {
		It("stays inside its limits for any adjustment sequence", func() {
			deltas := []float64{-5, -5, 3, -7, -5, -5, -5, -5, -5, -5, -5, -5, -5, -5, -5, -5, 0.5, -5}
			for _, d := range deltas {
				s.AdjustAim(Pitch, d)
				s.AdjustAim(Yaw, -d)
				Expect(s.Emitter().Aim().Pitch).To(BeNumerically(">=", -70))
				Expect(s.Emitter().Aim().Pitch).To(BeNumerically("<=", 70))
				Expect(s.Emitter().Aim().Yaw).To(BeNumerically(">=", -90))
				Expect(s.Emitter().Aim().Yaw).To(BeNumerically("<=", 90))
			}
			Expect(s.Emitter().OffTarget()).To(BeTrue())
		})
	})

	Describe("reset", func() {
		It("restores the round", func() {
			s.AdjustAim(Yaw, 5)
			s.Move(0.3)
			s.Fire()
			s.Fire()
			det.ground(s.Target(7).Body())
			for i := 0; i < 50; i++ {
				s.Update(0.016)
			}
			delete(det.grounded, s.Target(7).Body())

			s.Reset()

			Expect(s.Score()).To(Equal(0))
			Expect(s.TargetsRemaining()).To(Equal(10))
			Expect(s.InFlight()).To(Equal(0))
			Expect(s.Ammo()).To(Equal(6))
			Expect(s.Cleared()).To(BeFalse())
			Expect(s.Emitter().Aim()).To(Equal(Angles{}))
			Expect(s.Emitter().CameraOffset()).To(Equal(s.Params().Emitter.CameraOffset))
			for i := 0; i < s.TargetCount(); i++ {
				Expect(s.Target(i).Body().Position()).To(Equal(s.Params().Target.Layout(i)))
				Expect(s.Target(i).Phase).To(Equal(Oscillating))
			}
		})
	})
})

var _ = Describe("State with the rigid-body engine", func() {
	var s *State

	BeforeEach(func() {
		newBody := func() Body { return physics.NewRigidBody(integrators.NewSymplectic()) }
		s = New(DefaultParams(), newBody, collide.NewDetector())
	})

	It("keeps in-band targets on their rail", func() {
		for frame := 0; frame < 60*60; frame++ {
			s.Update(1.0 / 60)
			for _, i := range []int{3, 4} {
				x := s.Target(i).Body().Position().X
				Expect(x).To(BeNumerically(">=", -15), "frame %d target %d", frame, i)
				Expect(x).To(BeNumerically("<=", 15), "frame %d target %d", frame, i)
			}
		}
		Expect(s.Score()).To(Equal(0))
	})

	It("scores a knocked target once it falls onto the ground plane", func() {
		s.targets.knock(4, dynamo.Vec3(0, 0, 1), s.Target(4).Body().Position().Add(dynamo.Vec3(0, 1, 0)))

		for frame := 0; frame < 600 && s.Score() == 0; frame++ {
			s.Update(1.0 / 60)
		}
		Expect(s.Score()).To(Equal(1))
		Expect(s.Target(4).Collapsed()).To(BeTrue())
		Expect(s.Target(4).Body().Awake()).To(BeFalse())
	})

	It("expires an unaimed round before its ttl runs out", func() {
		Expect(s.Fire()).To(BeTrue())
		for frame := 0; frame < 600 && s.InFlight() > 0; frame++ {
			s.Update(1.0 / 60)
		}
		Expect(s.InFlight()).To(Equal(0))
		Expect(s.Ammo()).To(Equal(5))
	})
})
