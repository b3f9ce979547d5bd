package gallery

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/san-kum/gallery/internal/collide"
	"github.com/san-kum/gallery/internal/dynamo"
)

// State owns the session: both pools, the emitter, and the score and ammo
// counters. It is the only thing that mutates them.
type State struct {
	params   Params
	detector Detector
	ground   collide.Plane
	contacts *collide.ContactData
	log      zerolog.Logger

	projectiles *projectilePool
	targets     *targetPool
	emitter     *Emitter

	score     int
	ammo      int
	remaining int
	cleared   bool

	now   time.Duration
	frame uint64

	observers []Observer
}

type Option func(*State)

func WithLogger(l zerolog.Logger) Option {
	return func(s *State) { s.log = l }
}

func WithObserver(o Observer) Option {
	return func(s *State) { s.observers = append(s.observers, o) }
}

// New allocates every pooled body up front through newBody and starts the
// first round.
func New(params Params, newBody BodyFactory, detector Detector, opts ...Option) *State {
	s := &State{
		params:   params,
		detector: detector,
		ground: collide.Plane{
			Normal: params.Collision.GroundNormal,
			Offset: params.Collision.GroundOffset,
		},
		contacts:    collide.NewContactData(params.Collision.MaxContacts),
		log:         zerolog.Nop(),
		projectiles: newProjectilePool(params.Projectile, newBody),
		targets:     newTargetPool(params.Target, newBody),
		emitter:     NewEmitter(params.Emitter),
	}
	s.contacts.Friction = params.Collision.Friction
	s.contacts.Restitution = params.Collision.Restitution
	s.contacts.Tolerance = params.Collision.Tolerance
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

func (s *State) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Reset starts a new round. The logical clock keeps running.
func (s *State) Reset() {
	s.score = 0
	s.ammo = s.params.Projectile.Capacity
	s.cleared = false
	s.emitter.Reset()
	s.projectiles.clear()
	s.targets.reset()
	s.remaining = s.targets.remaining()

	s.log.Info().Int("targets", s.remaining).Int("ammo", s.ammo).Msg("round reset")
	s.emit(Event{Kind: EventReset, Slot: -1, Target: -1})
}

// Fire launches one round from the muzzle along the current aim. It reports
// false, changing nothing, when the magazine is empty or every slot is
// already in flight.
func (s *State) Fire() bool {
	if s.ammo <= 0 {
		s.emit(Event{Kind: EventDropped, Slot: -1, Target: -1})
		return false
	}
	at := s.emitter.LaunchPosition()
	slot := s.projectiles.fire(at, s.emitter.Aim(), s.now)
	if slot < 0 {
		s.emit(Event{Kind: EventDropped, Slot: -1, Target: -1})
		return false
	}
	s.ammo--
	s.emit(Event{Kind: EventFired, Slot: slot, Target: -1, Position: at})
	return true
}

func (s *State) AdjustAim(axis Axis, delta float64) bool {
	return s.emitter.AdjustAim(axis, delta)
}

func (s *State) Move(dy float64) { s.emitter.Move(dy) }

// Apply runs one player command and reports whether it changed anything
// the command targets: a round fired, or an aim that recomputed.
func (s *State) Apply(cmd Command) bool {
	step, lift := s.params.Emitter.AimStep, s.params.Emitter.RaiseStep
	switch cmd {
	case CmdFire:
		return s.Fire()
	case CmdPitchUp:
		return s.AdjustAim(Pitch, -step)
	case CmdPitchDown:
		return s.AdjustAim(Pitch, step)
	case CmdYawLeft:
		return s.AdjustAim(Yaw, step)
	case CmdYawRight:
		return s.AdjustAim(Yaw, -step)
	case CmdRaise:
		s.Move(lift)
		return true
	case CmdLower:
		s.Move(-lift)
		return true
	case CmdReset:
		s.Reset()
		return true
	}
	return false
}

// Update advances one frame of dt seconds: clock, projectiles, targets,
// then contacts.
func (s *State) Update(dt float64) {
	s.frame++
	s.now += time.Duration(dt * float64(time.Second))

	s.projectiles.advance(dt, s.now, s.expired)
	s.targets.advance(dt)
	s.dispatch()
}

func (s *State) expired(slot int, why Expiry) {
	pos := s.projectiles.slots[slot].body.Position()
	s.log.Debug().Int("slot", slot).Stringer("reason", why).Msg("projectile expired")
	s.emit(Event{Kind: EventExpired, Slot: slot, Target: -1, Position: pos, Expiry: why})
	s.refill()
}

// dispatch tests each target against the ground and then against every
// in-flight projectile, in pool order, until the contact budget runs out.
// Pairs left untested are picked up next frame.
func (s *State) dispatch() {
	s.contacts.Reset(s.params.Collision.MaxContacts)
	for i := range s.targets.slots {
		if !s.contacts.HasMoreContacts() {
			return
		}
		if !s.targets.slots[i].Struck() &&
			s.detector.BoxAndHalfSpace(s.targets.box(i), s.ground, s.contacts) {
			s.strike(i)
		}
		for j := range s.projectiles.slots {
			if !s.projectiles.slots[j].InFlight() {
				continue
			}
			if !s.contacts.HasMoreContacts() {
				return
			}
			if s.detector.BoxAndSphere(s.targets.box(i), s.projectiles.sphere(j), s.contacts) {
				s.hit(i, j)
			}
		}
	}
}

func (s *State) strike(i int) {
	if !s.targets.collapse(i) {
		return
	}
	s.score++
	s.remaining--
	pos := s.targets.slots[i].body.Position()
	s.log.Info().Int("target", i).Int("score", s.score).Msg("target down")
	s.emit(Event{Kind: EventScored, Slot: -1, Target: i, Position: pos})

	if s.remaining == 0 && !s.cleared {
		s.cleared = true
		s.log.Info().Int("score", s.score).Dur("time", s.now).Msg("gallery cleared")
		s.emit(Event{Kind: EventCleared, Slot: -1, Target: -1})
	}
}

func (s *State) hit(target, slot int) {
	body := s.projectiles.slots[slot].body
	pos, vel := body.Position(), body.Velocity()
	s.projectiles.release(slot)

	s.log.Debug().Int("slot", slot).Int("target", target).Msg("projectile hit")
	s.emit(Event{Kind: EventHit, Slot: slot, Target: target, Position: pos})
	s.refill()

	s.targets.knock(target, vel.Scale(s.params.Target.ImpactScale), pos)
}

// refill tops the magazine back up once it has run dry and a slot frees.
func (s *State) refill() {
	if s.ammo != 0 {
		return
	}
	s.ammo = s.params.Projectile.Capacity
	s.log.Debug().Int("ammo", s.ammo).Msg("magazine refilled")
	s.emit(Event{Kind: EventRefilled, Slot: -1, Target: -1})
}

func (s *State) emit(e Event) {
	e.Frame = s.frame
	e.Time = s.now
	e.Score = s.score
	e.Ammo = s.ammo
	for _, o := range s.observers {
		o.OnEvent(e)
	}
}

func (s *State) Params() Params                 { return s.params }
func (s *State) Score() int                     { return s.score }
func (s *State) Ammo() int                      { return s.ammo }
func (s *State) TargetsRemaining() int          { return s.remaining }
func (s *State) Cleared() bool                  { return s.cleared }
func (s *State) Now() time.Duration             { return s.now }
func (s *State) Frame() uint64                  { return s.frame }
func (s *State) Emitter() *Emitter              { return s.emitter }
func (s *State) InFlight() int                  { return s.projectiles.inFlight() }
func (s *State) Contacts() []collide.Contact    { return s.contacts.Contacts }
func (s *State) Projectile(i int) *Projectile   { return &s.projectiles.slots[i] }
func (s *State) Target(i int) *Target           { return &s.targets.slots[i] }
func (s *State) ProjectileCount() int           { return len(s.projectiles.slots) }
func (s *State) TargetCount() int               { return len(s.targets.slots) }
func (s *State) LaunchPosition() dynamo.Vector3 { return s.emitter.LaunchPosition() }

// Snapshot is the HUD-level summary of one frame.
type Snapshot struct {
	Frame            uint64
	Time             time.Duration
	Score            int
	Ammo             int
	TargetsRemaining int
	InFlight         int
	Aim              Angles
	OffTarget        bool
	Cleared          bool
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Frame:            s.frame,
		Time:             s.now,
		Score:            s.score,
		Ammo:             s.ammo,
		TargetsRemaining: s.remaining,
		InFlight:         s.projectiles.inFlight(),
		Aim:              s.emitter.Aim(),
		OffTarget:        s.emitter.OffTarget(),
		Cleared:          s.cleared,
	}
}
