// Package session runs the gallery headless from a script and records what
// happened each frame.
package session

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/san-kum/gallery/internal/collide"
	"github.com/san-kum/gallery/internal/config"
	"github.com/san-kum/gallery/internal/dynamo"
	"github.com/san-kum/gallery/internal/gallery"
	"github.com/san-kum/gallery/internal/integrators"
	"github.com/san-kum/gallery/internal/metrics"
	"github.com/san-kum/gallery/internal/physics"
)

// Frame is one sampled row of a session trace.
type Frame struct {
	Time             float64
	Score            int
	Ammo             int
	TargetsRemaining int
	InFlight         int
	Pitch            float64
	Yaw              float64
}

func Sample(s gallery.Snapshot) Frame {
	return Frame{
		Time:             s.Time.Seconds(),
		Score:            s.Score,
		Ammo:             s.Ammo,
		TargetsRemaining: s.TargetsRemaining,
		InFlight:         s.InFlight,
		Pitch:            s.Aim.Pitch,
		Yaw:              s.Aim.Yaw,
	}
}

type Result struct {
	Script     string
	Frames     []Frame
	Metrics    map[string]float64
	StepsTaken int
	Cleared    bool
}

// NewState builds a gallery on the rigid-body engine and the box detector
// described by cfg. Every body gets its own stepper.
func NewState(cfg *config.Config, log zerolog.Logger, opts ...gallery.Option) (*gallery.State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	name := cfg.Sim.Integrator
	newBody := func() gallery.Body {
		integ, err := integrators.New(name)
		if err != nil {
			panic(err) // validated above
		}
		return physics.NewRigidBody(integ)
	}
	opts = append([]gallery.Option{gallery.WithLogger(log)}, opts...)
	return gallery.New(cfg.GalleryParams(), newBody, collide.NewDetector(), opts...), nil
}

type Runner struct {
	state   *gallery.State
	metrics *metrics.Set
	log     zerolog.Logger
}

func NewRunner(state *gallery.State, log zerolog.Logger) *Runner {
	r := &Runner{
		state:   state,
		metrics: metrics.Standard(),
		log:     log,
	}
	state.AddObserver(r.metrics)
	return r
}

func (r *Runner) State() *gallery.State { return r.state }
func (r *Runner) Metrics() *metrics.Set { return r.metrics }

// Run resets the gallery and plays script to the end. On cancellation it
// returns the frames recorded so far with the context error.
func (r *Runner) Run(ctx context.Context, script *Script) (*Result, error) {
	if err := script.Validate(); err != nil {
		return nil, err
	}
	r.state.Reset()

	plan := script.schedule()
	result := &Result{
		Script: script.Name,
		Frames: make([]Frame, 0, script.Frames+1),
	}
	result.Frames = append(result.Frames, Sample(r.state.Snapshot()))

	r.log.Info().Str("script", script.Name).Int("frames", script.Frames).Float64("dt", script.Dt).Msg("session started")

	for f := 0; f < script.Frames; f++ {
		select {
		case <-ctx.Done():
			result.Metrics = r.metrics.Values()
			return result, &dynamo.SimulationError{
				Frame:   r.state.Frame(),
				Time:    r.state.Now().Seconds(),
				Wrapped: fmt.Errorf("session %s: %w", script.Name, ctx.Err()),
			}
		default:
		}

		for _, cmd := range plan[f] {
			r.state.Apply(cmd)
		}
		r.state.Update(script.Dt)
		result.StepsTaken++
		if !finite(r.state) {
			result.Metrics = r.metrics.Values()
			return result, &dynamo.SimulationError{
				Frame:   r.state.Frame(),
				Time:    r.state.Now().Seconds(),
				Wrapped: fmt.Errorf("session %s: %w", script.Name, dynamo.ErrInvalidState),
			}
		}
		result.Frames = append(result.Frames, Sample(r.state.Snapshot()))
	}

	result.Cleared = r.state.Cleared()
	result.Metrics = r.metrics.Values()
	r.log.Info().
		Int("score", r.state.Score()).
		Float64("accuracy", result.Metrics["accuracy"]).
		Bool("cleared", result.Cleared).
		Msg("session finished")
	return result, nil
}

// finite reports whether every live body still has a finite position and
// velocity.
func finite(s *gallery.State) bool {
	x := make(dynamo.State, 0, 6)
	check := func(b gallery.Body) bool {
		p, v := b.Position(), b.Velocity()
		x = append(x[:0], p.X, p.Y, p.Z, v.X, v.Y, v.Z)
		return x.IsValid()
	}
	for i := 0; i < s.ProjectileCount(); i++ {
		if p := s.Projectile(i); p.InFlight() && !check(p.Body()) {
			return false
		}
	}
	for i := 0; i < s.TargetCount(); i++ {
		if !check(s.Target(i).Body()) {
			return false
		}
	}
	return true
}
