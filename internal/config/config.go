package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gallery/internal/dynamo"
	"github.com/san-kum/gallery/internal/gallery"
	"github.com/san-kum/gallery/internal/integrators"
)

const (
	DefaultIntegrator = "symplectic"
	DefaultDt         = 1.0 / 60
	DefaultDuration   = 30.0
)

var (
	ErrInvalidConfig = errors.New("config: invalid value")
	ErrUnknownPreset = errors.New("config: unknown preset")
)

// Vec is a vector written as a flow sequence, e.g. [0, 4.5, -3].
type Vec [3]float64

func (v Vec) Vector() dynamo.Vector3 { return dynamo.Vec3(v[0], v[1], v[2]) }

func vec(v dynamo.Vector3) Vec { return Vec{v.X, v.Y, v.Z} }

func (v Vec) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range v {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprint(c)})
	}
	return n, nil
}

type Config struct {
	Sim        SimConfig        `yaml:"sim"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Target     TargetConfig     `yaml:"target"`
	Emitter    EmitterConfig    `yaml:"emitter"`
	Collision  CollisionConfig  `yaml:"collision"`
}

type SimConfig struct {
	Integrator string  `yaml:"integrator"`
	Dt         float64 `yaml:"dt"`
	Duration   float64 `yaml:"duration"`
}

type ProjectileConfig struct {
	Capacity       int     `yaml:"capacity"`
	TTL            float64 `yaml:"ttl"`
	Speed          float64 `yaml:"speed"`
	Mass           float64 `yaml:"mass"`
	Radius         float64 `yaml:"radius"`
	Gravity        float64 `yaml:"gravity"`
	LinearDamping  float64 `yaml:"linear_damping"`
	AngularDamping float64 `yaml:"angular_damping"`
	FloorY         float64 `yaml:"floor_y"`
	FarZ           float64 `yaml:"far_z"`
}

type TargetConfig struct {
	Count          int     `yaml:"count"`
	FrontRow       int     `yaml:"front_row"`
	StartX         float64 `yaml:"start_x"`
	FrontZ         float64 `yaml:"front_z"`
	FrontSpacing   float64 `yaml:"front_spacing"`
	BackZ          float64 `yaml:"back_z"`
	BackSpacing    float64 `yaml:"back_spacing"`
	Height         float64 `yaml:"height"`
	HalfSize       Vec     `yaml:"half_size"`
	Density        float64 `yaml:"density"`
	Speed          float64 `yaml:"speed"`
	Bound          float64 `yaml:"bound"`
	LinearDamping  float64 `yaml:"linear_damping"`
	AngularDamping float64 `yaml:"angular_damping"`
	Gravity        float64 `yaml:"gravity"`
	ImpactScale    float64 `yaml:"impact_scale"`
}

type EmitterConfig struct {
	PitchLimit float64 `yaml:"pitch_limit"`
	YawLimit   float64 `yaml:"yaw_limit"`
	AimStep    float64 `yaml:"aim_step"`
	MaxAimStep float64 `yaml:"max_aim_step"`
	RaiseStep  float64 `yaml:"raise_step"`
	Camera     Vec     `yaml:"camera"`
	Sight      Vec     `yaml:"sight"`
	Gun        Vec     `yaml:"gun"`
	Muzzle     Vec     `yaml:"muzzle"`
	WarnPitch  float64 `yaml:"warn_pitch"`
	WarnYaw    float64 `yaml:"warn_yaw"`
}

type CollisionConfig struct {
	MaxContacts  int     `yaml:"max_contacts"`
	GroundOffset float64 `yaml:"ground_offset"`
	Friction     float64 `yaml:"friction"`
	Restitution  float64 `yaml:"restitution"`
	Tolerance    float64 `yaml:"tolerance"`
}

func DefaultConfig() *Config {
	p := gallery.DefaultParams()
	return &Config{
		Sim: SimConfig{
			Integrator: DefaultIntegrator,
			Dt:         DefaultDt,
			Duration:   DefaultDuration,
		},
		Projectile: ProjectileConfig{
			Capacity:       p.Projectile.Capacity,
			TTL:            p.Projectile.TTL.Seconds(),
			Speed:          p.Projectile.LaunchVelocity.Z,
			Mass:           p.Projectile.Mass,
			Radius:         p.Projectile.Radius,
			Gravity:        -p.Projectile.Acceleration.Y,
			LinearDamping:  p.Projectile.LinearDamping,
			AngularDamping: p.Projectile.AngularDamping,
			FloorY:         p.Projectile.FloorY,
			FarZ:           p.Projectile.FarZ,
		},
		Target: TargetConfig{
			Count:          p.Target.Count,
			FrontRow:       p.Target.FrontRow,
			StartX:         p.Target.StartX,
			FrontZ:         p.Target.FrontZ,
			FrontSpacing:   p.Target.FrontSpacing,
			BackZ:          p.Target.BackZ,
			BackSpacing:    p.Target.BackSpacing,
			Height:         p.Target.Height,
			HalfSize:       vec(p.Target.HalfSize),
			Density:        p.Target.Density,
			Speed:          p.Target.Speed,
			Bound:          p.Target.Bound,
			LinearDamping:  p.Target.LinearDamping,
			AngularDamping: p.Target.AngularDamping,
			Gravity:        -p.Target.FallAcceleration.Y,
			ImpactScale:    p.Target.ImpactScale,
		},
		Emitter: EmitterConfig{
			PitchLimit: p.Emitter.PitchLimit,
			YawLimit:   p.Emitter.YawLimit,
			AimStep:    p.Emitter.AimStep,
			MaxAimStep: p.Emitter.MaxAimStep,
			RaiseStep:  p.Emitter.RaiseStep,
			Camera:     vec(p.Emitter.CameraOffset),
			Sight:      vec(p.Emitter.AimOffset),
			Gun:        vec(p.Emitter.GunOffset),
			Muzzle:     vec(p.Emitter.AmmoOffset),
			WarnPitch:  p.Emitter.WarnPitch,
			WarnYaw:    p.Emitter.WarnYaw,
		},
		Collision: CollisionConfig{
			MaxContacts:  p.Collision.MaxContacts,
			GroundOffset: p.Collision.GroundOffset,
			Friction:     p.Collision.Friction,
			Restitution:  p.Collision.Restitution,
			Tolerance:    p.Collision.Tolerance,
		},
	}
}

// Load reads a YAML file over the defaults, so a file only needs the keys it
// changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	checks := []struct {
		ok   bool
		name string
	}{
		{c.Sim.Dt > 0, "sim.dt"},
		{c.Sim.Duration > 0, "sim.duration"},
		{c.Projectile.Capacity > 0, "projectile.capacity"},
		{c.Projectile.TTL > 0, "projectile.ttl"},
		{c.Projectile.Mass > 0, "projectile.mass"},
		{c.Projectile.Radius > 0, "projectile.radius"},
		{c.Target.Count > 0, "target.count"},
		{c.Target.FrontRow >= 0 && c.Target.FrontRow <= c.Target.Count, "target.front_row"},
		{c.Target.Density > 0, "target.density"},
		{c.Target.Bound > 0, "target.bound"},
		{c.Target.HalfSize[0] > 0 && c.Target.HalfSize[1] > 0 && c.Target.HalfSize[2] > 0, "target.half_size"},
		{c.Emitter.PitchLimit > 0, "emitter.pitch_limit"},
		{c.Emitter.YawLimit > 0, "emitter.yaw_limit"},
		{c.Emitter.AimStep > 0, "emitter.aim_step"},
		{c.Emitter.MaxAimStep >= c.Emitter.AimStep, "emitter.max_aim_step"},
		{c.Collision.MaxContacts > 0, "collision.max_contacts"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.name)
		}
	}
	if _, err := integrators.New(c.Sim.Integrator); err != nil {
		return fmt.Errorf("sim.integrator: %w", err)
	}
	return nil
}

// GalleryParams converts the file layout into the core's parameters.
func (c *Config) GalleryParams() gallery.Params {
	p := gallery.DefaultParams()

	p.Projectile.Capacity = c.Projectile.Capacity
	p.Projectile.TTL = time.Duration(c.Projectile.TTL * float64(time.Second))
	p.Projectile.LaunchVelocity = dynamo.Vec3(0, 0, c.Projectile.Speed)
	p.Projectile.Mass = c.Projectile.Mass
	p.Projectile.Radius = c.Projectile.Radius
	p.Projectile.Acceleration = dynamo.Vec3(0, -c.Projectile.Gravity, 0)
	p.Projectile.LinearDamping = c.Projectile.LinearDamping
	p.Projectile.AngularDamping = c.Projectile.AngularDamping
	p.Projectile.FloorY = c.Projectile.FloorY
	p.Projectile.FarZ = c.Projectile.FarZ

	t := c.Target
	p.Target = gallery.TargetParams{
		Count:            t.Count,
		FrontRow:         t.FrontRow,
		StartX:           t.StartX,
		FrontZ:           t.FrontZ,
		FrontSpacing:     t.FrontSpacing,
		BackZ:            t.BackZ,
		BackSpacing:      t.BackSpacing,
		Height:           t.Height,
		HalfSize:         t.HalfSize.Vector(),
		Density:          t.Density,
		Speed:            t.Speed,
		Bound:            t.Bound,
		LinearDamping:    t.LinearDamping,
		AngularDamping:   t.AngularDamping,
		FallAcceleration: dynamo.Vec3(0, -t.Gravity, 0),
		ImpactScale:      t.ImpactScale,
	}

	e := c.Emitter
	p.Emitter = gallery.EmitterParams{
		PitchLimit:   e.PitchLimit,
		YawLimit:     e.YawLimit,
		AimStep:      e.AimStep,
		MaxAimStep:   e.MaxAimStep,
		RaiseStep:    e.RaiseStep,
		CameraOffset: e.Camera.Vector(),
		AimOffset:    e.Sight.Vector(),
		GunOffset:    e.Gun.Vector(),
		AmmoOffset:   e.Muzzle.Vector(),
		WarnPitch:    e.WarnPitch,
		WarnYaw:      e.WarnYaw,
	}

	p.Collision.MaxContacts = c.Collision.MaxContacts
	p.Collision.GroundOffset = c.Collision.GroundOffset
	p.Collision.Friction = c.Collision.Friction
	p.Collision.Restitution = c.Collision.Restitution
	p.Collision.Tolerance = c.Collision.Tolerance
	return p
}

// Frames is the number of whole frames a headless run of Duration takes.
func (c *Config) Frames() int {
	return int(c.Sim.Duration/c.Sim.Dt + 0.5)
}
