package gallery

import (
	"math"

	"github.com/san-kum/gallery/internal/dynamo"
)

type Axis int

const (
	Pitch Axis = iota
	Yaw
)

func (a Axis) String() string {
	if a == Yaw {
		return "yaw"
	}
	return "pitch"
}

// Angles is the emitter aim in degrees. Negative pitch aims up, positive yaw
// swings left.
type Angles struct {
	Pitch float64
	Yaw   float64
}

// Rotate maps a local offset to world space: pitch about X first, then yaw
// about Y.
func Rotate(local dynamo.Vector3, a Angles) dynamo.Vector3 {
	sp, cp := math.Sincos(a.Pitch * math.Pi / 180)
	sy, cy := math.Sincos(a.Yaw * math.Pi / 180)

	y := local.Y*cp - local.Z*sp
	z := local.Y*sp + local.Z*cp

	return dynamo.Vector3{
		X: local.X*cy + z*sy,
		Y: y,
		Z: -local.X*sy + z*cy,
	}
}

// Emitter is the fixed gun: its aim angles and the world-space offsets the
// camera, sight, gun model and muzzle derive from them.
type Emitter struct {
	params EmitterParams
	aim    Angles
	lift   float64

	camera dynamo.Vector3
	sight  dynamo.Vector3
	gun    dynamo.Vector3
	ammo   dynamo.Vector3
}

func NewEmitter(p EmitterParams) *Emitter {
	e := &Emitter{params: p}
	e.Reset()
	return e
}

func (e *Emitter) Reset() {
	e.aim = Angles{}
	e.lift = 0
	e.camera = e.params.CameraOffset
	e.sight = e.params.AimOffset
	e.gun = e.params.GunOffset
	e.ammo = e.params.AmmoOffset
}

// AdjustAim moves one aim axis by delta, bounded to MaxAimStep per call. A
// result strictly inside the axis limit recomputes the sight and muzzle
// offsets and returns true. A result on or past the limit is clamped and the
// offsets keep their previous values.
func (e *Emitter) AdjustAim(axis Axis, delta float64) bool {
	delta = math.Max(-e.params.MaxAimStep, math.Min(e.params.MaxAimStep, delta))

	angle, limit := &e.aim.Pitch, e.params.PitchLimit
	if axis == Yaw {
		angle, limit = &e.aim.Yaw, e.params.YawLimit
	}

	v := *angle + delta
	if v > -limit && v < limit {
		*angle = v
		e.recompute()
		return true
	}
	*angle = math.Max(-limit, math.Min(limit, v))
	return false
}

func (e *Emitter) recompute() {
	e.sight = Rotate(e.params.AimOffset, e.aim)
	e.sight.Y += e.lift
	e.ammo = Rotate(e.params.AmmoOffset, e.aim)
}

// Move shifts the camera, sight and gun vertically. It has no bound.
func (e *Emitter) Move(dy float64) {
	e.lift += dy
	e.camera.Y += dy
	e.sight.Y += dy
	e.gun.Y += dy
}

func (e *Emitter) Aim() Angles { return e.aim }

func (e *Emitter) CameraOffset() dynamo.Vector3 { return e.camera }
func (e *Emitter) AimOffset() dynamo.Vector3    { return e.sight }
func (e *Emitter) GunOffset() dynamo.Vector3    { return e.gun }
func (e *Emitter) AmmoOffset() dynamo.Vector3   { return e.ammo }

// LaunchPosition is where a fired round appears.
func (e *Emitter) LaunchPosition() dynamo.Vector3 { return e.camera.Sub(e.ammo) }

// OffTarget reports an aim far enough from the gallery that a warning is
// shown.
func (e *Emitter) OffTarget() bool {
	return e.aim.Pitch <= e.params.WarnPitch || math.Abs(e.aim.Yaw) >= e.params.WarnYaw
}
