package gallery

import (
	"time"

	"github.com/san-kum/gallery/internal/dynamo"
)

type Params struct {
	Projectile ProjectileParams
	Target     TargetParams
	Emitter    EmitterParams
	Collision  CollisionParams
}

type ProjectileParams struct {
	Capacity       int
	TTL            time.Duration
	LaunchVelocity dynamo.Vector3 // local space, rotated by the aim
	Mass           float64
	Radius         float64
	Acceleration   dynamo.Vector3
	LinearDamping  float64
	AngularDamping float64
	FloorY         float64
	FarZ           float64
}

type TargetParams struct {
	Count            int
	FrontRow         int
	StartX           float64
	FrontZ           float64
	FrontSpacing     float64
	BackZ            float64
	BackSpacing      float64
	Height           float64
	HalfSize         dynamo.Vector3
	Density          float64
	Speed            float64
	Bound            float64
	LinearDamping    float64
	AngularDamping   float64
	FallAcceleration dynamo.Vector3
	ImpactScale      float64
}

type EmitterParams struct {
	PitchLimit   float64 // degrees
	YawLimit     float64 // degrees
	AimStep      float64
	MaxAimStep   float64
	RaiseStep    float64
	CameraOffset dynamo.Vector3
	AimOffset    dynamo.Vector3
	GunOffset    dynamo.Vector3
	AmmoOffset   dynamo.Vector3
	WarnPitch    float64
	WarnYaw      float64
}

type CollisionParams struct {
	MaxContacts  int
	GroundNormal dynamo.Vector3
	GroundOffset float64
	Friction     float64
	Restitution  float64
	Tolerance    float64
}

func DefaultParams() Params {
	return Params{
		Projectile: ProjectileParams{
			Capacity:       6,
			TTL:            5 * time.Second,
			LaunchVelocity: dynamo.Vec3(0, 0, 20),
			Mass:           1.5,
			Radius:         0.03,
			Acceleration:   dynamo.Vec3(0, -0.5, 0),
			LinearDamping:  0.99,
			AngularDamping: 0.8,
			FloorY:         0,
			FarZ:           200,
		},
		Target: TargetParams{
			Count:            10,
			FrontRow:         5,
			StartX:           -40,
			FrontZ:           9.5,
			FrontSpacing:     10,
			BackZ:            19.5,
			BackSpacing:      15,
			Height:           2.9,
			HalfSize:         dynamo.Vec3(1.2, 3, 1),
			Density:          0.1,
			Speed:            5,
			Bound:            15,
			LinearDamping:    0.95,
			AngularDamping:   0.8,
			FallAcceleration: dynamo.Vec3(0, -10, 0),
			ImpactScale:      0.05,
		},
		Emitter: EmitterParams{
			PitchLimit:   70,
			YawLimit:     90,
			AimStep:      0.5,
			MaxAimStep:   5,
			RaiseStep:    0.1,
			CameraOffset: dynamo.Vec3(0, 4.5, -3),
			AimOffset:    dynamo.Vec3(0, 4.5, 50),
			GunOffset:    dynamo.Vec3(-0.33, 4.25, -1.5),
			AmmoOffset:   dynamo.Vec3(0.33, 0.25, -2),
			WarnPitch:    -30,
			WarnYaw:      45,
		},
		Collision: CollisionParams{
			MaxContacts:  256,
			GroundNormal: dynamo.Vec3(0, 1, 0),
			GroundOffset: -2,
			Friction:     0.9,
			Restitution:  0.1,
			Tolerance:    0.01,
		},
	}
}
