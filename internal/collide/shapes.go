package collide

import (
	"math"

	"github.com/san-kum/gallery/internal/dynamo"
)

// Frame is the part of a rigid body the detector reads.
type Frame interface {
	Position() dynamo.Vector3
	Orientation() dynamo.Quaternion
}

type Box struct {
	Body     Frame
	HalfSize dynamo.Vector3
}

type Sphere struct {
	Body   Frame
	Radius float64
}

// Plane is a half-space: points p with Normal·p <= Offset are inside.
type Plane struct {
	Normal dynamo.Vector3
	Offset float64
}

var boxCorners = [8]dynamo.Vector3{
	{X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: 1},
	{X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1},
}

// Vertices returns the eight world-space corners of the box.
func (b Box) Vertices() [8]dynamo.Vector3 {
	var out [8]dynamo.Vector3
	q := b.Body.Orientation()
	p := b.Body.Position()
	for i, c := range boxCorners {
		local := dynamo.Vec3(c.X*b.HalfSize.X, c.Y*b.HalfSize.Y, c.Z*b.HalfSize.Z)
		out[i] = p.Add(q.Rotate(local))
	}
	return out
}

// projectedRadius is the half-length of the box projected onto axis.
func (b Box) projectedRadius(axis dynamo.Vector3) float64 {
	m := b.Body.Orientation().Normalize().Matrix()
	ax := dynamo.Vec3(m[0], m[3], m[6])
	ay := dynamo.Vec3(m[1], m[4], m[7])
	az := dynamo.Vec3(m[2], m[5], m[8])
	return b.HalfSize.X*math.Abs(axis.Dot(ax)) +
		b.HalfSize.Y*math.Abs(axis.Dot(ay)) +
		b.HalfSize.Z*math.Abs(axis.Dot(az))
}

// worldToLocal maps a world point into the box's body space.
func (b Box) worldToLocal(p dynamo.Vector3) dynamo.Vector3 {
	m := b.Body.Orientation().Normalize().Matrix()
	return m.Transpose().Transform(p.Sub(b.Body.Position()))
}
