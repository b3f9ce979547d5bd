package collide

import (
	"math"

	"github.com/san-kum/gallery/internal/dynamo"
)

// Detector generates contacts between the primitive shapes. It is stateless;
// the zero value is ready to use.
type Detector struct{}

func NewDetector() *Detector { return &Detector{} }

// BoxIntersectsHalfSpace is the cheap early-out used before vertex tests.
func BoxIntersectsHalfSpace(box Box, plane Plane) bool {
	radius := box.projectedRadius(plane.Normal)
	distance := plane.Normal.Dot(box.Body.Position()) - radius
	return distance <= plane.Offset
}

// BoxAndHalfSpace records one contact per penetrating vertex and reports
// whether any were recorded.
func (d *Detector) BoxAndHalfSpace(box Box, plane Plane, data *ContactData) bool {
	if !data.HasMoreContacts() {
		return false
	}
	if !BoxIntersectsHalfSpace(box, plane) {
		return false
	}

	found := 0
	for _, v := range box.Vertices() {
		distance := v.Dot(plane.Normal)
		if distance > plane.Offset {
			continue
		}
		ok := data.add(Contact{
			Point:       v.AddScaled(plane.Normal, plane.Offset-distance),
			Normal:      plane.Normal,
			Penetration: plane.Offset - distance,
			Bodies:      [2]Frame{box.Body, nil},
		})
		if !ok {
			break
		}
		found++
	}
	return found > 0
}

// BoxAndSphere records at most one contact at the point of the box closest
// to the sphere centre.
func (d *Detector) BoxAndSphere(box Box, sphere Sphere, data *ContactData) bool {
	if !data.HasMoreContacts() {
		return false
	}

	centre := sphere.Body.Position()
	rel := box.worldToLocal(centre)

	if math.Abs(rel.X)-sphere.Radius > box.HalfSize.X ||
		math.Abs(rel.Y)-sphere.Radius > box.HalfSize.Y ||
		math.Abs(rel.Z)-sphere.Radius > box.HalfSize.Z {
		return false
	}

	closest := dynamo.Vec3(
		clamp(rel.X, box.HalfSize.X),
		clamp(rel.Y, box.HalfSize.Y),
		clamp(rel.Z, box.HalfSize.Z),
	)

	dist := closest.Sub(rel).SquareMagnitude()
	if dist > sphere.Radius*sphere.Radius {
		return false
	}

	world := box.Body.Position().Add(box.Body.Orientation().Rotate(closest))
	normal := world.Sub(centre).Normalize()
	return data.add(Contact{
		Point:       world,
		Normal:      normal,
		Penetration: sphere.Radius - math.Sqrt(dist),
		Bodies:      [2]Frame{box.Body, sphere.Body},
	})
}

func clamp(v, half float64) float64 {
	if v > half {
		return half
	}
	if v < -half {
		return -half
	}
	return v
}
