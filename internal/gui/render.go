package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/gallery/internal/dynamo"
	"github.com/san-kum/gallery/internal/gallery"
)

var (
	colTarget     = rl.NewColor(200, 200, 200, 255)
	colTargetDown = rl.NewColor(70, 70, 70, 255)
	colProjectile = rl.NewColor(255, 220, 120, 255)
	colGun        = rl.NewColor(110, 110, 120, 255)
)

// scene draws gallery shapes in 3D. It must be used between BeginMode3D
// and EndMode3D.
type scene struct {
	camera dynamo.Vector3
}

func (s *scene) Draw(sh gallery.Shape) {
	switch sh.Kind {
	case gallery.ShapeTarget:
		s.drawTarget(sh)
	case gallery.ShapeProjectile:
		rl.DrawSphere(toRL(sh.Position), float32(sh.Extent.X), colProjectile)
	case gallery.ShapeEmitter:
		s.drawGun(sh)
	}
}

func (s *scene) drawTarget(sh gallery.Shape) {
	w, h, l := float32(2*sh.Extent.X), float32(2*sh.Extent.Y), float32(2*sh.Extent.Z)
	col := colTarget
	if sh.Struck {
		col = colTargetDown
	}
	withTransform(sh.Position, sh.Orientation, func() {
		if w > 0 && h > 0 && l > 0 {
			rl.DrawCube(rl.NewVector3(0, 0, 0), w, h, l, col)
		}
		rl.DrawCubeWires(rl.NewVector3(0, 0, 0), max(w, 0.05), max(h, 0.05), max(l, 0.05), ColGrid)
	})
}

// drawGun places the barrel at the gun offset behind the camera, pointing
// along the current aim.
func (s *scene) drawGun(sh gallery.Shape) {
	base := s.camera.Sub(sh.Position)
	muzzle := s.camera.Sub(sh.Extent)
	dir := gallery.Rotate(dynamo.Vec3(0, 0, 1), sh.Aim)
	rl.DrawCylinderEx(toRL(base), toRL(muzzle.Add(dir.Scale(0.5))), 0.08, 0.05, 8, colGun)
}

// withTransform runs draw with the model matrix set to the body's pose.
func withTransform(pos dynamo.Vector3, q dynamo.Quaternion, draw func()) {
	angle, axis := axisAngle(q)
	rl.PushMatrix()
	rl.Translatef(float32(pos.X), float32(pos.Y), float32(pos.Z))
	if angle != 0 {
		rl.Rotatef(float32(angle), float32(axis.X), float32(axis.Y), float32(axis.Z))
	}
	draw()
	rl.PopMatrix()
}

// axisAngle converts a unit quaternion to degrees about an axis.
func axisAngle(q dynamo.Quaternion) (float64, dynamo.Vector3) {
	q = q.Normalize()
	s := math.Sqrt(1 - q.R*q.R)
	if s < 1e-6 {
		return 0, dynamo.Vec3(0, 1, 0)
	}
	angle := 2 * math.Acos(q.R) * 180 / math.Pi
	return angle, dynamo.Vec3(q.I/s, q.J/s, q.K/s)
}

func toRL(v dynamo.Vector3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}
