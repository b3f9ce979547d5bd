package gallery

import "github.com/san-kum/gallery/internal/dynamo"

type ShapeKind int

const (
	ShapeEmitter ShapeKind = iota
	ShapeTarget
	ShapeProjectile
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeTarget:
		return "target"
	case ShapeProjectile:
		return "projectile"
	}
	return "emitter"
}

// Shape is what a Drawable needs to place one object. Extent holds box half
// sizes for targets, the radius on every axis for projectiles, and the muzzle offset
// for the emitter.
type Shape struct {
	Kind        ShapeKind
	Slot        int
	Position    dynamo.Vector3
	Orientation dynamo.Quaternion
	Extent      dynamo.Vector3
	Aim         Angles
	Struck      bool
}

// Render draws the emitter, every target, and every in-flight projectile,
// in that order.
func (s *State) Render(d Drawable) {
	e := s.emitter
	d.Draw(Shape{
		Kind:        ShapeEmitter,
		Slot:        -1,
		Position:    e.GunOffset(),
		Orientation: dynamo.Identity(),
		Extent:      e.AmmoOffset(),
		Aim:         e.Aim(),
	})
	for i := range s.targets.slots {
		t := &s.targets.slots[i]
		d.Draw(Shape{
			Kind:        ShapeTarget,
			Slot:        i,
			Position:    t.body.Position(),
			Orientation: t.body.Orientation(),
			Extent:      t.HalfSize,
			Struck:      t.Struck(),
		})
	}
	r := s.params.Projectile.Radius
	for i := range s.projectiles.slots {
		p := &s.projectiles.slots[i]
		if !p.InFlight() {
			continue
		}
		d.Draw(Shape{
			Kind:        ShapeProjectile,
			Slot:        i,
			Position:    p.body.Position(),
			Orientation: p.body.Orientation(),
			Extent:      dynamo.Vec3(r, r, r),
		})
	}
}

// DrawFunc adapts a function to Drawable.
type DrawFunc func(Shape)

func (f DrawFunc) Draw(s Shape) { f(s) }
