package viz

import (
	"testing"

	"github.com/san-kum/gallery/internal/dynamo"
	"github.com/san-kum/gallery/internal/gallery"
)

func TestCanvas_SetAndLit(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(3, 5)
	if !c.Lit(3, 5) {
		t.Error("dot not lit after Set")
	}
	if c.Lit(2, 5) {
		t.Error("neighbour lit")
	}
	c.Unset(3, 5)
	if c.Lit(3, 5) {
		t.Error("dot still lit after Unset")
	}
	c.Set(-1, 100)
	if w, h := c.Dots(); w != 8 || h != 8 {
		t.Errorf("dots = %dx%d", w, h)
	}
}

func TestCanvas_FillRect(t *testing.T) {
	c := NewCanvas(4, 2)
	c.FillRect(3, 3, 1, 1)
	n := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if c.Lit(x, y) {
				n++
			}
		}
	}
	if n != 9 {
		t.Errorf("lit %d dots, want 9", n)
	}
	c.Clear()
	if c.Lit(2, 2) {
		t.Error("clear left dots lit")
	}
}

func TestTopDown_Draw(t *testing.T) {
	td := NewTopDown(60, 14)
	td.Begin()
	td.Draw(gallery.Shape{Kind: gallery.ShapeEmitter, Position: dynamo.Vec3(0, 4, -1.5), Aim: gallery.Angles{Yaw: 10}})
	td.Draw(gallery.Shape{Kind: gallery.ShapeTarget, Position: dynamo.Vec3(0, 2.9, 9.5), Extent: dynamo.Vec3(1.2, 3, 1)})
	td.Draw(gallery.Shape{Kind: gallery.ShapeTarget, Position: dynamo.Vec3(10, 1, 19.5), Struck: true})
	td.Draw(gallery.Shape{Kind: gallery.ShapeProjectile, Position: dynamo.Vec3(0, 4, 4)})

	if td.Standing != 1 || td.Struck != 1 || td.InFlight != 1 || !td.HasEmitter {
		t.Errorf("counts standing=%d struck=%d inFlight=%d emitter=%v", td.Standing, td.Struck, td.InFlight, td.HasEmitter)
	}
	if td.Aim.Yaw != 10 {
		t.Errorf("aim = %+v", td.Aim)
	}
	x, y := td.Project(dynamo.Vec3(0, 2.9, 9.5))
	if !td.Canvas.Lit(x, y) {
		t.Error("target centre not drawn")
	}
	px, py := td.Project(dynamo.Vec3(0, 4, 4))
	if !td.Canvas.Lit(px, py) {
		t.Error("projectile not drawn")
	}

	td.Begin()
	if td.Canvas.Lit(x, y) || td.Standing != 0 {
		t.Error("begin did not clear the frame")
	}
}

func TestTopDown_ProjectCorners(t *testing.T) {
	td := NewTopDown(10, 5)
	w, h := td.Canvas.Dots()
	if x, y := td.Project(dynamo.Vec3(td.MinX, 0, td.MaxZ)); x != 0 || y != 0 {
		t.Errorf("far left = (%d, %d)", x, y)
	}
	if x, y := td.Project(dynamo.Vec3(td.MaxX, 0, td.MinZ)); x != w-1 || y != h-1 {
		t.Errorf("near right = (%d, %d)", x, y)
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("retro").Name != "retro" {
		t.Error("retro theme not found")
	}
	if GetTheme("nope").Name != ThemeArcade.Name {
		t.Error("unknown theme did not fall back")
	}
	seen := map[string]bool{}
	th := Themes[0]
	for range Themes {
		seen[th.Name] = true
		th = NextTheme(th)
	}
	if len(seen) != len(Themes) || th.Name != Themes[0].Name {
		t.Errorf("theme cycle broken: %v", seen)
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names mismatch")
	}
}
