package viz

import (
	"math"

	"github.com/san-kum/gallery/internal/dynamo"
	"github.com/san-kum/gallery/internal/gallery"
)

// TopDown rasterises gallery shapes onto a Canvas as seen from above: world
// x maps to columns and depth z maps to rows, far at the top.
type TopDown struct {
	Canvas     *Canvas
	MinX, MaxX float64
	MinZ, MaxZ float64

	Standing   int
	Struck     int
	InFlight   int
	Aim        gallery.Angles
	HasEmitter bool
}

func NewTopDown(cols, rows int) *TopDown {
	return &TopDown{
		Canvas: NewCanvas(cols, rows),
		MinX:   -45,
		MaxX:   75,
		MinZ:   -4,
		MaxZ:   24,
	}
}

// Resize replaces the canvas when the terminal changes size.
func (td *TopDown) Resize(cols, rows int) {
	if cols < 1 || rows < 1 {
		return
	}
	if cols == td.Canvas.Width && rows == td.Canvas.Height {
		return
	}
	td.Canvas = NewCanvas(cols, rows)
}

// Begin clears the canvas and counters for a new frame.
func (td *TopDown) Begin() {
	td.Canvas.Clear()
	td.Standing, td.Struck, td.InFlight = 0, 0, 0
	td.HasEmitter = false
}

// Project maps a world position to canvas dots.
func (td *TopDown) Project(p dynamo.Vector3) (int, int) {
	w, h := td.Canvas.Dots()
	x := (p.X - td.MinX) / (td.MaxX - td.MinX) * float64(w-1)
	y := (td.MaxZ - p.Z) / (td.MaxZ - td.MinZ) * float64(h-1)
	return int(math.Round(x)), int(math.Round(y))
}

func (td *TopDown) Draw(s gallery.Shape) {
	switch s.Kind {
	case gallery.ShapeTarget:
		x, y := td.Project(s.Position)
		if s.Struck {
			td.Struck++
			td.Canvas.Cross(x, y)
			return
		}
		td.Standing++
		x0, y0 := td.Project(s.Position.Sub(s.Extent))
		x1, y1 := td.Project(s.Position.Add(s.Extent))
		td.Canvas.FillRect(x0, y0, x1, y1)
	case gallery.ShapeProjectile:
		td.InFlight++
		x, y := td.Project(s.Position)
		td.Canvas.Set(x, y)
	case gallery.ShapeEmitter:
		td.HasEmitter = true
		td.Aim = s.Aim
		x0, y0 := td.Project(s.Position)
		x1, y1 := td.Project(s.Position.Add(gallery.Rotate(dynamo.Vec3(0, 0, 3), s.Aim)))
		td.Canvas.DrawLine(x0, y0, x1, y1)
	}
}
