package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/gallery/internal/dynamo"
	"github.com/san-kum/gallery/internal/gallery"
)

// Scene is a top-down SVG view of one frame: x runs left to right and depth
// runs bottom to top. It collects shapes as a gallery.Drawable.
type Scene struct {
	Width, Height int
	MinX, MaxX    float64
	MinZ, MaxZ    float64
	shapes        []gallery.Shape
}

func NewScene(width, height int) *Scene {
	return &Scene{
		Width:  width,
		Height: height,
		MinX:   -50,
		MaxX:   80,
		MinZ:   -5,
		MaxZ:   25,
	}
}

func (s *Scene) Draw(sh gallery.Shape) { s.shapes = append(s.shapes, sh) }

func (s *Scene) Reset() { s.shapes = s.shapes[:0] }

func (s *Scene) project(p dynamo.Vector3) (float64, float64) {
	x := (p.X - s.MinX) / (s.MaxX - s.MinX) * float64(s.Width)
	y := float64(s.Height) - (p.Z-s.MinZ)/(s.MaxZ-s.MinZ)*float64(s.Height)
	return x, y
}

func (s *Scene) scale() float64 { return float64(s.Width) / (s.MaxX - s.MinX) }

// SVG renders the collected shapes.
func (s *Scene) SVG() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, s.Width, s.Height, s.Width, s.Height))

	k := s.scale()
	for _, sh := range s.shapes {
		x, y := s.project(sh.Position)
		switch sh.Kind {
		case gallery.ShapeTarget:
			if sh.Struck {
				sb.WriteString(fmt.Sprintf(`<path stroke="#555555" stroke-width="1" d="M%.1f,%.1f l6,6 m0,-6 l-6,6"/>
`, x-3, y-3))
				continue
			}
			w, d := 2*sh.Extent.X*k, 2*sh.Extent.Z*k
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#ff5555"/>
`, x-w/2, y-d/2, w, d))
		case gallery.ShapeProjectile:
			r := sh.Extent.X * k
			if r < 2 {
				r = 2
			}
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="#ffff00"/>
`, x, y, r))
		case gallery.ShapeEmitter:
			tip := sh.Position.Add(gallery.Rotate(dynamo.Vec3(0, 0, 4), sh.Aim))
			tx, ty := s.project(tip)
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#00ff00" stroke-width="2"/>
`, x, y, tx, ty))
		}
	}
	sb.WriteString("</svg>")
	return sb.String()
}

// TimelineToSVG draws one series of a session trace as a line chart.
func TimelineToSVG(points []struct{ X, Y float64 }, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	rangeY *= 1.2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
