package pixify

import (
	"fmt"
	"image"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Mode selects how cubes are arranged on the canvas.
type Mode int

const (
	// Horizontal lays the sprite flat along the isometric diagonal.
	Horizontal Mode = iota
	// Vertical stands the sprite up as a wall of cubes.
	Vertical
)

func (m Mode) String() string {
	switch m {
	case Vertical:
		return "vertical"
	default:
		return "horizontal"
	}
}

// ParseMode parses "horizontal" or "vertical" (or their first letter).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("unknown render mode %q", s)
}

// Geometry holds the cube dimensions derived from side and gap.
type Geometry struct {
	Side     int // cube side, even
	Gap      int // gap between cubes, even
	Height   int // face height, equals Side
	Width    int // cube width, 2*Side-1
	Offset   int // half the side
	Distance int // Side+Gap, the step between neighbouring cubes
	Padding  int // empty border around the canvas
}

func newGeometry(side, gap, padding int) Geometry {
	return Geometry{
		Side:     side,
		Gap:      gap,
		Height:   side,
		Width:    2*side - 1,
		Offset:   side / 2,
		Distance: side + gap,
		Padding:  padding,
	}
}

// CanvasSize returns the output size for an xRes×yRes sprite.
func (g Geometry) CanvasSize(m Mode, xRes, yRes int) image.Point {
	s, gap, o, pad := g.Side, g.Gap, g.Offset, g.Padding
	var w, h int
	switch m {
	case Vertical:
		w = 2*pad + s*(xRes-1) + gap*(xRes-1) + g.Width
		h = 2*pad + o*(xRes+1) + (gap/2)*(xRes-1) + g.Height*yRes + gap*(yRes-1) - 1
	default:
		// TODO: the -1 of the vertical height is missing here; check against golden renders.
		w = 2*pad + s*(xRes+yRes-2) + gap*(xRes+yRes-2) + g.Width
		h = 2*pad + o*(xRes+yRes) + (gap/2)*(xRes+yRes-2) + g.Height - 1
	}
	return image.Pt(max(w, 0), max(h, 0))
}

// Layout maps sprite coordinates to stamp origins and fixes the order in which
// cubes are stamped, back to front.
type Layout struct {
	Mode  Mode
	Start image.Point
	proj  *mat.Dense
}

// NewLayout returns the layout of mode m for a sprite xRes pixels wide.
// The derived fields of g are rebuilt from an even Side and Gap, so every
// origin falls on a whole pixel.
func NewLayout(m Mode, g Geometry, xRes int) *Layout {
	g = newGeometry(evenSize(g.Side, DefaultPixelSide), evenGap(g.Gap), g.Padding)
	d := float64(g.Distance)
	var proj *mat.Dense
	switch m {
	case Vertical:
		proj = mat.NewDense(2, 2, []float64{
			d, 0,
			-d / 2, d,
		})
	default:
		proj = mat.NewDense(2, 2, []float64{
			d, d,
			-d / 2, d / 2,
		})
	}
	return &Layout{
		Mode:  m,
		Start: image.Pt(g.Padding, g.Padding+(xRes-1)*g.Offset+(g.Gap/2)*(xRes-1)-1),
		proj:  proj,
	}
}

// Origin returns the top-left corner of the cube of sprite pixel (x, y).
func (l *Layout) Origin(x, y int) image.Point {
	var v mat.VecDense
	v.MulVec(l.proj, mat.NewVecDense(2, []float64{float64(x), float64(y)}))
	return l.Start.Add(image.Pt(int(math.Round(v.AtVec(0))), int(math.Round(v.AtVec(1)))))
}

// Walk calls fn for every sprite pixel so that cubes nearer the viewer come later.
func (l *Layout) Walk(xRes, yRes int, fn func(x, y int)) {
	switch l.Mode {
	case Vertical:
		for y := yRes - 1; y >= 0; y-- {
			for x := xRes - 1; x >= 0; x-- {
				fn(x, y)
			}
		}
	default:
		for y := range yRes {
			for x := xRes - 1; x >= 0; x-- {
				fn(x, y)
			}
		}
	}
}
