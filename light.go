package pixify

import (
	"fmt"
	"strings"
)

// LightDirection is the position of the sun relative to the cubes. It decides
// which shade lands on the top, left and right faces.
type LightDirection int

// The zero value is LightTopLeft, the default sun position.
const (
	LightTopLeft LightDirection = iota
	LightLeft
	LightRight
	LightTopRight
)

// faceShades holds the shade of the top, left and right face per direction.
// Outline and highlights do not depend on the light.
var faceShades = [...]struct{ top, left, right Shade }{
	LightLeft:     {top: ShadeDark, left: ShadeNormal, right: ShadeDarkest},
	LightRight:    {top: ShadeDark, left: ShadeDarkest, right: ShadeNormal},
	LightTopRight: {top: ShadeNormal, left: ShadeDarkest, right: ShadeDark},
	LightTopLeft:  {top: ShadeNormal, left: ShadeDark, right: ShadeDarkest},
}

// Valid reports whether d is one of the four known directions.
func (d LightDirection) Valid() bool {
	return d >= LightTopLeft && d <= LightTopRight
}

func (d LightDirection) String() string {
	switch d {
	case LightLeft:
		return "left"
	case LightRight:
		return "right"
	case LightTopRight:
		return "top-right"
	case LightTopLeft:
		return "top-left"
	default:
		return fmt.Sprintf("LightDirection(%d)", int(d))
	}
}

// ParseLightDirection parses the names returned by String.
func ParseLightDirection(s string) (LightDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return LightLeft, nil
	case "right":
		return LightRight, nil
	case "top-right", "topright":
		return LightTopRight, nil
	case "top-left", "topleft":
		return LightTopLeft, nil
	}
	return LightTopLeft, fmt.Errorf("unknown light direction %q", s)
}

// FaceColor resolves a stencil tag to its palette color under direction d.
// FaceTransparent resolves to Transparent.
func (p Palette) FaceColor(tag FaceTag, d LightDirection) ColorRGB {
	if !d.Valid() {
		d = LightTopLeft
	}
	shades := faceShades[d]
	switch tag {
	case FaceTop:
		return p.Shade(shades.top)
	case FaceLeft:
		return p.Shade(shades.left)
	case FaceRight:
		return p.Shade(shades.right)
	case FaceOutline:
		return p.Outline
	case FaceHighlight:
		return p.Highlight
	case FaceCornerHighlight:
		return p.CornerHighlight
	default:
		return Transparent
	}
}

// TopColor, LeftColor and RightColor return the face colors under d.
func (p Palette) TopColor(d LightDirection) ColorRGB   { return p.FaceColor(FaceTop, d) }
func (p Palette) LeftColor(d LightDirection) ColorRGB  { return p.FaceColor(FaceLeft, d) }
func (p Palette) RightColor(d LightDirection) ColorRGB { return p.FaceColor(FaceRight, d) }
