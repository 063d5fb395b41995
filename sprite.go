package pixify

import "image"

// Sprite is the source of cube colors.
type Sprite interface {
	Width() int
	Height() int
	// ColorAt returns the color of the pixel at (x, y), 0 <= x < Width, 0 <= y < Height.
	ColorAt(x, y int) ColorRGB
}

// ImageSprite samples an image.Image relative to its bounds.
type ImageSprite struct {
	img image.Image
	b   image.Rectangle
}

func NewImageSprite(img image.Image) *ImageSprite {
	return &ImageSprite{img: img, b: img.Bounds()}
}

func (s *ImageSprite) Width() int  { return s.b.Dx() }
func (s *ImageSprite) Height() int { return s.b.Dy() }

func (s *ImageSprite) ColorAt(x, y int) ColorRGB {
	p := image.Pt(s.b.Min.X+x, s.b.Min.Y+y)
	if !p.In(s.b) {
		return Transparent
	}
	return FromColor(s.img.At(p.X, p.Y))
}
