package pixify

import (
	"image"
)

// Sink receives a finished render.
type Sink interface {
	Present(img *image.NRGBA)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(img *image.NRGBA)

func (f SinkFunc) Present(img *image.NRGBA) { f(img) }

// Drawer owns the destination buffer of a render. Pixels are stored as straight
// RGBA bytes, row-major, four bytes per pixel.
type Drawer struct {
	img *image.NRGBA
}

// NewDrawer allocates a fully transparent w×h buffer.
func NewDrawer(w, h int) *Drawer {
	return &Drawer{img: image.NewNRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))}
}

// Bounds returns the buffer bounds.
func (d *Drawer) Bounds() image.Rectangle {
	return d.img.Rect
}

// Flush resets every pixel to transparent in place.
func (d *Drawer) Flush() {
	clear(d.img.Pix)
}

// SetPixel writes c at (x, y). Transparent colors and out-of-bounds writes are dropped.
func (d *Drawer) SetPixel(x, y int, c ColorRGB) {
	if c.Transparent() || !image.Pt(x, y).In(d.img.Rect) {
		return
	}
	d.img.SetNRGBA(x, y, c.NRGBA())
}

// Stamp copies the opaque cells of cs into the buffer with its top-left
// corner at (ox, oy). Cells falling outside the buffer are clipped.
func (d *Drawer) Stamp(ox, oy int, cs *ColorizedStencil) {
	for y := range cs.Height() {
		for x := range cs.Width() {
			c, _ := cs.At(x, y)
			d.SetPixel(ox+x, oy+y, c)
		}
	}
}

// Present hands the buffer to sink, if any, and returns it.
func (d *Drawer) Present(sink Sink) *image.NRGBA {
	if sink != nil {
		sink.Present(d.img)
	}
	return d.img
}
