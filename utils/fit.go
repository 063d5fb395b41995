package utils

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// FitSprite downscales img with nearest-neighbor sampling so that neither side
// exceeds maxSide. Smaller images, and maxSide <= 0, return img unchanged.
func FitSprite(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return img
	}
	if w >= h {
		w, h = maxSide, max(1, h*maxSide/w)
	} else {
		w, h = max(1, w*maxSide/h), maxSide
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
