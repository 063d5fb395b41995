package utils

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/setanarut/pixify"
)

// PaletteSwatch draws the six shades of p side by side, normal, dark,
// darkest, highlight, corner highlight, then outline.
func PaletteSwatch(p pixify.Palette, tileSize int) *image.NRGBA {
	shades := []color.Color{p.NormalSide, p.DarkSide, p.DarkestSide, p.Highlight, p.CornerHighlight, p.Outline}
	return swatch(shades, tileSize)
}

// ColorsSwatch draws colors side by side as opaque tiles.
func ColorsSwatch(colors []colorful.Color, tileSize int) *image.NRGBA {
	tiles := make([]color.Color, len(colors))
	for i, c := range colors {
		r, g, b := c.Clamped().RGB255()
		tiles[i] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return swatch(tiles, tileSize)
}

func swatch(colors []color.Color, tileSize int) *image.NRGBA {
	if tileSize <= 0 {
		tileSize = 64
	}
	img := image.NewNRGBA(image.Rect(0, 0, tileSize*len(colors), tileSize))
	for i, c := range colors {
		tile := image.Rect(i*tileSize, 0, (i+1)*tileSize, tileSize)
		draw.Draw(img, tile, image.NewUniform(c), image.Point{}, draw.Src)
	}
	return img
}

// SavePalette writes the swatch of colors to filename as PNG.
func SavePalette(colors []colorful.Color, tileSize int, filename string) error {
	if len(colors) == 0 {
		return fmt.Errorf("empty palette")
	}
	return SaveImage(ColorsSwatch(colors, tileSize), filename)
}
