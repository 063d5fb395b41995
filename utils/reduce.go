package utils

import (
	"image"
	"image/color"
	"log"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"github.com/setanarut/pixify"
)

type PaletteMethod int

const (
	PaletteMethodDominantColor PaletteMethod = iota
	PaletteMethodKMeans
)

func (m PaletteMethod) String() string {
	switch m {
	case PaletteMethodKMeans:
		return "kmeans"
	default:
		return "dominantcolor"
	}
}

// ParsePaletteMethod maps "kmeans" to PaletteMethodKMeans and anything else to
// PaletteMethodDominantColor.
func ParsePaletteMethod(s string) PaletteMethod {
	if s == "kmeans" {
		return PaletteMethodKMeans
	}
	return PaletteMethodDominantColor
}

type weightedColor struct {
	Col    colorful.Color
	Weight float64
}

// SortPaletteByBrightness orders colors from darkest to brightest.
func SortPaletteByBrightness(palette []colorful.Color) {
	slices.SortFunc(palette, func(a, b colorful.Color) int {
		_, _, la := a.Hsl()
		_, _, lb := b.Hsl()
		switch {
		case la < lb:
			return -1
		case la > lb:
			return 1
		}
		return 0
	})
}

// ReducePalette picks at most k representative colors of the opaque pixels
// of img. Every distinct sprite color costs one palette and one colorized
// stencil per render, so reducing noisy sprites keeps those caches small.
func ReducePalette(img image.Image, k int, method PaletteMethod) []colorful.Color {
	switch method {
	case PaletteMethodKMeans:
		p := kmeansPalette(img, k)
		if len(p) != 0 {
			return p
		}
		log.Println("palette warning: kmeans returned empty palette, falling back to dominantcolor")
		return dominantPalette(img, k)
	default:
		return dominantPalette(img, k)
	}
}

func dominantPalette(img image.Image, k int) []colorful.Color {
	if k <= 0 {
		return nil
	}
	found := dominantcolor.FindWeight(img, max(24, k*8))
	cands := make([]weightedColor, 0, len(found))
	for _, c := range found {
		col, _ := colorful.MakeColor(c.RGBA)
		cands = append(cands, weightedColor{Col: col, Weight: c.Weight})
	}
	return selectDiverse(cands, k)
}

const maxSamples = 12000

// sampleStep returns the pixel stride that keeps k-means input near maxSamples.
func sampleStep(width, height int) int {
	if width*height <= maxSamples {
		return 1
	}
	return int(math.Sqrt(float64(width*height)/float64(maxSamples))) + 1
}

func kmeansPalette(img image.Image, k int) []colorful.Color {
	if k <= 0 {
		return nil
	}
	b := img.Bounds()
	step := sampleStep(b.Dx(), b.Dy())
	var dataset clusters.Observations
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			c := pixify.FromColor(img.At(x, y))
			if c.Transparent() {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{c.R, c.G, c.B})
		}
	}
	if len(dataset) == 0 {
		return nil
	}
	km := kmeans.New()
	cc, err := km.Partition(dataset, min(k, len(dataset)))
	if err != nil {
		log.Printf("palette warning: kmeans: %v", err)
		return nil
	}
	cands := make([]weightedColor, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 || len(c.Observations) == 0 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}
		cands = append(cands, weightedColor{Col: col, Weight: float64(len(c.Observations))})
	}
	return selectDiverse(cands, k)
}

// selectDiverse greedily picks k colors, starting from the heaviest and then
// taking the candidate farthest (in Lab) from those already picked, biased by weight.
func selectDiverse(cands []weightedColor, k int) []colorful.Color {
	if k <= 0 || len(cands) == 0 {
		return nil
	}
	k = min(k, len(cands))
	maxW := 0.0
	for i := range cands {
		cands[i].Col = cands[i].Col.Clamped()
		cands[i].Weight = max(cands[i].Weight, 1e-6)
		maxW = max(maxW, cands[i].Weight)
	}

	picked := make([]bool, len(cands))
	out := make([]colorful.Color, 0, k)
	best := 0
	for i := range cands {
		if cands[i].Weight > cands[best].Weight {
			best = i
		}
	}
	for {
		picked[best] = true
		out = append(out, cands[best].Col)
		if len(out) == k {
			return out
		}
		best = -1
		bestScore := -1.0
		for i, c := range cands {
			if picked[i] {
				continue
			}
			closest := math.MaxFloat64
			for _, o := range out {
				closest = min(closest, c.Col.DistanceLab(o))
			}
			score := closest * (0.55 + 0.45*math.Sqrt(c.Weight/maxW))
			if score > bestScore {
				best, bestScore = i, score
			}
		}
		if best < 0 {
			return out
		}
	}
}

// Quantize maps every opaque pixel of img to its nearest palette color in Lab,
// keeping the pixel's alpha. Transparent pixels stay transparent.
func Quantize(img image.Image, palette []colorful.Color) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if len(palette) == 0 {
		return out
	}
	lut := make(map[pixify.ColorKey]color.NRGBA)
	for y := range b.Dy() {
		for x := range b.Dx() {
			c := pixify.FromColor(img.At(b.Min.X+x, b.Min.Y+y))
			if c.Transparent() {
				continue
			}
			key := c.Key()
			q, ok := lut[key]
			if !ok {
				q = nearest(colorful.Color{R: c.R, G: c.G, B: c.B}, palette)
				q.A = c.NRGBA().A
				lut[key] = q
			}
			out.SetNRGBA(x, y, q)
		}
	}
	return out
}

func nearest(c colorful.Color, palette []colorful.Color) color.NRGBA {
	best, bestD := palette[0], math.MaxFloat64
	for _, p := range palette {
		if d := c.DistanceLab(p); d < bestD {
			best, bestD = p, d
		}
	}
	r, g, b := best.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
