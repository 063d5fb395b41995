package pixify

// Shade selects one of the three face shades of a palette.
type Shade int

const (
	ShadeNormal Shade = iota
	ShadeDark
	ShadeDarkest
)

// Palette holds the shades used to draw one cube.
type Palette struct {
	NormalSide      ColorRGB
	DarkSide        ColorRGB
	DarkestSide     ColorRGB
	Highlight       ColorRGB
	CornerHighlight ColorRGB
	Outline         ColorRGB
}

// NewPalette derives a palette from a base color. It returns false for fully
// transparent colors, which are never drawn.
func NewPalette(c ColorRGB) (Palette, bool) {
	if c.Transparent() {
		return Palette{}, false
	}
	hsl := c.HSL()
	return Palette{
		NormalSide:      c,
		DarkSide:        hsl.Darken(30).RGB(),
		DarkestSide:     hsl.Darken(60).RGB(),
		Highlight:       hsl.Lighten(30).RGB(),
		CornerHighlight: hsl.Lighten(80).RGB(),
		Outline:         hsl.Darken(90).RGB(),
	}, true
}

// Shade returns the face color for s.
func (p Palette) Shade(s Shade) ColorRGB {
	switch s {
	case ShadeDark:
		return p.DarkSide
	case ShadeDarkest:
		return p.DarkestSide
	default:
		return p.NormalSide
	}
}

// PaletteCache memoizes palettes by color key. Entries are never evicted; the
// key space is bounded by the number of distinct colors of one sprite.
// A PaletteCache is not safe for concurrent use.
type PaletteCache struct {
	build func(ColorRGB) (Palette, bool)
	lut   map[ColorKey]*Palette
}

// NewPaletteCache returns an empty cache.
func NewPaletteCache() *PaletteCache {
	return newPaletteCache(NewPalette)
}

func newPaletteCache(build func(ColorRGB) (Palette, bool)) *PaletteCache {
	return &PaletteCache{
		build: build,
		lut:   make(map[ColorKey]*Palette),
	}
}

// Get returns the palette of c, building it on first use.
func (pc *PaletteCache) Get(c ColorRGB) (Palette, bool) {
	key := c.Key()
	p, ok := pc.lut[key]
	if !ok {
		if built, valid := pc.build(c); valid {
			p = &built
		}
		// A nil entry remembers that the color has no palette.
		pc.lut[key] = p
	}
	if p == nil {
		return Palette{}, false
	}
	return *p, true
}

// IsColorValid reports whether c gets a palette and therefore a cube.
func (pc *PaletteCache) IsColorValid(c ColorRGB) bool {
	_, ok := pc.Get(c)
	return ok
}

// Len returns the number of cached entries, absent palettes included.
func (pc *PaletteCache) Len() int {
	return len(pc.lut)
}
