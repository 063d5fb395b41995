package pixify

// ColorizedStencil is a stencil with every tag resolved to a color.
type ColorizedStencil struct {
	*Grid[ColorRGB]
}

// Colorize resolves every cell of s through the palette under direction d.
func Colorize(s *Stencil, p Palette, d LightDirection) *ColorizedStencil {
	g := NewGrid(s.Width(), s.Height(), Transparent)
	for y := range s.Height() {
		for x := range s.Width() {
			g.Set(x, y, p.FaceColor(s.At(x, y), d))
		}
	}
	return &ColorizedStencil{g}
}

type colorizeKey struct {
	color ColorKey
	light LightDirection
}

// Colorizer memoizes colorized stencils of one stencil by base color and light
// direction. Entries live until the stencil changes. Not safe for concurrent use.
type Colorizer struct {
	stencil *Stencil
	lut     map[colorizeKey]*ColorizedStencil
}

// NewColorizer returns a colorizer bound to s.
func NewColorizer(s *Stencil) *Colorizer {
	return &Colorizer{stencil: s, lut: make(map[colorizeKey]*ColorizedStencil)}
}

// SetStencil rebinds the colorizer and drops every cached grid.
func (c *Colorizer) SetStencil(s *Stencil) {
	c.stencil = s
	c.Reset()
}

// Reset drops every cached grid.
func (c *Colorizer) Reset() {
	clear(c.lut)
}

// Stencil returns the stencil the colorizer is bound to.
func (c *Colorizer) Stencil() *Stencil {
	return c.stencil
}

// Get returns the colorized stencil for palette p under direction d.
func (c *Colorizer) Get(p Palette, d LightDirection) *ColorizedStencil {
	key := colorizeKey{color: p.NormalSide.Key(), light: d}
	if cs, ok := c.lut[key]; ok {
		return cs
	}
	cs := Colorize(c.stencil, p, d)
	c.lut[key] = cs
	return cs
}

// Len returns the number of cached grids.
func (c *Colorizer) Len() int {
	return len(c.lut)
}
