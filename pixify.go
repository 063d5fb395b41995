package pixify

import (
	"image"
	"log/slog"
)

const (
	DefaultPixelSide = 32
	DefaultPixelGap  = 0
	DefaultPadding   = 10
)

type Options struct {
	// Cube side in output pixels. Must be even; odd values are rounded down
	// and anything below 2 falls back to DefaultPixelSide.
	PixelSide int
	// Empty space between neighbouring cubes. Must be even; odd values are
	// rounded down and negative values become 0.
	PixelGap int
	// Sun position. The zero value is LightTopLeft; invalid values are
	// ignored and leave LightTopLeft in place.
	Light LightDirection
	// Transparent border around the rendering. 0 means DefaultPadding and
	// a negative value renders without a border.
	Padding int
}

func DefaultOptions() Options {
	return Options{
		PixelSide: DefaultPixelSide,
		PixelGap:  DefaultPixelGap,
		Light:     LightTopLeft,
		Padding:   DefaultPadding,
	}
}

// OptionsFromSize shrinks the cube side for large sprites so the horizontal
// rendering stays around 4096 pixels wide.
func OptionsFromSize(size image.Point) Options {
	opt := DefaultOptions()
	if size.X <= 0 || size.Y <= 0 {
		return opt
	}
	side := 4096 / (size.X + size.Y)
	side = max(4, min(DefaultPixelSide, side))
	opt.PixelSide = side &^ 1
	return opt
}

// Stats describes the last render.
type Stats struct {
	Mode      Mode
	Canvas    image.Point
	Cubes     int // cubes stamped
	Skipped   int // fully transparent sprite pixels
	Palettes  int // palette cache entries
	Colorized int // colorized stencil cache entries
}

// Pixify renders a sprite as isometric cubes. A Pixify is not safe for
// concurrent use; each call to Render runs to completion before returning.
type Pixify struct {
	sprite  Sprite
	padding int
	side    int
	gap     int
	light   LightDirection

	palettes  *PaletteCache
	colorizer *Colorizer
	stencil   *Stencil
	drawer    *Drawer
	sink      Sink
	stats     Stats
}

func New(sprite Sprite, opt Options) *Pixify {
	p := &Pixify{
		sprite:   sprite,
		padding:  resolvePadding(opt.Padding),
		side:     DefaultPixelSide,
		light:    LightTopLeft,
		palettes: NewPaletteCache(),
	}
	p.SetPixelSize(opt.PixelSide)
	p.SetPixelGap(opt.PixelGap)
	p.SetLightDirection(opt.Light)
	return p
}

func resolvePadding(v int) int {
	if v == 0 {
		return DefaultPadding
	}
	return max(v, 0)
}

// NewFromImage renders img through an ImageSprite.
func NewFromImage(img image.Image, opt Options) *Pixify {
	return New(NewImageSprite(img), opt)
}

// SetSink sets where finished renders are presented. nil disables presenting.
func (p *Pixify) SetSink(s Sink) {
	p.sink = s
}

// SetPixelSize sets the cube side.
func (p *Pixify) SetPixelSize(side int) {
	v := evenSize(side, DefaultPixelSide)
	if v != side {
		Logger().Debug("pixify: pixel side adjusted", slog.Int("requested", side), slog.Int("side", v))
	}
	if v != p.side {
		p.stencil = nil
	}
	p.side = v
}

// SetPixelGap sets the space between cubes.
func (p *Pixify) SetPixelGap(gap int) {
	v := evenGap(gap)
	if v != gap {
		Logger().Debug("pixify: pixel gap adjusted", slog.Int("requested", gap), slog.Int("gap", v))
	}
	if v != p.gap {
		p.stencil = nil
	}
	p.gap = v
}

// SetLightDirection changes the sun position. Unknown directions are ignored.
func (p *Pixify) SetLightDirection(d LightDirection) {
	if !d.Valid() {
		Logger().Warn("pixify: ignoring invalid light direction", slog.Int("direction", int(d)))
		return
	}
	if d != p.light && p.colorizer != nil {
		p.colorizer.Reset()
	}
	p.light = d
}

// SetSunPosition is an alias of SetLightDirection.
func (p *Pixify) SetSunPosition(d LightDirection) {
	p.SetLightDirection(d)
}

func (p *Pixify) LightDirection() LightDirection { return p.light }

// Geometry returns the current cube geometry.
func (p *Pixify) Geometry() Geometry {
	return newGeometry(p.side, p.gap, p.padding)
}

// CanvasSize returns the output size of a render in mode m.
func (p *Pixify) CanvasSize(m Mode) image.Point {
	return p.Geometry().CanvasSize(m, p.sprite.Width(), p.sprite.Height())
}

// Stats returns statistics of the last render.
func (p *Pixify) Stats() Stats {
	return p.stats
}

// RenderHorizontal renders the sprite lying along the isometric diagonal.
func (p *Pixify) RenderHorizontal() *image.NRGBA {
	return p.Render(Horizontal)
}

// RenderVertical renders the sprite standing upright.
func (p *Pixify) RenderVertical() *image.NRGBA {
	return p.Render(Vertical)
}

// Render draws every opaque sprite pixel as a cube, presents the buffer to the
// sink and returns it. Each call starts from an empty buffer.
func (p *Pixify) Render(m Mode) *image.NRGBA {
	xRes, yRes := p.sprite.Width(), p.sprite.Height()
	geo := p.Geometry()
	size := geo.CanvasSize(m, xRes, yRes)
	p.drawer = NewDrawer(size.X, size.Y)

	p.ensureStencil()
	layout := NewLayout(m, geo, xRes)
	stats := Stats{Mode: m, Canvas: size}

	layout.Walk(xRes, yRes, func(x, y int) {
		pal, ok := p.palettes.Get(p.sprite.ColorAt(x, y))
		if !ok {
			stats.Skipped++
			return
		}
		o := layout.Origin(x, y)
		p.drawer.Stamp(o.X, o.Y, p.colorizer.Get(pal, p.light))
		stats.Cubes++
	})

	stats.Palettes = p.palettes.Len()
	stats.Colorized = p.colorizer.Len()
	p.stats = stats
	Logger().Debug("pixify: rendered",
		slog.String("mode", m.String()),
		slog.Int("width", size.X),
		slog.Int("height", size.Y),
		slog.Int("cubes", stats.Cubes),
		slog.Int("skipped", stats.Skipped),
		slog.Int("palettes", stats.Palettes),
		slog.Int("colorized", stats.Colorized),
	)
	return p.drawer.Present(p.sink)
}

func (p *Pixify) ensureStencil() {
	if p.stencil != nil {
		return
	}
	p.stencil = NewStencil(p.side)
	if p.colorizer == nil {
		p.colorizer = NewColorizer(p.stencil)
	} else {
		p.colorizer.SetStencil(p.stencil)
	}
	Logger().Debug("pixify: stencil built", slog.Int("side", p.side), slog.Int("gap", p.gap))
}

// evenSize rounds v down to an even number, using fallback when the result is not positive.
func evenSize(v, fallback int) int {
	if v%2 != 0 {
		v--
	}
	if v <= 0 {
		return fallback
	}
	return v
}

// evenGap rounds an odd gap down; negative gaps become DefaultPixelGap.
func evenGap(v int) int {
	if v%2 != 0 {
		v--
	}
	if v < 0 {
		return DefaultPixelGap
	}
	return v
}
