package pixify

import "fmt"

// FaceTag marks which part of a cube a stencil cell belongs to.
type FaceTag uint8

const (
	FaceCornerHighlight FaceTag = iota
	FaceLeft
	FaceRight
	FaceTop
	FaceOutline
	FaceHighlight
	FaceTransparent
)

func (f FaceTag) String() string {
	switch f {
	case FaceCornerHighlight:
		return "corner-highlight"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceTop:
		return "top"
	case FaceOutline:
		return "outline"
	case FaceHighlight:
		return "highlight"
	case FaceTransparent:
		return "transparent"
	default:
		return fmt.Sprintf("FaceTag(%d)", int(f))
	}
}

// Stencil is the color-independent shape of one isometric cube.
// It is immutable once built and shared by every cube of a render.
type Stencil struct {
	side int
	grid *Grid[FaceTag]
}

// NewStencil builds the cube stencil for an even side length. Odd sides are
// rounded down; sides below 2 fall back to DefaultPixelSide.
func NewStencil(side int) *Stencil {
	side = evenSize(side, DefaultPixelSide)
	height := side
	width := 2*side - 1
	offset := side / 2

	p := &stencilPen{grid: NewGrid(width, 2*side, FaceTransparent)}
	x, y := 0, side+offset

	p.tag = FaceLeft
	for i := 1; i < height; i++ {
		p.moveTo(x, y+i-height)
		p.slantedLineDown(side)
	}

	p.tag = FaceRight
	for i := 1; i < height; i++ {
		p.moveTo(x+side-1, y+offset-1+i-height)
		p.slantedLineUp(side)
	}

	// Fan of strokes narrowing towards the right corner.
	p.tag = FaceTop
	for i := 1; i < side-1; i++ {
		p.moveTo(x+i*2, y-height)
		p.slantedLineUp(side - i - 1)
		p.moveTo(x+i*2, y-height)
		p.slantedLineDown(side - i - 1)
	}

	p.tag = FaceOutline
	p.moveTo(x, y)
	p.slantedLineDown(side)
	p.moveBy(-1, -1)
	p.slantedLineUp(side)

	p.moveTo(x, y-height)
	p.verticalLine(height)
	p.moveTo(x+width-1, y-height)
	p.verticalLine(height)

	p.moveTo(x, y-height)
	p.slantedLineUp(side)
	p.moveBy(-1, 1)
	p.slantedLineDown(side)

	p.tag = FaceHighlight
	p.moveTo(x+2, y-height+1)
	p.slantedLineDown(side - 2)
	p.moveBy(-1, -1)
	p.slantedLineUp(side - 2)
	p.moveTo(x+side-1, y+offset-1-height)
	p.verticalLine(height)

	p.tag = FaceCornerHighlight
	p.moveTo(x+side-1, y+offset-1-height)
	p.verticalLine(3)
	p.moveTo(x+side-2, y+offset-1-height)
	p.horizontalLine(3)

	return &Stencil{side: side, grid: p.grid}
}

// Side returns the cube side length the stencil was built for.
func (s *Stencil) Side() int   { return s.side }
func (s *Stencil) Width() int  { return s.grid.Width() }
func (s *Stencil) Height() int { return s.grid.Height() }

// At returns the tag at (x, y), FaceTransparent outside the stencil.
func (s *Stencil) At(x, y int) FaceTag {
	if t, ok := s.grid.At(x, y); ok {
		return t
	}
	return FaceTransparent
}

// Equal reports whether two stencils have identical cells.
func (s *Stencil) Equal(o *Stencil) bool {
	return GridEqual(s.grid, o.grid)
}

// stencilPen draws tag lines onto a grid from a moving cursor.
type stencilPen struct {
	grid *Grid[FaceTag]
	x, y int
	tag  FaceTag
}

func (p *stencilPen) moveTo(x, y int) {
	p.x, p.y = x, y
}

func (p *stencilPen) moveBy(dx, dy int) {
	p.x += dx
	p.y += dy
}

// slantedLineDown covers n columns, two per row, moving one row down per step.
func (p *stencilPen) slantedLineDown(n int) {
	p.slanted(n, 1)
}

func (p *stencilPen) slantedLineUp(n int) {
	p.slanted(n, -1)
}

func (p *stencilPen) slanted(n, dy int) {
	for end := p.x + n; p.x < end; p.x += 2 {
		p.grid.Set(p.x, p.y, p.tag)
		p.grid.Set(p.x+1, p.y, p.tag)
		p.y += dy
	}
}

func (p *stencilPen) verticalLine(n int) {
	for end := p.y + n; p.y < end; p.y++ {
		p.grid.Set(p.x, p.y, p.tag)
	}
}

func (p *stencilPen) horizontalLine(n int) {
	for end := p.x + n; p.x < end; p.x++ {
		p.grid.Set(p.x, p.y, p.tag)
	}
}
