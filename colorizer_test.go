package pixify

import "testing"

// firstCell returns the coordinates of the first cell tagged tag.
func firstCell(t *testing.T, s *Stencil, tag FaceTag) (int, int) {
	t.Helper()
	for y := range s.Height() {
		for x := range s.Width() {
			if s.At(x, y) == tag {
				return x, y
			}
		}
	}
	t.Fatalf("stencil has no %v cell", tag)
	return 0, 0
}

func TestColorizeLightPermutations(t *testing.T) {
	s := NewStencil(8)
	p, _ := NewPalette(RGB(0.2, 0.6, 0.3))
	tests := []struct {
		dir              LightDirection
		top, left, right ColorRGB
	}{
		{LightLeft, p.DarkSide, p.NormalSide, p.DarkestSide},
		{LightRight, p.DarkSide, p.DarkestSide, p.NormalSide},
		{LightTopRight, p.NormalSide, p.DarkestSide, p.DarkSide},
		{LightTopLeft, p.NormalSide, p.DarkSide, p.DarkestSide},
	}
	faces := []struct {
		tag  FaceTag
		want func(i int) ColorRGB
	}{
		{FaceTop, func(i int) ColorRGB { return tests[i].top }},
		{FaceLeft, func(i int) ColorRGB { return tests[i].left }},
		{FaceRight, func(i int) ColorRGB { return tests[i].right }},
		{FaceOutline, func(int) ColorRGB { return p.Outline }},
		{FaceHighlight, func(int) ColorRGB { return p.Highlight }},
		{FaceCornerHighlight, func(int) ColorRGB { return p.CornerHighlight }},
		{FaceTransparent, func(int) ColorRGB { return Transparent }},
	}
	for i, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			cs := Colorize(s, p, tt.dir)
			for _, f := range faces {
				x, y := firstCell(t, s, f.tag)
				if got, _ := cs.At(x, y); got != f.want(i) {
					t.Errorf("%v cell = %+v, want %+v", f.tag, got, f.want(i))
				}
			}
		})
	}
}

func TestColorizeEdgesIgnoreLight(t *testing.T) {
	s := NewStencil(6)
	p, _ := NewPalette(RGB(0.9, 0.1, 0.5))
	base := Colorize(s, p, LightTopLeft)
	for _, dir := range []LightDirection{LightLeft, LightRight, LightTopRight} {
		cs := Colorize(s, p, dir)
		for y := range s.Height() {
			for x := range s.Width() {
				switch s.At(x, y) {
				case FaceOutline, FaceHighlight, FaceCornerHighlight, FaceTransparent:
					a, _ := base.At(x, y)
					b, _ := cs.At(x, y)
					if a != b {
						t.Fatalf("%v: cell (%d,%d) = %+v, want %+v", dir, x, y, b, a)
					}
				}
			}
		}
	}
}

func TestColorizerMemoizes(t *testing.T) {
	c := NewColorizer(NewStencil(4))
	p, _ := NewPalette(RGB(1, 0, 0))
	same, _ := NewPalette(RGBA8(255, 0, 0, 255))

	a := c.Get(p, LightTopLeft)
	if b := c.Get(same, LightTopLeft); a != b {
		t.Error("Get() with an equal color built a new grid")
	}
	if b := c.Get(p, LightLeft); a == b {
		t.Error("Get() reused the grid of another light direction")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	c.SetStencil(NewStencil(8))
	if c.Len() != 0 {
		t.Errorf("Len() after SetStencil = %d, want 0", c.Len())
	}
	if got := c.Get(p, LightTopLeft); got.Width() != 15 {
		t.Errorf("grid width after SetStencil = %d, want 15", got.Width())
	}
}

func TestPaletteFaceColorInvalidDirection(t *testing.T) {
	p, _ := NewPalette(RGB(0, 0, 1))
	if got, want := p.TopColor(LightDirection(42)), p.TopColor(LightTopLeft); got != want {
		t.Errorf("TopColor(42) = %+v, want %+v", got, want)
	}
}

func TestParseLightDirection(t *testing.T) {
	for _, d := range []LightDirection{LightLeft, LightRight, LightTopRight, LightTopLeft} {
		got, err := ParseLightDirection(d.String())
		if err != nil || got != d {
			t.Errorf("ParseLightDirection(%q) = %v, %v, want %v", d.String(), got, err, d)
		}
	}
	if _, err := ParseLightDirection("noon"); err == nil {
		t.Error("ParseLightDirection(noon) returned no error")
	}
}

func TestLightDirectionZeroValue(t *testing.T) {
	var d LightDirection
	if d != LightTopLeft || !d.Valid() {
		t.Errorf("zero LightDirection = %v, valid %v, want %v", d, d.Valid(), LightTopLeft)
	}
}
