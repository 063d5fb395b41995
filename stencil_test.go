package pixify

import (
	"strings"
	"testing"
)

var faceRunes = map[FaceTag]byte{
	FaceTransparent:     '.',
	FaceLeft:            'l',
	FaceRight:           'r',
	FaceTop:             't',
	FaceOutline:         'o',
	FaceHighlight:       'h',
	FaceCornerHighlight: 'c',
}

func stencilString(s *Stencil) string {
	var sb strings.Builder
	for y := range s.Height() {
		for x := range s.Width() {
			sb.WriteByte(faceRunes[s.At(x, y)])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestStencilSide4(t *testing.T) {
	want := strings.Join([]string{
		".......",
		"..ooo..",
		"ootttoo",
		"olcccro",
		"ollcrro",
		"ollcrro",
		"oolhroo",
		"..ooo..",
	}, "\n") + "\n"
	if got := stencilString(NewStencil(4)); got != want {
		t.Errorf("NewStencil(4) =\n%s\nwant\n%s", got, want)
	}
}

func TestStencilDimensions(t *testing.T) {
	tests := []struct {
		side, w, h int
	}{
		{2, 3, 4},
		{4, 7, 8},
		{16, 31, 32},
		{32, 63, 64},
	}
	for _, tt := range tests {
		s := NewStencil(tt.side)
		if s.Width() != tt.w || s.Height() != tt.h {
			t.Errorf("NewStencil(%d) is %dx%d, want %dx%d", tt.side, s.Width(), s.Height(), tt.w, tt.h)
		}
	}
}

func TestStencilDeterministic(t *testing.T) {
	a, b := NewStencil(32), NewStencil(32)
	if !a.Equal(b) {
		t.Error("NewStencil(32) built twice differs")
	}
	if a.Equal(NewStencil(16)) {
		t.Error("NewStencil(32) equals NewStencil(16)")
	}
}

func TestStencilSideFallback(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{5, 4},
		{1, DefaultPixelSide},
		{0, DefaultPixelSide},
		{-4, DefaultPixelSide},
	}
	for _, tt := range tests {
		if got := NewStencil(tt.in).Side(); got != tt.want {
			t.Errorf("NewStencil(%d).Side() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestStencilHasEveryFace(t *testing.T) {
	for _, side := range []int{4, 8, 32} {
		s := NewStencil(side)
		seen := make(map[FaceTag]int)
		for y := range s.Height() {
			for x := range s.Width() {
				seen[s.At(x, y)]++
			}
		}
		for tag := FaceCornerHighlight; tag <= FaceTransparent; tag++ {
			if seen[tag] == 0 {
				t.Errorf("NewStencil(%d) has no %v cells", side, tag)
			}
		}
	}
}

func TestStencilAtOutside(t *testing.T) {
	s := NewStencil(4)
	if got := s.At(-1, 0); got != FaceTransparent {
		t.Errorf("At(-1, 0) = %v, want transparent", got)
	}
	if got := s.At(0, s.Height()); got != FaceTransparent {
		t.Errorf("At(0, h) = %v, want transparent", got)
	}
}

func TestStencilPenClips(t *testing.T) {
	p := &stencilPen{grid: NewGrid(3, 3, FaceTransparent), tag: FaceOutline}
	p.moveTo(2, 0)
	p.slantedLineDown(4)
	p.moveTo(-1, 1)
	p.horizontalLine(5)
	want := "..o\nooo\n...\n"
	if got := stencilString(&Stencil{grid: p.grid}); got != want {
		t.Errorf("clipped lines =\n%s\nwant\n%s", got, want)
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(2, 3, 7)
	g.Set(5, 5, 1)
	g.Set(1, 2, 9)
	if v, ok := g.At(1, 2); !ok || v != 9 {
		t.Errorf("At(1, 2) = %d, %v, want 9, true", v, ok)
	}
	if v, ok := g.At(2, 0); ok || v != 0 {
		t.Errorf("At(2, 0) = %d, %v, want 0, false", v, ok)
	}
	if v, _ := g.At(0, 0); v != 7 {
		t.Errorf("At(0, 0) = %d, want fill 7", v)
	}
}

func TestFaceTagString(t *testing.T) {
	tests := []struct {
		tag  FaceTag
		want string
	}{
		{FaceTop, "top"},
		{FaceHighlight, "highlight"},
		{FaceTransparent, "transparent"},
		{FaceTransparent + 1, "FaceTag(7)"},
		{FaceTag(99), "FaceTag(99)"},
	}
	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.want {
			t.Errorf("FaceTag(%d).String() = %q, want %q", int(tt.tag), got, tt.want)
		}
	}
}
