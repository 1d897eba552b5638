package core

import "testing"

func TestMaskFromRows(t *testing.T) {
	m := MaskFromRows([]string{
		"..##",
		"####",
		"#.",
	})

	if m.Width() != 4 || m.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, expected 4x3", m.Width(), m.Height())
	}
	if m.At(0, 0) || m.At(1, 0) || !m.At(2, 0) {
		t.Error("row 0 opacity does not match art")
	}
	if m.At(3, 2) {
		t.Error("short rows should be padded with transparency")
	}
	if m.Count() != 7 {
		t.Errorf("Count() = %d, expected 7", m.Count())
	}
	if m.At(-1, 0) || m.At(0, 10) {
		t.Error("out of bounds pixels should be transparent")
	}
}

func TestMaskWideRows(t *testing.T) {
	// Wider than one word to exercise the packed stride
	m := NewSolidMask(130, 2)
	if m.Count() != 260 {
		t.Errorf("Count() = %d, expected 260", m.Count())
	}
	m.Set(129, 1, false)
	if m.At(129, 1) {
		t.Error("Set(false) should clear the pixel")
	}
	if !m.At(128, 1) || !m.At(64, 0) {
		t.Error("neighbouring pixels should stay opaque")
	}
}

func TestMaskFlipV(t *testing.T) {
	m := MaskFromRows([]string{
		"#..",
		"...",
		"..#",
		".#.",
	})
	f := m.FlipV()

	if !f.At(1, 0) || !f.At(2, 1) || !f.At(0, 3) {
		t.Error("flipped mask does not mirror rows")
	}
	if f.Count() != m.Count() {
		t.Errorf("flip changed pixel count: %d vs %d", f.Count(), m.Count())
	}
}

func TestMaskScale(t *testing.T) {
	m := MaskFromRows([]string{
		"#.",
		".#",
	})
	s := m.Scale(4, 6)

	if s.Width() != 4 || s.Height() != 6 {
		t.Fatalf("scaled dimensions = %dx%d, expected 4x6", s.Width(), s.Height())
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 4; x++ {
			expected := (x < 2) == (y < 3)
			if s.At(x, y) != expected {
				t.Errorf("scaled At(%d, %d) = %v, expected %v", x, y, s.At(x, y), expected)
			}
		}
	}
}

func TestMaskOverlaps(t *testing.T) {
	ring := MaskFromRows([]string{
		"####",
		"#..#",
		"#..#",
		"####",
	})
	dot := MaskFromRows([]string{"#"})
	solid := NewSolidMask(2, 2)

	tests := []struct {
		name     string
		a, b     *Mask
		dx, dy   int
		expected bool
	}{
		{"dot on ring edge", ring, dot, 0, 0, true},
		{"dot in ring hole", ring, dot, 1, 2, false},
		{"boxes overlap but pixels miss", ring, solid, 1, 1, false},
		{"solid touching ring edge", ring, solid, 2, 2, true},
		{"disjoint", ring, solid, 10, 10, false},
		{"negative offset", ring, solid, -1, -1, true},
		{"adjacent, no shared pixel", ring, solid, 4, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b, tc.dx, tc.dy); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Symmetry
			if got := tc.b.Overlaps(tc.a, -tc.dx, -tc.dy); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSpriteBoundsAt(t *testing.T) {
	s := &Sprite{Name: "box", Mask: NewSolidMask(34, 24)}

	r := s.BoundsAt(66.7, -0.5)
	if r != NewRect(66, -1, 34, 24) {
		t.Errorf("BoundsAt = %+v, expected {66 -1 34 24}", r)
	}

	f := s.FlipV()
	if f.Width() != 34 || f.Height() != 24 || f.Name != "box" {
		t.Errorf("FlipV changed sprite identity: %+v", f)
	}
}
