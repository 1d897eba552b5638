package core

import "math/bits"

// Mask is a per-pixel opacity bitmap. Each row is packed into 64-bit words.
// Pixels outside the mask are transparent.
type Mask struct {
	w, h   int
	stride int // words per row
	bits   []uint64
}

// NewMask creates a fully transparent mask of the given size.
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	stride := (w + 63) / 64
	return &Mask{
		w:      w,
		h:      h,
		stride: stride,
		bits:   make([]uint64, stride*h),
	}
}

// NewSolidMask creates a fully opaque mask of the given size.
func NewSolidMask(w, h int) *Mask {
	m := NewMask(w, h)
	m.Fill(true)
	return m
}

// MaskFromRows builds a mask from text rows. Space and '.' are transparent,
// any other rune is opaque. Short rows are padded with transparency.
func MaskFromRows(rows []string) *Mask {
	w := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	m := NewMask(w, len(rows))
	for y, row := range rows {
		for x, r := range []rune(row) {
			if r != ' ' && r != '.' {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int {
	return m.w
}

// Height returns the mask height in pixels.
func (m *Mask) Height() int {
	return m.h
}

// Set changes the opacity of a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (m *Mask) Set(x, y int, opaque bool) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	word := y*m.stride + x/64
	bit := uint64(1) << uint(x%64)
	if opaque {
		m.bits[word] |= bit
	} else {
		m.bits[word] &^= bit
	}
}

// At reports whether the pixel at (x, y) is opaque.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.bits[y*m.stride+x/64]&(uint64(1)<<uint(x%64)) != 0
}

// Fill sets every pixel to the given opacity.
func (m *Mask) Fill(opaque bool) {
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			m.Set(x, y, opaque)
		}
	}
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// FlipV returns a vertically mirrored copy of the mask.
func (m *Mask) FlipV() *Mask {
	out := NewMask(m.w, m.h)
	for y := 0; y < m.h; y++ {
		src := m.bits[y*m.stride : (y+1)*m.stride]
		dst := out.bits[(m.h-1-y)*m.stride : (m.h-y)*m.stride]
		copy(dst, src)
	}
	return out
}

// Scale resizes the mask to w×h using nearest-neighbour sampling.
func (m *Mask) Scale(w, h int) *Mask {
	out := NewMask(w, h)
	if m.w == 0 || m.h == 0 {
		return out
	}
	for y := 0; y < h; y++ {
		sy := y * m.h / h
		for x := 0; x < w; x++ {
			sx := x * m.w / w
			if m.At(sx, sy) {
				out.Set(x, y, true)
			}
		}
	}
	return out
}

// Overlaps reports whether any opaque pixel of m coincides with an opaque
// pixel of other when other's top-left corner sits at (dx, dy) in m's
// coordinates. m.Overlaps(o, dx, dy) == o.Overlaps(m, -dx, -dy).
func (m *Mask) Overlaps(other *Mask, dx, dy int) bool {
	region := NewRect(0, 0, m.w, m.h).Intersection(NewRect(dx, dy, other.w, other.h))
	if region.Empty() {
		return false
	}
	for y := region.Y; y < region.Bottom(); y++ {
		for x := region.X; x < region.Right(); x++ {
			if m.At(x, y) && other.At(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}
