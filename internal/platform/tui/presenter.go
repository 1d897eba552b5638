package tui

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// cellAspect is how many times taller a terminal cell is than it is wide.
const cellAspect = 2

// CanvasPresenter rasterises the game's logical canvas into a screen buffer.
// The canvas is letterboxed: scaled uniformly to fit and centered. Drawing
// is clipped so nothing outside the canvas reaches the margins.
type CanvasPresenter struct {
	screen  *core.Screen
	canvasW int
	canvasH int

	scale float64   // Canvas units per cell column
	view  core.Rect // Cells covered by the canvas
}

// Ensure CanvasPresenter implements core.Presenter
var _ core.Presenter = (*CanvasPresenter)(nil)

// NewCanvasPresenter maps a canvasW×canvasH canvas onto the whole screen.
func NewCanvasPresenter(screen *core.Screen, canvasW, canvasH int) *CanvasPresenter {
	p := &CanvasPresenter{
		screen:  screen,
		canvasW: canvasW,
		canvasH: canvasH,
	}
	p.Resize(screen.Width(), screen.Height())
	return p
}

// Resize recomputes the viewport for a w×h cell area. One cell on every
// side is kept for the frame drawn by Clear.
func (p *CanvasPresenter) Resize(w, h int) {
	iw, ih := w-2, h-2
	if iw <= 0 || ih <= 0 {
		p.scale = 0
		p.view = core.Rect{}
		return
	}
	p.scale = math.Max(float64(p.canvasW)/float64(iw), float64(p.canvasH)/float64(cellAspect*ih))
	cols := core.Clamp(int(float64(p.canvasW)/p.scale), 1, iw)
	rows := core.Clamp(int(float64(p.canvasH)/(cellAspect*p.scale)), 1, ih)
	p.view = core.NewRect(1+(iw-cols)/2, 1+(ih-rows)/2, cols, rows)
}

// Viewport returns the cells the canvas occupies.
func (p *CanvasPresenter) Viewport() core.Rect {
	return p.view
}

// CellAt maps a canvas coordinate to a screen cell.
func (p *CanvasPresenter) CellAt(x, y float64) (int, int) {
	if p.scale == 0 {
		return 0, 0
	}
	return p.view.X + core.Pixel(x/p.scale), p.view.Y + core.Pixel(y/(cellAspect*p.scale))
}

// Clear blanks the screen and frames the viewport.
func (p *CanvasPresenter) Clear() {
	p.screen.Clear()
	if p.scale == 0 {
		return
	}
	v := p.view
	p.screen.DrawBox(core.NewRect(v.X-1, v.Y-1, v.W+2, v.H+2), core.ColorGray)
}

// Draw samples the sprite's mask at the center of every cell it covers.
func (p *CanvasPresenter) Draw(s *core.Sprite, x, y float64) {
	if p.scale == 0 || s == nil {
		return
	}
	glyph := s.Glyph
	if glyph == 0 {
		glyph = '█'
	}

	cellW := p.scale
	cellH := cellAspect * p.scale
	px, py := core.Pixel(x), core.Pixel(y)

	c0 := core.Max(core.Pixel(float64(px)/cellW), 0)
	c1 := core.Min(core.Pixel(float64(px+s.Width())/cellW), p.view.W-1)
	r0 := core.Max(core.Pixel(float64(py)/cellH), 0)
	r1 := core.Min(core.Pixel(float64(py+s.Height())/cellH), p.view.H-1)

	for row := r0; row <= r1; row++ {
		cy := (float64(row) + 0.5) * cellH
		for col := c0; col <= c1; col++ {
			cx := (float64(col) + 0.5) * cellW
			if s.Opaque(core.Pixel(cx)-px, core.Pixel(cy)-py) {
				p.screen.SetCell(p.view.X+col, p.view.Y+row, glyph, s.Color)
			}
		}
	}
}

// DrawText writes text starting at the cell holding (x, y), clipped to the viewport.
func (p *CanvasPresenter) DrawText(x, y float64, text string) {
	cx, cy := p.CellAt(x, y)
	p.drawClipped(cx, cy, text)
}

// DrawTextCentered writes text centered within the viewport at row y.
func (p *CanvasPresenter) DrawTextCentered(y float64, text string) {
	_, cy := p.CellAt(0, y)
	cx := p.view.X + (p.view.W-len([]rune(text)))/2
	p.drawClipped(cx, cy, text)
}

func (p *CanvasPresenter) drawClipped(x, y int, text string) {
	if y < p.view.Y || y >= p.view.Bottom() {
		return
	}
	i := 0
	for _, r := range text {
		if cx := x + i; cx >= p.view.X && cx < p.view.Right() {
			p.screen.SetCell(cx, y, r, core.ColorBrightWhite)
		}
		i++
	}
}
