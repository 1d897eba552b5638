package tui

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.SetCell(0, 0, '█', core.ColorBrightYellow)
	s.SetCell(1, 0, '█', core.ColorBrightYellow)
	s.SetCell(3, 0, 'o', core.ColorBrightWhite)
	s.SetCell(4, 0, 'k', core.ColorBrightWhite)
	s.SetCell(5, 1, '▓', core.ColorOrange)

	// Tests run without a TTY, so lipgloss emits no escape sequences.
	if got, want := RenderScreen(s), "██ ok \n     ▓"; got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if got := RenderScreen(core.NewScreen(0, 0)); got != "" {
		t.Errorf("RenderScreen(empty) = %q", got)
	}
}
