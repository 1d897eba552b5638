package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

type staticBody struct {
	x, y   float64
	sprite *core.Sprite
}

func (b *staticBody) Update(float64)       {}
func (b *staticBody) Sprite() *core.Sprite { return b.sprite }
func (b *staticBody) Bounds() core.Rect    { return b.sprite.BoundsAt(b.x, b.y) }
func (b *staticBody) Pos() (x, y float64)  { return b.x, b.y }

func bodyOf(x, y float64, rows ...string) *staticBody {
	return &staticBody{x: x, y: y, sprite: &core.Sprite{Mask: core.MaskFromRows(rows)}}
}

func TestCollides(t *testing.T) {
	tests := []struct {
		name string
		a, b *staticBody
		want bool
	}{
		{
			name: "far apart",
			a:    bodyOf(0, 0, "##", "##"),
			b:    bodyOf(10, 10, "##", "##"),
			want: false,
		},
		{
			name: "solid overlap",
			a:    bodyOf(0, 0, "##", "##"),
			b:    bodyOf(1, 1, "##", "##"),
			want: true,
		},
		{
			name: "boxes overlap but pixels miss",
			a:    bodyOf(0, 0, "#.", ".."),
			b:    bodyOf(0, 0, "..", ".#"),
			want: false,
		},
		{
			name: "transparent corner against opaque corner",
			a:    bodyOf(0, 0, "##", "#."),
			b:    bodyOf(1, 1, "##", "##"),
			want: false,
		},
		{
			name: "fractional positions truncate",
			a:    bodyOf(0.9, 0.9, "#"),
			b:    bodyOf(0, 0, "#"),
			want: true,
		},
		{
			name: "edge contact is not overlap",
			a:    bodyOf(0, 0, "##"),
			b:    bodyOf(2, 0, "##"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.a, []Body{tt.b}); got != tt.want {
				t.Errorf("Collides(a, b) = %v, want %v", got, tt.want)
			}
			if got := Collides(tt.b, []Body{tt.a}); got != tt.want {
				t.Errorf("Collides(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollidesGroup(t *testing.T) {
	bird := bodyOf(5, 5, "##", "##")
	group := []Body{
		bodyOf(0, 0, "#"),
		bodyOf(20, 20, "#"),
		bodyOf(6, 6, "#"),
	}
	if !Collides(bird, group) {
		t.Error("bird should hit the third member")
	}
	if Collides(bird, group[:2]) {
		t.Error("bird should miss the first two members")
	}
	if Collides(bird, nil) {
		t.Error("empty group never collides")
	}
}
