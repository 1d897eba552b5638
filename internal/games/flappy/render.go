package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Text positions in canvas units
const (
	hudX, hudY      = 10, 10
	readyY          = 150
	readyHintY      = 400
	gameOverTitleY  = 100
	gameOverScoreY  = 250
	gameOverReplayY = 300
)

// Render draws the current phase into p.
func (g *Game) Render(p core.Presenter) {
	switch g.phase {
	case PhaseQuit:
		return

	case PhaseStart:
		p.Clear()
		g.drawGround(p)
		g.drawBody(p, g.bird)
		p.DrawTextCentered(readyY, "Get Ready!")
		p.DrawTextCentered(readyHintY, "Press SPACE to flap")

	case PhasePlaying, PhaseDying:
		p.Clear()
		for _, pp := range g.pipes.Pairs() {
			g.drawBody(p, pp.Top)
			g.drawBody(p, pp.Bottom)
		}
		g.drawGround(p)
		g.drawBody(p, g.bird)
		p.DrawText(hudX, hudY, fmt.Sprintf("Score: %d", g.score))

	case PhaseGameOver:
		p.Clear()
		p.DrawTextCentered(gameOverTitleY, "GAME OVER")
		p.DrawTextCentered(gameOverScoreY, fmt.Sprintf("Final Score: %d", g.score))
		p.DrawTextCentered(gameOverReplayY, "Press R to Replay")
	}
}

func (g *Game) drawGround(p core.Presenter) {
	for _, seg := range g.ground.Segments() {
		g.drawBody(p, seg)
	}
}

func (g *Game) drawBody(p core.Presenter, b Body) {
	x, y := b.Pos()
	p.Draw(b.Sprite(), x, y)
}
