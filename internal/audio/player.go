// Package audio plays the simulation's sound cues.
package audio

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Player plays sound cues. Play must not block the caller.
type Player interface {
	Play(s core.Sound)
	Close() error
}

// Nop is the silent player used when audio is muted or unavailable.
type Nop struct{}

func (Nop) Play(core.Sound) {}
func (Nop) Close() error    { return nil }

// Open returns a synthesizer, or the silent player if mute is set or the
// audio device cannot be opened. Failing to open audio is logged, not fatal.
func Open(mute bool, logger *log.Logger) Player {
	if mute {
		return Nop{}
	}
	s, err := NewSynth(DefaultVolume)
	if err != nil {
		if logger != nil {
			logger.Warn("Audio unavailable, continuing silently", "err", err)
		}
		return Nop{}
	}
	return s
}
