package audio

import (
	"bytes"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	DefaultVolume = 0.6
)

// Synth plays procedurally generated cues through an oto context.
// Cue buffers are rendered once; every Play starts its own player goroutine.
type Synth struct {
	ctx    *oto.Context
	ready  chan struct{}
	cues   map[core.Sound][]byte
	volume float64

	wg     sync.WaitGroup
	closed atomic.Bool
}

// NewSynth opens the audio device and renders the cue buffers.
func NewSynth(volume float64) (*Synth, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("audio: open device: %w", err)
	}
	return &Synth{
		ctx:    ctx,
		ready:  ready,
		cues:   renderCues(),
		volume: volume,
	}, nil
}

// Play starts the cue and returns immediately. Cues requested before the
// device is ready or after Close are dropped.
func (s *Synth) Play(snd core.Sound) {
	if s.closed.Load() {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	data := s.cues[snd]
	if len(data) == 0 {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		player := s.ctx.NewPlayer(bytes.NewReader(data))
		player.SetVolume(s.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// Close waits for playing cues to finish and suspends the device.
func (s *Synth) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	s.wg.Wait()
	if err := s.ctx.Suspend(); err != nil {
		return fmt.Errorf("audio: suspend device: %w", err)
	}
	return nil
}
