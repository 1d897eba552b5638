package audio

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func renderCues() map[core.Sound][]byte {
	return map[core.Sound][]byte{
		core.SoundWing:  genWing(),
		core.SoundHit:   genHit(),
		core.SoundPoint: genPoint(),
	}
}

// genWing: short rising FM chirp.
func genWing() []byte {
	n := int(0.08 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.4, 0.2, 0.3)
		freq := 380 + 520*p
		s := fm(t, freq, 1.5, 2.0*env) * env * 0.45
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genHit: low falling thud over filtered noise.
func genHit() []byte {
	n := int(0.22 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(424242)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 6)
		lp = lp*0.85 + lcg(&seed)*0.15
		thump := fm(t, 140-80*p, 0.5, 1.6) * math.Exp(-p*12)
		s := (thump*0.6 + lp*0.4) * env
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genPoint: two-note bell, the second note ringing over the first.
func genPoint() []byte {
	notes := []float64{987.77, 1318.51} // B5, E6
	noteStep := int(0.07 * SampleRate)
	total := len(notes)*noteStep + int(0.18*SampleRate)
	mix := make([]float64, total)

	for ni, freq := range notes {
		start := ni * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.005, 0.5, 0.1, 0.3)
			mix[start+j] += fm(t, freq, 3.5, 4.0*env) * env * 0.3
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat compresses samples outside [-1,1] instead of clipping them.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x
}

// adsr returns the envelope level at progress in [0,1].
// attack, decay and release are fractions of the cue length.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*8) }
