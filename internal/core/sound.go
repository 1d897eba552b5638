package core

// Sound identifies an audio cue requested by the simulation.
// The platform decides how (or whether) to play it.
type Sound int

const (
	SoundWing  Sound = iota // Flap
	SoundHit                // Fatal collision
	SoundPoint              // Pipe pair passed
)

// String returns the cue name.
func (s Sound) String() string {
	switch s {
	case SoundWing:
		return "wing"
	case SoundHit:
		return "hit"
	case SoundPoint:
		return "point"
	default:
		return "unknown"
	}
}
