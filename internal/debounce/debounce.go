// Package debounce turns noisy boolean key samples into clean press and
// release edges using an 8-bit shift history per key.
package debounce

// Edge is the result of feeding one sample to the shaper.
type Edge int

const (
	EdgeNone Edge = iota
	EdgePress
	EdgeRelease
)

func (e Edge) String() string {
	switch e {
	case EdgePress:
		return "press"
	case EdgeRelease:
		return "release"
	default:
		return "none"
	}
}

// History patterns. The middle three bits are ignored so a short glitch
// inside a run of identical samples does not block an edge.
const (
	HistoryMask    uint8 = 0b11000111
	PressPattern   uint8 = 0b00000111
	ReleasePattern uint8 = 0b11000000

	// ConfirmSamples is how many consecutive pressed samples from a clean
	// released history it takes to emit a press.
	ConfirmSamples = 3
)

// Shaper holds one shift register per logical key id.
// It assumes samples arrive at a constant polling rate chosen by the caller.
type Shaper struct {
	regs []uint8
}

// New creates a shaper for key ids in [0, keys).
func New(keys int) *Shaper {
	return &Shaper{regs: make([]uint8, max(keys, 0))}
}

// Len returns the number of keys the shaper tracks.
func (s *Shaper) Len() int {
	return len(s.regs)
}

// Sample shifts one raw reading into the key's history and reports the edge
// it completes, if any. Once an edge fires the register is locked to the
// steady value so the same edge is not emitted again until the opposite
// pattern shows up. Unknown key ids yield EdgeNone.
func (s *Shaper) Sample(key int, pressed bool) Edge {
	if key < 0 || key >= len(s.regs) {
		return EdgeNone
	}

	reg := s.regs[key] << 1
	if pressed {
		reg |= 1
	}

	switch reg & HistoryMask {
	case PressPattern:
		s.regs[key] = 0xFF
		return EdgePress
	case ReleasePattern:
		s.regs[key] = 0x00
		return EdgeRelease
	}

	s.regs[key] = reg
	return EdgeNone
}

// Register returns the raw history of a key, or 0 for unknown ids.
func (s *Shaper) Register(key int) uint8 {
	if key < 0 || key >= len(s.regs) {
		return 0
	}
	return s.regs[key]
}

// Reset clears every key's history.
func (s *Shaper) Reset() {
	clear(s.regs)
}
