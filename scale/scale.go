package scale

import "fmt"

type Mode uint8

const (
	MinorPentatonic Mode = iota
	NaturalMinor
	HarmonicMinor
	Chromatic
	PowerChord
)

var All = []Mode{MinorPentatonic, NaturalMinor, HarmonicMinor, Chromatic, PowerChord}

var (
	minorPentatonic = []int{0, 3, 5, 7, 10}
	naturalMinor    = []int{0, 2, 3, 5, 7, 8, 10}
	harmonicMinor   = []int{0, 2, 3, 5, 7, 8, 11}
	chromatic       = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	powerChord      = []int{0, 7}
)

func (m Mode) String() string {
	switch m {
	case MinorPentatonic:
		return "minor_pentatonic"
	case NaturalMinor:
		return "natural_minor"
	case HarmonicMinor:
		return "harmonic_minor"
	case Chromatic:
		return "chromatic"
	case PowerChord:
		return "power_chord"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

func ParseMode(s string) (Mode, error) {
	for _, m := range All {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown scale mode %q", s)
}

// Intervals returns the semitone offsets from the root for a mode. The slice is
// a copy, callers may keep it. An unknown mode is a programming error.
func Intervals(m Mode) []int {
	var src []int
	switch m {
	case MinorPentatonic:
		src = minorPentatonic
	case NaturalMinor:
		src = naturalMinor
	case HarmonicMinor:
		src = harmonicMinor
	case Chromatic:
		src = chromatic
	case PowerChord:
		src = powerChord
	default:
		panic("no intervals for scale mode " + m.String())
	}
	res := make([]int, len(src))
	copy(res, src)
	return res
}
