package constants

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func GetRootNote() string {
	note := os.Getenv("ROOT_NOTE")
	if note != "" {
		return note
	}
	return "E"
}

// GetRootFret reads ROOT_FRET, which has to stay within the first octave.
func GetRootFret() (int, error) {
	raw := os.Getenv("ROOT_FRET")
	if raw == "" {
		return 0, nil
	}
	fret, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("ROOT_FRET is not a number: %q", raw)
	}
	if fret < 0 || fret > MaxRootFret {
		return 0, fmt.Errorf("ROOT_FRET must be between 0 and %d, got %d", MaxRootFret, fret)
	}
	return fret, nil
}

func GetServeAddr() string {
	addr := os.Getenv("SERVE_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func IsDebug() bool {
	return strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug")
}

const MaxRootFret = 12

// melodic frets above MaxFret get dropped by OctaveStep until they fit
const MaxFret = 19
const OctaveStep = 12

const NumStrings = 6

// width of the "=" rules framing a rendered tab
const RuleWidth = 60

// TuningLabels are drawn top to bottom, highest string first.
var TuningLabels = [NumStrings]string{"e", "B", "G", "D", "A", "E"}

const TempoBPM = 160
