package chord

import (
	"fmt"

	"github.com/jsphweid/riffcode/model"
	"github.com/jsphweid/riffcode/util"
)

// frets per digit, open string through the octave
const rootRange = 13

// on adjacent E and A strings the fifth sits two frets above the root
const fifthOffset = 2

const (
	rootString  = 0
	fifthString = 1
)

var noteNames = [12]string{"E", "F", "F#", "G", "G#", "A", "A#", "B", "C", "C#", "D", "D#"}

// Key names the power chord rooted at fret on the low E string, e.g. "A5".
func Key(fret int) string {
	if fret < 0 {
		return fmt.Sprintf("?%d", fret)
	}
	return noteNames[fret%12] + "5"
}

func RootFret(digit int) int {
	return digit % rootRange
}

func accented(digit int) bool {
	return digit == 0 || digit == 5
}

func powerChord(root int, duration int) model.Notes {
	return model.Notes{
		{String: rootString, Fret: root, Duration: duration},
		{String: fifthString, Fret: root + fifthOffset, Duration: duration},
	}
}

// PowerRiff plays one root+fifth pair per digit. 0s and 5s get an extra short
// palm-muted hit. Scale and root fret don't apply here.
func PowerRiff(barcode string) model.Notes {
	digits := util.Digits(barcode)
	if len(digits) == 0 {
		return nil
	}

	var notes model.Notes
	for _, digit := range digits {
		root := RootFret(digit)
		notes = append(notes, powerChord(root, 2)...)
		if accented(digit) {
			notes = append(notes, powerChord(root, 1)...)
		}
	}
	return notes
}
