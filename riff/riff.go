package riff

import (
	"github.com/jsphweid/riffcode/constants"
	"github.com/jsphweid/riffcode/model"
	"github.com/jsphweid/riffcode/scale"
	"github.com/jsphweid/riffcode/util"
)

// notes per string before the riff climbs to the next one
const notesPerString = 4

func isAccent(digit int) bool {
	return digit == 0 || digit == 5
}

func Duration(digit int) int {
	if isAccent(digit) {
		return 2
	}
	return 1
}

// Fret maps a digit to a fret within cfg's scale, folded down by octaves while
// it sits above constants.MaxFret.
func Fret(digit int, cfg model.Config) int {
	intervals := scale.Intervals(cfg.Mode)
	degree := digit % len(intervals)
	fret := cfg.RootFret + intervals[degree]
	for fret > constants.MaxFret {
		fret -= constants.OctaveStep
	}
	return fret
}

// Melodic walks the digits of barcode through cfg's scale, starting on the low
// E string and moving up a string every fourth note.
func Melodic(barcode string, cfg model.Config) model.Notes {
	digits := util.Digits(barcode)
	if len(digits) == 0 {
		return nil
	}

	notes := make(model.Notes, 0, len(digits))
	var currentString int
	for i, digit := range digits {
		if i > 0 && i%notesPerString == 0 {
			currentString = (currentString + 1) % constants.NumStrings
		}
		notes = append(notes, model.Note{
			String:   currentString,
			Fret:     Fret(digit, cfg),
			Duration: Duration(digit),
		})
	}
	return notes
}
