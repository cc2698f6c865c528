package tab

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/jsphweid/riffcode/constants"
	"github.com/jsphweid/riffcode/model"
	"github.com/jsphweid/riffcode/scale"
	"github.com/jsphweid/riffcode/util"
)

const Placeholder = "No notes to display"

// columns per sixteenth
const cellsPerUnit = 2

// Grid holds the six tab lines in display order, high e first.
type Grid struct {
	Lines [constants.NumStrings][]byte
	Width int

	// fret characters that fell past the right edge
	Dropped int
}

func Width(notes model.Notes) int {
	durations := make([]int, len(notes))
	for i, n := range notes {
		durations[i] = n.Duration
	}
	return 2 + cellsPerUnit*int(util.Sum(durations))
}

// Layout places the notes left to right. A note gets 2 columns per sixteenth
// no matter how many digits its fret needs, so wide frets can run into the
// next note. Characters past the last column are dropped.
func Layout(notes model.Notes) Grid {
	g := Grid{Width: Width(notes)}
	for i := range g.Lines {
		g.Lines[i] = bytes.Repeat([]byte{'-'}, g.Width)
	}

	cursor := 1
	for _, n := range notes {
		row := constants.NumStrings - 1 - n.String
		for i, c := range []byte(strconv.Itoa(n.Fret)) {
			col := cursor + i
			if col < g.Width {
				g.Lines[row][col] = c
			} else {
				g.Dropped++
			}
		}
		cursor += n.Duration * cellsPerUnit
	}
	return g
}

func Render(notes model.Notes, title string, mode scale.Mode, rootLabel string) string {
	if len(notes) == 0 {
		return Placeholder
	}

	grid := Layout(notes)
	rule := strings.Repeat("=", constants.RuleWidth)

	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString("Scale: " + mode.String() + " in " + rootLabel + "\n")
	b.WriteString(rule + "\n")
	for i, line := range grid.Lines {
		b.WriteString(constants.TuningLabels[i] + "|")
		b.Write(line)
		b.WriteString("|\n")
	}
	b.WriteString(rule)
	return b.String()
}
