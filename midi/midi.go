package midi

import (
	"io"

	"github.com/jsphweid/riffcode/constants"
	"github.com/jsphweid/riffcode/model"
	"github.com/jsphweid/riffcode/util"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const TicksPerQuarter = 480

// one duration unit is a sixteenth
const TicksPerUnit = TicksPerQuarter / 4

const (
	channel  = 0
	velocity = 100
)

// E2 A2 D3 G3 B3 E4
var openStrings = [constants.NumStrings]int{40, 45, 50, 55, 59, 64}

var ErrNoNotes = errors.New("no notes to export")

func Pitch(n model.Note) uint8 {
	p := openStrings[n.String] + n.Fret
	if p < 0 {
		return 0
	}
	return uint8(util.Min(p, 127))
}

// Riff lays the notes out one after another on a single track, each held for
// its full duration.
func Riff(notes model.Notes, title string) (*smf.SMF, error) {
	if len(notes) == 0 {
		return nil, errors.WithStack(ErrNoNotes)
	}

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(title))
	tr.Add(0, smf.MetaTempo(constants.TempoBPM))
	for _, n := range notes {
		key := Pitch(n)
		tr.Add(0, midi.NoteOn(channel, key, velocity))
		tr.Add(uint32(n.Duration*TicksPerUnit), midi.NoteOff(channel, key))
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)
	if err := s.Add(tr); err != nil {
		return nil, errors.Wrap(err, "could not add track")
	}
	return s, nil
}

func Write(w io.Writer, notes model.Notes, title string) error {
	s, err := Riff(notes, title)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return errors.Wrap(err, "error writing midi file")
	}
	return nil
}
