package model

import "github.com/jsphweid/riffcode/scale"

// Note is one plucked position. String 0 is the low E string, Duration is
// counted in sixteenths.
type Note struct {
	String   int `json:"string"`
	Fret     int `json:"fret"`
	Duration int `json:"duration"`
}

type Notes = []Note

type Config struct {
	RootNote string
	RootFret int
	Mode     scale.Mode
}

func DefaultConfig() Config {
	return Config{RootNote: "E", RootFret: 0, Mode: scale.MinorPentatonic}
}
