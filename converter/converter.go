package converter

import (
	"fmt"

	"github.com/jsphweid/riffcode/chord"
	"github.com/jsphweid/riffcode/model"
	"github.com/jsphweid/riffcode/riff"
	"github.com/jsphweid/riffcode/tab"
)

// Converter turns barcodes into tab. It only holds its config, so one value can
// serve any number of goroutines.
type Converter struct {
	cfg model.Config
}

func New(cfg model.Config) *Converter {
	return &Converter{cfg: cfg}
}

func (c *Converter) Notes(barcode string, power bool) model.Notes {
	if power {
		return chord.PowerRiff(barcode)
	}
	return riff.Melodic(barcode, c.cfg)
}

func (c *Converter) Title(barcode string, power bool) string {
	if power {
		return fmt.Sprintf("Power Chord Riff - %s", barcode)
	}
	return fmt.Sprintf("Barcode Riff - %s", barcode)
}

func (c *Converter) Convert(barcode string, power bool) string {
	notes := c.Notes(barcode, power)
	return tab.Render(notes, c.Title(barcode, power), c.cfg.Mode, c.cfg.RootNote)
}
