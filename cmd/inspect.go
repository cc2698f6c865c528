package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/riffcode/chord"
	"github.com/jsphweid/riffcode/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <barcode|image>",
	Short: "Lists the notes of a riff",
	Long:  `Lists every note event a barcode turns into, with its string, fret, duration and MIDI pitch.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(cmd.OutOrStdout(), args[0])
	},
}

func inspect(out io.Writer, arg string) error {
	c, err := newConverter(modeFor(useHarmonic))
	if err != nil {
		return err
	}
	code, ok := resolveBarcode(out, arg)
	if !ok {
		return nil
	}

	notes := c.Notes(code, usePower)
	fmt.Fprintln(out, c.Title(code, usePower))
	if len(notes) == 0 {
		fmt.Fprintln(out, "No digits found in barcode")
		return nil
	}
	for i, n := range notes {
		fmt.Fprintf(out, "%3d  string: %d  fret: %2d  duration: %d  pitch: %3d", i, n.String, n.Fret, n.Duration, midi.Pitch(n))
		if usePower && n.String == 0 {
			fmt.Fprintf(out, "  chord: %v", chord.Key(n.Fret))
		}
		fmt.Fprintln(out)
	}
	return nil
}
