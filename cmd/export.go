package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/riffcode/midi"
	"github.com/jsphweid/riffcode/model"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var outPath string

func init() {
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "riff.mid", "MIDI file to write, - for stdout")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <barcode|image>",
	Short: "Writes the riff as a MIDI file",
	Long:  `Writes the riff as a Standard MIDI File so it can be played back in a DAW.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return export(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], outPath)
	},
}

// export writes the MIDI file to path. Status messages go to status so that
// "-" can stream the file itself to out.
func export(out io.Writer, status io.Writer, arg string, path string) error {
	c, err := newConverter(modeFor(useHarmonic))
	if err != nil {
		return err
	}
	code, ok := resolveBarcode(status, arg)
	if !ok {
		return nil
	}

	notes := c.Notes(code, usePower)
	if len(notes) == 0 {
		fmt.Fprintln(status, "No digits found in barcode")
		return nil
	}
	title := c.Title(code, usePower)

	if path == "-" {
		return midi.Write(out, notes, title)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "couldn't create midi file")
	}
	if err := writeAndClose(f, notes, title); err != nil {
		return errors.Wrapf(err, "exporting %v", path)
	}
	fmt.Fprintf(status, "Wrote %d notes to %v\n", len(notes), path)
	return nil
}

// writeAndClose closes wc even when writing fails. A close error only surfaces
// when the write itself went through.
func writeAndClose(wc io.WriteCloser, notes model.Notes, title string) (err error) {
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "couldn't close midi file")
		}
	}()
	return midi.Write(wc, notes, title)
}
