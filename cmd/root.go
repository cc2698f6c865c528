package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jsphweid/riffcode/barcode"
	"github.com/jsphweid/riffcode/constants"
	"github.com/jsphweid/riffcode/converter"
	"github.com/jsphweid/riffcode/model"
	"github.com/jsphweid/riffcode/scale"
	"github.com/jsphweid/riffcode/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	usePower    bool
	useHarmonic bool

	// resolved once in PersistentPreRunE
	source *barcode.Source

	detectDecoder = barcode.Detect
)

var rootCmd = &cobra.Command{
	Use:   "riffcode <barcode|image>",
	Short: "Barcode to guitar tab converter",
	Long:  `Translates product barcodes into metal riffs, printed as guitar tablature.`,
	Args:  cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initLogger()
		source = barcode.New(detectDecoder())
		if !source.Supported() {
			slog.Debug("built without barcode image scanning")
		}
		return nil
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "🎸 Barcode to Guitar Tab Converter 🎸")
		fmt.Fprintln(out, strings.Repeat("=", constants.RuleWidth))
		if len(args) == 0 {
			printUsage(out)
			return nil
		}
		return convert(out, args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&usePower, "power", false, "power chord mode")
	rootCmd.PersistentFlags().BoolVar(&useHarmonic, "harmonic", false, "harmonic minor scale")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func initLogger() {
	level := slog.LevelInfo
	if constants.IsDebug() {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, "\nUsage:")
	fmt.Fprintln(out, "  riffcode <barcode_number>")
	fmt.Fprintln(out, "  riffcode <image_path>")
	fmt.Fprintln(out, "\nExamples:")
	fmt.Fprintln(out, "  riffcode 012345678905")
	fmt.Fprintln(out, "  riffcode product.jpg")
	fmt.Fprintln(out, "\nOptions:")
	fmt.Fprintln(out, "  Add '--power' for power chord mode")
	fmt.Fprintln(out, "  Add '--harmonic' for harmonic minor scale")
}

func printTips(out io.Writer) {
	fmt.Fprintln(out, "\n💡 Tips:")
	fmt.Fprintln(out, "  - Try different products to find cool riffs!")
	fmt.Fprintln(out, "  - Use --power for heavy palm-muted power chords")
	fmt.Fprintln(out, "  - Use --harmonic for that neoclassical metal sound")
	fmt.Fprintln(out, "  - Barcodes with repeating digits make interesting patterns")
}

func modeFor(harmonic bool) scale.Mode {
	if harmonic {
		return scale.HarmonicMinor
	}
	return scale.MinorPentatonic
}

func newConverter(mode scale.Mode) (*converter.Converter, error) {
	rootFret, err := constants.GetRootFret()
	if err != nil {
		return nil, err
	}
	return converter.New(model.Config{
		RootNote: constants.GetRootNote(),
		RootFret: rootFret,
		Mode:     mode,
	}), nil
}

// resolveBarcode returns the barcode text for arg, scanning it first when it
// looks like an image. ok is false when nothing could be read; the reason has
// already been reported to out.
func resolveBarcode(out io.Writer, arg string) (string, bool) {
	if !util.IsImagePath(arg) {
		return arg, true
	}

	text, format, err := source.Read(arg)
	switch {
	case errors.Is(err, barcode.ErrUnsupported):
		fmt.Fprintln(out, "Error: barcode scanning is not available in this build")
		return "", false
	case errors.Is(err, barcode.ErrNotFound):
		fmt.Fprintf(out, "No barcode found in %v\n", arg)
		return "", false
	case err != nil:
		fmt.Fprintf(out, "Error reading barcode: %v\n", err)
		return "", false
	}
	fmt.Fprintf(out, "Found %v: %v\n", format, text)
	return text, true
}

func convert(out io.Writer, arg string) error {
	c, err := newConverter(modeFor(useHarmonic))
	if err != nil {
		return err
	}

	code, ok := resolveBarcode(out, arg)
	if !ok {
		return nil
	}

	fmt.Fprintf(out, "\nProcessing barcode: %v\n", code)
	// only the melodic riff reports missing digits
	if !usePower && len(util.Digits(code)) == 0 {
		fmt.Fprintln(out, "No digits found in barcode")
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, c.Convert(code, usePower))

	if !usePower {
		fmt.Fprintln(out, "\n"+strings.Repeat("=", constants.RuleWidth))
		fmt.Fprintln(out, "POWER CHORD VERSION (heavier!):")
		fmt.Fprintln(out)
		fmt.Fprintln(out, c.Convert(code, true))
	}

	printTips(out)
	return nil
}
