package barcode

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
)

var (
	ErrUnsupported = errors.New("barcode scanning is not available in this build")
	ErrNotFound    = errors.New("no barcode found")
)

// Decoder pulls the text of the first symbol it recognizes out of an image.
type Decoder interface {
	Decode(img image.Image) (text string, format string, err error)
}

// Source reads barcodes from image files. A nil decoder means the capability
// is missing and every Read fails with ErrUnsupported.
type Source struct {
	decoder Decoder
}

func New(dec Decoder) *Source {
	return &Source{decoder: dec}
}

// Detect gives the decoder compiled into this binary, nil when built with the
// nobarcode tag.
func Detect() Decoder {
	return builtinDecoder()
}

func (s *Source) Supported() bool {
	return s.decoder != nil
}

// Read scans the image at path and returns the first symbol's text and its
// symbology name.
func (s *Source) Read(path string) (string, string, error) {
	if s.decoder == nil {
		return "", "", errors.WithStack(ErrUnsupported)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", "", errors.Wrap(err, "could not open image")
	}
	defer f.Close()

	img, imgFormat, err := image.Decode(f)
	if err != nil {
		return "", "", errors.Wrapf(err, "could not decode image %v", path)
	}
	slog.Debug("decoded image", "path", path, "format", imgFormat, "bounds", img.Bounds())

	text, format, err := s.decoder.Decode(img)
	if err != nil {
		return "", "", errors.Wrapf(err, "scanning %v", path)
	}
	slog.Debug("found barcode", "format", format, "data", text)
	return text, format, nil
}
