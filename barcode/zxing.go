//go:build !nobarcode

package barcode

import (
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/pkg/errors"
)

func builtinDecoder() Decoder {
	return NewZXing()
}

// ZXing tries retail symbologies first, then generic 1D codes, then QR.
type ZXing struct {
	readers []gozxing.Reader
}

func NewZXing() *ZXing {
	return &ZXing{readers: []gozxing.Reader{
		oned.NewEAN13Reader(),
		oned.NewUPCAReader(),
		oned.NewEAN8Reader(),
		oned.NewUPCEReader(),
		oned.NewCode128Reader(),
		oned.NewCode39Reader(),
		qrcode.NewQRCodeReader(),
	}}
}

func (z *ZXing) Decode(img image.Image) (string, string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", "", errors.Wrap(err, "could not binarize image")
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	for _, r := range z.readers {
		result, err := r.Decode(bmp, hints)
		if err != nil {
			continue
		}
		return result.GetText(), result.GetBarcodeFormat().String(), nil
	}
	return "", "", errors.WithStack(ErrNotFound)
}
