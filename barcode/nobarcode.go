//go:build nobarcode

package barcode

func builtinDecoder() Decoder {
	return nil
}
