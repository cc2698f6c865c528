package cmd

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsphweid/riffcode/barcode"
	"github.com/jsphweid/riffcode/chord"
	"github.com/jsphweid/riffcode/midi"
	"github.com/jsphweid/riffcode/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, args ...string) string {
	usePower, useHarmonic = false, false
	t.Setenv("ROOT_FRET", "")
	t.Setenv("ROOT_NOTE", "")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestNoArgsPrintsUsage(t *testing.T) {
	out := run(t)

	assert := assert.New(t)
	assert.Contains(out, "Usage:")
	assert.Contains(out, "Add '--power' for power chord mode")
	assert.NotContains(out, "Processing barcode")
}

func TestConvertPrintsBothVersions(t *testing.T) {
	out := run(t, "012345678905")

	assert := assert.New(t)
	assert.Contains(out, "Processing barcode: 012345678905")
	assert.Contains(out, "Barcode Riff - 012345678905")
	assert.Contains(out, "Scale: minor_pentatonic in E")
	assert.Contains(out, "POWER CHORD VERSION (heavier!):")
	assert.Contains(out, "Power Chord Riff - 012345678905")
	assert.Contains(out, "Tips:")
}

func TestPowerFlagSkipsVariation(t *testing.T) {
	out := run(t, "5", "--power")

	assert := assert.New(t)
	assert.Contains(out, "Power Chord Riff - 5")
	assert.Contains(out, "E|-5-------5----|")
	assert.NotContains(out, "POWER CHORD VERSION")
	assert.NotContains(out, "Barcode Riff")
}

func TestHarmonicFlag(t *testing.T) {
	out := run(t, "6", "--harmonic")
	assert.Contains(t, out, "Scale: harmonic_minor in E")
	assert.Contains(t, out, "E|-11-|")
}

func TestBannerAndTipsAreDecorated(t *testing.T) {
	out := run(t, "42")

	assert := assert.New(t)
	assert.True(strings.HasPrefix(out, "🎸 Barcode to Guitar Tab Converter 🎸\n"))
	assert.Contains(out, "\n💡 Tips:\n")
}

func TestNoDigitsWithPowerOnlyShowsPlaceholder(t *testing.T) {
	out := run(t, "hello", "--power")

	assert := assert.New(t)
	assert.NotContains(out, "No digits found in barcode")
	assert.Contains(out, "No notes to display")
}

func TestNoDigitsIsInformational(t *testing.T) {
	out := run(t, "hello")

	assert := assert.New(t)
	assert.Contains(out, "No digits found in barcode")
	assert.Contains(out, "No notes to display")
}

type fixedDecoder struct {
	text   string
	format string
}

func (d fixedDecoder) Decode(img image.Image) (string, string, error) {
	return d.text, d.format, nil
}

func withDecoder(t *testing.T, dec barcode.Decoder) {
	prev := detectDecoder
	detectDecoder = func() barcode.Decoder { return dec }
	t.Cleanup(func() { detectDecoder = prev })
}

func writeImage(t *testing.T, name string) string {
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewGray(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMissingImageIsReportedNotFailed(t *testing.T) {
	withDecoder(t, fixedDecoder{"5", "EAN_13"})
	out := run(t, filepath.Join(t.TempDir(), "product.JPG"))

	assert := assert.New(t)
	assert.Contains(out, "Error reading barcode")
	assert.NotContains(out, "Processing barcode")
}

func TestImageWithoutScanningIsUnsupported(t *testing.T) {
	withDecoder(t, nil)
	out := run(t, writeImage(t, "product.png"))

	assert := assert.New(t)
	assert.Contains(out, "Error: barcode scanning is not available in this build")
	assert.NotContains(out, "Processing barcode")
}

func TestScannedImageNamesSymbology(t *testing.T) {
	withDecoder(t, fixedDecoder{"5", "EAN_13"})
	out := run(t, writeImage(t, "product.png"), "--power")

	assert := assert.New(t)
	assert.Contains(out, "Found EAN_13: 5")
	assert.Contains(out, "Processing barcode: 5")
	assert.Contains(out, "E|-5-------5----|")
}

func TestInspectListsPowerChords(t *testing.T) {
	out := run(t, "inspect", "5", "--power")
	lines := strings.Split(strings.TrimSpace(out), "\n")

	assert := assert.New(t)
	assert.Equal("Power Chord Riff - 5", lines[0])
	assert.Len(lines, 5)
	assert.Contains(lines[1], "chord: A5")
	assert.Contains(lines[2], "pitch:  52")
}

func TestExportWritesMidiFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "riff.mid")
	out := run(t, "export", "0123", "-o", path)

	assert := assert.New(t)
	assert.Contains(out, "Wrote 4 notes to")
	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.True(bytes.HasPrefix(data, []byte("MThd")))
}

type failingCloser struct {
	bytes.Buffer
	closed bool
}

func (f *failingCloser) Close() error {
	f.closed = true
	return errors.New("disk full")
}

func TestExportReportsCloseError(t *testing.T) {
	w := &failingCloser{}
	err := writeAndClose(w, chord.PowerRiff("5"), "Power Chord Riff - 5")

	assert := assert.New(t)
	assert.True(w.closed)
	assert.ErrorContains(err, "disk full")
	assert.True(bytes.HasPrefix(w.Bytes(), []byte("MThd")))
}

func TestExportKeepsWriteErrorOverCloseError(t *testing.T) {
	w := &failingCloser{}
	err := writeAndClose(w, nil, "Barcode Riff - ")

	assert := assert.New(t)
	assert.True(w.closed)
	assert.True(errors.Is(err, midi.ErrNoNotes))
}

func TestBadRootFretFails(t *testing.T) {
	usePower, useHarmonic = false, false
	t.Setenv("ROOT_FRET", "40")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"123"})
	assert.Error(t, rootCmd.Execute())
}

func postConvert(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Setenv("ROOT_FRET", "")
	t.Setenv("ROOT_NOTE", "")
	if err := LoadConverters(); err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(body))
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	return w
}

func TestHandleConvertPower(t *testing.T) {
	w := postConvert(t, `{"barcode": "5", "power": true}`)

	assert := assert.New(t)
	assert.Equal(http.StatusOK, w.Code)

	var res model.ConvertResponse
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal("Power Chord Riff - 5", res.Title)
	assert.Len(res.Notes, 4)
	assert.Equal(model.Note{String: 1, Fret: 7, Duration: 1}, res.Notes[3])
	assert.Contains(res.Tab, "A|-----7-----7--|")
}

func TestHandleConvertNoDigits(t *testing.T) {
	w := postConvert(t, `{"barcode": "abc"}`)

	var res model.ConvertResponse
	assert := assert.New(t)
	assert.Equal(http.StatusOK, w.Code)
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal("No notes to display", res.Tab)
	assert.Empty(res.Notes)
}

func TestHandleConvertByModeName(t *testing.T) {
	w := postConvert(t, `{"barcode": "9", "mode": "chromatic"}`)

	var res model.ConvertResponse
	assert := assert.New(t)
	assert.Equal(http.StatusOK, w.Code)
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	assert.Contains(res.Tab, "Scale: chromatic in E")
	assert.Equal(model.Notes{{String: 0, Fret: 9, Duration: 1}}, res.Notes)
}

func TestHandleConvertLoadsConvertersOnFirstUse(t *testing.T) {
	t.Setenv("ROOT_FRET", "")
	t.Setenv("ROOT_NOTE", "")
	converters = nil

	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(`{"barcode": "6", "harmonic": true}`))
	w := httptest.NewRecorder()
	HandleConvert(w, req)

	var res model.ConvertResponse
	assert := assert.New(t)
	assert.Equal(http.StatusOK, w.Code)
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(model.Notes{{String: 0, Fret: 11, Duration: 1}}, res.Notes)
}

func TestHandleConvertBadEnvIsServerError(t *testing.T) {
	t.Setenv("ROOT_FRET", "99")
	converters = nil

	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(`{"barcode": "6"}`))
	w := httptest.NewRecorder()
	HandleConvert(w, req)

	var res model.ErrorResponse
	assert := assert.New(t)
	assert.Equal(http.StatusInternalServerError, w.Code)
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	assert.Contains(res.Error, "ROOT_FRET")
}

func TestHandleConvertRejectsBadBodies(t *testing.T) {
	for _, body := range []string{`{"barcode": ""}`, `not json`, `{"barcode": "1", "mode": "lydian"}`} {
		t.Run(body, func(t *testing.T) {
			w := postConvert(t, body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var res model.ErrorResponse
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.NotEmpty(t, res.Error)
		})
	}
}

func TestHandleModes(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/modes", nil)
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)

	var res []model.ModeOverview
	assert := assert.New(t)
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(res, 5)
	assert.Equal("minor_pentatonic", res[0].Name)
	assert.Equal([]int{0, 7}, res[4].Intervals)
}
