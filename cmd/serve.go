package cmd

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"github.com/jsphweid/riffcode/constants"
	"github.com/jsphweid/riffcode/converter"
	"github.com/jsphweid/riffcode/model"
	"github.com/jsphweid/riffcode/scale"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var (
	convertersMu sync.RWMutex
	converters   map[scale.Mode]*converter.Converter
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the converter over HTTP",
	Long:  `Serves the converter over HTTP. The address comes from SERVE_ADDR.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

// LoadConverters builds one converter per scale mode from the environment.
func LoadConverters() error {
	loaded := make(map[scale.Mode]*converter.Converter, len(scale.All))
	for _, m := range scale.All {
		c, err := newConverter(m)
		if err != nil {
			return err
		}
		loaded[m] = c
	}

	convertersMu.Lock()
	converters = loaded
	convertersMu.Unlock()
	return nil
}

// converterFor loads the converters on first use when serve didn't.
func converterFor(mode scale.Mode) (*converter.Converter, error) {
	convertersMu.RLock()
	c, ok := converters[mode]
	convertersMu.RUnlock()
	if ok {
		return c, nil
	}

	if err := LoadConverters(); err != nil {
		return nil, err
	}
	convertersMu.RLock()
	defer convertersMu.RUnlock()
	return converters[mode], nil
}

// requestMode prefers an explicit mode name over the harmonic switch.
func requestMode(input model.ConvertRequestBody) (scale.Mode, error) {
	if input.Mode == "" {
		return modeFor(input.Harmonic), nil
	}
	return scale.ParseMode(input.Mode)
}

func writeError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleConvert(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, "Could not read request body", http.StatusBadRequest)
		return
	}

	var input model.ConvertRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, "Could not unmarshal request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(input.Barcode) == "" {
		writeError(w, "barcode is required", http.StatusBadRequest)
		return
	}

	mode, err := requestMode(input)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	c, err := converterFor(mode)
	if err != nil {
		slog.Error("could not build converter", "err", err)
		writeError(w, "Could not build converter: "+err.Error(), http.StatusInternalServerError)
		return
	}
	notes := c.Notes(input.Barcode, input.Power)
	if notes == nil {
		notes = model.Notes{}
	}
	res := model.ConvertResponse{
		Title: c.Title(input.Barcode, input.Power),
		Tab:   c.Convert(input.Barcode, input.Power),
		Notes: notes,
	}
	slog.Debug("converted", "barcode", input.Barcode, "power", input.Power, "notes", len(notes))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func HandleModes(w http.ResponseWriter, r *http.Request) {
	res := make([]model.ModeOverview, 0, len(scale.All))
	for _, m := range scale.All {
		res = append(res, model.ModeOverview{Name: m.String(), Intervals: scale.Intervals(m)})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", HandleConvert).Methods("POST")
	router.HandleFunc("/modes", HandleModes).Methods("GET")
	return cors.Default().Handler(router)
}

func serve() error {
	if err := LoadConverters(); err != nil {
		return err
	}

	addr := constants.GetServeAddr()
	slog.Info("listening", "addr", addr)
	err := http.ListenAndServe(addr, NewRouter())
	return errors.Wrap(err, "server stopped")
}
