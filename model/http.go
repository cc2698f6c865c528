package model

type ConvertRequestBody struct {
	Barcode  string `json:"barcode"`
	Power    bool   `json:"power"`
	Harmonic bool   `json:"harmonic"`

	// scale mode name, overrides Harmonic when set
	Mode string `json:"mode,omitempty"`
}

type ConvertResponse struct {
	Title string `json:"title"`
	Tab   string `json:"tab"`
	Notes Notes  `json:"notes"`
}

type ModeOverview struct {
	Name      string `json:"name"`
	Intervals []int  `json:"intervals"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
