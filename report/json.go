package report

import (
	"encoding/json"
	"io"
)

// JSONRenderer writes the report rows as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

type jsonReport struct {
	Algorithm string `json:"algorithm"`
	Rows      []Row  `json:"rows"`
}

// Render serializes the rows as a JSON object.
func (r *JSONRenderer) Render(algorithm string, rows []Row) error {
	return json.NewEncoder(r.W).Encode(jsonReport{Algorithm: algorithm, Rows: rows})
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
