package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/segstat/stat"
)

// JSONRenderer writes Stats as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the metrics report as an indented JSON object.
func (r *JSONRenderer) Render(s stat.Stats) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
