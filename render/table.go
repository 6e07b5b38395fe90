package render

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/revelaction/segstat/stat"
)

// TableRenderer writes the report as a Metric/Value table.
type TableRenderer struct {
	W io.Writer
}

func NewTableRenderer(w io.Writer) *TableRenderer {
	return &TableRenderer{W: w}
}

func (r *TableRenderer) Render(s stat.Stats) error {
	t := table.NewWriter()
	t.SetOutputMirror(r.W)
	t.SetStyle(table.StyleLight)
	if s.Title != "" {
		t.SetTitle(s.Title)
	}

	t.AppendHeader(table.Row{"Metric", "Value"})
	for _, l := range lines(s) {
		t.AppendRow(table.Row{l.Label, l.Value})
	}

	t.Render()
	return nil
}

var _ Renderer = (*TableRenderer)(nil)
