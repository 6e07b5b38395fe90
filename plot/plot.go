// Package plot renders the charts of a metrics report as PNG images.
package plot

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/revelaction/segstat/stat"
)

const (
	DefaultTopN = 20
	DefaultBins = 20

	WordFrequencyFile   = "word_frequency.png"
	SentenceLengthsFile = "sentence_lengths.png"
	POSTagsFile         = "pos_tags.png"
)

// ErrNoData is returned when a chart has nothing to draw.
var ErrNoData = errors.New("plot: no data")

// Charts renders the three report charts into Dir.
type Charts struct {
	Dir   string
	Title string
	TopN  int
	Bins  int
}

// NewCharts returns Charts writing into dir with default sizes.
func NewCharts(dir, title string) *Charts {
	return &Charts{
		Dir:   dir,
		Title: title,
		TopN:  DefaultTopN,
		Bins:  DefaultBins,
	}
}

// Render draws all charts. A failing chart does not stop the others; the
// errors are joined. It returns the paths written.
func (c *Charts) Render(s stat.Stats) ([]string, error) {
	type chart struct {
		file string
		fn   func(stat.Stats, string) error
	}

	charts := []chart{
		{WordFrequencyFile, c.WordFrequency},
		{SentenceLengthsFile, c.SentenceLengths},
		{POSTagsFile, c.POSTags},
	}

	var paths []string
	var errs []error
	for _, ch := range charts {
		path := filepath.Join(c.Dir, ch.file)
		if err := ch.fn(s, path); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", ch.file, err))
			continue
		}
		paths = append(paths, path)
	}

	return paths, errors.Join(errs...)
}

// WordFrequency draws a bar chart of the TopN most common words.
func (c *Charts) WordFrequency(s stat.Stats, path string) error {
	if s.WordFreq == nil {
		return ErrNoData
	}

	top := s.WordFreq.MostCommon(c.TopN)
	names := make([]string, 0, len(top))
	values := make(plotter.Values, 0, len(top))
	for _, e := range top {
		names = append(names, e.Key)
		values = append(values, float64(e.Count))
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Top %d Word Frequency in %q", c.TopN, c.Title)
	p.X.Label.Text = "Words"
	p.Y.Label.Text = "Frequency"

	return bars(p, names, values, 12*vg.Inch, 6*vg.Inch, path)
}

// SentenceLengths draws a histogram of the words per sentence.
func (c *Charts) SentenceLengths(s stat.Stats, path string) error {
	if len(s.SentenceLengths) == 0 {
		return ErrNoData
	}

	values := make(plotter.Values, 0, len(s.SentenceLengths))
	for _, n := range s.SentenceLengths {
		values = append(values, float64(n))
	}

	h, err := plotter.NewHist(values, c.Bins)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Sentence Length Distribution in %q", c.Title)
	p.X.Label.Text = "Sentence Length (in words)"
	p.Y.Label.Text = "Frequency"
	p.Add(h)

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

// POSTags draws a bar chart of the POS tag counts, in first-seen order.
func (c *Charts) POSTags(s stat.Stats, path string) error {
	if s.PosFreq == nil {
		return ErrNoData
	}

	entries := s.PosFreq.Entries()
	names := make([]string, 0, len(entries))
	values := make(plotter.Values, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Key)
		values = append(values, float64(e.Count))
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("POS Tag Distribution in %q", c.Title)
	p.X.Label.Text = "POS Tags"
	p.Y.Label.Text = "Frequency"

	return bars(p, names, values, 8*vg.Inch, 6*vg.Inch, path)
}

// bars adds a bar chart with rotated nominal labels to p and saves it.
func bars(p *plot.Plot, names []string, values plotter.Values, w, h vg.Length, path string) error {
	if len(values) == 0 {
		return ErrNoData
	}

	b, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return err
	}
	b.LineStyle.Width = vg.Length(0)

	p.Add(b)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return p.Save(w, h, path)
}
