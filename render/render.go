package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/segstat/stat"
)

const Defaultformat = "text"

var (
	Yellow256 = "\033[1;38;5;130m"
	Green256  = "\033[1;38;5;70m"
	Off       = "\033[0m"
)

// ErrFormat is returned for unsupported output formats.
var ErrFormat = errors.New("unsupported format")

func SupportedFormats() []string {
	return []string{"text", "table", "json"}
}

// Renderer presents a metrics report.
type Renderer interface {
	Render(stats stat.Stats) error
}

// New returns the Renderer for format, writing to w. hasColor only applies
// to the text format.
func New(format string, w io.Writer, hasColor bool) (Renderer, error) {
	switch format {
	case "text":
		return &TextRenderer{W: w, HasColor: hasColor}, nil
	case "table":
		return NewTableRenderer(w), nil
	case "json":
		return NewJSONRenderer(w), nil
	}

	return nil, fmt.Errorf("%w: %q (allowed values are %s)", ErrFormat, format, strings.Join(SupportedFormats(), ", "))
}

// line is a label and its formatted value.
type line struct {
	Label string
	Value string
}

// lines returns the report lines in print order. Floats have two decimals.
func lines(s stat.Stats) []line {
	return []line{
		{"Total Words", fmt.Sprintf("%d", s.NumWords)},
		{"Unique Words", fmt.Sprintf("%d", s.NumUnique)},
		{"Total Sentences", fmt.Sprintf("%d", s.NumSentences)},
		{"Average Word Length", fmt.Sprintf("%.2f", s.AvgWordLength)},
		{"Average Sentence Length", fmt.Sprintf("%.2f", s.AvgSentenceLength)},
		{"Vocabulary Richness", fmt.Sprintf("%.2f", s.VocabularyRichness)},
		{"Punctuation Frequency", Dist(s.PunctuationFreq)},
		{"Noun Count", fmt.Sprintf("%d", s.NounCount)},
		{"Average Sentiment Score", fmt.Sprintf("%.2f", s.AvgSentiment)},
		{"Named Entities", Dist(s.Entities)},
		{"Flesch Reading Ease Score", fmt.Sprintf("%.2f", s.Readability.Flesch)},
		{"SMOG Index", fmt.Sprintf("%.2f", s.Readability.SMOG)},
		{"Coleman-Liau Index", fmt.Sprintf("%.2f", s.Readability.ColemanLiau)},
	}
}

// Dist formats a frequency table as {"key": n, ...} in MostCommon order.
// A nil table renders as {}.
func Dist(f *stat.FreqDist) string {
	if f == nil {
		return "{}"
	}

	parts := []string{}
	for _, e := range f.MostCommon(0) {
		parts = append(parts, fmt.Sprintf("%q: %d", e.Key, e.Count))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// TextRenderer writes one "Label: value" line per metric. With color,
// labels and values get different colors.
type TextRenderer struct {
	W        io.Writer
	HasColor bool
}

func (r *TextRenderer) Render(s stat.Stats) error {
	for _, l := range lines(s) {
		label, value := l.Label, l.Value
		if r.HasColor {
			label = Yellow256 + label + Off
			value = Green256 + value + Off
		}

		if _, err := fmt.Fprintf(r.W, "%s: %s\n", label, value); err != nil {
			return err
		}
	}

	return nil
}

var _ Renderer = (*TextRenderer)(nil)
