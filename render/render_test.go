package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/revelaction/segstat/stat"
)

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := New("text", &buf, false)
	if err != nil {
		t.Fatal(err)
	}

	if err := r.Render(sampleStats()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"Total Words: 5",
		"Unique Words: 5",
		"Total Sentences: 2",
		"Average Word Length: 3.20",
		"Average Sentence Length: 2.50",
		"Vocabulary Richness: 1.00",
		`Punctuation Frequency: {".": 2}`,
		"Noun Count: 1",
		"Average Sentiment Score: -0.25",
		"Named Entities: {}",
		"Flesch Reading Ease Score: 116.15",
		"SMOG Index: 0.00",
		"Coleman-Liau Index: -4.30",
	}

	got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestTextRendererColor(t *testing.T) {
	var buf bytes.Buffer
	r := &TextRenderer{W: &buf, HasColor: true}
	if err := r.Render(sampleStats()); err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(buf.String(), Yellow256+"Total Words"+Off+": "+Green256+"5"+Off+"\n") {
		t.Errorf("expected colored label, got %q", strings.SplitN(buf.String(), "\n", 2)[0])
	}
}

func TestTableRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := New("table", &buf, false)
	if err != nil {
		t.Fatal(err)
	}

	if err := r.Render(sampleStats()); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, s := range []string{"Kindling", "Metric", "Value", "Vocabulary Richness", "1.00", "Coleman-Liau Index"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected table to contain %q:\n%s", s, out)
		}
	}
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := New("yaml", &bytes.Buffer{}, false)
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

func TestDist(t *testing.T) {
	tests := []struct {
		f    *stat.FreqDist
		want string
	}{
		{nil, "{}"},
		{stat.NewFreqDist(), "{}"},
		{stat.FreqDistOf([]string{",", ".", "."}), `{".": 2, ",": 1}`},
		{stat.FreqDistOf([]string{"\"", "Anna"}), `{"\"": 1, "Anna": 1}`},
	}

	for _, tt := range tests {
		if got := Dist(tt.f); got != tt.want {
			t.Errorf("expected %s, got %s", tt.want, got)
		}
	}
}
