package stat

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFreqDistMostCommon(t *testing.T) {
	f := FreqDistOf([]string{"b", "a", "c", "a", "b", "d", "a"})

	got := f.MostCommon(0)
	want := []Entry{
		{Key: "a", Count: 3},
		{Key: "b", Count: 2},
		{Key: "c", Count: 1},
		{Key: "d", Count: 1},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MostCommon mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(want[:2], f.MostCommon(2)); diff != "" {
		t.Errorf("MostCommon(2) mismatch (-want +got):\n%s", diff)
	}

	if len(f.MostCommon(10)) != 4 {
		t.Errorf("expected 4 entries, got %d", len(f.MostCommon(10)))
	}
}

func TestFreqDistTiesKeepFirstOccurrence(t *testing.T) {
	f := FreqDistOf([]string{"zebra", "apple", "mango"})

	got := f.Keys()
	want := []string{"zebra", "apple", "mango"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}

	for i, e := range f.MostCommon(0) {
		if e.Key != want[i] {
			t.Errorf("expected %s at %d, got %s", want[i], i, e.Key)
		}
	}
}

func TestFreqDistTotal(t *testing.T) {
	samples := []string{"x", "y", "x", "z", "x", "y"}
	f := FreqDistOf(samples)

	if f.Total() != len(samples) {
		t.Errorf("expected total %d, got %d", len(samples), f.Total())
	}

	sum := 0
	for _, e := range f.Entries() {
		sum += e.Count
	}

	if sum != len(samples) {
		t.Errorf("expected counts to sum to %d, got %d", len(samples), sum)
	}

	if f.Len() != 3 {
		t.Errorf("expected 3 keys, got %d", f.Len())
	}
}

func TestFreqDistEmpty(t *testing.T) {
	f := NewFreqDist()

	if f.Total() != 0 || f.Len() != 0 {
		t.Fatalf("expected empty dist, got total %d len %d", f.Total(), f.Len())
	}

	b, err := json.Marshal(f)
	if err != nil {
		t.Fatal(err)
	}

	if string(b) != "[]" {
		t.Errorf("expected [], got %s", b)
	}
}

func TestFreqDistJSON(t *testing.T) {
	f := FreqDistOf([]string{".", ",", "."})

	b, err := json.Marshal(f)
	if err != nil {
		t.Fatal(err)
	}

	want := `[{"key":".","count":2},{"key":",","count":1}]`
	if string(b) != want {
		t.Errorf("expected %s, got %s", want, b)
	}
}
