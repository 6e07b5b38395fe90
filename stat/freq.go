package stat

import (
	"encoding/json"
	"sort"
)

// Entry is a key of a FreqDist with its count.
type Entry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// FreqDist counts occurrences of string samples. It remembers the order in
// which keys were first seen, so rankings are deterministic.
type FreqDist struct {
	counts map[string]int
	order  []string
	total  int
}

// NewFreqDist returns an empty FreqDist.
func NewFreqDist() *FreqDist {
	return &FreqDist{counts: map[string]int{}}
}

// FreqDistOf counts the samples.
func FreqDistOf(samples []string) *FreqDist {
	f := NewFreqDist()
	for _, s := range samples {
		f.Add(s)
	}

	return f
}

// Add counts one occurrence of key.
func (f *FreqDist) Add(key string) {
	if _, ok := f.counts[key]; !ok {
		f.order = append(f.order, key)
	}

	f.counts[key]++
	f.total++
}

// Count returns the number of occurrences of key.
func (f *FreqDist) Count(key string) int {
	return f.counts[key]
}

// Len returns the number of distinct keys.
func (f *FreqDist) Len() int {
	return len(f.order)
}

// Total returns the number of samples counted.
func (f *FreqDist) Total() int {
	return f.total
}

// Keys returns the keys in first-occurrence order.
func (f *FreqDist) Keys() []string {
	keys := make([]string, len(f.order))
	copy(keys, f.order)
	return keys
}

// Entries returns all entries in first-occurrence order.
func (f *FreqDist) Entries() []Entry {
	entries := make([]Entry, 0, len(f.order))
	for _, k := range f.order {
		entries = append(entries, Entry{Key: k, Count: f.counts[k]})
	}

	return entries
}

// MostCommon returns the n most frequent entries, by count descending.
// Ties keep first-occurrence order. n <= 0 returns all entries.
func (f *FreqDist) MostCommon(n int) []Entry {
	entries := f.Entries()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}

	return entries
}

// MarshalJSON encodes the distribution as a list of entries in
// MostCommon order.
func (f *FreqDist) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.MostCommon(0))
}
