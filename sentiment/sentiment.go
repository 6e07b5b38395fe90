// Package sentiment scores sentence polarity with VADER.
package sentiment

import "github.com/jonreiter/govader"

// Vader computes VADER compound scores.
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVader loads the VADER lexicon.
func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Compound returns the normalized compound score of text, in [-1, 1].
func (v *Vader) Compound(text string) float64 {
	return v.analyzer.PolarityScores(text).Compound
}
