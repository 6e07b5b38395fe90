// Package readability computes text difficulty scores: Flesch reading
// ease, SMOG index and Coleman-Liau index.
package readability

import (
	"errors"

	"github.com/jdkato/prose/summarize"
)

// ErrNoWords is returned for texts without any word.
var ErrNoWords = errors.New("readability: text has no words")

// minSMOGSentences is the sentence count below which SMOG is 0.
const minSMOGSentences = 3

// Scores holds the three readability scores of a text and the counts they
// were computed from.
type Scores struct {
	Flesch      float64 `json:"flesch_reading_ease"`
	SMOG        float64 `json:"smog_index"`
	ColemanLiau float64 `json:"coleman_liau_index"`

	Words     int `json:"words"`
	Sentences int `json:"sentences"`
}

// Compute returns all three scores for text.
func Compute(text string) (Scores, error) {
	d := summarize.NewDocument(text)
	if d.NumWords == 0 || d.NumSentences == 0 {
		return Scores{}, ErrNoWords
	}

	s := Scores{
		Flesch:      d.FleschReadingEase(),
		ColemanLiau: d.ColemanLiau(),
		Words:       int(d.NumWords),
		Sentences:   int(d.NumSentences),
	}

	if s.Sentences >= minSMOGSentences {
		s.SMOG = d.SMOG()
	}

	return s, nil
}
