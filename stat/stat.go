// Package stat aggregates lexical, syntactic, sentiment and readability
// statistics of a text.
package stat

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/revelaction/segstat/parse"
	"github.com/revelaction/segstat/readability"
	sent "github.com/revelaction/segstat/sentence"
	"github.com/revelaction/segstat/stopword"
)

// Punctuation is the set of characters counted in PunctuationFreq.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// NounPos is the universal POS tag counted in NounCount.
const NounPos = "NOUN"

var (
	// ErrNoTokens is returned when normalization leaves no word.
	ErrNoTokens = errors.New("no words left after normalization")

	// ErrNoSentences is returned when the text has no sentence.
	ErrNoSentences = errors.New("no sentences in text")
)

// Parser turns raw text into a parsed Doc.
type Parser interface {
	Parse(text string) (sent.Doc, error)
}

// Scorer returns the compound polarity score of a sentence.
type Scorer interface {
	Compound(text string) float64
}

type Handler struct {
	parser    Parser
	stopwords stopword.Set
	scorer    Scorer

	stats Stats
}

// Stats is the metrics report of a text. It is computed once by
// Handler.Aggregate.
type Stats struct {
	Title string `json:"title"`

	NumTokens    int `json:"num_tokens"`
	NumWords     int `json:"num_words"`
	NumUnique    int `json:"num_unique_words"`
	NumSentences int `json:"num_sentences"`

	AvgWordLength      float64 `json:"avg_word_length"`
	AvgSentenceLength  float64 `json:"avg_sentence_length"`
	VocabularyRichness float64 `json:"vocabulary_richness"`

	WordFreq        *FreqDist `json:"word_freq"`
	PunctuationFreq *FreqDist `json:"punctuation_freq"`
	PosFreq         *FreqDist `json:"pos_freq"`
	NounCount       int       `json:"noun_count"`

	AvgSentiment float64   `json:"avg_sentiment"`
	Entities     *FreqDist `json:"entities"`

	Readability readability.Scores `json:"readability"`

	// Whitespace separated words of each sentence
	SentenceLengths      []int       `json:"sentence_lengths"`
	TokensPerSentenceDis map[int]int `json:"tokens_per_sentence_dis"`
}

func (h *Handler) Get() Stats {
	return h.stats
}

// NewHandler returns a Handler using the given parser, stopword set and
// sentiment scorer.
func NewHandler(p Parser, sw stopword.Set, sc Scorer) *Handler {
	return &Handler{
		parser:    p,
		stopwords: sw,
		scorer:    sc,
	}
}

// Aggregate computes the Stats of text. On error, the previous Stats are
// left untouched.
func (h *Handler) Aggregate(text string) error {
	doc, err := h.parser.Parse(text)
	if err != nil {
		return err
	}

	words := parse.Normalize(doc.Words(), h.stopwords)
	if len(words) == 0 {
		return ErrNoTokens
	}

	if len(doc.Sentences) == 0 {
		return ErrNoSentences
	}

	scores, err := readability.Compute(text)
	if err != nil {
		return fmt.Errorf("readability: %w", err)
	}

	stats := Stats{
		Title:                doc.Title,
		NumTokens:            len(doc.Tokens),
		NumWords:             len(words),
		NumSentences:         len(doc.Sentences),
		WordFreq:             FreqDistOf(words),
		PunctuationFreq:      punctuationFreq(text),
		PosFreq:              NewFreqDist(),
		Entities:             NewFreqDist(),
		Readability:          scores,
		TokensPerSentenceDis: map[int]int{},
	}

	stats.NumUnique = stats.WordFreq.Len()

	chars := 0
	for _, w := range words {
		chars += utf8.RuneCountInString(w)
	}

	stats.AvgWordLength = float64(chars) / float64(len(words))
	stats.AvgSentenceLength = float64(len(words)) / float64(len(doc.Sentences))
	stats.VocabularyRichness = float64(stats.NumUnique) / float64(len(words))

	for _, t := range doc.Tokens {
		stats.PosFreq.Add(t.Pos)
	}
	stats.NounCount = stats.PosFreq.Count(NounPos)

	var sentiment float64
	for _, s := range doc.Sentences {
		sentiment += h.scorer.Compound(s.Text)

		n := len(strings.Fields(s.Text))
		stats.SentenceLengths = append(stats.SentenceLengths, n)
		stats.TokensPerSentenceDis[n]++
	}
	stats.AvgSentiment = sentiment / float64(len(doc.Sentences))

	for _, e := range doc.Entities {
		stats.Entities.Add(e.Text)
	}

	h.stats = stats
	return nil
}

// punctuationFreq counts the punctuation characters of text.
func punctuationFreq(text string) *FreqDist {
	f := NewFreqDist()
	for _, r := range text {
		if strings.ContainsRune(Punctuation, r) {
			f.Add(string(r))
		}
	}

	return f
}
