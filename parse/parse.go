// Package parse turns raw text into a sentence.Doc: tokens with POS tags,
// sentence spans and named entities.
package parse

import (
	"fmt"
	"unicode"

	"github.com/jdkato/prose/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	sent "github.com/revelaction/segstat/sentence"
	"github.com/revelaction/segstat/stopword"
)

// Parser tokenizes, segments, tags and extracts entities with prose.
type Parser struct {
	Title string
}

// NewParser returns a Parser that sets title on the parsed docs.
func NewParser(title string) *Parser {
	return &Parser{Title: title}
}

// Parse runs the full prose pipeline over text.
func (p *Parser) Parse(text string) (sent.Doc, error) {
	pd, err := prose.NewDocument(text,
		prose.WithTokenization(true),
		prose.WithSegmentation(true),
		prose.WithTagging(true),
		prose.WithExtraction(true),
	)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("parse document: %w", err)
	}

	doc := sent.Doc{Title: p.Title}

	for i, tok := range pd.Tokens() {
		doc.Tokens = append(doc.Tokens, sent.Token{
			Text:  tok.Text,
			Tag:   tok.Tag,
			Pos:   UniversalPos(tok.Tag),
			Index: i,
		})
	}

	for i, s := range pd.Sentences() {
		doc.Sentences = append(doc.Sentences, sent.Sentence{Id: i, Text: s.Text})
	}

	for _, ent := range pd.Entities() {
		doc.Entities = append(doc.Entities, sent.Entity{Text: ent.Text, Label: ent.Label})
	}

	return doc, nil
}

// Normalize lowercases words, keeps the alphabetic ones and drops
// stopwords. Order is preserved.
func Normalize(words []string, stopwords stopword.Set) []string {
	lower := cases.Lower(language.English)

	clean := []string{}
	for _, w := range words {
		w = lower.String(w)
		if !IsAlpha(w) {
			continue
		}

		if stopwords.Contains(w) {
			continue
		}

		clean = append(clean, w)
	}

	return clean
}

// IsAlpha reports whether s is non-empty and all its runes are letters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}
