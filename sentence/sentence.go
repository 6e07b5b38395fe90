package sentence

// Doc is a parsed document: the flat token stream, its sentences and the
// named entities found in it.
type Doc struct {
	Title string `json:"title"`

	Tokens    []Token    `json:"tokens"`
	Sentences []Sentence `json:"sentences"`
	Entities  []Entity   `json:"entities"`
}

// Sentence is a sentence span of the original text.
type Sentence struct {
	Id   int    `json:"id"`
	Text string `json:"text"`
}

// Token represents a word or punctuation mark of the doc, with POS data.
type Token struct {
	// The unmodified word
	Text string `json:"text"`

	// Universal POS tag (NOUN, VERB, PUNCT...)
	Pos string `json:"pos"`

	// Penn Treebank tag as assigned by the tagger
	Tag string `json:"tag"`

	// The index of the token in the doc, starting at 0.
	Index int `json:"index"`
}

// Entity is a named entity span.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Words returns the text of the tokens, in order.
func (d Doc) Words() []string {
	words := make([]string, 0, len(d.Tokens))
	for _, t := range d.Tokens {
		words = append(words, t.Text)
	}

	return words
}
