package parse

// pennToUniversal maps Penn Treebank tags to universal POS tags.
var pennToUniversal = map[string]string{
	"NN":   "NOUN",
	"NNS":  "NOUN",
	"NNP":  "PROPN",
	"NNPS": "PROPN",

	"VB":  "VERB",
	"VBD": "VERB",
	"VBG": "VERB",
	"VBN": "VERB",
	"VBP": "VERB",
	"VBZ": "VERB",
	"MD":  "AUX",

	"JJ":  "ADJ",
	"JJR": "ADJ",
	"JJS": "ADJ",

	"RB":  "ADV",
	"RBR": "ADV",
	"RBS": "ADV",
	"WRB": "ADV",

	"PRP":  "PRON",
	"PRP$": "PRON",
	"WP":   "PRON",
	"WP$":  "PRON",
	"EX":   "PRON",

	"DT":  "DET",
	"PDT": "DET",
	"WDT": "DET",

	"IN":  "ADP",
	"CC":  "CCONJ",
	"CD":  "NUM",
	"UH":  "INTJ",
	"RP":  "PART",
	"TO":  "PART",
	"POS": "PART",

	"SYM": "SYM",
	"$":   "SYM",
	"#":   "SYM",

	".":     "PUNCT",
	",":     "PUNCT",
	":":     "PUNCT",
	"(":     "PUNCT",
	")":     "PUNCT",
	"``":    "PUNCT",
	"''":    "PUNCT",
	"-LRB-": "PUNCT",
	"-RRB-": "PUNCT",
	"HYPH":  "PUNCT",
	"NFP":   "PUNCT",

	"FW": "X",
	"LS": "X",
}

// UniversalPos returns the universal POS tag for a Penn Treebank tag, or
// "X" for unknown tags.
func UniversalPos(tag string) string {
	if pos, ok := pennToUniversal[tag]; ok {
		return pos
	}

	return "X"
}
