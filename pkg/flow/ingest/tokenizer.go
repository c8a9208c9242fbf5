package ingest

import (
	"strings"
	"unicode"
)

// DefaultStopwords is the fixed stopword set used for keyword extraction.
// Small but effective for short event blurbs.
var DefaultStopwords = []string{
	"the", "and", "a", "an", "to", "in", "for", "of", "on", "with",
	"at", "by", "from", "is", "are", "that", "this",
}

// Tokenizer lower-cases text, strips punctuation and splits on whitespace,
// dropping stopwords.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a tokenizer with the given stopword list. Pass
// DefaultStopwords for the standard set.
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops}
}

// Tokenize splits text into lower-cased tokens with punctuation removed
// and stopwords dropped. Punctuation characters are deleted in place, not
// treated as boundaries, so "self-care" tokenizes to "selfcare".
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := current.String()
		current.Reset()
		if t.isStopword(word) {
			return
		}
		tokens = append(tokens, word)
	}

	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush()
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			current.WriteRune(unicode.ToLower(r))
		}
		// Everything else is punctuation and is dropped.
	}
	flush()

	return tokens
}

func (t *Tokenizer) isStopword(word string) bool {
	_, ok := t.stopwords[word]
	return ok
}

// AddStopword adds a word to the stopword list.
func (t *Tokenizer) AddStopword(word string) {
	t.stopwords[strings.ToLower(word)] = struct{}{}
}
