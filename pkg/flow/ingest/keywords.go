package ingest

import "sort"

// DefaultTopKeywords is the per-article keyword cap.
const DefaultTopKeywords = 5

// KeywordExtractor ranks the most frequent non-stopword tokens of a text.
type KeywordExtractor struct {
	tokenizer *Tokenizer
	topN      int
}

// NewKeywordExtractor creates an extractor over the given tokenizer.
// A topN of zero or less falls back to DefaultTopKeywords.
func NewKeywordExtractor(tokenizer *Tokenizer, topN int) *KeywordExtractor {
	if topN <= 0 {
		topN = DefaultTopKeywords
	}
	return &KeywordExtractor{tokenizer: tokenizer, topN: topN}
}

// Extract returns up to topN keywords for text, most frequent first.
// Equal counts keep first-seen order (stable sort), so the ranking is
// deterministic for a given input. The result is empty only when the text
// has no non-stopword tokens.
func (e *KeywordExtractor) Extract(text string) []string {
	tokens := e.tokenizer.Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int, len(tokens))
	var order []string
	for _, tok := range tokens {
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	// order already holds words by first appearance; a stable sort by
	// count keeps that relative order among ties.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > e.topN {
		order = order[:e.topN]
	}
	return order
}
