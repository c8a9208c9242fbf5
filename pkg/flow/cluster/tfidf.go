package cluster

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/communityflow/flow/pkg/flow/internalerr"
)

// Vectorizer builds a TF-IDF term-document matrix over a corpus.
type Vectorizer struct {
	minDocFreq int
	stopwords  map[string]struct{}

	vocabulary map[string]int // term → column index
	idf        []float64
}

// NewVectorizer creates a vectorizer that drops terms appearing in fewer
// than minDocFreq documents.
func NewVectorizer(minDocFreq int) *Vectorizer {
	if minDocFreq < 1 {
		minDocFreq = 1
	}
	stops := make(map[string]struct{}, len(englishStopwords))
	for _, w := range englishStopwords {
		stops[w] = struct{}{}
	}
	return &Vectorizer{
		minDocFreq: minDocFreq,
		stopwords:  stops,
		vocabulary: make(map[string]int),
	}
}

// terms tokenizes a document for vectorization: lower-cased runs of word
// characters, at least two characters long, stopwords removed.
func (v *Vectorizer) terms(text string) []string {
	var out []string
	var current strings.Builder
	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := current.String()
		current.Reset()
		if len(word) < 2 {
			return
		}
		if _, stop := v.stopwords[word]; stop {
			return
		}
		out = append(out, word)
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()
	return out
}

// FitTransform learns the vocabulary and IDF weights from the corpus and
// returns one L2-normalized TF-IDF row per document. It fails with an
// insufficient-corpus error when document-frequency pruning leaves no
// vocabulary at all, which happens for tiny or near-duplicate corpora.
func (v *Vectorizer) FitTransform(docs []string) ([][]float64, error) {
	tokenized := make([][]string, len(docs))
	docFreq := make(map[string]int)
	for i, doc := range docs {
		tokenized[i] = v.terms(doc)
		seen := make(map[string]struct{})
		for _, term := range tokenized[i] {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			docFreq[term]++
		}
	}

	// Prune rare terms and fix the column order. Sorting keeps the matrix
	// layout deterministic across runs.
	var kept []string
	for term, df := range docFreq {
		if df >= v.minDocFreq {
			kept = append(kept, term)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: no term appears in at least %d documents",
			internalerr.ErrInsufficientCorpus, v.minDocFreq)
	}
	sort.Strings(kept)

	v.vocabulary = make(map[string]int, len(kept))
	for i, term := range kept {
		v.vocabulary[term] = i
	}

	// Smoothed IDF: idf(t) = ln((1+N)/(1+df)) + 1.
	n := float64(len(docs))
	v.idf = make([]float64, len(kept))
	for term, col := range v.vocabulary {
		v.idf[col] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	rows := make([][]float64, len(docs))
	for i, terms := range tokenized {
		rows[i] = v.row(terms)
	}
	return rows, nil
}

// row builds one L2-normalized TF-IDF vector.
func (v *Vectorizer) row(terms []string) []float64 {
	vec := make([]float64, len(v.vocabulary))
	for _, term := range terms {
		if col, ok := v.vocabulary[term]; ok {
			vec[col] += v.idf[col]
		}
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// VocabularySize returns the number of terms kept after pruning.
func (v *Vectorizer) VocabularySize() int {
	return len(v.vocabulary)
}
