package ingest

import (
	"reflect"
	"testing"
)

func newExtractor(topN int) *KeywordExtractor {
	return NewKeywordExtractor(NewTokenizer(DefaultStopwords), topN)
}

func TestExtractRanksByFrequency(t *testing.T) {
	e := newExtractor(3)

	got := e.Extract("yoga yoga yoga breath breath calm")
	want := []string{"yoga", "breath", "calm"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtractTieBreakFirstSeen(t *testing.T) {
	e := newExtractor(5)

	// All counts equal: encounter order must win, deterministically.
	got := e.Extract("zen alpha beta")
	want := []string{"zen", "alpha", "beta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}

	// Run it again to be sure the ranking is stable.
	for i := 0; i < 10; i++ {
		if again := e.Extract("zen alpha beta"); !reflect.DeepEqual(again, want) {
			t.Fatalf("run %d: Extract = %v, want %v", i, again, want)
		}
	}
}

func TestExtractRespectsCap(t *testing.T) {
	e := newExtractor(2)

	got := e.Extract("one two three four five")
	if len(got) > 2 {
		t.Errorf("expected at most 2 keywords, got %v", got)
	}
}

func TestExtractExcludesStopwords(t *testing.T) {
	e := newExtractor(5)

	got := e.Extract("the wellness of the city")
	for _, kw := range got {
		if kw == "the" || kw == "of" {
			t.Errorf("stopword %q leaked into keywords %v", kw, got)
		}
	}
	want := []string{"wellness", "city"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtractEmptyText(t *testing.T) {
	e := newExtractor(5)

	if got := e.Extract(""); len(got) != 0 {
		t.Errorf("expected no keywords, got %v", got)
	}
	if got := e.Extract("the and of"); len(got) != 0 {
		t.Errorf("expected no keywords for pure stopwords, got %v", got)
	}
}

func TestExtractDefaultCap(t *testing.T) {
	e := newExtractor(0)

	got := e.Extract("a1 b2 c3 d4 e5 f6 g7")
	if len(got) != DefaultTopKeywords {
		t.Errorf("expected default cap %d, got %d keywords", DefaultTopKeywords, len(got))
	}
}
