package ingest

import (
	"reflect"
	"testing"
)

func TestTokenizeBasic(t *testing.T) {
	tok := NewTokenizer(DefaultStopwords)

	got := tok.Tokenize("The quick healing of the mind")
	want := []string{"quick", "healing", "mind"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeLowercases(t *testing.T) {
	tok := NewTokenizer(nil)

	got := tok.Tokenize("Yoga YOGA yoga")
	want := []string{"yoga", "yoga", "yoga"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizePunctuationRemoved(t *testing.T) {
	tok := NewTokenizer(nil)

	// Punctuation is deleted in place, not a token boundary.
	got := tok.Tokenize("self-care, don't stop!")
	want := []string{"selfcare", "dont", "stop"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeStopwordsCaseInsensitive(t *testing.T) {
	tok := NewTokenizer([]string{"THE"})

	got := tok.Tokenize("the The THE cat")
	want := []string{"cat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	tok := NewTokenizer(DefaultStopwords)

	if got := tok.Tokenize(""); len(got) != 0 {
		t.Errorf("expected no tokens, got %v", got)
	}
	if got := tok.Tokenize("... !!! ;;;"); len(got) != 0 {
		t.Errorf("expected no tokens for pure punctuation, got %v", got)
	}
}

func TestAddStopword(t *testing.T) {
	tok := NewTokenizer(nil)
	tok.AddStopword("chicago")

	got := tok.Tokenize("chicago wellness")
	want := []string{"wellness"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}
