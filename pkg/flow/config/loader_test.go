package config

import (
	"reflect"
	"testing"
)

func TestLoaderDefaults(t *testing.T) {
	loader := Loader{}
	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if comp.Tokenizer == nil || comp.Labeler == nil || comp.Pipeline == nil || comp.Clusterer == nil {
		t.Fatalf("missing components: %+v", comp)
	}

	// Built-in stopwords apply.
	tokens := comp.Tokenizer.Tokenize("the yoga")
	if !reflect.DeepEqual(tokens, []string{"yoga"}) {
		t.Errorf("default stopwords not applied: %v", tokens)
	}

	// Built-in rule table applies.
	got := comp.Labeler.Label("free meditation")
	want := []int{3, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("default rules not applied: %v, want %v", got, want)
	}
}

func TestLoaderCustomFiles(t *testing.T) {
	stopPath := writeFile(t, "stopwords.yaml", "terms: [zzz]")
	themePath := writeFile(t, "themes.yaml", `
rules:
  - id: 42
    keywords: [bingo]
`)

	loader := Loader{StopwordsPath: stopPath, ThemesPath: themePath}
	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if tokens := comp.Tokenizer.Tokenize("zzz yoga"); !reflect.DeepEqual(tokens, []string{"yoga"}) {
		t.Errorf("custom stopwords not applied: %v", tokens)
	}
	if got := comp.Labeler.Label("bingo night"); !reflect.DeepEqual(got, []int{42}) {
		t.Errorf("custom rules not applied: %v", got)
	}
}

func TestLoaderBadPath(t *testing.T) {
	loader := Loader{StopwordsPath: "/does/not/exist.yaml"}
	if _, err := loader.Load(); err == nil {
		t.Error("expected error for missing stopwords file")
	}
}
