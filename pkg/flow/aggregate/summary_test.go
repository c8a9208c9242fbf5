package aggregate

import (
	"reflect"
	"testing"

	"github.com/communityflow/flow/pkg/flow/snapshot"
)

func TestSummarizeCounts(t *testing.T) {
	group := []snapshot.Article{
		{Keywords: []string{"yoga", "spa"}, Themes: []int{1}},
		{Keywords: []string{"YOGA"}, Themes: []int{1, 4}},
	}
	s := Summarize(group, ArticleOptions{})

	if s.Count != 2 {
		t.Errorf("count = %d, want 2", s.Count)
	}
	// Keywords are counted case-insensitively.
	wantKw := []KeywordCount{{Keyword: "yoga", Count: 2}, {Keyword: "spa", Count: 1}}
	if !reflect.DeepEqual(s.TopKeywords, wantKw) {
		t.Errorf("top keywords = %v, want %v", s.TopKeywords, wantKw)
	}
	wantThemes := []ThemeCount{{ID: 1, Count: 2}, {ID: 4, Count: 1}}
	if !reflect.DeepEqual(s.ThemeDistribution, wantThemes) {
		t.Errorf("theme distribution = %v, want %v", s.ThemeDistribution, wantThemes)
	}
	if s.Articles != nil {
		t.Error("articles attached without being requested")
	}
}

func TestSummarizeEmptyGroup(t *testing.T) {
	s := Summarize(nil, ArticleOptions{})

	if s.Count != 0 {
		t.Errorf("count = %d, want 0", s.Count)
	}
	if len(s.TopKeywords) != 0 || len(s.ThemeDistribution) != 0 {
		t.Errorf("expected empty distributions, got %+v", s)
	}
}

func TestSummarizeThemeTieBreakByID(t *testing.T) {
	group := []snapshot.Article{
		{Themes: []int{6, 4}},
		{Themes: []int{4, 6}},
	}
	s := Summarize(group, ArticleOptions{})

	// Equal counts order by ascending theme ID.
	want := []ThemeCount{{ID: 4, Count: 2}, {ID: 6, Count: 2}}
	if !reflect.DeepEqual(s.ThemeDistribution, want) {
		t.Errorf("theme distribution = %v, want %v", s.ThemeDistribution, want)
	}
}

func TestSummarizeKeywordTieBreakFirstSeen(t *testing.T) {
	group := []snapshot.Article{
		{Keywords: []string{"zen", "alpha"}},
		{Keywords: []string{"beta"}},
	}
	s := Summarize(group, ArticleOptions{})

	want := []KeywordCount{
		{Keyword: "zen", Count: 1},
		{Keyword: "alpha", Count: 1},
		{Keyword: "beta", Count: 1},
	}
	if !reflect.DeepEqual(s.TopKeywords, want) {
		t.Errorf("top keywords = %v, want %v", s.TopKeywords, want)
	}
}

func TestSummarizeKeywordCap(t *testing.T) {
	var group []snapshot.Article
	keywords := []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7", "h8", "i9", "j10", "k11", "l12"}
	for _, kw := range keywords {
		group = append(group, snapshot.Article{Keywords: []string{kw}})
	}
	s := Summarize(group, ArticleOptions{})

	if len(s.TopKeywords) != TopKeywordLimit {
		t.Errorf("keyword list length = %d, want %d", len(s.TopKeywords), TopKeywordLimit)
	}
}

func TestSummarizeIncludeArticles(t *testing.T) {
	group := []snapshot.Article{
		{Title: "first"}, {Title: "second"}, {Title: "third"}, {Title: "fourth"}, {Title: "fifth"},
	}

	s := Summarize(group, ArticleOptions{Include: true, Limit: 1})
	if len(s.Articles) != 1 {
		t.Fatalf("got %d sample articles, want 1", len(s.Articles))
	}
	// Always the first in corpus order, regardless of sorting elsewhere.
	if s.Articles[0].Title != "first" {
		t.Errorf("sample = %q, want %q", s.Articles[0].Title, "first")
	}
}

func TestSummarizeNegativeLimitClamped(t *testing.T) {
	group := []snapshot.Article{{Title: "only"}}

	s := Summarize(group, ArticleOptions{Include: true, Limit: -5})
	if s.Articles == nil {
		t.Fatal("articles slice must be present when requested")
	}
	if len(s.Articles) != 0 {
		t.Errorf("got %d sample articles, want 0", len(s.Articles))
	}
}

func TestSummarizeProjectionFields(t *testing.T) {
	group := []snapshot.Article{{
		Title:        "t",
		Text:         "full body text not part of the projection",
		Date:         "Mon, 01 Jan 2024 00:00:00 GMT",
		Link:         "l",
		Source:       "s",
		Neighborhood: "n",
	}}

	s := Summarize(group, ArticleOptions{Include: true, Limit: 5})
	ref := s.Articles[0]
	if ref.Title != "t" || ref.Link != "l" || ref.Source != "s" || ref.Neighborhood != "n" {
		t.Errorf("projection lost fields: %+v", ref)
	}
	if ref.Themes == nil || ref.Keywords == nil {
		t.Error("projection slices must be non-nil")
	}
}
