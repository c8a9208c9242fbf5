package aggregate

import (
	"sort"
	"strings"

	"github.com/communityflow/flow/pkg/flow/snapshot"
)

// TopKeywordLimit caps the keyword list of a group summary.
const TopKeywordLimit = 10

// KeywordCount is one entry of a summary's keyword ranking.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// ThemeCount is one entry of a theme distribution.
type ThemeCount struct {
	ID    int `json:"id"`
	Count int `json:"count"`
}

// ArticleRef is the raw article projection attached to summaries when
// sample articles are requested.
type ArticleRef struct {
	Title        string   `json:"title"`
	Date         string   `json:"date"`
	Link         string   `json:"link"`
	Source       string   `json:"source"`
	Neighborhood string   `json:"neighborhood"`
	Themes       []int    `json:"themes"`
	Keywords     []string `json:"keywords"`
}

// Summary describes one group of articles: its size, keyword ranking and
// theme distribution. Articles is nil unless samples were requested; an
// empty non-nil slice means "requested, none available".
type Summary struct {
	Count             int            `json:"count"`
	TopKeywords       []KeywordCount `json:"top_keywords"`
	ThemeDistribution []ThemeCount   `json:"theme_distribution"`
	Articles          []ArticleRef   `json:"articles"`
}

// ArticleOptions controls sample-article attachment on summaries.
type ArticleOptions struct {
	Include bool
	Limit   int // clamped to >= 0
}

// Summarize computes the summary of one article group. Keywords are
// counted case-insensitively and ranked by frequency with first-seen order
// breaking ties; the theme distribution is sorted by count descending,
// then theme ID ascending. An empty group yields a well-formed summary
// with zero count and empty distributions.
func Summarize(group []snapshot.Article, opts ArticleOptions) Summary {
	keywordCounts := make(map[string]int)
	var keywordOrder []string
	themeCounts := make(map[int]int)

	for _, a := range group {
		for _, kw := range a.Keywords {
			kw = strings.ToLower(kw)
			if keywordCounts[kw] == 0 {
				keywordOrder = append(keywordOrder, kw)
			}
			keywordCounts[kw]++
		}
		for _, id := range a.Themes {
			themeCounts[id]++
		}
	}

	sort.SliceStable(keywordOrder, func(i, j int) bool {
		return keywordCounts[keywordOrder[i]] > keywordCounts[keywordOrder[j]]
	})
	if len(keywordOrder) > TopKeywordLimit {
		keywordOrder = keywordOrder[:TopKeywordLimit]
	}
	topKeywords := make([]KeywordCount, len(keywordOrder))
	for i, kw := range keywordOrder {
		topKeywords[i] = KeywordCount{Keyword: kw, Count: keywordCounts[kw]}
	}

	distribution := themeDistribution(themeCounts)

	s := Summary{
		Count:             len(group),
		TopKeywords:       topKeywords,
		ThemeDistribution: distribution,
	}

	if opts.Include {
		limit := opts.Limit
		if limit < 0 {
			limit = 0
		}
		if limit > len(group) {
			limit = len(group)
		}
		// Samples keep original corpus order regardless of any sort the
		// caller applied elsewhere.
		s.Articles = make([]ArticleRef, 0, limit)
		for _, a := range group[:limit] {
			s.Articles = append(s.Articles, projectArticle(a))
		}
	}

	return s
}

// themeDistribution flattens a theme count map, count descending with
// theme ID ascending on ties.
func themeDistribution(counts map[int]int) []ThemeCount {
	out := make([]ThemeCount, 0, len(counts))
	for id, count := range counts {
		out = append(out, ThemeCount{ID: id, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func projectArticle(a snapshot.Article) ArticleRef {
	themes := a.Themes
	if themes == nil {
		themes = []int{}
	}
	keywords := a.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return ArticleRef{
		Title:        a.Title,
		Date:         a.Date,
		Link:         a.Link,
		Source:       a.Source,
		Neighborhood: a.Neighborhood,
		Themes:       themes,
		Keywords:     keywords,
	}
}

// emptySummary is the well-formed zero response for lookups of keys absent
// from the corpus. "Not found" and "found but empty" render identically.
func emptySummary(opts ArticleOptions) Summary {
	s := Summary{
		TopKeywords:       []KeywordCount{},
		ThemeDistribution: []ThemeCount{},
	}
	if opts.Include {
		s.Articles = []ArticleRef{}
	}
	return s
}
