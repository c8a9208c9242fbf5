// Package aggregate is the query surface over a frozen article snapshot.
//
// Every operation is a pure read: it takes the immutable corpus handle
// and returns freshly computed results, so concurrent queries share
// nothing mutable. Grouping, summarization and ordering rules here are
// the single contract that the HTTP endpoints and the report builder
// both depend on.
package aggregate

import (
	"sort"
	"strings"

	"github.com/communityflow/flow/pkg/flow/snapshot"
)

// UnknownNeighborhood is the bucket for articles with a null or blank
// neighborhood.
const UnknownNeighborhood = "Unknown"

// Engine answers aggregation queries over one corpus snapshot.
type Engine struct {
	corpus *snapshot.Corpus
}

// NewEngine creates an engine bound to the given corpus. The corpus is
// treated as read-only for the engine's lifetime.
func NewEngine(corpus *snapshot.Corpus) *Engine {
	return &Engine{corpus: corpus}
}

// Corpus returns the snapshot handle the engine serves.
func (e *Engine) Corpus() *snapshot.Corpus {
	return e.corpus
}

// NormalizeNeighborhood maps a raw neighborhood value to its bucket name:
// blank values become UnknownNeighborhood, anything else is trimmed of
// surrounding whitespace with case preserved.
func NormalizeNeighborhood(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return UnknownNeighborhood
	}
	return trimmed
}

// GroupByTopic partitions the corpus by topic_id. Articles that the
// clustering job has not labeled are excluded entirely, not grouped under
// a sentinel. Within each group, corpus order is preserved.
func (e *Engine) GroupByTopic() map[int][]snapshot.Article {
	groups := make(map[int][]snapshot.Article)
	for _, a := range e.corpus.Articles() {
		if a.TopicID == nil {
			continue
		}
		groups[*a.TopicID] = append(groups[*a.TopicID], a)
	}
	return groups
}

// GroupByNeighborhood partitions the corpus by normalized neighborhood
// name, preserving corpus order within each group.
func (e *Engine) GroupByNeighborhood() map[string][]snapshot.Article {
	groups := make(map[string][]snapshot.Article)
	for _, a := range e.corpus.Articles() {
		key := NormalizeNeighborhood(a.Neighborhood)
		groups[key] = append(groups[key], a)
	}
	return groups
}

// ClusterSummary is a topic group summary keyed by its cluster ID.
type ClusterSummary struct {
	TopicID int `json:"topic_id"`
	Summary
}

// Clusters summarizes every topic group, ordered by ascending numeric
// topic ID.
func (e *Engine) Clusters(opts ArticleOptions) []ClusterSummary {
	groups := e.GroupByTopic()

	ids := make([]int, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]ClusterSummary, 0, len(ids))
	for _, id := range ids {
		out = append(out, ClusterSummary{
			TopicID: id,
			Summary: Summarize(groups[id], opts),
		})
	}
	return out
}

// Cluster summarizes a single topic group. A topic ID absent from the
// corpus yields a well-formed empty summary, never an error.
func (e *Engine) Cluster(topicID int, opts ArticleOptions) ClusterSummary {
	group, ok := e.GroupByTopic()[topicID]
	if !ok {
		return ClusterSummary{TopicID: topicID, Summary: emptySummary(opts)}
	}
	return ClusterSummary{TopicID: topicID, Summary: Summarize(group, opts)}
}

// NeighborhoodSummary is a neighborhood group summary keyed by its
// normalized name.
type NeighborhoodSummary struct {
	Neighborhood string `json:"neighborhood"`
	Summary
}

// Neighborhoods summarizes every neighborhood group, ordered
// lexicographically by normalized name.
func (e *Engine) Neighborhoods(opts ArticleOptions) []NeighborhoodSummary {
	groups := e.GroupByNeighborhood()

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]NeighborhoodSummary, 0, len(names))
	for _, name := range names {
		out = append(out, NeighborhoodSummary{
			Neighborhood: name,
			Summary:      Summarize(groups[name], opts),
		})
	}
	return out
}

// Neighborhood summarizes a single neighborhood group. The lookup key is
// normalized the same way as the corpus values, and a missing key yields a
// well-formed empty summary.
func (e *Engine) Neighborhood(name string, opts ArticleOptions) NeighborhoodSummary {
	key := NormalizeNeighborhood(name)
	group, ok := e.GroupByNeighborhood()[key]
	if !ok {
		return NeighborhoodSummary{Neighborhood: key, Summary: emptySummary(opts)}
	}
	return NeighborhoodSummary{Neighborhood: key, Summary: Summarize(group, opts)}
}

// ThemeRollup counts theme occurrences across the whole corpus, sorted
// ascending by theme ID (the /themes display order).
func (e *Engine) ThemeRollup() []ThemeCount {
	counts := e.themeCounts()
	out := make([]ThemeCount, 0, len(counts))
	for id, count := range counts {
		out = append(out, ThemeCount{ID: id, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ThemeRollupByCount is the same rollup ordered by count descending with
// theme ID ascending on ties (the report display order).
func (e *Engine) ThemeRollupByCount() []ThemeCount {
	return themeDistribution(e.themeCounts())
}

func (e *Engine) themeCounts() map[int]int {
	counts := make(map[int]int)
	for _, a := range e.corpus.Articles() {
		for _, id := range a.Themes {
			counts[id]++
		}
	}
	return counts
}

// TopicCount is one entry of the per-cluster article count ranking.
type TopicCount struct {
	TopicID int `json:"topic_id"`
	Count   int `json:"count"`
}

// TopClusters ranks topic clusters by article count descending, topic ID
// ascending on ties, returning at most limit entries.
func (e *Engine) TopClusters(limit int) []TopicCount {
	groups := e.GroupByTopic()
	out := make([]TopicCount, 0, len(groups))
	for id, group := range groups {
		out = append(out, TopicCount{TopicID: id, Count: len(group)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].TopicID < out[j].TopicID
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
