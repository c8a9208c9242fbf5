// Package report builds the fixed-shape weekly summary payload.
//
// The shape here is the shared contract between the JSON endpoint and the
// PDF exporter: both consume exactly this structure and nothing else. The
// package adds no aggregation logic of its own; it composes the aggregate
// engine's primitives with fixed limits.
package report

import (
	"github.com/communityflow/flow/pkg/flow/aggregate"
)

const (
	// MaxItems is the hard safety cap on latest_items, applied to the
	// caller's limit regardless of what was requested.
	MaxItems = 200

	// TopClusterLimit caps the cluster ranking in the report.
	TopClusterLimit = 10

	// DefaultLimit and DefaultSort are the standard report parameters
	// used when the caller does not specify any.
	DefaultLimit = 10
)

// DefaultSort is the standard report ordering: newest first.
var DefaultSort = aggregate.SortDescending

// Item is the compact article projection listed in a report.
type Item struct {
	Title        string `json:"title"`
	Date         string `json:"date"`
	Link         string `json:"link"`
	Source       string `json:"source"`
	Neighborhood string `json:"neighborhood"`
	Themes       []int  `json:"themes"`
	TopicID      *int   `json:"topic_id"`
}

// Report is the complete summary payload.
type Report struct {
	TotalArticles     int                   `json:"total_articles"`
	ThemeDistribution []aggregate.ThemeCount `json:"theme_distribution"`
	TopClusters       []aggregate.TopicCount `json:"top_clusters"`
	LatestItems       []Item                `json:"latest_items"`
}

// Build assembles a report from the engine: total article count, the full
// theme distribution in ascending ID order, the top clusters by size, and
// the first limit articles after chronological sorting. The limit is
// clamped to [0, MaxItems].
func Build(engine *aggregate.Engine, limit int, direction aggregate.SortDirection) Report {
	if limit < 0 {
		limit = 0
	}
	if limit > MaxItems {
		limit = MaxItems
	}

	articles := aggregate.SortedByDate(engine.Corpus().Articles(), direction)
	if limit > len(articles) {
		limit = len(articles)
	}

	items := make([]Item, 0, limit)
	for _, a := range articles[:limit] {
		themes := a.Themes
		if themes == nil {
			themes = []int{}
		}
		items = append(items, Item{
			Title:        a.Title,
			Date:         a.Date,
			Link:         a.Link,
			Source:       a.Source,
			Neighborhood: a.Neighborhood,
			Themes:       themes,
			TopicID:      a.TopicID,
		})
	}

	return Report{
		TotalArticles:     engine.Corpus().Len(),
		ThemeDistribution: engine.ThemeRollup(),
		TopClusters:       engine.TopClusters(TopClusterLimit),
		LatestItems:       items,
	}
}
