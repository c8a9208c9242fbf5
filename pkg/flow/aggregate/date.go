package aggregate

import (
	"sort"
	"time"

	"github.com/communityflow/flow/pkg/flow/snapshot"
)

// SortDirection selects chronological ordering for article listings.
type SortDirection int

const (
	SortNone SortDirection = iota // preserve corpus order
	SortAscending
	SortDescending
)

// ParseSortDirection maps the wire values ("none", "date_asc",
// "date_desc") to a direction. Unrecognized values mean no sorting.
func ParseSortDirection(s string) SortDirection {
	switch s {
	case "date_asc":
		return SortAscending
	case "date_desc":
		return SortDescending
	default:
		return SortNone
	}
}

// rssDateLayouts covers the RFC 2822 style timestamps found in feed
// snapshots, e.g. "Sun, 30 Nov 2025 02:19:00 GMT".
var rssDateLayouts = []string{
	time.RFC1123,
	time.RFC1123Z,
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
}

// ParseRSSDate parses an RFC 2822 style date string. The boolean is false
// when the value is missing or unparseable.
func ParseRSSDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range rssDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortedByDate returns a sorted copy of articles. Missing or unparseable
// dates sort as the Unix epoch; the stored date string itself is never
// modified. The sort is stable, so equal timestamps (including all
// epoch fallbacks) keep their relative corpus order. SortNone returns the
// input order unchanged.
func SortedByDate(articles []snapshot.Article, direction SortDirection) []snapshot.Article {
	out := make([]snapshot.Article, len(articles))
	copy(out, articles)
	if direction == SortNone {
		return out
	}

	keys := make([]time.Time, len(out))
	for i, a := range out {
		t, ok := ParseRSSDate(a.Date)
		if !ok {
			t = time.Unix(0, 0).UTC()
		}
		keys[i] = t
	}

	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		if direction == SortDescending {
			return keys[idx[i]].After(keys[idx[j]])
		}
		return keys[idx[i]].Before(keys[idx[j]])
	})

	sorted := make([]snapshot.Article, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}
	return sorted
}
