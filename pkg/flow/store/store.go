// Package store archives pipeline refresh runs.
//
// The serving snapshot itself stays a flat JSON file (see the snapshot
// package); the archive exists out-of-band so refreshes are auditable:
// each scrape or pipeline run is recorded with its articles and can be
// inspected later without touching whatever snapshot is in service.
package store

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/communityflow/flow/pkg/flow/snapshot"
)

// Run is one recorded refresh: a scrape batch or a full pipeline pass.
type Run struct {
	ID        string    // ULID, lexicographically ordered by creation time
	CreatedAt time.Time
	Source    string // e.g. "google-rss", "blogs", "pipeline"
	Articles  int
}

// Store persists refresh runs and their article batches.
type Store interface {
	Close() error

	SaveRun(ctx context.Context, run Run, articles []snapshot.Article) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	GetRunArticles(ctx context.Context, id string) ([]snapshot.Article, error)
}

// NewRunID generates a fresh run identifier.
func NewRunID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}
