// Package memstore is an in-memory Store implementation for tests.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/communityflow/flow/pkg/flow/snapshot"
	"github.com/communityflow/flow/pkg/flow/store"
)

// Store keeps runs in maps guarded by a mutex.
type Store struct {
	mu       sync.RWMutex
	runs     map[string]store.Run
	articles map[string][]snapshot.Article
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		runs:     make(map[string]store.Run),
		articles: make(map[string][]snapshot.Article),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveRun records a run and a copy of its article batch.
func (s *Store) SaveRun(ctx context.Context, run store.Run, articles []snapshot.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	run.Articles = len(articles)
	s.runs[run.ID] = run

	batch := make([]snapshot.Article, len(articles))
	copy(batch, articles)
	s.articles[run.ID] = batch
	return nil
}

// GetRun implements store.Store.
func (s *Store) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	return run, ok, nil
}

// ListRuns returns runs newest first, at most limit of them.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]store.Run, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		if !runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].CreatedAt.After(runs[j].CreatedAt)
		}
		return runs[i].ID > runs[j].ID
	})
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// GetRunArticles returns a copy of a run's article batch.
func (s *Store) GetRunArticles(ctx context.Context, id string) ([]snapshot.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	batch, ok := s.articles[id]
	if !ok {
		return nil, nil
	}
	out := make([]snapshot.Article, len(batch))
	copy(out, batch)
	return out, nil
}
