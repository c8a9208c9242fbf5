// Package sqlite is the durable Store implementation backed by SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/communityflow/flow/pkg/flow/internalerr"
	"github.com/communityflow/flow/pkg/flow/snapshot"
	"github.com/communityflow/flow/pkg/flow/store"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens (and if necessary creates) a SQLite archive with WAL mode
// enabled.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	source TEXT NOT NULL,
	article_count INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS run_articles (
	run_id TEXT NOT NULL,
	pos INTEGER NOT NULL,
	title TEXT,
	date TEXT,
	link TEXT,
	source TEXT,
	neighborhood TEXT,
	topic_id INTEGER,
	payload TEXT NOT NULL,
	PRIMARY KEY(run_id, pos),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun records a run and its articles in one transaction.
func (s *sqliteStore) SaveRun(ctx context.Context, run store.Run, articles []snapshot.Article) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, source, article_count) VALUES (?, ?, ?, ?)`,
		run.ID, run.CreatedAt.UTC().Format(time.RFC3339), run.Source, len(articles),
	); err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_articles (run_id, pos, title, date, link, source, neighborhood, topic_id, payload)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, a := range articles {
		payload, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("encode article %d: %w", i, err)
		}
		var topicID any
		if a.TopicID != nil {
			topicID = *a.TopicID
		}
		if _, err := stmt.ExecContext(ctx,
			run.ID, i, a.Title, a.Date, a.Link, a.Source, a.Neighborhood, topicID, string(payload),
		); err != nil {
			return fmt.Errorf("insert article %d of run %s: %w", i, run.ID, err)
		}
	}

	return tx.Commit()
}

// GetRun fetches one run's metadata by ID.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, source, article_count FROM runs WHERE id = ?`, id)

	var run store.Run
	var createdAt string
	if err := row.Scan(&run.ID, &createdAt, &run.Source, &run.Articles); err != nil {
		if err == sql.ErrNoRows {
			return store.Run{}, false, nil
		}
		return store.Run{}, false, err
	}

	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return store.Run{}, false, fmt.Errorf("parse run timestamp: %w", err)
	}
	run.CreatedAt = t
	return run, true, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, source, article_count FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		var run store.Run
		var createdAt string
		if err := rows.Scan(&run.ID, &createdAt, &run.Source, &run.Articles); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse run timestamp: %w", err)
		}
		run.CreatedAt = t
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRunArticles returns a run's article batch in its original order.
func (s *sqliteStore) GetRunArticles(ctx context.Context, id string) ([]snapshot.Article, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM run_articles WHERE run_id = ? ORDER BY pos`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []snapshot.Article
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var a snapshot.Article
		if err := json.Unmarshal([]byte(payload), &a); err != nil {
			return nil, fmt.Errorf("decode article of run %s: %w", id, err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}
