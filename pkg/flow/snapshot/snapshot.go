package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/communityflow/flow/pkg/flow/internalerr"
)

// Load reads a fully materialized article snapshot from a JSON file.
// The file must contain a JSON array of article objects; anything else is
// a malformed snapshot. Both failure modes are meant to be fatal at
// process startup, never deferred to the first query.
func Load(path string) ([]Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", internalerr.ErrSnapshotMissing, path)
		}
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}

	var articles []Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrMalformedSnapshot, path, err)
	}

	return articles, nil
}

// Save writes articles to path as a JSON array via a temp file and rename,
// so concurrent readers of the old snapshot never observe a partial write.
func Save(path string, articles []Article) error {
	data, err := json.MarshalIndent(articles, "", "    ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close snapshot: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot %s: %w", path, err)
	}
	return nil
}

// Corpus is an immutable handle over a loaded snapshot. It is constructed
// once (at startup or after an out-of-band refresh) and passed by reference
// into every aggregation call. Nothing mutates it, so concurrent reads need
// no locking; a refresh builds a new Corpus and swaps the reference.
type Corpus struct {
	articles []Article
}

// NewCorpus wraps articles in a read-only handle. The caller must not
// modify the slice afterwards.
func NewCorpus(articles []Article) *Corpus {
	return &Corpus{articles: articles}
}

// Articles returns the snapshot contents in original corpus order.
// Callers treat the slice as read-only.
func (c *Corpus) Articles() []Article {
	return c.articles
}

// Len returns the number of articles in the snapshot.
func (c *Corpus) Len() int {
	return len(c.articles)
}
