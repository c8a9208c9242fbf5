// Package cluster assigns topic IDs to articles by TF-IDF vectorization
// and K-means partitioning of the whole corpus.
//
// Clustering is a batch operation: it needs every article's cleaned text
// at once and cannot place a single new article in isolation. A corpus
// refresh therefore reclusters everything; topic IDs are stable only
// within one snapshot.
package cluster

import (
	"fmt"
	"math/rand"

	"github.com/communityflow/flow/pkg/flow/internalerr"
	"github.com/communityflow/flow/pkg/flow/snapshot"
)

// Config holds clustering parameters.
type Config struct {
	Clusters      int   // number of topic clusters (k)
	MinDocFreq    int   // terms in fewer documents are pruned
	Seed          int64 // PRNG seed, fixed for reproducibility
	MaxIterations int   // Lloyd iteration cap
}

// DefaultConfig returns the standard parameters.
func DefaultConfig() Config {
	return Config{
		Clusters:      6,
		MinDocFreq:    2,
		Seed:          42,
		MaxIterations: 300,
	}
}

// Clusterer runs the topic model batch job.
type Clusterer struct {
	cfg Config
}

// New creates a clusterer. Zero config fields fall back to defaults.
func New(cfg Config) *Clusterer {
	def := DefaultConfig()
	if cfg.Clusters <= 0 {
		cfg.Clusters = def.Clusters
	}
	if cfg.MinDocFreq <= 0 {
		cfg.MinDocFreq = def.MinDocFreq
	}
	if cfg.Seed == 0 {
		cfg.Seed = def.Seed
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = def.MaxIterations
	}
	return &Clusterer{cfg: cfg}
}

// Fit clusters the given documents and returns one label (0..k-1) per
// document, in input order. It fails with an insufficient-corpus error
// when there are fewer documents than clusters or when the pruned term
// matrix is degenerate.
func (c *Clusterer) Fit(docs []string) ([]int, error) {
	if len(docs) < c.cfg.Clusters {
		return nil, fmt.Errorf("%w: %d documents for %d clusters",
			internalerr.ErrInsufficientCorpus, len(docs), c.cfg.Clusters)
	}

	vectorizer := NewVectorizer(c.cfg.MinDocFreq)
	rows, err := vectorizer.FitTransform(docs)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(c.cfg.Seed))
	return kmeans(rows, c.cfg.Clusters, c.cfg.MaxIterations, rng), nil
}

// AssignTopics clusters the corpus by clean text and writes topic_id back
// onto every article in place. On error no article is modified: shipping a
// half-clustered corpus is worse than failing the refresh.
func (c *Clusterer) AssignTopics(articles []snapshot.Article) error {
	docs := make([]string, len(articles))
	for i := range articles {
		docs[i] = articles[i].CleanText
	}

	labels, err := c.Fit(docs)
	if err != nil {
		return err
	}

	for i := range articles {
		id := labels[i]
		articles[i].TopicID = &id
	}
	return nil
}
