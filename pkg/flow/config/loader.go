package config

import (
	"fmt"

	"github.com/communityflow/flow/pkg/flow/cluster"
	"github.com/communityflow/flow/pkg/flow/ingest"
	"github.com/communityflow/flow/pkg/flow/themes"
)

// Loader reads configuration files and constructs pipeline components.
// Empty paths fall back to the built-in defaults.
type Loader struct {
	StopwordsPath string
	ThemesPath    string
	TopKeywords   int
	Cluster       Cluster
}

// Components holds the constructed pipeline pieces.
type Components struct {
	Tokenizer *ingest.Tokenizer
	Labeler   *themes.Labeler
	Pipeline  *ingest.Pipeline
	Clusterer *cluster.Clusterer
}

// Load builds all components from configuration.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	stopwords := ingest.DefaultStopwords
	if l.StopwordsPath != "" {
		sw, err := LoadStopwords(l.StopwordsPath)
		if err != nil {
			return nil, fmt.Errorf("load stopwords: %w", err)
		}
		stopwords = sw.Terms
	}
	comp.Tokenizer = ingest.NewTokenizer(stopwords)

	rules := themes.DefaultRules()
	if l.ThemesPath != "" {
		tr, err := LoadThemeRules(l.ThemesPath)
		if err != nil {
			return nil, fmt.Errorf("load theme rules: %w", err)
		}
		rules = make([]themes.Rule, len(tr.Rules))
		for i, r := range tr.Rules {
			rules[i] = themes.Rule{ID: r.ID, Keywords: r.Keywords}
		}
	}
	comp.Labeler = themes.NewLabeler(rules)

	extractor := ingest.NewKeywordExtractor(comp.Tokenizer, l.TopKeywords)
	comp.Pipeline = ingest.NewPipeline(extractor, comp.Labeler)

	comp.Clusterer = cluster.New(cluster.Config{
		Clusters:      l.Cluster.Clusters,
		MinDocFreq:    l.Cluster.MinDocFreq,
		Seed:          l.Cluster.Seed,
		MaxIterations: l.Cluster.MaxIterations,
	})

	return comp, nil
}
