package ingest

import (
	"github.com/communityflow/flow/pkg/flow/snapshot"
	"github.com/communityflow/flow/pkg/flow/themes"
)

// Pipeline runs the offline enrichment flow over scraped articles:
// raw text → cleaning → keyword extraction → theme labeling.
// Topic clustering is a separate whole-corpus batch step (see the cluster
// package); it runs after this pipeline.
type Pipeline struct {
	extractor *KeywordExtractor
	labeler   *themes.Labeler
}

// NewPipeline creates an enrichment pipeline from its components.
func NewPipeline(extractor *KeywordExtractor, labeler *themes.Labeler) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		labeler:   labeler,
	}
}

// DefaultPipeline builds a pipeline with the standard stopwords, keyword
// cap and theme rule table.
func DefaultPipeline() *Pipeline {
	tok := NewTokenizer(DefaultStopwords)
	return NewPipeline(
		NewKeywordExtractor(tok, DefaultTopKeywords),
		themes.NewLabeler(themes.DefaultRules()),
	)
}

// Enrich fills the derived fields of a single article in place. Existing
// scrape fields are never touched; enrichment only adds.
func (p *Pipeline) Enrich(a *snapshot.Article) {
	a.CleanText = CleanHTML(a.Text)
	a.Keywords = p.extractor.Extract(a.CleanText)
	a.Themes = p.labeler.Label(a.CleanText)
}

// EnrichAll enriches every article of a scraped batch in place.
func (p *Pipeline) EnrichAll(articles []snapshot.Article) {
	for i := range articles {
		p.Enrich(&articles[i])
	}
}
