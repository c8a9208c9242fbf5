package main

import (
	"flag"
	"log"

	"github.com/communityflow/flow/pkg/flow/config"
	"github.com/communityflow/flow/pkg/flow/snapshot"
)

func main() {
	var (
		input     = flag.String("in", "", "Raw article batch JSON (required)")
		output    = flag.String("out", "", "Enriched output JSON (required)")
		stopwords = flag.String("stopwords", "", "Optional stopwords YAML")
		themes    = flag.String("themes", "", "Optional theme rules YAML")
		topN      = flag.Int("top", 0, "Keyword cap per article (default 5)")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--in required")
	}
	if *output == "" {
		log.Fatal("--out required")
	}

	loader := config.Loader{
		StopwordsPath: *stopwords,
		ThemesPath:    *themes,
		TopKeywords:   *topN,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	articles, err := snapshot.Load(*input)
	if err != nil {
		log.Fatalf("load raw batch: %v", err)
	}

	log.Printf("Enriching %d articles (clean, keywords, themes)...", len(articles))
	components.Pipeline.EnrichAll(articles)

	if err := snapshot.Save(*output, articles); err != nil {
		log.Fatalf("save enriched batch: %v", err)
	}
	log.Printf("Saved enriched batch to %s", *output)
}
