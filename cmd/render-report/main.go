package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/communityflow/flow/internal/pdfreport"
	"github.com/communityflow/flow/pkg/flow/aggregate"
	"github.com/communityflow/flow/pkg/flow/report"
	"github.com/communityflow/flow/pkg/flow/snapshot"
)

func main() {
	var (
		snapshotPath = flag.String("snapshot", "data/cleaned/google_topics.json", "Snapshot file")
		output       = flag.String("out", "community-flow-weekly.pdf", "Output PDF path")
		limit        = flag.Int("limit", report.DefaultLimit, "Latest items to include")
	)
	flag.Parse()

	articles, err := snapshot.Load(*snapshotPath)
	if err != nil {
		log.Fatalf("load snapshot: %v", err)
	}

	engine := aggregate.NewEngine(snapshot.NewCorpus(articles))
	rep := report.Build(engine, *limit, report.DefaultSort)

	renderer := pdfreport.NewChromiumRenderer()
	pdf, err := renderer.Render(context.Background(), rep)
	if err != nil {
		log.Fatalf("render report: %v", err)
	}

	if err := os.WriteFile(*output, pdf, 0o644); err != nil {
		log.Fatalf("write %s: %v", *output, err)
	}
	log.Printf("Wrote weekly report to %s", *output)
}
