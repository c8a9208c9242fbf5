package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/communityflow/flow/internal/scrape"
	"github.com/communityflow/flow/pkg/flow/store"
	"github.com/communityflow/flow/pkg/flow/store/sqlite"
)

func main() {
	var (
		outDir      = flag.String("out", "data/raw", "Output directory for raw batches")
		archivePath = flag.String("archive", "", "Optional SQLite archive path")
	)
	flag.Parse()

	ctx := context.Background()

	log.Println("Scraping Google News RSS...")
	articles, err := scrape.GoogleRSS(ctx)
	if err != nil {
		log.Fatalf("scrape google rss: %v", err)
	}

	path, runID, err := scrape.WriteRaw(*outDir, "google_rss", articles)
	if err != nil {
		log.Fatalf("write raw batch: %v", err)
	}
	log.Printf("Saved %d items to %s (run %s)", len(articles), path, runID)

	if *archivePath != "" {
		archive, err := sqlite.Open(ctx, *archivePath)
		if err != nil {
			log.Fatalf("open archive: %v", err)
		}
		defer archive.Close()

		run := store.Run{ID: runID, CreatedAt: time.Now(), Source: "google-rss"}
		if err := archive.SaveRun(ctx, run, articles); err != nil {
			log.Fatalf("archive run: %v", err)
		}
		log.Printf("Archived run %s", runID)
	}
}
