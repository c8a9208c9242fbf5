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

	log.Println("Scraping Chicago wellness blogs...")
	articles, err := scrape.Blogs(ctx, nil)
	if err != nil {
		log.Fatalf("scrape blogs: %v", err)
	}

	path, runID, err := scrape.WriteRaw(*outDir, "blogs", articles)
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

		run := store.Run{ID: runID, CreatedAt: time.Now(), Source: "blogs"}
		if err := archive.SaveRun(ctx, run, articles); err != nil {
			log.Fatalf("archive run: %v", err)
		}
		log.Printf("Archived run %s", runID)
	}
}
