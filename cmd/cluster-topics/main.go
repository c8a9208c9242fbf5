package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/communityflow/flow/pkg/flow/cluster"
	"github.com/communityflow/flow/pkg/flow/snapshot"
	"github.com/communityflow/flow/pkg/flow/store"
	"github.com/communityflow/flow/pkg/flow/store/sqlite"
)

func main() {
	var (
		input       = flag.String("in", "", "Labeled corpus JSON (required)")
		output      = flag.String("out", "", "Clustered output JSON (required)")
		k           = flag.Int("k", 0, "Cluster count (default 6)")
		minDF       = flag.Int("min-df", 0, "Minimum document frequency (default 2)")
		seed        = flag.Int64("seed", 0, "PRNG seed (default 42)")
		archivePath = flag.String("archive", "", "Optional SQLite archive path")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--in required")
	}
	if *output == "" {
		log.Fatal("--out required")
	}

	articles, err := snapshot.Load(*input)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}

	log.Printf("Clustering %d articles...", len(articles))
	clusterer := cluster.New(cluster.Config{
		Clusters:   *k,
		MinDocFreq: *minDF,
		Seed:       *seed,
	})
	if err := clusterer.AssignTopics(articles); err != nil {
		log.Fatalf("cluster corpus: %v", err)
	}

	if err := snapshot.Save(*output, articles); err != nil {
		log.Fatalf("save clustered corpus: %v", err)
	}
	log.Printf("Saved clustered corpus to %s", *output)

	if *archivePath != "" {
		ctx := context.Background()
		archive, err := sqlite.Open(ctx, *archivePath)
		if err != nil {
			log.Fatalf("open archive: %v", err)
		}
		defer archive.Close()

		run := store.Run{ID: store.NewRunID(), CreatedAt: time.Now(), Source: "pipeline"}
		if err := archive.SaveRun(ctx, run, articles); err != nil {
			log.Fatalf("archive run: %v", err)
		}
		log.Printf("Archived run %s", run.ID)
	}
}
