package main

import (
	"flag"
	"log"

	"github.com/communityflow/flow/internal/httpapi"
	"github.com/communityflow/flow/internal/pdfreport"
	"github.com/communityflow/flow/pkg/flow/aggregate"
	"github.com/communityflow/flow/pkg/flow/config"
	"github.com/communityflow/flow/pkg/flow/snapshot"
)

func main() {
	var (
		configPath   = flag.String("config", "", "Optional application config YAML")
		addr         = flag.String("addr", ":8000", "Listen address")
		snapshotPath = flag.String("snapshot", "data/cleaned/google_topics.json", "Snapshot file to serve")
	)
	flag.Parse()

	listenAddr := *addr
	dataPath := *snapshotPath
	if *configPath != "" {
		app, err := config.LoadApp(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		if app.Server.Addr != "" {
			listenAddr = app.Server.Addr
		}
		if app.Server.SnapshotPath != "" {
			dataPath = app.Server.SnapshotPath
		}
	}

	// The snapshot must load before any query is answered; a missing or
	// malformed file is fatal here, never deferred to the first request.
	articles, err := snapshot.Load(dataPath)
	if err != nil {
		log.Fatalf("load snapshot: %v", err)
	}
	log.Printf("Loaded snapshot with %d articles from %s", len(articles), dataPath)

	engine := aggregate.NewEngine(snapshot.NewCorpus(articles))
	server := httpapi.NewServer(engine, pdfreport.NewChromiumRenderer())

	log.Printf("Community Flow backend listening on %s", listenAddr)
	if err := server.Router().Run(listenAddr); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
