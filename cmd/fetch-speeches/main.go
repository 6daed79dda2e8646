package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/cognicore/podium/pkg/podium/config"
	"github.com/cognicore/podium/pkg/podium/source/presidency"
	"github.com/cognicore/podium/pkg/podium/store"
	"github.com/cognicore/podium/pkg/podium/store/sqlite"
)

func main() {
	var (
		dbPath      = flag.String("db", "", "Database path (required)")
		catalogPath = flag.String("catalog", "", "Catalog config file (required)")
		delay       = flag.Duration("delay", 200*time.Millisecond, "Pause between fetches")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}
	if *catalogPath == "" {
		log.Fatal("--catalog required")
	}

	ctx := context.Background()

	catalog, err := config.LoadCatalog(*catalogPath)
	if err != nil {
		log.Fatal("Failed to load catalog config:", err)
	}

	db, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	client := presidency.New(catalog.BaseURL)

	ids, err := client.ListDocumentIDs(ctx, catalog.Page)
	if err != nil {
		log.Fatal("Failed to list catalog:", err)
	}
	log.Printf("Catalog %s lists %d documents", catalog.Page, len(ids))

	excluded := make(map[string]struct{}, len(catalog.Exclude))
	for _, id := range catalog.Exclude {
		excluded[id] = struct{}{}
	}

	fetched := 0
	for i, id := range ids {
		if _, skip := excluded[id]; skip {
			log.Printf("Skipping excluded document %s", id)
			continue
		}

		raw, err := client.Fetch(ctx, id)
		if err != nil {
			log.Fatalf("Failed to fetch %s: %v", id, err)
		}

		err = db.UpsertDocument(ctx, store.Document{
			ID:         raw.ID,
			Title:      raw.Title,
			Date:       raw.Date,
			Paragraphs: raw.Paragraphs,
		})
		if err != nil {
			log.Fatalf("Failed to store %s: %v", id, err)
		}

		fetched++
		if (i+1)%10 == 0 {
			log.Printf("Fetched %d/%d documents...", fetched, len(ids))
		}

		// Be nice to the archive
		time.Sleep(*delay)
	}

	log.Printf("Stored %d documents in %s", fetched, *dbPath)
}
