package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/cognicore/podium/internal/export"
	"github.com/cognicore/podium/pkg/podium"
	"github.com/cognicore/podium/pkg/podium/config"
	"github.com/cognicore/podium/pkg/podium/report"
	"github.com/cognicore/podium/pkg/podium/source"
	"github.com/cognicore/podium/pkg/podium/source/presidency"
	"github.com/cognicore/podium/pkg/podium/store/sqlite"
)

func main() {
	cfg := mustLoad()
	ctx := context.Background()

	loader := config.Loader{
		RulesPath:   cfg.RulesPath,
		PartiesPath: cfg.PartiesPath,
		CatalogPath: cfg.CatalogPath,
	}

	components, err := loader.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	var src source.Source = presidency.New(components.Catalog.BaseURL)
	if cfg.DBPath != "" {
		db, err := sqlite.Open(ctx, cfg.DBPath)
		if err != nil {
			log.Fatal("Failed to open database:", err)
		}
		defer db.Close()
		src = source.NewCachedSource(src, db)
	}

	p := podium.New(podium.Options{
		Source:  src,
		Rules:   components.Registry,
		Exclude: components.Catalog.Exclude,
		Workers: cfg.Workers,
	})

	records, err := p.BuildTable(ctx, components.Catalog.Page)
	if err != nil {
		log.Fatal("Failed to build table:", err)
	}
	log.Printf("Built table with %d speeches", len(records))

	if cfg.AfterYear > 0 {
		records = report.After(records, cfg.AfterYear)
		log.Printf("Kept %d speeches after %d", len(records), cfg.AfterYear)
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		log.Fatal("Failed to create output directory:", err)
	}

	rep := report.NewBuilder().Build(records, components.Registry.Labels())

	csvPath := filepath.Join(cfg.OutDir, rep.ID+".csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		log.Fatal("Failed to create CSV file:", err)
	}
	if err := rep.WriteCSV(csvFile); err != nil {
		log.Fatal("Failed to write CSV:", err)
	}
	csvFile.Close()

	jsonlPath := filepath.Join(cfg.OutDir, rep.ID+".jsonl")
	jsonlFile, err := os.Create(jsonlPath)
	if err != nil {
		log.Fatal("Failed to create JSONL file:", err)
	}
	if err := export.Write(jsonlFile, records); err != nil {
		log.Fatal("Failed to write JSONL:", err)
	}
	jsonlFile.Close()

	htmlPath := filepath.Join(cfg.OutDir, rep.ID+".html")
	htmlFile, err := os.Create(htmlPath)
	if err != nil {
		log.Fatal("Failed to create chart file:", err)
	}
	if err := rep.RenderCharts(htmlFile, components.Parties); err != nil {
		log.Fatal("Failed to render charts:", err)
	}
	htmlFile.Close()

	log.Printf("Report %s written to %s", rep.ID, cfg.OutDir)
}
