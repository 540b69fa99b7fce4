package main

import (
	"context"
	"fmt"
	"os"

	"eater-scraper/config"
	"eater-scraper/models"
	"eater-scraper/scraper/eater"
	"eater-scraper/services"
	"eater-scraper/storage"
	"eater-scraper/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Error("Bad configuration: %v", err)
		os.Exit(1)
	}
	utils.Info("Scraper starting | urls=%d workers=%d retries=%d",
		len(cfg.SeedURLs), cfg.MaxWorkers, cfg.MaxRetries)

	ctx := context.Background()

	store, err := storage.NewPostgresStore(ctx, cfg.DatabaseURL)
	if err != nil {
		utils.Error("Failed to connect PostgreSQL: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		utils.Error("Failed to ensure PostgreSQL schema: %v", err)
		os.Exit(1)
	}

	reconciler := services.NewReconciler(store)
	scraper := eater.NewScraper(cfg, reconciler)

	utils.Section("Batch scrape")
	pool := eater.NewWorkerPool(scraper, cfg)
	records := pool.Run(ctx, cfg.SeedURLs)

	if len(records) == 0 {
		utils.Warn("No restaurants extracted.")
		os.Exit(0)
	}

	writer := storage.NewTSVWriter(cfg.TSVPath)
	if err := writer.Write(records); err != nil {
		utils.Error("Failed to save TSV: %v", err)
		os.Exit(1)
	}

	printSummary(records)
	report := services.GenerateReport(records)
	services.PrintReport(report)
}

func printSummary(records []models.Record) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════╗")
	fmt.Println("║                SCRAPE COMPLETE               ║")
	fmt.Println("╠══════════════════════════════════════════════╣")
	fmt.Printf("║  Total restaurants : %-23d║\n", len(records))
	fmt.Println("╚══════════════════════════════════════════════╝")
	fmt.Println()
}
