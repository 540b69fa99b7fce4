package eater

import (
	"context"

	"eater-scraper/config"
	"eater-scraper/models"
	"eater-scraper/services"
	"eater-scraper/utils"
)

// Scraper runs the fetch → extract → reconcile unit of work for one
// blog page. It holds no per-page state, so one Scraper serves every
// worker in a batch.
type Scraper struct {
	cfg        *config.Config
	fetcher    *Fetcher
	reconciler *services.Reconciler
}

func NewScraper(cfg *config.Config, reconciler *services.Reconciler) *Scraper {
	policy := &utils.RetryPolicy{
		MaxAttempts: cfg.MaxRetries,
		BaseDelay:   cfg.BackoffBase,
		Multiplier:  2,
		MaxDelay:    cfg.BackoffCap,
	}
	return &Scraper{
		cfg:        cfg,
		fetcher:    NewFetcher(cfg.RequestTimeout, policy),
		reconciler: reconciler,
	}
}

// ScrapeBlog fetches one page, extracts its restaurant records, and
// reconciles them into the store. Retry exhaustion on the fetch and
// any reconcile failure propagate to the caller; a page without
// expected markup just yields zero records.
func (s *Scraper) ScrapeBlog(ctx context.Context, pageURL string) ([]models.Record, error) {
	utils.Info("Starting to scrape: %s", pageURL)
	utils.RandomDelay(s.cfg.MinDelay, s.cfg.MaxDelay)

	body, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	records, err := ExtractRestaurants(body, pageURL)
	if err != nil {
		return nil, err
	}
	utils.Info("Found %d restaurants at %s", len(records), pageURL)

	if err := s.reconciler.ReconcileAll(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}
