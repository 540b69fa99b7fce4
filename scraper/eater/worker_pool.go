package eater

import (
	"context"
	"sync"

	"eater-scraper/config"
	"eater-scraper/models"
	"eater-scraper/utils"
)

// WorkerPool runs the scrape unit for many URLs under a fixed number
// of workers. One bad page never aborts the batch: each unit's failure
// is converted to a logged result at the worker boundary.
type WorkerPool struct {
	scraper *Scraper
	cfg     *config.Config
	jobs    chan string
	results chan models.ScrapeResult
	wg      sync.WaitGroup
}

func NewWorkerPool(scraper *Scraper, cfg *config.Config) *WorkerPool {
	return &WorkerPool{
		scraper: scraper,
		cfg:     cfg,
	}
}

// Run scrapes every URL and blocks until all units have completed and
// the pool is drained; nothing keeps running after it returns. The
// returned records are the successfully extracted ones, in completion
// order across URLs (no ordering guarantee between pages).
func (p *WorkerPool) Run(ctx context.Context, urls []string) []models.Record {
	if len(urls) == 0 {
		utils.Warn("No URLs to scrape")
		return nil
	}

	p.jobs = make(chan string, len(urls))
	p.results = make(chan models.ScrapeResult, len(urls))

	workerCount := p.cfg.MaxWorkers
	if len(urls) < workerCount {
		workerCount = len(urls)
	}

	p.wg.Add(workerCount)
	for i := 1; i <= workerCount; i++ {
		go p.worker(ctx)
	}

	for _, url := range urls {
		p.jobs <- url
	}
	close(p.jobs)

	go func() {
		p.wg.Wait()
		close(p.results)
	}()

	return p.collect()
}

func (p *WorkerPool) worker(ctx context.Context) {
	defer p.wg.Done()

	for pageURL := range p.jobs {
		records, err := p.scraper.ScrapeBlog(ctx, pageURL)

		p.results <- models.ScrapeResult{
			URL:     pageURL,
			Records: records,
			Err:     err,
		}
	}
}

func (p *WorkerPool) collect() []models.Record {
	var all []models.Record
	succeeded, failed := 0, 0

	for result := range p.results {
		if result.Err != nil {
			utils.Error("%s failed: %v", result.URL, result.Err)
			failed++
			continue
		}
		utils.Success("Processed %d restaurants from %s", len(result.Records), result.URL)
		succeeded++
		all = append(all, result.Records...)
	}

	utils.Success("Pages processed: %d | Failed: %d | Restaurants: %d", succeeded, failed, len(all))
	return all
}
