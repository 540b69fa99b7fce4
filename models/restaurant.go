package models

import "time"

// Restaurant is the persisted aggregate, keyed in practice by its address:
// the reconciler guarantees at most one row per distinct address value.
type Restaurant struct {
	ID          int64
	Name        string
	Description *string
	Address     string
	Source      string
	SourceURL   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RestaurantLLMInfo holds optional AI-derived classification fields,
// one-to-one with a Restaurant. Not produced by the scrape pipeline.
type RestaurantLLMInfo struct {
	RestaurantID    int64
	Cuisine         *string
	Vibe            *string
	LLMModelVersion *string
	GeneratedAt     time.Time
}

// RawListing is one JSON-LD item as it appears on the page.
// It lives only for the duration of a single page-processing pass.
type RawListing struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Record is the normalized output of the page pipeline and the input to
// reconciliation. Records without an address never reach this type.
type Record struct {
	Name        string
	Description *string
	Address     string
	Source      string
	SourceURL   string
}

// ScrapeResult is what a worker hands back for one URL.
type ScrapeResult struct {
	URL     string
	Records []Record
	Err     error
}
