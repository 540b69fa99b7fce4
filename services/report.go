package services

import (
	"fmt"
	"sort"

	"eater-scraper/models"
)

type Report struct {
	TotalRecords    int
	WithDescription int
	RecordsBySource map[string]int
	DistinctAddrs   int
}

// GenerateReport computes batch-level ingest stats over the extracted
// records: how many came out, where they came from, and how complete
// they are.
func GenerateReport(records []models.Record) Report {
	report := Report{
		TotalRecords:    len(records),
		RecordsBySource: make(map[string]int),
	}

	addrs := make(map[string]bool)
	for _, r := range records {
		source := r.Source
		if source == "" {
			source = "unknown"
		}
		report.RecordsBySource[source]++

		if r.Description != nil && *r.Description != "" {
			report.WithDescription++
		}
		addrs[r.Address] = true
	}
	report.DistinctAddrs = len(addrs)

	return report
}

func PrintReport(report Report) {
	fmt.Println()
	fmt.Println("┌───────────────────────────────┬──────────────────────────────┐")
	fmt.Println("│                    Ingest Summary                            │")
	fmt.Println("├───────────────────────────────┼──────────────────────────────┤")
	fmt.Printf("│ %-29s │ %-28d │\n", "Records Extracted", report.TotalRecords)
	fmt.Printf("│ %-29s │ %-28d │\n", "With Description", report.WithDescription)
	fmt.Printf("│ %-29s │ %-28d │\n", "Distinct Addresses", report.DistinctAddrs)
	fmt.Println("└───────────────────────────────┴──────────────────────────────┘")

	fmt.Println()
	fmt.Println("┌──────────────────────────────────────────────┬───────────────┐")
	fmt.Println("│ Records per Source                           │ Count         │")
	fmt.Println("├──────────────────────────────────────────────┼───────────────┤")
	for _, source := range sortedSources(report.RecordsBySource) {
		fmt.Printf("│ %-44s │ %-13d │\n", source, report.RecordsBySource[source])
	}
	fmt.Println("└──────────────────────────────────────────────┴───────────────┘")
}

func sortedSources(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
