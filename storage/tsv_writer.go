package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"eater-scraper/models"
	"eater-scraper/utils"
)

// TSVWriter dumps extracted records to a tab-separated file for
// inspection. Persistence proper goes through the Store; this is the
// side-channel export.
type TSVWriter struct {
	path string
}

func NewTSVWriter(path string) *TSVWriter {
	return &TSVWriter{path: path}
}

// Write saves all records to the TSV file, creating the output
// directory if it does not exist.
//
// Columns: name, description, source, source_url, address
func (w *TSVWriter) Write(records []models.Record) error {
	if len(records) == 0 {
		utils.Warn("No records to write")
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return fmt.Errorf("could not create output dir: %w", err)
	}

	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer file.Close()

	// csv.Writer with a tab separator handles quoting and embedded tabs
	writer := csv.NewWriter(file)
	writer.Comma = '\t'
	defer writer.Flush() // IMPORTANT — must flush or data stays in buffer

	writer.Write([]string{"name", "description", "source", "source_url", "address"})

	for _, r := range records {
		description := ""
		if r.Description != nil {
			description = *r.Description
		}
		writer.Write([]string{
			r.Name,
			description,
			r.Source,
			r.SourceURL,
			r.Address,
		})
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("tsv write error: %w", err)
	}

	utils.Success("Saved %d records → %s", len(records), w.path)
	return nil
}
