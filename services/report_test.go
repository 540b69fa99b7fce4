package services

import (
	"testing"

	"eater-scraper/models"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReport(t *testing.T) {
	desc := "Great."
	records := []models.Record{
		{Name: "A", Address: "1 First St", Source: "eater", Description: &desc},
		{Name: "B", Address: "2 Second St", Source: "eater"},
		{Name: "C", Address: "1 First St", Source: "infatuation"},
		{Name: "D", Address: "3 Third St"},
	}

	report := GenerateReport(records)
	assert.Equal(t, 4, report.TotalRecords)
	assert.Equal(t, 1, report.WithDescription)
	assert.Equal(t, 3, report.DistinctAddrs)
	assert.Equal(t, 2, report.RecordsBySource["eater"])
	assert.Equal(t, 1, report.RecordsBySource["infatuation"])
	assert.Equal(t, 1, report.RecordsBySource["unknown"])
}

func TestGenerateReport_Empty(t *testing.T) {
	report := GenerateReport(nil)
	assert.Zero(t, report.TotalRecords)
	assert.Empty(t, report.RecordsBySource)
}
