package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"eater-scraper/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTSVWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "restaurants.tsv")
	desc := "A fantastic test restaurant."

	w := NewTSVWriter(path)
	err := w.Write([]models.Record{
		{
			Name:        "Test Restaurant",
			Description: &desc,
			Address:     "123 Test St, Test City, TC 12345",
			Source:      "eater",
			SourceURL:   "https://eater.com/test-restaurant#test-slug",
		},
		{
			Name:      "No Description Spot",
			Address:   "42 Plain Ave",
			Source:    "eater",
			SourceURL: "https://eater.com/plain",
		},
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name\tdescription\tsource\tsource_url\taddress", lines[0])
	assert.Equal(t, "Test Restaurant\tA fantastic test restaurant.\teater\thttps://eater.com/test-restaurant#test-slug\t123 Test St, Test City, TC 12345", lines[1])
	assert.Equal(t, "No Description Spot\t\teater\thttps://eater.com/plain\t42 Plain Ave", lines[2])
}

func TestTSVWriter_EmptyRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurants.tsv")

	err := NewTSVWriter(path).Write(nil)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no file should be created for an empty batch")
}
