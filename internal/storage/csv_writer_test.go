package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"regions/internal/models"
)

func enrichedTable() *models.EnrichedTable {
	return &models.EnrichedTable{
		Columns: []string{"year", "constituency", "vote_count"},
		Records: []models.EnrichedRecord{
			{
				Record:       models.Record{Line: 2, Values: []string{"2020", "Tampines", "1,024"}},
				Constituency: "Tampines",
				Region:       models.RegionNorthEast,
			},
			{
				Record:       models.Record{Line: 3, Values: []string{"2020", "Atlantis", "007"}},
				Constituency: "Atlantis",
				Region:       models.RegionUnknown,
			},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "votes_with_regions.csv")
	require.NoError(t, WriteCSV(path, enrichedTable()))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	expected := "year,constituency,vote_count,region\n" +
		"2020,Tampines,\"1,024\",North-East\n" +
		"2020,Atlantis,007,Unknown\n"
	require.Equal(t, expected, string(b))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file left behind")
}

func TestWriteCSVReplacesExistingRegionColumn(t *testing.T) {
	table := &models.EnrichedTable{
		Columns: []string{"region", "constituency"},
		Records: []models.EnrichedRecord{{
			Record:       models.Record{Line: 2, Values: []string{"old", "Jurong"}},
			Constituency: "Jurong",
			Region:       models.RegionWest,
		}},
	}
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(path, table))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "region,constituency\nWest,Jurong\n", string(b))
}

func TestWriteCSVMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")
	require.Error(t, WriteCSV(path, enrichedTable()))
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}
