// Package enrich adds a region column to constituency result tables.
package enrich

import (
	"sort"
	"strings"

	"regions/internal/models"
)

// OutputSuffix replaces the .csv extension of the input path when no output
// path is given
const OutputSuffix = "_with_regions.csv"

// RegionLookup resolves a constituency name to its region
type RegionLookup interface {
	Lookup(name string) (models.Region, bool)
}

// Apply derives the region of every row of table. column is the index of the
// constituency column. Rows keep their order and values.
func Apply(table *models.Table, column int, regions RegionLookup) *models.EnrichedTable {
	out := &models.EnrichedTable{
		Columns: table.Columns,
		Records: make([]models.EnrichedRecord, len(table.Records)),
	}
	for i, rec := range table.Records {
		name := rec.Values[column]
		region, ok := regions.Lookup(name)
		if !ok {
			region = models.RegionUnknown
		}
		out.Records[i] = models.EnrichedRecord{
			Record:       rec,
			Constituency: name,
			Region:       region,
		}
	}
	return out
}

// UnknownConstituencies returns the distinct unmapped constituency names in
// first-seen order
func UnknownConstituencies(table *models.EnrichedTable) []string {
	var names []string
	seen := make(map[string]bool)
	for _, rec := range table.Records {
		if rec.Region != models.RegionUnknown || seen[rec.Constituency] {
			continue
		}
		seen[rec.Constituency] = true
		names = append(names, rec.Constituency)
	}
	return names
}

// Distribution counts rows per region, largest first. Equal counts keep the
// order in which their regions first appear.
func Distribution(table *models.EnrichedTable) []models.RegionCount {
	var counts []models.RegionCount
	index := make(map[models.Region]int)
	for _, rec := range table.Records {
		i, ok := index[rec.Region]
		if !ok {
			i = len(counts)
			index[rec.Region] = i
			counts = append(counts, models.RegionCount{Region: rec.Region})
		}
		counts[i].Count++
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// OutputPath derives the default output path from the input path
func OutputPath(input string) string {
	return strings.TrimSuffix(input, ".csv") + OutputSuffix
}
