package enrich

import (
	"testing"

	"github.com/stretchr/testify/require"

	"regions/internal/models"
	"regions/internal/regions"
)

func sampleTable(names ...string) *models.Table {
	t := &models.Table{Columns: []string{"year", "constituency", "party"}}
	for i, n := range names {
		t.Records = append(t.Records, models.Record{Line: i + 2, Values: []string{"2020", n, "PAP"}})
	}
	return t
}

func TestApply(t *testing.T) {
	in := sampleTable("Tampines", "Jurong", "Atlantis", "Bukit Timah")
	out := Apply(in, 1, regions.New())

	require.Equal(t, len(in.Records), out.Len())
	require.Equal(t, []string{"year", "constituency", "party", "region"}, out.Header())
	want := []models.Region{models.RegionNorthEast, models.RegionWest, models.RegionUnknown, models.RegionCentral}
	for i, rec := range out.Records {
		require.Equal(t, in.Records[i].Values[1], rec.Constituency)
		require.Equal(t, want[i], rec.Region)
		require.Equal(t, append(append([]string(nil), in.Records[i].Values...), string(want[i])), out.Values(i))
	}
}

func TestApplyLeavesInputUntouched(t *testing.T) {
	in := sampleTable("Jurong")
	out := Apply(in, 1, regions.New())
	_ = out.Values(0)
	require.Equal(t, []string{"2020", "Jurong", "PAP"}, in.Records[0].Values)
	require.Equal(t, []string{"year", "constituency", "party"}, in.Columns)
}

func TestUnknownConstituencies(t *testing.T) {
	out := Apply(sampleTable("Lemuria", "Jurong", "Atlantis", "Lemuria", "", "Atlantis"), 1, regions.New())
	require.Equal(t, []string{"Lemuria", "Atlantis", ""}, UnknownConstituencies(out))

	out = Apply(sampleTable("Jurong"), 1, regions.New())
	require.Empty(t, UnknownConstituencies(out))
}

func TestDistribution(t *testing.T) {
	out := Apply(sampleTable("Atlantis", "Jurong", "Tampines", "Clementi", "Pasir Ris", "Boon Lay"), 1, regions.New())
	require.Equal(t, []models.RegionCount{
		{Region: models.RegionWest, Count: 3},
		{Region: models.RegionNorthEast, Count: 2},
		{Region: models.RegionUnknown, Count: 1},
	}, Distribution(out))
}

func TestDistributionTiesKeepFirstSeenOrder(t *testing.T) {
	out := Apply(sampleTable("Yishun", "Bedok", "Atlantis", "Bedok", "Yishun", "Atlantis"), 1, regions.New())
	require.Equal(t, []models.RegionCount{
		{Region: models.RegionNorth, Count: 2},
		{Region: models.RegionEast, Count: 2},
		{Region: models.RegionUnknown, Count: 2},
	}, Distribution(out))
}

func TestOutputPath(t *testing.T) {
	cases := map[string]string{
		"votes.csv":          "votes_with_regions.csv",
		"data/ge2020.csv":    "data/ge2020_with_regions.csv",
		"votes":              "votes_with_regions.csv",
		"votes.txt":          "votes.txt_with_regions.csv",
		"votes.csv.bak":      "votes.csv.bak_with_regions.csv",
		"my.csv.files/a.csv": "my.csv.files/a_with_regions.csv",
	}
	for in, want := range cases {
		require.Equal(t, want, OutputPath(in), in)
	}
}
