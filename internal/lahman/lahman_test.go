package lahman

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/lineage-data/internal/season"
	"github.com/albapepper/lineage-data/internal/summary"
	"github.com/albapepper/lineage-data/internal/validate"
)

const sampleCSV = `yearID,teamID,franchID,lgID,divID,name,W,L,G,W_pct
1957,ML1,ATL,NL,,Milwaukee Braves,95,59,154,0.617
1966,ATL,ATL,NL,W,Atlanta Braves,85,77,162,0.525
1998,NYA,NYY,AL,E,New York Yankees,114,48,162,0.704
`

func TestParse_Sample(t *testing.T) {
	ds, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	require.Len(t, ds.Records, 3)
	assert.True(t, ds.HasColumn(validate.ColGames))
	assert.True(t, ds.HasColumn(validate.ColWinPct))
	assert.Empty(t, ds.NullCounts)

	braves := ds.Records[0]
	assert.Equal(t, 1957, braves.Year)
	assert.Equal(t, "ML1", braves.TeamID)
	assert.Equal(t, "ATL", braves.FranchiseID)
	assert.Equal(t, "NL", braves.League)
	assert.Equal(t, "Milwaukee Braves", braves.Name)
	assert.Equal(t, 95, braves.Wins)
	assert.Equal(t, 59, braves.Losses)
	require.NotNil(t, braves.StoredGames)
	assert.Equal(t, 154, *braves.StoredGames)
	require.NotNil(t, braves.StoredWinPct)
	assert.InDelta(t, 0.617, *braves.StoredWinPct, 1e-9)
}

func TestParse_MissingRequiredColumn(t *testing.T) {
	_, err := Parse(strings.NewReader("yearID,teamID,lgID,name,W,L\n1957,ML1,NL,Milwaukee Braves,95,59\n"))
	require.Error(t, err)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"franchID"}, schemaErr.Missing)
}

func TestParse_NullCounting(t *testing.T) {
	in := strings.Join([]string{
		"yearID,teamID,franchID,lgID,name,W,L,G",
		"1957,ML1,ATL,NL,Milwaukee Braves,,59,154",
		"bad,ML1,ATL,NL,Milwaukee Braves,95,59,",
		"1959,,ATL,NL,Milwaukee Braves,86,70,156",
	}, "\n")

	ds, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, ds.Records, 3)

	assert.Equal(t, 1, ds.NullCounts[validate.ColWins])
	assert.Equal(t, 1, ds.NullCounts[validate.ColYear])
	assert.Equal(t, 1, ds.NullCounts[validate.ColTeamID])
	assert.Equal(t, 1, ds.NullCounts[validate.ColGames])

	// Unparseable cells fall back to zero values; the rows still load.
	assert.Zero(t, ds.Records[0].Wins)
	assert.Zero(t, ds.Records[1].Year)
	assert.Nil(t, ds.Records[1].StoredGames)
}

func TestLoad_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	ds, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, ds.Records, 3)
}

func TestLoad_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	ds, err := Load(context.Background(), srv.URL+"/teams.csv")
	require.NoError(t, err)
	assert.Len(t, ds.Records, 3)
}

func TestLoad_URLStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := Load(context.Background(), srv.URL+"/missing.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestWriteAnnotated_RoundTrip(t *testing.T) {
	annotated := []season.Annotated{
		{
			Record: season.Record{
				Year: 1957, TeamID: "ML1", FranchiseID: "ATL", League: "NL",
				Name: "Milwaukee Braves", Wins: 95, Losses: 59,
			},
			CanonicalFranchise: "ATL",
			IsRelocated:        true,
			RelocationYear:     1966,
			PreRelocation:      true,
			RelocationEra:      season.EraNone,
		},
		{
			Record: season.Record{
				Year: 1968, TeamID: "ATL", FranchiseID: "ATL", League: "NL",
				Name: "Atlanta Braves", Wins: 81, Losses: 81,
			},
			CanonicalFranchise:   "ATL",
			IsRelocated:          true,
			RelocationYear:       1966,
			PostRelocation:       true,
			YearsSinceRelocation: 2,
			RelocationEra:        "around_1966",
		},
	}

	path := filepath.Join(t.TempDir(), "annotated.csv")
	require.NoError(t, WriteAnnotated(path, annotated))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "canonical_franchise")
	assert.Contains(t, lines[0], "relocation_era")
	assert.Equal(t, "1957,ML1,ATL,NL,Milwaukee Braves,95,59,154,0.617,ATL,true,1966,true,false,,none", lines[1])
	assert.Equal(t, "1968,ATL,ATL,NL,Atlanta Braves,81,81,162,0.500,ATL,true,1966,false,true,2,around_1966", lines[2])
}

func TestWriteSummaries(t *testing.T) {
	summaries := []summary.FranchiseSummary{
		{
			CanonicalID:    "ATL",
			CurrentName:    "Atlanta Braves",
			RelocationYear: 1966,
			Seasons:        24,
			Pre:            summary.SideStats{Seasons: 12, MeanWinPct: 0.5432},
			Post:           summary.SideStats{Seasons: 12, MeanWinPct: 0.5012},
			Delta:          -0.042,
			HasDelta:       true,
			EffectSize:     -0.61,
			HasEffect:      true,
			EffectBand:     summary.BandMedium,
			Sufficient:     true,
		},
		{CanonicalID: "CHC", CurrentName: "Chicago Cubs", Seasons: 140},
	}

	path := filepath.Join(t.TempDir(), "summaries.csv")
	require.NoError(t, WriteSummaries(path, summaries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "ATL,Atlanta Braves,1966,24,12,12,0.5432,0.5012,-0.0420,-0.6100,medium,true", lines[1])
	// Stable franchise leaves the relocation and effect columns empty.
	assert.Equal(t, "CHC,Chicago Cubs,,140,0,0,0.0000,0.0000,,,,false", lines[2])
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, WriteReport(path, "DATA VALIDATION REPORT\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "DATA VALIDATION REPORT\n", string(data))
}
