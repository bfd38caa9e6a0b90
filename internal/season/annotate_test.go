package season

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/lineage-data/internal/franchise"
)

func testRegistry(t *testing.T) *franchise.Registry {
	t.Helper()
	reg, err := franchise.BuildFrom([]franchise.FranchiseLineage{
		{
			CanonicalID: "AAA",
			CurrentName: "Alpha",
			Identifiers: []string{"AA1", "AA2", "AAA"},
			Relocations: []franchise.RelocationEvent{
				{Year: 1953, FromCity: "Old Town", ToCity: "Mid Town"},
				{Year: 1966, FromCity: "Mid Town", ToCity: "New Town"},
			},
		},
		{
			CanonicalID: "BBB",
			CurrentName: "Bravo",
			Identifiers: []string{"BBB"},
		},
	})
	require.NoError(t, err)
	return reg
}

func rec(year int, franchID string) Record {
	return Record{Year: year, TeamID: franchID, FranchiseID: franchID, League: "XL", Wins: 81, Losses: 81}
}

func TestAnnotate_StableFranchise(t *testing.T) {
	reg := testRegistry(t)
	out := Annotate([]Record{rec(1950, "BBB"), rec(1970, "BBB")}, reg)

	require.Len(t, out, 2)
	for _, a := range out {
		assert.Equal(t, "BBB", a.CanonicalFranchise)
		assert.False(t, a.IsRelocated)
		assert.False(t, a.PreRelocation)
		assert.False(t, a.PostRelocation)
		assert.Zero(t, a.RelocationYear)
		assert.Zero(t, a.YearsSinceRelocation)
		assert.Equal(t, EraNone, a.RelocationEra)
	}
}

func TestAnnotate_PrimarySplitAndEras(t *testing.T) {
	reg := testRegistry(t)

	// Two relocations (1953, 1966): 1966 is the primary split point.
	cases := []struct {
		year      int
		pre, post bool
		since     int
		era       string
	}{
		{1940, true, false, 0, EraNone},
		{1950, true, false, 0, "around_1953"},
		{1955, true, false, 0, "around_1953"},
		{1960, true, false, 0, EraNone},
		// 1963-1965 sit in the 1966 window only; 1965 is pre-split.
		{1965, true, false, 0, "around_1966"},
		{1966, false, true, 0, "around_1966"},
		{1970, false, true, 4, EraNone},
	}
	for _, tc := range cases {
		out := Annotate([]Record{rec(tc.year, "AA1")}, reg)
		a := out[0]
		assert.Equal(t, "AAA", a.CanonicalFranchise, "year %d", tc.year)
		assert.True(t, a.IsRelocated, "year %d", tc.year)
		assert.Equal(t, 1966, a.RelocationYear, "year %d", tc.year)
		assert.Equal(t, tc.pre, a.PreRelocation, "year %d pre", tc.year)
		assert.Equal(t, tc.post, a.PostRelocation, "year %d post", tc.year)
		assert.Equal(t, tc.since, a.YearsSinceRelocation, "year %d since", tc.year)
		assert.Equal(t, tc.era, a.RelocationEra, "year %d era", tc.year)
	}
}

func TestAnnotate_OverlappingErasLastWins(t *testing.T) {
	reg, err := franchise.BuildFrom([]franchise.FranchiseLineage{{
		CanonicalID: "CCC",
		Identifiers: []string{"CCC"},
		Relocations: []franchise.RelocationEvent{
			{Year: 1960},
			{Year: 1964}, // windows overlap on 1961-1963
		},
	}})
	require.NoError(t, err)

	out := Annotate([]Record{rec(1962, "CCC")}, reg)
	assert.Equal(t, "around_1964", out[0].RelocationEra)
}

func TestAnnotate_PartitionCompleteness(t *testing.T) {
	reg := testRegistry(t)
	var records []Record
	for year := 1940; year <= 1990; year++ {
		records = append(records, rec(year, "AA2"))
	}
	out := Annotate(records, reg)
	for _, a := range out {
		assert.True(t, a.PreRelocation != a.PostRelocation,
			"year %d must be exactly one of pre/post", a.Year)
	}
}

func TestAnnotate_UnresolvedPassThrough(t *testing.T) {
	reg := testRegistry(t)
	out := Annotate([]Record{rec(1950, "ZZZ")}, reg)

	require.Len(t, out, 1)
	a := out[0]
	assert.Empty(t, a.CanonicalFranchise)
	assert.False(t, a.IsRelocated)
	assert.Equal(t, EraNone, a.RelocationEra)
	// The raw record survives untouched.
	assert.Equal(t, "ZZZ", a.FranchiseID)
	assert.Equal(t, 81, a.Wins)
}

func TestAnnotate_Idempotent(t *testing.T) {
	reg := testRegistry(t)
	records := []Record{rec(1950, "AA1"), rec(1966, "AA2"), rec(1980, "AAA"), rec(1955, "BBB"), rec(2000, "ZZZ")}

	first := Annotate(records, reg)
	second := Annotate(records, reg)
	assert.Equal(t, first, second)
}

func TestRecord_Derived(t *testing.T) {
	r := Record{Wins: 116, Losses: 36}
	assert.Equal(t, 152, r.Games())
	assert.InDelta(t, 0.7631, r.WinPct(), 0.0001)

	empty := Record{}
	assert.Zero(t, empty.WinPct())
}
