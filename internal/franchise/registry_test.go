package franchise

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLineages() []FranchiseLineage {
	return []FranchiseLineage{
		{
			CanonicalID: "AAA",
			CurrentName: "Alpha",
			FoundedYear: 1900,
			Identifiers: []string{"AA1", "AA2", "AAA"},
			Relocations: []RelocationEvent{
				{Year: 1953, FromCity: "Old Town", ToCity: "Mid Town", IdentifierChanges: true},
				{Year: 1966, FromCity: "Mid Town", ToCity: "New Town", IdentifierChanges: true},
			},
		},
		{
			CanonicalID: "BBB",
			CurrentName: "Bravo",
			FoundedYear: 1901,
			Identifiers: []string{"BBB"},
		},
	}
}

func TestBuildFrom_IdentifierLookup(t *testing.T) {
	reg, err := BuildFrom(testLineages())
	require.NoError(t, err)

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"AAA", "BBB"}, reg.CanonicalIDs())
	assert.Equal(t, []string{"AAA"}, reg.RelocatedIDs())

	lin, ok := reg.Lookup("AAA")
	require.True(t, ok)
	assert.Equal(t, "Alpha", lin.CurrentName)
	assert.True(t, lin.Relocated())

	_, ok = reg.Lookup("ZZZ")
	assert.False(t, ok)
}

func TestBuildFrom_DuplicateIdentifierFatal(t *testing.T) {
	lineages := testLineages()
	// BBB claims an identifier that already belongs to AAA.
	lineages[1].Identifiers = append(lineages[1].Identifiers, "AA1")

	_, err := BuildFrom(lineages)
	require.Error(t, err)

	var dup *DuplicateIdentifierError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "AA1", dup.Identifier)
	assert.Equal(t, "AAA", dup.First)
	assert.Equal(t, "BBB", dup.Second)
}

func TestBuildFrom_DuplicateCanonicalID(t *testing.T) {
	lineages := testLineages()
	lineages[1].CanonicalID = "AAA"
	lineages[1].Identifiers = []string{"BBB"}

	_, err := BuildFrom(lineages)
	assert.Error(t, err)
}

func TestPrimaryRelocation(t *testing.T) {
	lin := testLineages()[0]
	primary, ok := lin.PrimaryRelocation()
	require.True(t, ok)
	assert.Equal(t, 1966, primary.Year)
	assert.Equal(t, []int{1953, 1966}, lin.RelocationYears())

	stable := testLineages()[1]
	_, ok = stable.PrimaryRelocation()
	assert.False(t, ok)
}

func TestResolver_Totality(t *testing.T) {
	reg, err := BuildFrom(testLineages())
	require.NoError(t, err)
	res := NewResolver(reg)

	// Every identifier in some lineage resolves to that lineage.
	for _, id := range reg.CanonicalIDs() {
		lin, _ := reg.Lookup(id)
		for _, raw := range lin.Identifiers {
			canonical, ok := res.Resolve(raw)
			require.True(t, ok, "identifier %s should resolve", raw)
			assert.Equal(t, id, canonical)
		}
	}

	// Identifiers in no lineage resolve to absent.
	_, ok := res.Resolve("XXX")
	assert.False(t, ok)
	assert.False(t, res.Known("XXX"))
	assert.True(t, res.Known("AA2"))
}

func TestBuild_MLBTable(t *testing.T) {
	reg, err := Build()
	require.NoError(t, err)
	assert.Equal(t, 30, reg.Len())

	relocated := reg.RelocatedIDs()
	assert.Len(t, relocated, 10)
	assert.Contains(t, relocated, "ATL")
	assert.Contains(t, relocated, "WSN")
	assert.NotContains(t, relocated, "ANA")
	assert.NotContains(t, relocated, "CHC")

	// The Braves lineage carries both relocations and all three era codes.
	atl, ok := reg.Lookup("ATL")
	require.True(t, ok)
	assert.Equal(t, []int{1953, 1966}, atl.RelocationYears())
	assert.True(t, atl.HasIdentifier("BSN"))
	assert.True(t, atl.HasIdentifier("ML1"))

	res := NewResolver(reg)
	canonical, ok := res.Resolve("SE1")
	require.True(t, ok)
	assert.Equal(t, "MIL", canonical)
}
