package franchise

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRegistryYAML = `
lineages:
  - canonical_id: AAA
    current_name: Alpha
    founded_year: 1900
    identifiers: [AA1, AAA]
    relocations:
      - year: 1960
        from_city: Old Town
        to_city: New Town
        from_team_name: Old Town Alphas
        to_team_name: New Town Alphas
        identifier_changes: true
  - canonical_id: BBB
    current_name: Bravo
    founded_year: 1920
    identifiers: [BBB]
`

func TestLoadYAML(t *testing.T) {
	reg, err := LoadYAML([]byte(sampleRegistryYAML))
	require.NoError(t, err)

	assert.Equal(t, 2, reg.Len())
	lin, ok := reg.Lookup("AAA")
	require.True(t, ok)
	require.Len(t, lin.Relocations, 1)
	assert.Equal(t, 1960, lin.Relocations[0].Year)
	assert.Equal(t, "New Town", lin.Relocations[0].ToCity)
	assert.True(t, lin.Relocations[0].IdentifierChanges)

	res := NewResolver(reg)
	canonical, ok := res.Resolve("AA1")
	require.True(t, ok)
	assert.Equal(t, "AAA", canonical)
}

func TestLoadYAML_DuplicateIdentifier(t *testing.T) {
	doc := `
lineages:
  - canonical_id: AAA
    identifiers: [SAME]
  - canonical_id: BBB
    identifiers: [SAME]
`
	_, err := LoadYAML([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SAME")
}

func TestLoadYAML_Invalid(t *testing.T) {
	_, err := LoadYAML([]byte("lineages: [")) // malformed
	assert.Error(t, err)

	_, err = LoadYAML([]byte("lineages: []"))
	assert.Error(t, err)

	_, err = LoadYAML([]byte("lineages:\n  - current_name: Missing ID\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleRegistryYAML), 0o644))

	reg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
