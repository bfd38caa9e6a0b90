package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/lineage-data/internal/config"
	"github.com/albapepper/lineage-data/internal/franchise"
	"github.com/albapepper/lineage-data/internal/validate"
)

const testCSV = `yearID,teamID,franchID,lgID,name,W,L
1957,ML1,ATL,NL,Milwaukee Braves,95,59
1966,ATL,ATL,NL,Atlanta Braves,85,77
1998,NYA,NYY,AL,New York Yankees,114,48
1914,CHF,CHH,FL,Chicago Whales,87,67
`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeTestData(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "teams.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o644))
	return &config.Config{DataPath: path, OutputDir: filepath.Join(dir, "out")}
}

func TestRun_EndToEnd(t *testing.T) {
	cfg := writeTestData(t)
	reg, err := Registry(cfg)
	require.NoError(t, err)

	engine := &validate.Engine{CurrentYear: 2025}
	result, err := Run(context.Background(), cfg, reg, engine, testLogger())
	require.NoError(t, err)

	require.Len(t, result.Annotated, 4)
	assert.Equal(t, "ATL", result.Annotated[0].CanonicalFranchise)
	assert.True(t, result.Annotated[0].PreRelocation)
	assert.Empty(t, result.Annotated[3].CanonicalFranchise)

	assert.Len(t, result.Findings, len(validate.Categories()))
	assert.Equal(t, 4, result.DatasetSummary.TotalSeasons)
	assert.Equal(t, 3, result.DatasetSummary.MappedSeasons)
	assert.Equal(t, 1, result.DatasetSummary.UnmappedSeasons)

	require.Len(t, result.Unmapped, 1)
	assert.Equal(t, "CHH", result.Unmapped[0].FranchiseID)

	assert.Contains(t, result.Summary(), "seasons=4")
}

func TestRun_LoadFailure(t *testing.T) {
	cfg := &config.Config{DataPath: filepath.Join(t.TempDir(), "absent.csv")}
	reg, err := franchise.Build()
	require.NoError(t, err)

	_, err = Run(context.Background(), cfg, reg, &validate.Engine{CurrentYear: 2025}, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load dataset")
}

func TestRegistry_YAMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	yaml := strings.Join([]string{
		"lineages:",
		"  - canonical_id: AAA",
		"    current_name: Alpha",
		"    identifiers: [AAA]",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	reg, err := Registry(&config.Config{RegistryPath: path})
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())

	// No override builds the full registry.
	reg, err = Registry(&config.Config{})
	require.NoError(t, err)
	assert.Equal(t, 30, reg.Len())
}

func TestWriteOutputs(t *testing.T) {
	cfg := writeTestData(t)
	reg, err := Registry(cfg)
	require.NoError(t, err)

	result, err := Run(context.Background(), cfg, reg, &validate.Engine{CurrentYear: 2025}, testLogger())
	require.NoError(t, err)
	require.NoError(t, WriteOutputs(cfg, result))

	for _, name := range []string{AnnotatedFile, SummariesFile, ReportFile} {
		_, err := os.Stat(filepath.Join(cfg.OutputDir, name))
		assert.NoError(t, err, name)
	}

	report, err := os.ReadFile(filepath.Join(cfg.OutputDir, ReportFile))
	require.NoError(t, err)
	assert.Contains(t, string(report), "DATA VALIDATION REPORT")
	assert.Contains(t, string(report), "DATASET SUMMARY")
}
