package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportResult_Summary(t *testing.T) {
	r := &ExportResult{SeasonsUpserted: 3000, FindingsInserted: 12, SummariesUpserted: 30}
	assert.Equal(t, "seasons=3000 findings=12 summaries=30 errors=0", r.Summary())

	r.AddErrorf("upsert season %d/%s: %v", 1957, "ML1", assert.AnError)
	assert.Len(t, r.Errors, 1)
	assert.Contains(t, r.Summary(), "errors=1")
}
