// Package lahman loads the Lahman-format per-team-season table from a local
// file or URL and persists pipeline outputs. It is the I/O boundary around
// the core: parsing is deliberately tolerant (bad cells become null counts
// for the validation engine) while a missing required column is a hard error
// at load time.
package lahman

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/albapepper/lineage-data/internal/season"
	"github.com/albapepper/lineage-data/internal/validate"
)

// SchemaError reports required columns missing from the input table.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("input table is missing required columns: %s", strings.Join(e.Missing, ", "))
}

var httpClient = &http.Client{Timeout: 30 * time.Second}

// Load reads the season table from a local path or an http(s) URL.
func Load(ctx context.Context, pathOrURL string) (*validate.Dataset, error) {
	r, err := open(ctx, pathOrURL)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Parse(r)
}

func open(ctx context.Context, pathOrURL string) (io.ReadCloser, error) {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pathOrURL, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		resp, err := httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("download %s: %w", pathOrURL, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("download %s: status %d", pathOrURL, resp.StatusCode)
		}
		return resp.Body, nil
	}

	f, err := os.Open(pathOrURL)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", pathOrURL, err)
	}
	return f, nil
}

// Parse reads a CSV season table. The header is matched by name, so extra
// columns (parks, attendance, ...) are ignored.
func Parse(r io.Reader) (*validate.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}

	var missing []string
	for _, col := range validate.RequiredColumns() {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	ds := &validate.Dataset{
		Columns:    header,
		NullCounts: make(map[string]int),
	}

	hasGames := ds.HasColumn(validate.ColGames)
	hasWinPct := ds.HasColumn(validate.ColWinPct)

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		cell := func(col string) string {
			i := index[col]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		rec := season.Record{
			TeamID:      cellString(ds, cell, validate.ColTeamID),
			FranchiseID: cellString(ds, cell, validate.ColFranchID),
			League:      cellString(ds, cell, validate.ColLeague),
			Name:        cellString(ds, cell, validate.ColName),
		}
		rec.Year = cellInt(ds, cell, validate.ColYear)
		rec.Wins = cellInt(ds, cell, validate.ColWins)
		rec.Losses = cellInt(ds, cell, validate.ColLosses)

		if hasGames {
			if g, ok := parseInt(cell(validate.ColGames)); ok {
				rec.StoredGames = &g
			} else {
				ds.NullCounts[validate.ColGames]++
			}
		}
		if hasWinPct {
			if pct, ok := parseFloat(cell(validate.ColWinPct)); ok {
				rec.StoredWinPct = &pct
			} else {
				ds.NullCounts[validate.ColWinPct]++
			}
		}

		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}

func cellString(ds *validate.Dataset, cell func(string) string, col string) string {
	v := cell(col)
	if v == "" {
		ds.NullCounts[col]++
	}
	return v
}

func cellInt(ds *validate.Dataset, cell func(string) string, col string) int {
	n, ok := parseInt(cell(col))
	if !ok {
		ds.NullCounts[col]++
	}
	return n
}

func parseInt(v string) (int, bool) {
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseFloat(v string) (float64, bool) {
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
