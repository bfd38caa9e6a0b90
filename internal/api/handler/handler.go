// Package handler provides HTTP handlers for all API endpoints. Handlers
// serve the in-memory pipeline result; the database pool is only consulted
// for health checks when exports are configured.
package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/lineage-data/internal/api/respond"
	"github.com/albapepper/lineage-data/internal/config"
	"github.com/albapepper/lineage-data/internal/db"
	"github.com/albapepper/lineage-data/internal/franchise"
	"github.com/albapepper/lineage-data/internal/pipeline"
	"github.com/albapepper/lineage-data/internal/season"
	"github.com/albapepper/lineage-data/internal/summary"
	"github.com/albapepper/lineage-data/internal/validate"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	result *pipeline.Result
	reg    *franchise.Registry
	pool   *db.Pool // nil when no database is configured
	cfg    *config.Config
}

// New creates a Handler with shared dependencies. pool may be nil.
func New(result *pipeline.Result, reg *franchise.Registry, pool *db.Pool, cfg *config.Config) *Handler {
	return &Handler{result: result, reg: reg, pool: pool, cfg: cfg}
}

// Root serves API info at /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Franchise Lineage API",
		"version": "1.0.0",
		"status":  "running",
		"endpoints": []string{
			"/api/v1/summary",
			"/api/v1/report",
			"/api/v1/findings",
			"/api/v1/franchises",
			"/api/v1/franchises/{id}",
			"/api/v1/unmapped",
		},
	})
}

// HealthCheck reports process liveness.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if h.pool == nil {
		respond.WriteError(w, http.StatusServiceUnavailable, "NO_DATABASE", "No database configured")
		return
	}
	if err := h.pool.HealthCheck(r.Context()); err != nil {
		respond.WriteErrorDetail(w, http.StatusServiceUnavailable, "DB_UNREACHABLE", "Database health check failed", err.Error())
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// GetSummary returns the dataset-level summary.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, summaryJSON(h.result.DatasetSummary))
}

// GetReport returns the rendered text validation report.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	respond.WriteText(w, http.StatusOK, h.result.Report())
}

// GetFindings returns validation findings grouped by category.
func (h *Handler) GetFindings(w http.ResponseWriter, r *http.Request) {
	out := make(map[string][]findingJSON, len(h.result.Findings))
	for _, category := range validate.Categories() {
		findings := h.result.Findings[category]
		rows := make([]findingJSON, 0, len(findings))
		for _, f := range findings {
			rows = append(rows, findingJSON{
				Check:    f.Check,
				Severity: string(f.Severity),
				Message:  f.Message,
			})
		}
		out[category] = rows
	}
	respond.WriteJSONObject(w, http.StatusOK, out)
}

// GetFranchises returns every per-franchise summary.
func (h *Handler) GetFranchises(w http.ResponseWriter, r *http.Request) {
	rows := make([]franchiseJSON, 0, len(h.result.Summaries))
	for _, s := range h.result.Summaries {
		rows = append(rows, franchiseToJSON(s))
	}
	respond.WriteJSONObject(w, http.StatusOK, rows)
}

// GetFranchise returns one franchise summary with its seasons. The id may be
// a canonical id or any historical identifier.
func (h *Handler) GetFranchise(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	res := franchise.NewResolver(h.reg)
	canonicalID, ok := res.Resolve(raw)
	if !ok {
		respond.WriteError(w, http.StatusNotFound, "UNKNOWN_FRANCHISE", "No lineage for identifier "+raw)
		return
	}

	for _, s := range h.result.Summaries {
		if s.CanonicalID != canonicalID {
			continue
		}
		out := struct {
			franchiseJSON
			Seasons []seasonJSON `json:"seasons"`
		}{franchiseJSON: franchiseToJSON(s)}
		for _, a := range h.result.Annotated {
			if a.CanonicalFranchise == canonicalID {
				out.Seasons = append(out.Seasons, seasonToJSON(a))
			}
		}
		respond.WriteJSONObject(w, http.StatusOK, out)
		return
	}
	respond.WriteError(w, http.StatusNotFound, "NO_DATA", "No seasons loaded for franchise "+canonicalID)
}

// GetUnmapped returns the unmapped identifier analysis.
func (h *Handler) GetUnmapped(w http.ResponseWriter, r *http.Request) {
	rows := make([]unmappedJSON, 0, len(h.result.Unmapped))
	for _, g := range h.result.Unmapped {
		rows = append(rows, unmappedJSON{
			FranchiseID:    g.FranchiseID,
			Seasons:        g.Seasons,
			FirstYear:      g.FirstYear,
			LastYear:       g.LastYear,
			Names:          g.Names,
			Leagues:        g.Leagues,
			Classification: g.Classification,
		})
	}
	respond.WriteJSONObject(w, http.StatusOK, rows)
}

// --------------------------------------------------------------------------
// JSON shapes
// --------------------------------------------------------------------------

type findingJSON struct {
	Check    string `json:"check"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type franchiseJSON struct {
	CanonicalID     string   `json:"canonical_id"`
	CurrentName     string   `json:"current_name"`
	Identifiers     []string `json:"identifiers"`
	Seasons         int      `json:"seasons"`
	FirstYear       int      `json:"first_year"`
	LastYear        int      `json:"last_year"`
	RelocationYear  *int     `json:"relocation_year,omitempty"`
	PreSeasons      int      `json:"pre_seasons"`
	PostSeasons     int      `json:"post_seasons"`
	MeanWinPct      float64  `json:"mean_win_pct"`
	PreMeanWinPct   float64  `json:"pre_mean_win_pct"`
	PostMeanWinPct  float64  `json:"post_mean_win_pct"`
	WinPctChange    *float64 `json:"win_pct_change,omitempty"`
	EffectSize      *float64 `json:"effect_size,omitempty"`
	EffectMagnitude string   `json:"effect_magnitude,omitempty"`
	SufficientData  bool     `json:"sufficient_data"`
}

type seasonJSON struct {
	Year                 int     `json:"year"`
	TeamID               string  `json:"team_id"`
	FranchiseID          string  `json:"franchise_id"`
	League               string  `json:"league"`
	Name                 string  `json:"name"`
	Wins                 int     `json:"wins"`
	Losses               int     `json:"losses"`
	WinPct               float64 `json:"win_pct"`
	PreRelocation        bool    `json:"pre_relocation"`
	PostRelocation       bool    `json:"post_relocation"`
	YearsSinceRelocation *int    `json:"years_since_relocation,omitempty"`
	RelocationEra        string  `json:"relocation_era"`
}

type unmappedJSON struct {
	FranchiseID    string   `json:"franchise_id"`
	Seasons        int      `json:"seasons"`
	FirstYear      int      `json:"first_year"`
	LastYear       int      `json:"last_year"`
	Names          []string `json:"names"`
	Leagues        []string `json:"leagues"`
	Classification string   `json:"classification"`
}

func summaryJSON(ds summary.DatasetSummary) map[string]interface{} {
	return map[string]interface{}{
		"total_seasons":         ds.TotalSeasons,
		"mapped_seasons":        ds.MappedSeasons,
		"unmapped_seasons":      ds.UnmappedSeasons,
		"franchises":            ds.Franchises,
		"relocated_franchises":  ds.RelocatedFranchises,
		"sufficient_franchises": ds.SufficientFranchises,
		"ready_for_analysis":    ds.ReadyForAnalysis,
		"findings": map[string]int{
			"total":    ds.FindingCounts.Total,
			"passed":   ds.FindingCounts.Passed,
			"warnings": ds.FindingCounts.Warnings,
			"failures": ds.FindingCounts.Failures,
		},
	}
}

func franchiseToJSON(s summary.FranchiseSummary) franchiseJSON {
	out := franchiseJSON{
		CanonicalID:    s.CanonicalID,
		CurrentName:    s.CurrentName,
		Identifiers:    s.Identifiers,
		Seasons:        s.Seasons,
		FirstYear:      s.FirstYear,
		LastYear:       s.LastYear,
		PreSeasons:     s.Pre.Seasons,
		PostSeasons:    s.Post.Seasons,
		MeanWinPct:     s.MeanWinPct,
		PreMeanWinPct:  s.Pre.MeanWinPct,
		PostMeanWinPct: s.Post.MeanWinPct,
		SufficientData: s.Sufficient,
	}
	if s.RelocationYear != 0 {
		y := s.RelocationYear
		out.RelocationYear = &y
	}
	if s.HasDelta {
		d := s.Delta
		out.WinPctChange = &d
	}
	if s.HasEffect {
		e := s.EffectSize
		out.EffectSize = &e
		out.EffectMagnitude = s.EffectBand
	}
	return out
}

func seasonToJSON(a season.Annotated) seasonJSON {
	out := seasonJSON{
		Year:           a.Year,
		TeamID:         a.TeamID,
		FranchiseID:    a.FranchiseID,
		League:         a.League,
		Wins:           a.Wins,
		Losses:         a.Losses,
		Name:           a.Name,
		WinPct:         a.WinPct(),
		PreRelocation:  a.PreRelocation,
		PostRelocation: a.PostRelocation,
		RelocationEra:  a.RelocationEra,
	}
	if a.PostRelocation {
		n := a.YearsSinceRelocation
		out.YearsSinceRelocation = &n
	}
	return out
}
