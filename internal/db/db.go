// Package db provides a pgxpool-based connection pool with prepared statement
// registration and export of pipeline outputs.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/lineage-data/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL or NEON_DATABASE_URL must be set")
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// registerPreparedStatements registers all statements the export layer uses.
// Prepared statements eliminate parse overhead on batch inserts.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// Export: annotated seasons
		"insert_season": `
			INSERT INTO ` + config.SeasonsTable + ` (
				year, team_id, franchise_id, league, name, wins, losses,
				canonical_franchise, is_relocated, relocation_year,
				pre_relocation, post_relocation, years_since_relocation, relocation_era
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			ON CONFLICT (year, team_id) DO UPDATE SET
				franchise_id = EXCLUDED.franchise_id,
				league = EXCLUDED.league,
				name = EXCLUDED.name,
				wins = EXCLUDED.wins,
				losses = EXCLUDED.losses,
				canonical_franchise = EXCLUDED.canonical_franchise,
				is_relocated = EXCLUDED.is_relocated,
				relocation_year = EXCLUDED.relocation_year,
				pre_relocation = EXCLUDED.pre_relocation,
				post_relocation = EXCLUDED.post_relocation,
				years_since_relocation = EXCLUDED.years_since_relocation,
				relocation_era = EXCLUDED.relocation_era`,

		// Export: validation findings (append-only per run)
		"insert_finding": `
			INSERT INTO ` + config.FindingsTable + ` (run_at, category, check_name, severity, message)
			VALUES ($1, $2, $3, $4, $5)`,

		// Export: per-franchise summaries
		"insert_summary": `
			INSERT INTO ` + config.SummariesTable + ` (
				canonical_id, current_name, relocation_year, total_seasons,
				pre_seasons, post_seasons, pre_avg_wpct, post_avg_wpct,
				wpct_change, effect_size, effect_magnitude, sufficient_data
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (canonical_id) DO UPDATE SET
				current_name = EXCLUDED.current_name,
				relocation_year = EXCLUDED.relocation_year,
				total_seasons = EXCLUDED.total_seasons,
				pre_seasons = EXCLUDED.pre_seasons,
				post_seasons = EXCLUDED.post_seasons,
				pre_avg_wpct = EXCLUDED.pre_avg_wpct,
				post_avg_wpct = EXCLUDED.post_avg_wpct,
				wpct_change = EXCLUDED.wpct_change,
				effect_size = EXCLUDED.effect_size,
				effect_magnitude = EXCLUDED.effect_magnitude,
				sufficient_data = EXCLUDED.sufficient_data`,
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
