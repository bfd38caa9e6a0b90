// Command pipeline is the franchise lineage data CLI.
//
// Usage:
//
//	lineage-pipeline run
//	lineage-pipeline annotate --data data/mlb_team_seasons.csv
//	lineage-pipeline validate --data https://example.com/teams.csv
//	lineage-pipeline summarize
//	lineage-pipeline export
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/lineage-data/internal/config"
	"github.com/albapepper/lineage-data/internal/db"
	"github.com/albapepper/lineage-data/internal/lahman"
	"github.com/albapepper/lineage-data/internal/pipeline"
	"github.com/albapepper/lineage-data/internal/summary"
	"github.com/albapepper/lineage-data/internal/validate"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "lineage-pipeline",
		Short: "MLB franchise lineage annotation and validation CLI",
	}

	root.PersistentFlags().String("data", "", "Season table path or URL (overrides DATA_PATH)")
	root.PersistentFlags().String("registry", "", "YAML lineage registry path (overrides REGISTRY_PATH)")
	root.PersistentFlags().String("out", "", "Output directory (overrides OUTPUT_DIR)")

	root.AddCommand(annotateCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(summarizeCmd())
	root.AddCommand(runCmd())
	root.AddCommand(exportCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// annotate command
// --------------------------------------------------------------------------

func annotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "annotate",
		Short: "Annotate the season table with canonical franchise lineage",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, func(ctx context.Context, cfg *config.Config, result *pipeline.Result) error {
				if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
					return err
				}
				path := filepath.Join(cfg.OutputDir, pipeline.AnnotatedFile)
				if err := lahman.WriteAnnotated(path, result.Annotated); err != nil {
					return err
				}
				logger.Info("Annotated table written", "path", path, "rows", len(result.Annotated))
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// validate command
// --------------------------------------------------------------------------

func validateCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run all validation checks and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, func(ctx context.Context, cfg *config.Config, result *pipeline.Result) error {
				fmt.Print(validate.Render(result.Findings))
				if strict && validate.HasFailures(result.Findings) {
					return fmt.Errorf("validation failed: %d failures", len(validate.Failures(result.Findings)))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any check fails")
	return cmd
}

// --------------------------------------------------------------------------
// summarize command
// --------------------------------------------------------------------------

func summarizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize",
		Short: "Print per-franchise and dataset summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, func(ctx context.Context, cfg *config.Config, result *pipeline.Result) error {
				summary.RenderDatasetSummary(os.Stdout, result.DatasetSummary)
				fmt.Println()
				summary.RenderFranchiseTable(os.Stdout, result.Summaries)
				fmt.Println()
				summary.RenderUnmappedTable(os.Stdout, result.Unmapped)
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// run command
// --------------------------------------------------------------------------

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline and write all outputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, func(ctx context.Context, cfg *config.Config, result *pipeline.Result) error {
				if err := pipeline.WriteOutputs(cfg, result); err != nil {
					return err
				}
				logger.Info("Outputs written", "dir", cfg.OutputDir)
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// export command
// --------------------------------------------------------------------------

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Run the full pipeline and export results to Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, func(ctx context.Context, cfg *config.Config, result *pipeline.Result) error {
				pool, err := db.New(ctx, cfg)
				if err != nil {
					return fmt.Errorf("connect to database: %w", err)
				}
				defer pool.Close()

				if err := pool.EnsureSchema(ctx); err != nil {
					return err
				}

				start := time.Now()
				var export db.ExportResult
				pool.StoreSeasons(ctx, result.Annotated, &export)
				pool.StoreFindings(ctx, result.Findings, &export)
				pool.StoreSummaries(ctx, result.Summaries, &export)

				logger.Info("Export finished",
					"duration", time.Since(start).Round(time.Second),
					"summary", export.Summary())
				if len(export.Errors) > 0 {
					for _, e := range export.Errors {
						logger.Error("export error", "error", e)
					}
				}
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runPipeline handles config loading, flag overrides, registry construction,
// pipeline execution, and context cancellation.
func runPipeline(cmd *cobra.Command, fn func(ctx context.Context, cfg *config.Config, result *pipeline.Result) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if v, _ := cmd.Flags().GetString("data"); v != "" {
		cfg.DataPath = v
	}
	if v, _ := cmd.Flags().GetString("registry"); v != "" {
		cfg.RegistryPath = v
	}
	if v, _ := cmd.Flags().GetString("out"); v != "" {
		cfg.OutputDir = v
	}

	reg, err := pipeline.Registry(cfg)
	if err != nil {
		return fmt.Errorf("build registry: %w", err)
	}

	result, err := pipeline.Run(ctx, cfg, reg, validate.NewEngine(), logger)
	if err != nil {
		return err
	}
	return fn(ctx, cfg, result)
}
