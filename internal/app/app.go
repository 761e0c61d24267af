package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/greenlane-data/abp_ingest/internal/abp"
	"github.com/greenlane-data/abp_ingest/internal/config"
	"github.com/greenlane-data/abp_ingest/internal/pipeline"
	"github.com/greenlane-data/abp_ingest/internal/repository/postgresql"
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context, patterns []string) error {
	a.log.InfoContext(ctx, "starting import",
		slog.Int("patterns", len(patterns)),
		slog.Int("workers", a.cfg.App.Workers),
		slog.Bool("overwrite", a.cfg.App.Overwrite),
	)

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	registry := abp.Default()

	schemaRepository := postgresql.NewSchemaRepository(pool)
	importsRepository := postgresql.NewImportsRepository(pool)
	recordsRepository := postgresql.NewRecordsRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	if a.cfg.App.Overwrite {
		a.log.InfoContext(ctx, "overwrite requested, dropping existing tables")

		if err := schemaRepository.DropSchema(ctx, registry); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}

	if err := schemaRepository.CreateSchemaIfAbsent(ctx, registry); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if err := importsRepository.FailStalePending(ctx); err != nil {
		return fmt.Errorf("failed to fail stale pending imports: %w", err)
	}

	runner := pipeline.NewRunner(
		a.log,
		registry,
		importsRepository,
		recordsRepository,
		txManager,
		a.cfg.App.Workers,
		a.cfg.App.BatchSize,
	)

	summary, err := runner.Run(ctx, patterns)
	if err != nil {
		return fmt.Errorf("import run failed: %w", err)
	}

	a.log.InfoContext(ctx, "import finished",
		slog.Int("files_processed", summary.FilesProcessed),
		slog.Int("files_skipped", summary.FilesSkipped),
		slog.Int("files_failed", summary.FilesFailed),
		slog.Int64("total_records", summary.TotalRecords),
		slog.Int64("total_errors", summary.TotalErrors),
	)

	return nil
}
