package postgresql

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/greenlane-data/abp_ingest/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

const TableImports = "imports"

// ImportsRepository is the ledger of imported files. Rows are append-only;
// a basename stays "current" until a later import supersedes it.
type ImportsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewImportsRepository(pool *pgxpool.Pool) *ImportsRepository {
	return &ImportsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CurrentFileNames returns the basenames whose latest import completed.
// Pending and failed entries do not count: a rerun picks those files up
// again.
func (r *ImportsRepository) CurrentFileNames(ctx context.Context) (map[string]struct{}, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("file_name").
		From(TableImports).
		Where(sq.Eq{"status": domain.StatusComplete}).
		Where("superseded_by IS NULL").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}
	defer rows.Close()

	names := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, scanRowError(err)
		}
		names[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, executeQueryError(err)
	}

	return names, nil
}

// BeginImport creates a pending ledger row for the basename and supersedes
// every prior non-superseded row of that basename in the same transaction.
// The row is durable once this returns, regardless of the file's outcome.
func (r *ImportsRepository) BeginImport(ctx context.Context, fileName string) (*domain.ImportFile, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", storageError(err))
	}
	defer tx.Rollback(ctx)

	file := &domain.ImportFile{
		FileName:     fileName,
		Status:       domain.StatusPending,
		RecordCounts: make(map[string]int64),
	}

	sql, args, err := r.insertQuery(file)
	if err != nil {
		return nil, createQueryError(err)
	}

	if err := tx.QueryRow(ctx, sql, args...).Scan(&file.ID, &file.ImportStart); err != nil {
		return nil, scanRowError(err)
	}

	sql, args, err = r.supersedeQuery(file.FileName, file.ID)
	if err != nil {
		return nil, createQueryError(err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return nil, executeQueryError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", storageError(err))
	}

	return file, nil
}

func (r *ImportsRepository) insertQuery(file *domain.ImportFile) (string, []any, error) {
	return r.qb.
		Insert(TableImports).
		Columns("file_name", "status").
		Values(file.FileName, file.Status).
		Suffix("RETURNING id, import_start").
		ToSql()
}

// supersedeQuery chains every prior non-superseded row of the basename to
// the new row, excluding the new row itself.
func (r *ImportsRepository) supersedeQuery(fileName string, id int64) (string, []any, error) {
	return r.qb.
		Update(TableImports).
		Set("superseded_by", id).
		Where(sq.Eq{"file_name": fileName}).
		Where("superseded_by IS NULL").
		Where(sq.NotEq{"id": id}).
		ToSql()
}

// Finalize completes the entry with its counters. It joins the ambient
// transaction, so records and finalize commit as one unit per file.
func (r *ImportsRepository) Finalize(ctx context.Context, file *domain.ImportFile) error {
	now := time.Now()
	file.Status = domain.StatusComplete
	file.ImportEnd = &now

	return r.update(ctx, file)
}

// MarkFailed records a failed import, keeping whatever counters accumulated
// before the failure.
func (r *ImportsRepository) MarkFailed(ctx context.Context, file *domain.ImportFile) error {
	now := time.Now()
	file.Status = domain.StatusFailed
	file.ImportEnd = &now

	return r.update(ctx, file)
}

func (r *ImportsRepository) update(ctx context.Context, file *domain.ImportFile) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableImports).
		Set("status", file.Status).
		Set("import_end", file.ImportEnd).
		Set("record_counts", file.RecordCounts).
		Set("error_count", file.ErrorCount).
		Where(sq.Eq{"id": file.ID}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

// FailStalePending turns leftover pending entries into failed ones. A
// pending row survives only when a run crashed between begin and finalize;
// failing it here makes the next run re-import the file.
func (r *ImportsRepository) FailStalePending(ctx context.Context) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableImports).
		Set("status", domain.StatusFailed).
		Where(sq.Eq{"status": domain.StatusPending}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}
