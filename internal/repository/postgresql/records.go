package postgresql

import (
	"context"
	"fmt"

	"github.com/greenlane-data/abp_ingest/internal/abp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RecordsRepository persists mapped gazetteer records into their per-shape
// tables.
type RecordsRepository struct {
	pool *pgxpool.Pool
}

func NewRecordsRepository(pool *pgxpool.Pool) *RecordsRepository {
	return &RecordsRepository{pool: pool}
}

// SaveRecords bulk-copies one batch of rows into the shape's table. Rows
// must carry the shape's field values in field order.
func (r *RecordsRepository) SaveRecords(ctx context.Context, shape *abp.RecordShape, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}

	db := extractDB(ctx, r.pool)

	copied, err := db.CopyFrom(ctx,
		pgx.Identifier{shape.Table},
		shape.Columns(),
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to save %s records: %w", shape.Name, storageError(err))
	}

	if copied != int64(len(rows)) {
		return fmt.Errorf("failed to save %s records: copied %d rows, expected %d", shape.Name, copied, len(rows))
	}

	return nil
}
