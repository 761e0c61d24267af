package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/greenlane-data/abp_ingest/internal/abp"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ImportsTableDDL and ImportsIndexDDL define the ledger schema. The
// migrations under cmd/migrator must stay equivalent to them.
const ImportsTableDDL = `CREATE TABLE IF NOT EXISTS imports (
	id bigserial PRIMARY KEY,
	file_name varchar(80) NOT NULL,
	status varchar(10) NOT NULL DEFAULT 'pending',
	import_start timestamptz NOT NULL DEFAULT now(),
	import_end timestamptz,
	superseded_by bigint REFERENCES imports (id),
	record_counts jsonb NOT NULL DEFAULT '{}',
	error_count bigint NOT NULL DEFAULT 0
)`

const ImportsIndexDDL = `CREATE UNIQUE INDEX IF NOT EXISTS idx_imports_current
	ON imports (file_name) WHERE superseded_by IS NULL AND status = 'complete'`

// SchemaRepository creates and drops the ledger table and the per-shape
// record tables. The DDL is generated from the shape catalog, so tables
// always match the field lists the mapper produces.
type SchemaRepository struct {
	pool *pgxpool.Pool
}

func NewSchemaRepository(pool *pgxpool.Pool) *SchemaRepository {
	return &SchemaRepository{pool: pool}
}

func (r *SchemaRepository) CreateSchemaIfAbsent(ctx context.Context, registry *abp.Registry) error {
	db := extractDB(ctx, r.pool)

	for _, stmt := range schemaStatements(registry) {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", storageError(err))
		}
	}

	return nil
}

// DropSchema removes every record table and the ledger. Used only under an
// explicit rebuild instruction.
func (r *SchemaRepository) DropSchema(ctx context.Context, registry *abp.Registry) error {
	db := extractDB(ctx, r.pool)

	for _, shape := range registry.Shapes() {
		if _, err := db.Exec(ctx, "DROP TABLE IF EXISTS "+shape.Table); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", shape.Table, storageError(err))
		}
	}

	if _, err := db.Exec(ctx, "DROP TABLE IF EXISTS "+TableImports); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", TableImports, storageError(err))
	}

	return nil
}

func schemaStatements(registry *abp.Registry) []string {
	stmts := []string{ImportsTableDDL, ImportsIndexDDL}

	for _, shape := range registry.Shapes() {
		stmts = append(stmts, createTableStatement(shape))
		stmts = append(stmts, indexStatements(shape)...)
	}

	return stmts
}

func createTableStatement(shape *abp.RecordShape) string {
	var b strings.Builder

	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n\tid bigserial PRIMARY KEY", shape.Table)
	for _, f := range shape.Fields {
		fmt.Fprintf(&b, ",\n\t%s %s", strings.ToLower(f.Name), columnType(f))
	}
	b.WriteString("\n)")

	return b.String()
}

func indexStatements(shape *abp.RecordShape) []string {
	var stmts []string
	for _, f := range shape.Fields {
		if !f.Indexed {
			continue
		}

		col := strings.ToLower(f.Name)
		stmts = append(stmts, fmt.Sprintf(
			"CREATE INDEX IF NOT EXISTS idx_%s_%s ON %s (%s)",
			shape.Table, col, shape.Table, col,
		))
	}
	return stmts
}

func columnType(f abp.FieldSpec) string {
	switch f.Type {
	case abp.TypeInteger:
		return "integer"
	case abp.TypeWideInteger:
		return "bigint"
	case abp.TypeText:
		if f.MaxLen > 0 {
			return fmt.Sprintf("varchar(%d)", f.MaxLen)
		}
		return "text"
	case abp.TypeDate:
		return "date"
	case abp.TypeTime:
		return "time"
	case abp.TypeTimestamp:
		return "timestamp"
	case abp.TypeDecimal:
		return fmt.Sprintf("numeric(%d, %d)", f.Precision, f.Scale)
	default:
		return "text"
	}
}
