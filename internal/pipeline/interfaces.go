package pipeline

import (
	"context"

	"github.com/greenlane-data/abp_ingest/internal/abp"
	"github.com/greenlane-data/abp_ingest/internal/domain"
)

type Ledger interface {
	CurrentFileNames(ctx context.Context) (map[string]struct{}, error)
	BeginImport(ctx context.Context, fileName string) (*domain.ImportFile, error)
	Finalize(ctx context.Context, file *domain.ImportFile) error
	MarkFailed(ctx context.Context, file *domain.ImportFile) error
}

type RecordsSaver interface {
	SaveRecords(ctx context.Context, shape *abp.RecordShape, rows [][]any) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
