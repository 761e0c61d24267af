package pipeline

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/greenlane-data/abp_ingest/internal/abp"
	"github.com/greenlane-data/abp_ingest/internal/domain"
	"golang.org/x/sync/errgroup"
)

const defaultBatchSize = 1000

// ErrNoFiles is returned when no pattern resolves to at least one file.
var ErrNoFiles = errors.New("no files matched the given patterns")

// Runner drives the import: expands patterns, skips files whose latest
// import completed, and streams the rest line by line into per-shape
// batches. Files may run on parallel workers; within a file processing is
// strictly sequential so diagnostics keep correct line numbers.
type Runner struct {
	log        *slog.Logger
	registry   *abp.Registry
	ledger     Ledger
	records    RecordsSaver
	transactor Transactor
	workers    int
	batchSize  int
}

func NewRunner(
	log *slog.Logger,
	registry *abp.Registry,
	ledger Ledger,
	records RecordsSaver,
	transactor Transactor,
	workers int,
	batchSize int,
) *Runner {
	if workers < 1 {
		workers = 1
	}
	if batchSize < 1 {
		batchSize = defaultBatchSize
	}

	return &Runner{
		log:        log,
		registry:   registry,
		ledger:     ledger,
		records:    records,
		transactor: transactor,
		workers:    workers,
		batchSize:  batchSize,
	}
}

func (r *Runner) Run(ctx context.Context, patterns []string) (*domain.Summary, error) {
	files, err := expandPatterns(patterns)
	if err != nil {
		return nil, err
	}

	current, err := r.ledger.CurrentFileNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query imported files: %w", err)
	}

	summary := &domain.Summary{}
	var mu sync.Mutex

	erg, ctx := errgroup.WithContext(ctx)
	erg.SetLimit(r.workers)

	total := len(files)
	for i, path := range files {
		if ctx.Err() != nil {
			break
		}

		name := filepath.Base(path)
		if _, ok := current[name]; ok {
			r.log.InfoContext(ctx, "file already imported, skipping", slog.String("file", name))
			summary.FilesSkipped++
			continue
		}

		seq := i
		erg.Go(func() error {
			file, err := r.runFile(ctx, path, seq, total)
			if err != nil {
				return err
			}

			mu.Lock()
			if file.Status == domain.StatusFailed {
				summary.FilesFailed++
				summary.TotalErrors += file.ErrorCount
			} else {
				summary.FilesProcessed++
				summary.TotalRecords += file.Lines() - file.ErrorCount
				summary.TotalErrors += file.ErrorCount
			}
			mu.Unlock()

			return nil
		})
	}

	if err := erg.Wait(); err != nil {
		return nil, err
	}

	return summary, nil
}

// runFile imports one file end to end. It returns the ledger entry, failed
// or finalized, or an error for faults that must abort everything.
func (r *Runner) runFile(ctx context.Context, path string, seq, total int) (*domain.ImportFile, error) {
	name := filepath.Base(path)
	log := r.log.With(slog.String("file", name))
	log.InfoContext(ctx, "processing file", slog.Int("file_number", seq+1), slog.Int("file_total", total))

	file, err := r.ledger.BeginImport(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to begin import of %q: %w", name, err)
	}

	if err := r.importFile(ctx, log, path, file); err != nil {
		if errors.Is(err, domain.ErrConnectivity) || errors.Is(err, context.Canceled) {
			return nil, err
		}

		log.ErrorContext(ctx, "file import failed", slog.String("err", err.Error()))

		if err := r.ledger.MarkFailed(ctx, file); err != nil {
			return nil, fmt.Errorf("failed to mark %q failed: %w", name, err)
		}

		return file, nil
	}

	log.InfoContext(ctx, "file imported",
		slog.String("status", string(file.Status)),
		slog.Any("record_counts", file.RecordCounts),
		slog.Int64("records", file.Lines()-file.ErrorCount),
		slog.Int64("errors", file.ErrorCount),
	)

	return file, nil
}

// importFile streams the file inside a single transaction: record batches
// and the finalize commit together, so the unit of durability is one whole
// file.
func (r *Runner) importFile(ctx context.Context, log *slog.Logger, path string, file *domain.ImportFile) (err error) {
	src, err := openRecordSource(path)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer func() { err = errors.Join(err, src.Close()) }()

	return r.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		batches := newBatchSet(r.registry, r.batchSize)

		for {
			fields, line, err := src.Next()
			if errors.Is(err, io.EOF) {
				break
			}

			if err != nil {
				var parseErr *csv.ParseError
				if !errors.As(err, &parseErr) {
					return fmt.Errorf("failed to read %q: %w", path, err)
				}

				file.ErrorCount++
				log.WarnContext(ctx, "malformed line",
					slog.Int("line", line),
					slog.String("err", err.Error()),
				)
				continue
			}

			full := r.dispatchLine(ctx, log, file, batches, fields, line)
			if full != nil {
				if err := r.flush(ctx, log, file, full); err != nil {
					return err
				}
			}
		}

		for _, batch := range batches.drain() {
			if err := r.flush(ctx, log, file, batch); err != nil {
				return err
			}
		}

		if err := r.ledger.Finalize(ctx, file); err != nil {
			return fmt.Errorf("failed to finalize import: %w", err)
		}

		return nil
	})
}

// dispatchLine routes one line through the registry and the mapper. It
// returns a batch that reached the flush threshold, if any.
func (r *Runner) dispatchLine(
	ctx context.Context,
	log *slog.Logger,
	file *domain.ImportFile,
	batches *batchSet,
	fields []string,
	line int,
) *recordBatch {
	code := fields[0]

	shape, ok := r.registry.Lookup(code)
	if !ok {
		file.ErrorCount++
		log.WarnContext(ctx, "unknown record type",
			slog.String("code", code),
			slog.Int("line", line),
			slog.String("record", strings.Join(fields, ",")),
		)
		return nil
	}

	file.RecordCounts[shape.Code]++
	if shape.Ignore {
		return nil
	}

	record, report := abp.Build(shape, fields[1:])

	if report.FieldCountMismatch {
		log.WarnContext(ctx, "field count mismatch",
			slog.String("record_type", shape.Name),
			slog.Int("expected_fields", report.ExpectedFields),
			slog.Int("actual_fields", report.ActualFields),
			slog.Int("line", line),
			slog.String("record", strings.Join(fields, ",")),
		)
	}

	for _, fieldErr := range report.FieldErrors {
		log.WarnContext(ctx, "field coercion failed",
			slog.String("record_type", shape.Name),
			slog.String("field", fieldErr.Field),
			slog.Int("line", line),
			slog.String("err", fieldErr.Err.Error()),
		)
	}

	return batches.add(record)
}

// flush writes one batch inside a savepoint. A connectivity fault aborts the
// run; any other storage failure converts the batch's rows into counted
// errors and processing continues.
func (r *Runner) flush(ctx context.Context, log *slog.Logger, file *domain.ImportFile, batch *recordBatch) error {
	if len(batch.rows) == 0 {
		return nil
	}

	err := r.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		return r.records.SaveRecords(ctx, batch.shape, batch.rows)
	})
	if err != nil {
		if errors.Is(err, domain.ErrConnectivity) {
			return err
		}

		failed := int64(len(batch.rows))
		file.RecordCounts[batch.shape.Code] -= failed
		file.ErrorCount += failed

		log.ErrorContext(ctx, "failed to save records, counting batch as errors",
			slog.String("record_type", batch.shape.Name),
			slog.Int64("records", failed),
			slog.String("err", err.Error()),
		)
	}

	batch.rows = batch.rows[:0]

	return nil
}

// expandPatterns globs every pattern itself so the tool behaves the same on
// shells that do not expand wildcards. Order is preserved, duplicates
// dropped.
func expandPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			files = append(files, match)
		}
	}

	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	return files, nil
}

type recordBatch struct {
	shape *abp.RecordShape
	rows  [][]any
}

// batchSet accumulates mapped records per shape up to the flush threshold,
// bounding memory for multi-million-line files.
type batchSet struct {
	size    int
	byCode  map[string]*recordBatch
	ordered []*recordBatch
}

func newBatchSet(registry *abp.Registry, size int) *batchSet {
	b := &batchSet{
		size:   size,
		byCode: make(map[string]*recordBatch),
	}
	for _, shape := range registry.Shapes() {
		batch := &recordBatch{shape: shape}
		b.byCode[shape.Code] = batch
		b.ordered = append(b.ordered, batch)
	}
	return b
}

// add appends the record to its shape's batch and returns the batch once it
// reaches the flush threshold.
func (b *batchSet) add(record *abp.Record) *recordBatch {
	batch := b.byCode[record.Shape.Code]
	batch.rows = append(batch.rows, record.Values)

	if len(batch.rows) >= b.size {
		return batch
	}

	return nil
}

func (b *batchSet) drain() []*recordBatch {
	return b.ordered
}
