package domain

import "time"

// ImportFile is one row of the import ledger. Rows are append-only: a
// re-import of the same basename creates a new row and chains the old ones
// to it through SupersededBy.
type ImportFile struct {
	ID           int64            `db:"id"`
	FileName     string           `db:"file_name"`
	Status       ImportStatus     `db:"status"`
	ImportStart  time.Time        `db:"import_start"`
	ImportEnd    *time.Time       `db:"import_end"`
	SupersededBy *int64           `db:"superseded_by"`
	RecordCounts map[string]int64 `db:"record_counts"`
	ErrorCount   int64            `db:"error_count"`
}

// Lines is the total number of source lines accounted for by this entry.
// For a finalized entry it equals the line count of the file.
func (f *ImportFile) Lines() int64 {
	total := f.ErrorCount
	for _, n := range f.RecordCounts {
		total += n
	}
	return total
}
