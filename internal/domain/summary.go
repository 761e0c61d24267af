package domain

// Summary aggregates the outcome of one pipeline run. Every candidate file
// lands in exactly one of processed, skipped or failed.
type Summary struct {
	FilesProcessed int
	FilesSkipped   int
	FilesFailed    int
	TotalRecords   int64
	TotalErrors    int64
}
