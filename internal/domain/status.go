package domain

type ImportStatus string

const (
	StatusPending  ImportStatus = "pending"
	StatusComplete ImportStatus = "complete"
	StatusFailed   ImportStatus = "failed"
)
