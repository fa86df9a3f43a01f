package models

// Status is the result of one planned file write.
type Status string

const (
	// StatusCreated means the file did not exist and was written.
	StatusCreated Status = "created"
	// StatusSkipped means the file already existed, or another planned
	// entry claimed the same target.
	StatusSkipped Status = "skipped"
	// StatusFailed means an I/O or path error prevented the write.
	StatusFailed Status = "failed"
)
