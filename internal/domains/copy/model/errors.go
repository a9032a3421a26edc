package model

import "errors"

var (
	// ErrCopyNotFound is an expected outcome: copy ids are sparse
	// random UUIDs, so unmatched lookups are routine, not anomalies.
	ErrCopyNotFound = errors.New("copy not found")
)
