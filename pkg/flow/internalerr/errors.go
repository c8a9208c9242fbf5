package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrSnapshotMissing    = errors.New("snapshot missing")
	ErrMalformedSnapshot  = errors.New("malformed snapshot")
	ErrInsufficientCorpus = errors.New("insufficient corpus size")
	ErrInvalidInput       = errors.New("invalid input")
	ErrStoreUnavailable   = errors.New("store unavailable")
)
