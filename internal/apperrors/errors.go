package apperrors

import "errors"

// Common application errors. Handlers map these onto HTTP statuses; the
// wrapped root cause is logged server-side and never returned to the client.
var (
	// ErrValidation is used when a required field or file is missing or rejected.
	ErrValidation = errors.New("validation failed")

	// ErrStorage is used when an underlying database operation fails.
	ErrStorage = errors.New("storage operation failed")

	// ErrTranscription is used when the speech provider call fails after the
	// retry budget is exhausted, or fails with a non-retryable error.
	ErrTranscription = errors.New("transcription failed")

	// ErrEmptyTranscript is used when the provider call succeeds but returns
	// no text. An empty result is not a success.
	ErrEmptyTranscript = errors.New("transcription returned empty result")
)
