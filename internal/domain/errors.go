package domain

import "errors"

// The two hard failures of ingestion. Everything else degrades row-by-row:
// a corrupt cell coerces to zero rather than failing the file.
var (
	// ErrFormatNotRecognized means the header fingerprint check failed;
	// the upload is not a settlement export this engine understands.
	ErrFormatNotRecognized = errors.New("settlement export format not recognized")

	// ErrEmptyInput means the file parsed but no usable data rows remained
	// after normalization.
	ErrEmptyInput = errors.New("settlement export contains no transactions")
)
