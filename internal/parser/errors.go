package parser

import (
	"errors"
	"fmt"
)

// ErrIncorrectPassword means the statement PDF rejected the supplied
// credential. Callers should re-prompt for a password instead of treating
// the statement as unreadable.
var ErrIncorrectPassword = errors.New("incorrect statement password")

// NoTransactionsError means extraction completed without structural error
// but no transaction-shaped lines were recognized — the layout is
// unsupported or recognition failed. Sample carries the head of the
// extracted text for diagnosis; user-facing messages should not include it.
type NoTransactionsError struct {
	Sample string
}

func (e *NoTransactionsError) Error() string {
	return "no transactions found in statement; the file may not contain readable text or the format is unsupported"
}

// ErrUnsupportedFile is the gate error for inputs that are neither a CSV
// nor a PDF statement.
var ErrUnsupportedFile = errors.New("unsupported file type: expected .csv or .pdf")

// errMissingRows means the tabular export had no data rows under the header.
var errMissingRows = errors.New("statement is empty or missing data rows")

// malformedInput wraps a structural parse failure of the tabular path.
func malformedInput(err error) error {
	return fmt.Errorf("malformed statement: %w", err)
}
