package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports a dataset that is missing required fields or
// carries malformed values. It is surfaced to the caller as-is, never
// retried, and never produces a partial result.
type ValidationError struct {
	Dataset string
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s dataset: %s", e.Dataset, e.Reason)
}

// NewMissingColumnsError builds a ValidationError naming the absent columns.
func NewMissingColumnsError(dataset string, missing []string) *ValidationError {
	cols := append([]string(nil), missing...)
	sort.Strings(cols)
	return &ValidationError{
		Dataset: dataset,
		Reason:  "missing required columns: " + strings.Join(cols, ", "),
	}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrSolverFailed signals that the profit optimizer's LP solver failed to
// produce a solution. Fatal for this invocation; not retried.
var ErrSolverFailed = errors.New("allocation solver failed")
