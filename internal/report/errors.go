package report

import (
	"errors"
	"fmt"
)

var (
	// ErrTableCountMismatch means the template describes a different number of
	// tables than were supplied.
	ErrTableCountMismatch = errors.New("table metadata count does not match number of data tables")
	// ErrUnfilledSlots means fewer sheets were written than contents rows planned.
	ErrUnfilledSlots = errors.New("contents rows left unfilled")
)

// OutputError reports that the workbook file could not be created.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("The dataset '%s' could not be created. Check that a file with this file path is not already open.", e.Path)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}
