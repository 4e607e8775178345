package export

import "fmt"

// ExportError ties a failure to the output format and the step that failed.
type ExportError struct {
	Format Format
	Op     string
	Err    error
}

// Error formats as [format.op] cause
func (e *ExportError) Error() string {
	return fmt.Sprintf("[%s.%s] %v", e.Format, e.Op, e.Err)
}

// Unwrap returns the cause so errors.Is/errors.As see through the wrapper.
func (e *ExportError) Unwrap() error {
	return e.Err
}

// wrapError returns nil when err is nil.
func wrapError(format Format, op string, err error) error {
	if err == nil {
		return nil
	}
	return &ExportError{Format: format, Op: op, Err: err}
}
