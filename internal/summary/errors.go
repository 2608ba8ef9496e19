package summary

import "fmt"

// ValidationError reports a rejected input field before any store call is
// made. The field name and constraint are surfaced to the API layer as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func validationErr(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// opError wraps a store failure with enough context to log meaningfully:
// the operation, the owner and the date it was acting on.
func opError(op string, userID uint, date string, err error) error {
	return fmt.Errorf("%s for user %d on %s: %w", op, userID, date, err)
}
