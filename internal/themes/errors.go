package themes

import "fmt"

// NotFoundError reports a lookup for a theme identifier with no stored row.
type NotFoundError struct {
	UUID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("theme %s not found", e.UUID)
}

// DeserializationError reports a theme file that could not be decoded:
// malformed JSON or missing required metadata.
type DeserializationError struct {
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("invalid theme file: %v", e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}
