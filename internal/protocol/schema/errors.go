package schema

import "fmt"

// MapEntryError reports a map entry decoded without both key and value.
type MapEntryError struct {
	Field string
}

func (e *MapEntryError) Error() string {
	return fmt.Sprintf("invalid data for map: %s", e.Field)
}

// FieldError locates a decode failure within a message.
type FieldError struct {
	Message string
	Field   string
	Err     error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("schema: %s.%s: %v", e.Message, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
