package models

import "fmt"

// ValidationError reports malformed input (non-numeric grade, period out of
// range, weight sum above 100). The operation is aborted with no partial write.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
	}
	return "validation failed: " + e.Message
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError reports a schedule collision, carrying the identity of the
// resource that is double-booked and the colliding time range.
type ConflictError struct {
	Resource string // "classroom", "teacher" or "slot"
	Name     string
	Day      int
	Range    string // "HH:MM-HH:MM"
}

func (e *ConflictError) Error() string {
	if e.Range != "" {
		return fmt.Sprintf("%s %s is already booked on day %d at %s", e.Resource, e.Name, e.Day, e.Range)
	}
	return fmt.Sprintf("%s %s is already occupied on day %d", e.Resource, e.Name, e.Day)
}

// ConsistencyError reports a structural violation, such as a student graded in
// a lesson outside their own group. Fatal to the single operation.
type ConsistencyError struct {
	Message string
}

func (e *ConsistencyError) Error() string {
	return "consistency violation: " + e.Message
}

// NotFoundError reports a missing referenced entity, distinct from
// ConflictError so callers can render different messages.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.Key)
}
