package services

// ValidationError carries the single aggregate message shown to the user
// when a form payload has missing or invalid required fields.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
