package hotels

// ValidationError carries the field -> failed-rule map from entity validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "hotel data failed validation" }
