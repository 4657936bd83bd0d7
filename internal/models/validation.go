package models

// ValidationError describes one reason a move was rejected.
// Messages are self-contained: they name the offending status or field
// and, where helpful, the legal alternatives, so the notification layer
// can show them verbatim.
type ValidationError struct {
	Field   string // optional dotted path, e.g. "fields.description"
	Message string
}

// Error implements the error interface so a ValidationError can be
// logged or wrapped, though validators return them as values.
func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}
