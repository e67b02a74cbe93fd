package validation

import "strings"

// Rule identifiers reported by FieldError beyond the model rule kinds.
const (
	RuleRange    = "range"
	RuleCapOrder = "capOrder"
)

// FieldError is the single validation failure reported for a field. Rule holds
// the kind of the rule that failed (see model.ValidationRule* and Rule*).
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	if e == nil {
		return ""
	}
	return e.Field + ": " + e.Message
}

// Errors aggregates field errors in form field order.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for i := range e {
		parts = append(parts, e[i].Error())
	}
	return "validation: " + strings.Join(parts, "; ")
}

// Field returns the error reported for the named field.
func (e Errors) Field(name string) (FieldError, bool) {
	for _, fe := range e {
		if fe.Field == name {
			return fe, true
		}
	}
	return FieldError{}, false
}

// ByField converts the errors into the dotted-path map renderers consume.
func (e Errors) ByField() map[string][]string {
	if len(e) == 0 {
		return nil
	}
	out := make(map[string][]string, len(e))
	for _, fe := range e {
		out[fe.Field] = append(out[fe.Field], fe.Message)
	}
	return out
}
