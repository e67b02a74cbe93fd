package tui

import "github.com/goliatone/go-tokensale/pkg/model"

// State tracks the raw answers and the errors handed in by the caller.
type State struct {
	values map[string]string
	errors map[string][]string
}

// NewState seeds the state with form defaults, then prefilled values and
// errors.
func NewState(form model.FormModel, prefill map[string]string, errs map[string][]string) *State {
	values := form.Defaults()
	for name, value := range prefill {
		values[name] = value
	}
	return &State{
		values: values,
		errors: cloneErrors(errs),
	}
}

// Value returns the current raw value for a field.
func (s *State) Value(name string) string {
	if s == nil {
		return ""
	}
	return s.values[name]
}

// Set records an accepted answer and drops any stale error for the field.
func (s *State) Set(name, value string) {
	s.values[name] = value
	delete(s.errors, name)
}

// ErrorsFor returns the errors attached to a field.
func (s *State) ErrorsFor(name string) []string {
	if s == nil || len(s.errors) == 0 {
		return nil
	}
	return s.errors[name]
}

// Values returns a copy of the answers restricted to the form fields.
func (s *State) Values(form model.FormModel) map[string]string {
	out := make(map[string]string, len(form.Fields))
	for _, field := range form.Fields {
		out[field.Name] = s.values[field.Name]
	}
	return out
}

func cloneErrors(src map[string][]string) map[string][]string {
	out := make(map[string][]string, len(src))
	for key, messages := range src {
		out[key] = append([]string(nil), messages...)
	}
	return out
}
