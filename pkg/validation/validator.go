package validation

import (
	"math/big"

	"github.com/goliatone/go-tokensale/pkg/model"
)

const messageCapOrder = "Soft cap must not exceed hard cap"

// Result captures the outcome of validating a whole form. Values holds the
// coerced value of every valid field keyed by name.
type Result struct {
	Values map[string]any
	Errors Errors
}

// Valid reports whether every field passed.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Err returns the aggregated errors, or nil when the form is valid.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return r.Errors
}

// Option configures a Validator.
type Option func(*Validator)

// WithCapOrder enables the cross-field rule requiring the soft cap to be less
// than or equal to the hard cap. The error is reported on the soft cap field.
func WithCapOrder(softField, hardField string) Option {
	return func(v *Validator) {
		v.softCapField = softField
		v.hardCapField = hardField
	}
}

// Validator runs full-form validation. It is stateless after construction and
// safe for concurrent use.
type Validator struct {
	softCapField string
	hardCapField string
}

// New constructs a Validator applying the provided options.
func New(options ...Option) *Validator {
	v := &Validator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}
	return v
}

// Validate checks every field of the form against values. Missing values are
// treated as empty input.
func (v *Validator) Validate(form model.FormModel, values map[string]string) Result {
	result := Result{Values: make(map[string]any, len(form.Fields))}

	for _, field := range form.Fields {
		coerced, fe := CoerceField(field, values[field.Name])
		if fe != nil {
			result.Errors = append(result.Errors, *fe)
			continue
		}
		result.Values[field.Name] = coerced
	}

	if fe := v.checkCapOrder(result.Values); fe != nil {
		result.Errors = insertInFormOrder(form, result.Errors, *fe)
		delete(result.Values, fe.Field)
	}
	return result
}

func (v *Validator) checkCapOrder(values map[string]any) *FieldError {
	if v == nil || v.softCapField == "" || v.hardCapField == "" {
		return nil
	}
	soft, softOK := values[v.softCapField].(*big.Int)
	hard, hardOK := values[v.hardCapField].(*big.Int)
	if !softOK || !hardOK {
		return nil
	}
	if soft.Cmp(hard) <= 0 {
		return nil
	}
	return &FieldError{Field: v.softCapField, Rule: RuleCapOrder, Message: messageCapOrder}
}

func insertInFormOrder(form model.FormModel, errs Errors, extra FieldError) Errors {
	position := make(map[string]int, len(form.Fields))
	for i, field := range form.Fields {
		position[field.Name] = i
	}
	at := len(errs)
	for i, fe := range errs {
		if position[fe.Field] > position[extra.Field] {
			at = i
			break
		}
	}
	out := make(Errors, 0, len(errs)+1)
	out = append(out, errs[:at]...)
	out = append(out, extra)
	return append(out, errs[at:]...)
}
