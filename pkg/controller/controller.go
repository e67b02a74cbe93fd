package controller

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-tokensale/pkg/model"
	"github.com/goliatone/go-tokensale/pkg/sale"
	"github.com/goliatone/go-tokensale/pkg/validation"
)

// ErrUnknownField is returned when a value targets a field the form does not
// declare.
var ErrUnknownField = errors.New("controller: unknown field")

// Option configures a Controller.
type Option func(*Controller)

// WithNotifier sets the notifier receiving the success toast.
func WithNotifier(notifier Notifier) Option {
	return func(c *Controller) {
		if notifier != nil {
			c.notifier = notifier
		}
	}
}

// WithSink sets the sink receiving accepted configurations.
func WithSink(sink Sink) Option {
	return func(c *Controller) {
		if sink != nil {
			c.sink = sink
		}
	}
}

// WithValidator overrides the full-form validator.
func WithValidator(v *validation.Validator) Option {
	return func(c *Controller) {
		if v != nil {
			c.validator = v
		}
	}
}

// WithToast overrides the success acknowledgment copy.
func WithToast(toast Toast) Option {
	return func(c *Controller) {
		c.toast = toast
	}
}

// WithLogger sets the logger used for notifier and sink failures.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller holds the current raw value and validation state of every field
// of a form and exposes the submit operation. A Controller belongs to a single
// interaction (one terminal session or one HTTP request) and is not safe for
// concurrent use.
type Controller struct {
	form      model.FormModel
	values    map[string]string
	errors    map[string]validation.FieldError
	validator *validation.Validator
	notifier  Notifier
	sink      Sink
	toast     Toast
	logger    *zap.Logger
}

// New creates a controller seeded with the default value of every field.
func New(form model.FormModel, options ...Option) *Controller {
	c := &Controller{
		form:      form,
		values:    form.Defaults(),
		errors:    make(map[string]validation.FieldError),
		validator: validation.New(),
		notifier:  discardNotifier{},
		sink:      discardSink{},
		toast:     DefaultToast(),
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Form returns the form definition driven by the controller.
func (c *Controller) Form() model.FormModel {
	return c.form
}

// Value returns the current raw value of a field.
func (c *Controller) Value(name string) string {
	return c.values[name]
}

// Values returns a copy of every current raw value.
func (c *Controller) Values() map[string]string {
	out := make(map[string]string, len(c.values))
	for key, value := range c.values {
		out[key] = value
	}
	return out
}

// Set stores the raw value of a field and re-validates that field only. The
// returned error is the field's validation error (a *validation.FieldError),
// ErrUnknownField, or nil when the value is acceptable.
func (c *Controller) Set(name, raw string) error {
	field, ok := c.form.Field(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	c.values[name] = raw

	if fe := validation.ValidateField(field, raw); fe != nil {
		c.errors[name] = *fe
		return fe
	}
	delete(c.errors, name)
	return nil
}

// Load stores many raw values at once without validating them. Unknown keys
// are ignored; fields absent from values keep their current value.
func (c *Controller) Load(values map[string]string) {
	for _, field := range c.form.Fields {
		if raw, ok := values[field.Name]; ok {
			c.values[field.Name] = raw
		}
	}
}

// FieldError returns the current error message of a field, or "".
func (c *Controller) FieldError(name string) string {
	return c.errors[name].Message
}

// Errors returns the current field errors in form order.
func (c *Controller) Errors() validation.Errors {
	if len(c.errors) == 0 {
		return nil
	}
	out := make(validation.Errors, 0, len(c.errors))
	for _, field := range c.form.Fields {
		if fe, ok := c.errors[field.Name]; ok {
			out = append(out, fe)
		}
	}
	return out
}

// Submit validates the whole form. On failure every field error becomes
// visible through Errors and a validation.Errors is returned; nothing is
// emitted. On success the errors are cleared, the toast is notified and the
// configuration is handed to the sink. Notifier and sink failures are logged
// and do not fail the submission.
func (c *Controller) Submit(ctx context.Context) (sale.Configuration, error) {
	result := c.validator.Validate(c.form, c.values)

	c.errors = make(map[string]validation.FieldError, len(result.Errors))
	if !result.Valid() {
		for _, fe := range result.Errors {
			c.errors[fe.Field] = fe
		}
		return sale.Configuration{}, result.Errors
	}

	cfg, err := sale.Decode(result.Values)
	if err != nil {
		return sale.Configuration{}, fmt.Errorf("controller: %w", err)
	}

	if err := c.notifier.Notify(ctx, c.toast); err != nil {
		c.logger.Warn("present success notification", zap.Error(err))
	}
	if err := c.sink.Emit(ctx, cfg); err != nil {
		c.logger.Warn("emit sale configuration", zap.Error(err))
	}
	return cfg, nil
}

// Reset restores the default values and clears every error.
func (c *Controller) Reset() {
	c.values = c.form.Defaults()
	c.errors = make(map[string]validation.FieldError)
}
