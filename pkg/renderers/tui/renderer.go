package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-tokensale/pkg/model"
	"github.com/goliatone/go-tokensale/pkg/render"
	"github.com/goliatone/go-tokensale/pkg/validation"
)

// Renderer implements render.Renderer for terminal sessions. It prompts each
// field section by section, re-prompting until the answer passes the field
// rules, and returns the collected raw values.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	out          io.Writer
	confirm      bool
	theme        Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output,
// final confirmation enabled).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		confirm:      true,
		theme:        DefaultTheme(),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if _, ok := ParseOutputFormat(string(r.outputFormat)); !ok {
		return nil, fmt.Errorf("tui: unsupported output format %q", r.outputFormat)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatYAML:
		return "application/yaml"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render prompts for every field and returns the answers encoded in the
// configured output format.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	values, err := r.Collect(ctx, form, opts)
	if err != nil {
		return nil, err
	}
	return r.Encode(form, values)
}

// Collect prompts for every field, section by section, and returns the raw
// answers keyed by field name. Prefilled values become prompt defaults and
// prefilled errors are shown before the matching prompt.
func (r *Renderer) Collect(ctx context.Context, form model.FormModel, opts render.RenderOptions) (map[string]string, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	state := NewState(form, opts.Values, opts.Errors)
	prompted := make(map[string]struct{}, len(form.Fields))

	for _, section := range form.Sections {
		if err := r.driver.Info(ctx, r.theme.Section.Render(sectionHeading(section))); err != nil {
			return nil, err
		}
		for _, name := range section.Fields {
			field, ok := form.Field(name)
			if !ok {
				continue
			}
			if err := r.promptField(ctx, field, state); err != nil {
				return nil, err
			}
			prompted[name] = struct{}{}
		}
	}
	for _, field := range form.Fields {
		if _, ok := prompted[field.Name]; ok {
			continue
		}
		if err := r.promptField(ctx, field, state); err != nil {
			return nil, err
		}
	}

	if r.confirm {
		ok, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: submitMessage(form),
			Default: true,
		})
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrAborted
		}
	}

	return state.Values(form), nil
}

func (r *Renderer) promptField(ctx context.Context, field model.Field, state *State) error {
	label := displayLabel(field)

	for _, message := range state.ErrorsFor(field.Name) {
		if err := r.driver.Info(ctx, r.errorLine(label, message)); err != nil {
			return err
		}
	}

	for {
		response, err := r.driver.Input(ctx, InputConfig{
			Message:   label,
			Default:   state.Value(field.Name),
			Help:      field.Description,
			Validator: fieldValidator(field),
		})
		if err != nil {
			return err
		}

		if fe := validation.ValidateField(field, response); fe != nil {
			if err := r.driver.Info(ctx, r.errorLine(label, fe.Message)); err != nil {
				return err
			}
			continue
		}

		state.Set(field.Name, response)
		return nil
	}
}

func (r *Renderer) errorLine(label, message string) string {
	return r.theme.Error.Render(fmt.Sprintf("%s: %s", label, message))
}

// Encode serializes values in the configured output format.
func (r *Renderer) Encode(form model.FormModel, values map[string]string) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatYAML:
		out, err := yaml.Marshal(values)
		if err != nil {
			return nil, fmt.Errorf("tui: encode yaml: %w", err)
		}
		return out, nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(form, values)), nil
	default:
		out, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("tui: encode json: %w", err)
		}
		return append(out, '\n'), nil
	}
}

func fieldValidator(field model.Field) func(string) error {
	return func(value string) error {
		if fe := validation.ValidateField(field, value); fe != nil {
			return errors.New(fe.Message)
		}
		return nil
	}
}

func displayLabel(field model.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func sectionHeading(section model.Section) string {
	if section.Heading == "" || section.Heading == section.Title {
		return section.Title
	}
	return section.Title + ": " + section.Heading
}

func submitMessage(form model.FormModel) string {
	if form.SubmitLabel == "" {
		return "Submit?"
	}
	return form.SubmitLabel + "?"
}

func prettyPrint(form model.FormModel, values map[string]string) string {
	var b strings.Builder
	written := make(map[string]struct{}, len(values))
	writeField := func(name string) {
		field, ok := form.Field(name)
		if !ok {
			return
		}
		fmt.Fprintf(&b, "  %s: %s\n", displayLabel(field), values[name])
		written[name] = struct{}{}
	}

	for _, section := range form.Sections {
		fmt.Fprintf(&b, "%s\n", section.Title)
		for _, name := range section.Fields {
			writeField(name)
		}
	}
	for _, field := range form.Fields {
		if _, ok := written[field.Name]; !ok {
			writeField(field.Name)
		}
	}
	return b.String()
}
