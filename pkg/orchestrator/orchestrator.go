package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-tokensale/pkg/model"
	"github.com/goliatone/go-tokensale/pkg/render"
	"github.com/goliatone/go-tokensale/pkg/renderers/vanilla"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithForm replaces the form definition. Defaults to model.SaleForm.
func WithForm(form model.FormModel) Option {
	return func(o *Orchestrator) {
		o.form = &form
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTransformers registers transformers applied, in order, to a copy of
// the form before every render.
func WithTransformers(transformers ...Transformer) Option {
	return func(o *Orchestrator) {
		for _, t := range transformers {
			if t != nil {
				o.transformers = append(o.transformers, t)
			}
		}
	}
}

// Transformer mutates a FormModel before it is rendered, e.g. to change a
// default or relabel a field for a deployment.
type Transformer interface {
	Transform(ctx context.Context, form *model.FormModel) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, form *model.FormModel) error

func (fn TransformerFunc) Transform(ctx context.Context, form *model.FormModel) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, form)
}

// Orchestrator renders the sale form with a named renderer. When no registry
// is supplied a registry holding the vanilla renderer is created.
type Orchestrator struct {
	form            *model.FormModel
	registry        *render.Registry
	defaultRenderer string
	transformers    []Transformer
	initialiseErr   error
}

func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes a single render.
type Request struct {
	// Renderer names the renderer to use. Empty selects the default renderer.
	Renderer string

	// RenderOptions carries prefilled values, errors, the toast and page copy.
	RenderOptions render.RenderOptions
}

// Form returns a copy of the form definition before transformers run.
func (o *Orchestrator) Form() model.FormModel {
	return cloneForm(*o.form)
}

// Generate applies the transformers and renders the form.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	form := cloneForm(*o.form)
	for _, t := range o.transformers {
		if err := t.Transform(ctx, &form); err != nil {
			return nil, fmt.Errorf("orchestrator: transform form: %w", err)
		}
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, form, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func (o *Orchestrator) applyDefaults() {
	if o.form == nil {
		form := model.SaleForm()
		o.form = &form
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		o.registry.MustRegister(renderer)
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}

func cloneForm(form model.FormModel) model.FormModel {
	out := form
	out.Fields = make([]model.Field, len(form.Fields))
	for i, field := range form.Fields {
		rules := make([]model.ValidationRule, len(field.Validations))
		for j, rule := range field.Validations {
			rule.Params = cloneStrings(rule.Params)
			rules[j] = rule
		}
		field.Validations = rules
		field.UIHints = cloneStrings(field.UIHints)
		out.Fields[i] = field
	}
	out.Sections = make([]model.Section, len(form.Sections))
	for i, section := range form.Sections {
		section.Fields = append([]string(nil), section.Fields...)
		out.Sections[i] = section
	}
	out.Metadata = cloneStrings(form.Metadata)
	return out
}

func cloneStrings(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}
