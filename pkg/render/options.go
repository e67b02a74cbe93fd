package render

import (
	"github.com/goliatone/go-tokensale/pkg/controller"
	"github.com/goliatone/go-tokensale/pkg/model"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the form model.
type RenderOptions struct {
	// Values pre-populates rendered controls keyed by field name. Fields
	// without an entry fall back to their model default.
	Values map[string]string
	// Errors surfaces validation feedback keyed by field name. Renderers show
	// the messages inline next to the offending control.
	Errors map[string][]string
	// Toast, when set, is presented as a transient notification.
	Toast *controller.Toast
	// ActiveSection selects the tab shown first. When empty, renderers pick
	// the first section holding an error, then the first section.
	ActiveSection string
	// Page overrides the page chrome copy.
	Page PageOptions
	// Hidden lists hidden inputs emitted with the form.
	Hidden map[string]string
}

// PageOptions carries the copy surrounding the form. Empty values fall back
// to the form model.
type PageOptions struct {
	Title       string
	Heading     string
	Description string
}

// ResolveActiveSection applies the ActiveSection fallback rules.
func ResolveActiveSection(form model.FormModel, options RenderOptions) string {
	if options.ActiveSection != "" {
		return options.ActiveSection
	}
	for _, field := range form.Fields {
		if len(options.Errors[field.Name]) == 0 {
			continue
		}
		if section := form.SectionOf(field.Name); section != "" {
			return section
		}
	}
	if len(form.Sections) > 0 {
		return form.Sections[0].ID
	}
	return ""
}

// ValueFor returns the value to prefill for a field.
func ValueFor(field model.Field, options RenderOptions) string {
	if value, ok := options.Values[field.Name]; ok {
		return value
	}
	return field.Default
}
