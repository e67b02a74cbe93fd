package template

import (
	"io"
)

// TemplateRenderer is the seam between renderers and a template engine.
// Implementations return the rendered output and also copy it to any
// writers supplied in out.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
