package render

import (
	"context"

	"github.com/goliatone/go-tokensale/pkg/model"
)

// Renderer presents a FormModel. HTML renderers return markup; interactive
// renderers return the values they collected.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.FormModel, options RenderOptions) ([]byte, error)
}
