// Package tokensale exposes the common entry points of the token sale
// configuration builder: the form definition, its controller and the HTML
// renderer with the assets it links to.
package tokensale

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-tokensale/pkg/controller"
	"github.com/goliatone/go-tokensale/pkg/model"
	"github.com/goliatone/go-tokensale/pkg/orchestrator"
	"github.com/goliatone/go-tokensale/pkg/render"
	"github.com/goliatone/go-tokensale/pkg/renderers/vanilla"
	"github.com/goliatone/go-tokensale/pkg/validation"
)

// SaleForm returns the token sale form definition.
func SaleForm() model.FormModel {
	return model.SaleForm()
}

// NewValidator returns a whole-form validator. With enforceCapOrder set a
// soft cap above the hard cap is reported on the soft cap field.
func NewValidator(enforceCapOrder bool) *validation.Validator {
	if enforceCapOrder {
		return validation.New(validation.WithCapOrder(model.FieldSoftCap, model.FieldHardCap))
	}
	return validation.New()
}

// NewController returns a controller for the token sale form.
func NewController(options ...controller.Option) *controller.Controller {
	return controller.New(model.SaleForm(), options...)
}

// NewHTMLRenderer returns the vanilla HTML renderer.
func NewHTMLRenderer(options ...vanilla.Option) (*vanilla.Renderer, error) {
	return vanilla.New(options...)
}

// RenderHTML renders the token sale page with the default vanilla renderer.
func RenderHTML(ctx context.Context, options render.RenderOptions) ([]byte, error) {
	return orchestrator.New().Generate(ctx, orchestrator.Request{RenderOptions: options})
}

// EmbeddedTemplates exposes the built-in page templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// AssetsFS exposes the stylesheet and script the page links to.
//
// Typical mount:
//
//	mux.Handle("GET /assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(tokensale.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
