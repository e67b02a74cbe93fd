package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-tokensale/pkg/model"
	"github.com/goliatone/go-tokensale/pkg/render"
	rendertemplate "github.com/goliatone/go-tokensale/pkg/render/template"
	"github.com/goliatone/go-tokensale/pkg/render/template/pongo"
)

const pageTemplate = "page"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	assetsPath       string
	action           string
	validateURL      string
	features         []Feature
	stylesheets      []string
	scripts          []string
	policy           *bluemonday.Policy
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide page.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithAssetsPath sets the URL prefix the embedded assets are served under.
// Defaults to "/assets".
func WithAssetsPath(prefix string) Option {
	return func(cfg *config) {
		cfg.assetsPath = strings.TrimRight(strings.TrimSpace(prefix), "/")
	}
}

// WithAction sets the form action URL. Defaults to "/".
func WithAction(action string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(action); trimmed != "" {
			cfg.action = trimmed
		}
	}
}

// WithValidateURL sets the per-field validation URL. "{name}" is replaced by
// the field name in the browser.
func WithValidateURL(url string) Option {
	return func(cfg *config) {
		cfg.validateURL = strings.TrimSpace(url)
	}
}

// WithFeatures replaces the highlight cards shown below the form.
func WithFeatures(features ...Feature) Option {
	return func(cfg *config) {
		cfg.features = append([]Feature(nil), features...)
	}
}

// WithStylesheet appends an extra stylesheet after the built-in one.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(href); trimmed != "" {
			cfg.stylesheets = append(cfg.stylesheets, trimmed)
		}
	}
}

// WithScript appends an extra script after the built-in one.
func WithScript(src string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(src); trimmed != "" {
			cfg.scripts = append(cfg.scripts, trimmed)
		}
	}
}

// WithSanitizePolicy overrides the policy applied to page copy and help text.
func WithSanitizePolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		cfg.policy = policy
	}
}

// Renderer renders the form as a complete HTML page.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	cfg       config
	clean     sanitizer
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:  TemplatesFS(),
		assetsPath:  "/assets",
		action:      "/",
		validateURL: "/fields/{name}/validate",
		features:    DefaultFeatures(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	cfg.stylesheets = append([]string{cfg.assetsPath + "/" + StylesheetName}, cfg.stylesheets...)
	cfg.scripts = append([]string{cfg.assetsPath + "/" + ScriptName}, cfg.scripts...)

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithName("vanilla"),
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		cfg:       cfg,
		clean:     newSanitizer(cfg.policy),
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the full page: header copy, one tab and card per section,
// the highlight cards, the submit button and, when set, the toast.
func (r *Renderer) Render(_ context.Context, form model.FormModel, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate(pageTemplate, r.buildView(form, options))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}
