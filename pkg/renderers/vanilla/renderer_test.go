package vanilla_test

import (
	"io"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-tokensale/pkg/controller"
	"github.com/goliatone/go-tokensale/pkg/model"
	"github.com/goliatone/go-tokensale/pkg/render"
	"github.com/goliatone/go-tokensale/pkg/renderers/vanilla"
	"github.com/goliatone/go-tokensale/pkg/testsupport"
)

func renderPage(t *testing.T, options render.RenderOptions, opts ...vanilla.Option) string {
	t.Helper()

	renderer, err := vanilla.New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	output, err := renderer.Render(testsupport.Context(), model.SaleForm(), options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(output)
}

func assertContains(t *testing.T, output string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(output, fragment) {
			t.Errorf("expected output to contain %q", fragment)
		}
	}
}

func assertNotContains(t *testing.T, output string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if strings.Contains(output, fragment) {
			t.Errorf("expected output not to contain %q", fragment)
		}
	}
}

func TestRenderer_RendersPage(t *testing.T) {
	output := renderPage(t, render.RenderOptions{})

	assertContains(t, output,
		"<title>Token Sale Smart Contract Builder</title>",
		`<h1 class="ts-heading">Token Sale Contract Builder</h1>`,
		">Basic Configuration</button>",
		">Advanced Settings</button>",
		"Token Information",
		"Sale Configuration",
		`name="name" type="text" value="" placeholder="My Token"`,
		`name="symbol" type="text" value="" placeholder="MTK"`,
		`name="decimals" type="number" value="18" min="0" max="18"`,
		`name="totalSupply" type="number" value="1000000" min="1"`,
		`name="vestingPeriod" type="number" value="180"`,
		"Number of decimal places (usually 18)",
		"ERC20 Standard", "Full ERC20 compliance",
		"Security", "OpenZeppelin audited",
		"Vesting", "Customizable periods",
		"Whitelist", "KYC support ready",
		`<button type="submit" class="ts-submit">Generate Contract</button>`,
		`<link rel="stylesheet" href="/assets/tokensale.css">`,
		`<script src="/assets/tokensale.js" defer></script>`,
		`data-validate-url="/fields/{name}/validate"`,
		`name="_form" value="tokenSale"`,
		`name="_tab" value="basic"`,
	)
}

func TestRenderer_FirstSectionActiveByDefault(t *testing.T) {
	output := renderPage(t, render.RenderOptions{})

	assertContains(t, output, `data-panel="advanced" hidden`)
	assertNotContains(t, output, `data-panel="basic" hidden`, "has-errors", "data-toast")
}

func TestRenderer_ActivatesTabWithFirstError(t *testing.T) {
	output := renderPage(t, render.RenderOptions{
		Values: map[string]string{model.FieldHardCap: "0"},
		Errors: map[string][]string{
			model.FieldHardCap: {"Number must be greater than or equal to 1"},
		},
	})

	assertContains(t, output,
		`data-panel="basic" hidden`,
		`name="_tab" value="advanced"`,
		"has-errors",
		`name="hardCap" type="number" value="0"`,
		"Number must be greater than or equal to 1",
		`aria-invalid="true"`,
	)
	assertNotContains(t, output, `data-panel="advanced" hidden`)
}

func TestRenderer_RendersToast(t *testing.T) {
	toast := controller.DefaultToast()
	toast.Duration = 5 * time.Second

	output := renderPage(t, render.RenderOptions{Toast: &toast})

	assertContains(t, output,
		`data-duration="5000"`,
		"Contract Configuration",
		"Your token sale contract configuration has been generated.",
	)
}

func TestRenderer_SanitisesPageCopy(t *testing.T) {
	output := renderPage(t, render.RenderOptions{
		Page: render.PageOptions{
			Title:       "<b>Sale</b> & Co",
			Description: `Launch <strong>fast</strong><script>alert(1)</script>`,
		},
	})

	assertContains(t, output, "<title>Sale &amp; Co</title>", "<strong>fast</strong>")
	assertNotContains(t, output, "alert(1)", "<b>Sale</b>")
}

func TestRenderer_EscapesValues(t *testing.T) {
	output := renderPage(t, render.RenderOptions{
		Values: map[string]string{model.FieldName: `"><script>x</script>`},
	})

	assertNotContains(t, output, `"><script>x`)
}

func TestRenderer_Options(t *testing.T) {
	output := renderPage(t, render.RenderOptions{},
		vanilla.WithAssetsPath("/static/"),
		vanilla.WithAction("/sale"),
		vanilla.WithStylesheet("/static/theme.css"),
		vanilla.WithFeatures(vanilla.Feature{Title: "Audited", Description: "Twice"}),
	)

	assertContains(t, output,
		`href="/static/tokensale.css"`,
		`href="/static/theme.css"`,
		`action="/sale"`,
		"Audited",
	)
	assertNotContains(t, output, "KYC support ready")
}

func TestRenderer_WithTemplateRenderer(t *testing.T) {
	stub := &stubTemplateRenderer{}

	renderer, err := vanilla.New(vanilla.WithTemplateRenderer(stub))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	output, err := renderer.Render(testsupport.Context(), model.SaleForm(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(output) != "custom-output" {
		t.Fatalf("unexpected output %q", output)
	}
	if stub.name != "page" {
		t.Fatalf("expected page template, got %q", stub.name)
	}
	if stub.data == nil {
		t.Fatalf("expected view data to be passed")
	}
	if renderer.Name() != "vanilla" || renderer.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected renderer identity %q %q", renderer.Name(), renderer.ContentType())
	}
}

func TestAssetsFS(t *testing.T) {
	for name, marker := range map[string]string{
		vanilla.StylesheetName: ".ts-toast",
		vanilla.ScriptName:     "data-validate-url",
	} {
		data, err := fs.ReadFile(vanilla.AssetsFS(), name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !strings.Contains(string(data), marker) {
			t.Fatalf("expected %s to contain %q", name, marker)
		}
	}
}

type stubTemplateRenderer struct {
	name string
	data any
}

func (s *stubTemplateRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return s.RenderTemplate(name, data, out...)
}

func (s *stubTemplateRenderer) RenderTemplate(name string, data any, _ ...io.Writer) (string, error) {
	s.name = name
	s.data = data
	return "custom-output", nil
}

func (s *stubTemplateRenderer) RenderString(string, any, ...io.Writer) (string, error) {
	return "", nil
}

func (s *stubTemplateRenderer) RegisterFilter(string, func(any, any) (any, error)) error {
	return nil
}

func (s *stubTemplateRenderer) GlobalContext(any) error {
	return nil
}
