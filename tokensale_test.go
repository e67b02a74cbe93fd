package tokensale_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	tokensale "github.com/goliatone/go-tokensale"
	"github.com/goliatone/go-tokensale/pkg/controller"
	"github.com/goliatone/go-tokensale/pkg/model"
	"github.com/goliatone/go-tokensale/pkg/render"
	"github.com/goliatone/go-tokensale/pkg/renderers/vanilla"
	"github.com/goliatone/go-tokensale/pkg/testsupport"
	"github.com/goliatone/go-tokensale/pkg/validation"
)

func TestEmbeddedFilesystems(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"page.tmpl", "partials/field.tmpl", "partials/toast.tmpl"} {
		if _, err := fs.Stat(tokensale.EmbeddedTemplates(), name); err != nil {
			t.Fatalf("template %s: %v", name, err)
		}
	}
	for _, name := range []string{vanilla.StylesheetName, vanilla.ScriptName} {
		if _, err := fs.Stat(tokensale.AssetsFS(), name); err != nil {
			t.Fatalf("asset %s: %v", name, err)
		}
	}
}

func TestNewController_SubmitsWithCapOrder(t *testing.T) {
	t.Parallel()

	var recorder controller.ToastRecorder
	ctrl := tokensale.NewController(
		controller.WithNotifier(&recorder),
		controller.WithValidator(tokensale.NewValidator(true)),
	)
	ctrl.Load(testsupport.ValuesWith(map[string]string{model.FieldSoftCap: "5000"}))

	_, err := ctrl.Submit(testsupport.Context())
	var errs validation.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if got := ctrl.FieldError(model.FieldSoftCap); got != "Soft cap must not exceed hard cap" {
		t.Fatalf("unexpected soft cap error %q", got)
	}
	if recorder.Toast() != nil {
		t.Fatal("toast must not be shown for a rejected submission")
	}

	if err := ctrl.Set(model.FieldSoftCap, "100"); err != nil {
		t.Fatalf("set soft cap: %v", err)
	}
	if _, err := ctrl.Submit(testsupport.Context()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if toast := recorder.Toast(); toast == nil || toast.Title != controller.DefaultToastTitle {
		t.Fatalf("unexpected toast %+v", toast)
	}
}

func TestNewValidator_CapOrderDisabled(t *testing.T) {
	t.Parallel()

	values := testsupport.ValuesWith(map[string]string{model.FieldSoftCap: "5000"})
	result := tokensale.NewValidator(false).Validate(tokensale.SaleForm(), values)
	if !result.Valid() {
		t.Fatalf("expected valid result, got %v", result.Errors)
	}
}

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	output, err := tokensale.RenderHTML(testsupport.Context(), render.RenderOptions{
		Errors: map[string][]string{model.FieldHardCap: {"Number must be greater than or equal to 1"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(output)
	if !strings.Contains(html, "Number must be greater than or equal to 1") {
		t.Fatal("expected inline error in output")
	}
	if !strings.Contains(html, "Generate Contract") {
		t.Fatal("expected submit label in output")
	}
}
