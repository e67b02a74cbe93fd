package render_test

import (
	"testing"

	"github.com/goliatone/go-tokensale/pkg/model"
	"github.com/goliatone/go-tokensale/pkg/render"
)

func TestResolveActiveSection(t *testing.T) {
	form := model.SaleForm()

	cases := []struct {
		name    string
		options render.RenderOptions
		want    string
	}{
		{name: "defaults to first section", want: model.SectionBasic},
		{
			name:    "first section with an error",
			options: render.RenderOptions{Errors: map[string][]string{model.FieldHardCap: {"Invalid"}}},
			want:    model.SectionAdvanced,
		},
		{
			name: "errors follow form order",
			options: render.RenderOptions{Errors: map[string][]string{
				model.FieldRate:   {"Invalid"},
				model.FieldSymbol: {"Token symbol is required"},
			}},
			want: model.SectionBasic,
		},
		{
			name:    "explicit selection wins",
			options: render.RenderOptions{ActiveSection: model.SectionAdvanced},
			want:    model.SectionAdvanced,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := render.ResolveActiveSection(form, tc.options); got != tc.want {
				t.Fatalf("active section = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValueFor(t *testing.T) {
	field, _ := model.SaleForm().Field(model.FieldRate)
	if got := render.ValueFor(field, render.RenderOptions{}); got != "1000" {
		t.Fatalf("default value = %q", got)
	}
	opts := render.RenderOptions{Values: map[string]string{model.FieldRate: ""}}
	if got := render.ValueFor(field, opts); got != "" {
		t.Fatalf("explicit empty value should win, got %q", got)
	}
}
