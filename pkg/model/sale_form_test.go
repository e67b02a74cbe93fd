package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tokensale/pkg/model"
)

func TestSaleForm_SectionsCoverEveryField(t *testing.T) {
	form := model.SaleForm()

	seen := make(map[string]string)
	for _, section := range form.Sections {
		for _, name := range section.Fields {
			if prev, dup := seen[name]; dup {
				t.Fatalf("field %q listed in sections %q and %q", name, prev, section.ID)
			}
			if _, ok := form.Field(name); !ok {
				t.Fatalf("section %q references unknown field %q", section.ID, name)
			}
			seen[name] = section.ID
		}
	}
	if len(seen) != len(form.Fields) {
		t.Fatalf("expected %d fields in sections, got %d", len(form.Fields), len(seen))
	}
}

func TestSaleForm_Defaults(t *testing.T) {
	want := map[string]string{
		model.FieldName:          "",
		model.FieldSymbol:        "",
		model.FieldDecimals:      "18",
		model.FieldTotalSupply:   "1000000",
		model.FieldRate:          "1000",
		model.FieldVestingPeriod: "180",
		model.FieldSoftCap:       "100",
		model.FieldHardCap:       "1000",
	}
	if diff := cmp.Diff(want, model.SaleForm().Defaults()); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestSaleForm_NumericBounds(t *testing.T) {
	form := model.SaleForm()

	cases := []struct {
		field string
		min   string
		max   string
	}{
		{model.FieldDecimals, "0", "18"},
		{model.FieldTotalSupply, "1", ""},
		{model.FieldRate, "1", ""},
		{model.FieldVestingPeriod, "0", ""},
		{model.FieldSoftCap, "0", ""},
		{model.FieldHardCap, "1", ""},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			field, ok := form.Field(tc.field)
			if !ok {
				t.Fatalf("field %q missing", tc.field)
			}
			if field.Type != model.FieldTypeInteger {
				t.Fatalf("expected integer field, got %q", field.Type)
			}
			rule, ok := field.Rule(model.ValidationRuleMin)
			if !ok || rule.Params["value"] != tc.min {
				t.Fatalf("min rule = %+v, want %q", rule, tc.min)
			}
			maxRule, hasMax := field.Rule(model.ValidationRuleMax)
			if tc.max == "" && hasMax {
				t.Fatalf("unexpected max rule %+v", maxRule)
			}
			if tc.max != "" && maxRule.Params["value"] != tc.max {
				t.Fatalf("max rule = %+v, want %q", maxRule, tc.max)
			}
		})
	}
}

func TestFormModel_SectionOf(t *testing.T) {
	form := model.SaleForm()
	if got := form.SectionOf(model.FieldSymbol); got != model.SectionBasic {
		t.Fatalf("symbol section = %q", got)
	}
	if got := form.SectionOf(model.FieldHardCap); got != model.SectionAdvanced {
		t.Fatalf("hardCap section = %q", got)
	}
	if got := form.SectionOf("missing"); got != "" {
		t.Fatalf("unknown field section = %q", got)
	}
}
