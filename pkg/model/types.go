package model

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
)

// Integer formats bound the coerced value of an integer field. Values past
// the ceiling of the format are rejected as too large.
const (
	FormatUint8   = "uint8"
	FormatUint64  = "uint64"
	FormatUint256 = "uint256"
)

const (
	ValidationRuleMin       = "min"
	ValidationRuleMax       = "max"
	ValidationRuleMinLength = "minLength"
	ValidationRulePattern   = "pattern"
)

// ValidationRule represents a single validation constraint applied to a field.
// Numeric bounds and length limits encode their threshold in Params["value"]
// while pattern rules keep the expression in Params["pattern"]. Message
// overrides the default error text when set.
type ValidationRule struct {
	Kind    string            `json:"kind"`
	Params  map[string]string `json:"params,omitempty"`
	Message string            `json:"message,omitempty"`
}

// Field models an individual input. All fields are entered as text; integer
// fields are coerced after the pattern rule passes.
type Field struct {
	Name        string            `json:"name"`
	Type        FieldType         `json:"type"`
	Format      string            `json:"format,omitempty"`
	Required    bool              `json:"required"`
	Label       string            `json:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Description string            `json:"description,omitempty"`
	Default     string            `json:"default,omitempty"`
	Validations []ValidationRule  `json:"validations,omitempty"`
	UIHints     map[string]string `json:"uiHints,omitempty"`
}

// Section groups fields under a tab. Heading and Description describe the
// card rendered inside the tab.
type Section struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Heading     string   `json:"heading,omitempty"`
	Description string   `json:"description,omitempty"`
	Fields      []string `json:"fields"`
}

// FormModel is the top-level representation renderers consume.
type FormModel struct {
	ID          string            `json:"id"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	SubmitLabel string            `json:"submitLabel,omitempty"`
	Sections    []Section         `json:"sections,omitempty"`
	Fields      []Field           `json:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Field returns the field with the given name.
func (f FormModel) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// SectionOf returns the ID of the section holding the named field, or "" when
// the field is not part of any section.
func (f FormModel) SectionOf(name string) string {
	for _, section := range f.Sections {
		for _, field := range section.Fields {
			if field == name {
				return section.ID
			}
		}
	}
	return ""
}

// Defaults returns the default raw value of every field keyed by name.
func (f FormModel) Defaults() map[string]string {
	out := make(map[string]string, len(f.Fields))
	for _, field := range f.Fields {
		out[field.Name] = field.Default
	}
	return out
}

// Rule returns the first validation rule of the given kind.
func (f Field) Rule(kind string) (ValidationRule, bool) {
	for _, rule := range f.Validations {
		if rule.Kind == kind {
			return rule, true
		}
	}
	return ValidationRule{}, false
}
