package vanilla

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-tokensale/pkg/model"
	"github.com/goliatone/go-tokensale/pkg/render"
)

type pageView struct {
	Page        pageCopy      `json:"page"`
	Form        formView      `json:"form"`
	Hidden      []hiddenView  `json:"hidden"`
	Tabs        []tabView     `json:"tabs"`
	Sections    []sectionView `json:"sections"`
	Features    []Feature     `json:"features"`
	Toast       *toastView    `json:"toast,omitempty"`
	Stylesheets []string      `json:"stylesheets"`
	Scripts     []string      `json:"scripts"`
}

type pageCopy struct {
	Title           string `json:"title"`
	Heading         string `json:"heading"`
	Description     string `json:"description"`
	MetaDescription string `json:"metaDescription"`
}

type formView struct {
	ID          string `json:"id"`
	Action      string `json:"action"`
	ValidateURL string `json:"validateURL"`
	SubmitLabel string `json:"submitLabel"`
	Invalid     bool   `json:"invalid"`
}

type hiddenView struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type tabView struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Active  bool   `json:"active"`
	Invalid bool   `json:"invalid"`
}

type sectionView struct {
	ID          string      `json:"id"`
	Heading     string      `json:"heading"`
	Description string      `json:"description"`
	Active      bool        `json:"active"`
	Fields      []fieldView `json:"fields"`
}

type fieldView struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	InputType   string `json:"inputType"`
	Value       string `json:"value"`
	Placeholder string `json:"placeholder"`
	Help        string `json:"help"`
	Min         string `json:"min"`
	Max         string `json:"max"`
	Required    bool   `json:"required"`
	Error       string `json:"error"`
}

type toastView struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DurationMs  string `json:"durationMs"`
}

func (r *Renderer) buildView(form model.FormModel, options render.RenderOptions) pageView {
	active := render.ResolveActiveSection(form, options)

	view := pageView{
		Page: r.pageCopy(form, options.Page),
		Form: formView{
			ID:          form.ID,
			Action:      r.cfg.action,
			ValidateURL: r.cfg.validateURL,
			SubmitLabel: r.clean.text(form.SubmitLabel),
			Invalid:     len(options.Errors) > 0,
		},
		Features:    r.cfg.features,
		Stylesheets: r.cfg.stylesheets,
		Scripts:     r.cfg.scripts,
	}

	hidden := render.MergeHiddenFields(options.Hidden,
		render.Hidden(render.HiddenFormID, form.ID),
		render.Hidden(render.HiddenTab, active),
	)
	for _, field := range render.SortedHiddenFields(hidden) {
		view.Hidden = append(view.Hidden, hiddenView(field))
	}

	for _, section := range form.Sections {
		sv := sectionView{
			ID:          section.ID,
			Heading:     section.Heading,
			Description: section.Description,
			Active:      section.ID == active,
		}
		tab := tabView{ID: section.ID, Title: section.Title, Active: sv.Active}
		for _, name := range section.Fields {
			field, ok := form.Field(name)
			if !ok {
				continue
			}
			fv := r.fieldView(field, options)
			if fv.Error != "" {
				tab.Invalid = true
			}
			sv.Fields = append(sv.Fields, fv)
		}
		view.Tabs = append(view.Tabs, tab)
		view.Sections = append(view.Sections, sv)
	}

	if options.Toast != nil {
		view.Toast = &toastView{
			Title:       options.Toast.Title,
			Description: options.Toast.Description,
			DurationMs:  strconv.FormatInt(options.Toast.Duration.Milliseconds(), 10),
		}
	}
	return view
}

func (r *Renderer) pageCopy(form model.FormModel, page render.PageOptions) pageCopy {
	title := firstNonEmpty(page.Title, form.Metadata["page.title"], form.Title)
	heading := firstNonEmpty(page.Heading, form.Title)
	description := firstNonEmpty(page.Description, form.Description)

	return pageCopy{
		Title:           r.clean.text(title),
		Heading:         r.clean.text(heading),
		Description:     r.clean.markup(description),
		MetaDescription: r.clean.text(firstNonEmpty(form.Metadata["page.description"], description)),
	}
}

func (r *Renderer) fieldView(field model.Field, options render.RenderOptions) fieldView {
	fv := fieldView{
		Name:        field.Name,
		Label:       field.Label,
		InputType:   field.UIHints["inputType"],
		Value:       render.ValueFor(field, options),
		Placeholder: field.Placeholder,
		Help:        r.clean.markup(field.Description),
		Required:    field.Required,
	}
	if fv.InputType == "" {
		fv.InputType = "text"
	}
	if fv.Label == "" {
		fv.Label = field.Name
	}
	if field.Type == model.FieldTypeInteger {
		if rule, ok := field.Rule(model.ValidationRuleMin); ok {
			fv.Min = rule.Params["value"]
		}
		if rule, ok := field.Rule(model.ValidationRuleMax); ok {
			fv.Max = rule.Params["value"]
		}
	}
	if messages := options.Errors[field.Name]; len(messages) > 0 {
		fv.Error = messages[0]
	}
	return fv
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
