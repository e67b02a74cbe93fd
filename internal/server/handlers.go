package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/goliatone/go-tokensale/pkg/controller"
	"github.com/goliatone/go-tokensale/pkg/render"
	"github.com/goliatone/go-tokensale/pkg/validation"
)

// fieldValidation is the body returned by the per-field endpoint.
type fieldValidation struct {
	Field  string   `json:"field"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func (s *Server) newController(notifier controller.Notifier) *controller.Controller {
	return controller.New(s.form,
		controller.WithValidator(s.validator),
		controller.WithNotifier(notifier),
		controller.WithSink(s.sink),
		controller.WithToast(s.toast),
		controller.WithLogger(s.logger),
	)
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	ctrl := s.newController(nil)
	s.render(w, r, http.StatusOK, render.RenderOptions{
		Values: ctrl.Values(),
		Page:   s.page,
	})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	values := make(map[string]string, len(s.form.Fields))
	for _, field := range s.form.Fields {
		if _, ok := r.PostForm[field.Name]; ok {
			values[field.Name] = r.PostForm.Get(field.Name)
		}
	}

	recorder := &controller.ToastRecorder{}
	ctrl := s.newController(recorder)
	ctrl.Load(values)

	_, err := ctrl.Submit(r.Context())
	var fieldErrs validation.Errors
	switch {
	case errors.As(err, &fieldErrs):
		s.render(w, r, http.StatusUnprocessableEntity, render.RenderOptions{
			Values: ctrl.Values(),
			Errors: fieldErrs.ByField(),
			Page:   s.page,
		})
	case err != nil:
		s.logger.Error("submit token sale form", zap.Error(err))
		http.Error(w, "submission failed", http.StatusInternalServerError)
	default:
		s.render(w, r, http.StatusOK, render.RenderOptions{
			Values:        ctrl.Values(),
			Toast:         recorder.Toast(),
			ActiveSection: s.knownSection(r.PostForm.Get(render.HiddenTab)),
			Page:          s.page,
		})
	}
}

func (s *Server) handleValidateField(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	ctrl := s.newController(nil)
	err := ctrl.Set(name, r.FormValue("value"))
	if errors.Is(err, controller.ErrUnknownField) {
		http.Error(w, "unknown field", http.StatusNotFound)
		return
	}

	body := fieldValidation{Field: name, Valid: err == nil, Errors: []string{}}
	if msg := ctrl.FieldError(name); msg != "" {
		body.Errors = append(body.Errors, msg)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("write validation response", zap.Error(err))
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, options render.RenderOptions) {
	output, err := s.renderer.Render(r.Context(), s.form, options)
	if err != nil {
		s.logger.Error("render form", zap.String("renderer", s.renderer.Name()), zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", s.renderer.ContentType())
	w.WriteHeader(status)
	if _, err := w.Write(output); err != nil {
		s.logger.Warn("write response", zap.Error(err))
	}
}

func (s *Server) knownSection(id string) string {
	for _, section := range s.form.Sections {
		if section.ID == id {
			return id
		}
	}
	return ""
}
