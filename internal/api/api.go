// Package api exposes form schemas and server-side validation over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formguard/pkg/formschema"
	"github.com/dmitrymomot/formguard/pkg/httpserver"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// MaxFormSize limits the size of a submitted form body.
const MaxFormSize = 1 << 20

var errNoForms = errors.New("no form schemas loaded")

type api struct {
	forms formschema.Set
	log   *slog.Logger
}

// NewRouter returns the HTTP handler serving forms.
//
//	GET  /healthz
//	GET  /forms
//	GET  /forms/{name}
//	POST /forms/{name}/validate
func NewRouter(forms formschema.Set, log *slog.Logger) http.Handler {
	if log == nil {
		log = logger.Discard()
	}
	a := &api{forms: forms, log: log.With(logger.Component("api"))}

	r := chi.NewRouter()
	r.Use(httpserver.RequestID)
	r.Use(httpserver.Logging(a.log))
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	r.Get("/healthz", httpserver.Health(a.log, a.ready))
	r.Route("/forms", func(r chi.Router) {
		r.Get("/", a.listForms)
		r.Get("/{name}", a.getForm)
		r.Post("/{name}/validate", a.validate)
	})

	return r
}

func (a *api) ready(context.Context) error {
	if len(a.forms) == 0 {
		return errNoForms
	}
	return nil
}

func (a *api) listForms(w http.ResponseWriter, r *http.Request) {
	names := a.forms.Names()
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, formList{Forms: names})
}

func (a *api) schema(w http.ResponseWriter, r *http.Request) (*formschema.Schema, bool) {
	s, err := a.forms.Get(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, http.StatusNotFound, "form_not_found", err.Error())
		return nil, false
	}
	return s, true
}

func (a *api) getForm(w http.ResponseWriter, r *http.Request) {
	if s, ok := a.schema(w, r); ok {
		writeJSON(w, http.StatusOK, s)
	}
}

func (a *api) validate(w http.ResponseWriter, r *http.Request) {
	s, ok := a.schema(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxFormSize)
	if err := r.ParseForm(); err != nil {
		a.log.WarnContext(r.Context(), "invalid form body", logger.Form(s.Name), logger.Error(err))
		writeError(w, http.StatusBadRequest, "invalid_body", "request body is not a valid form")
		return
	}

	errs := s.Validate(r.PostForm)
	if errs.IsEmpty() {
		writeJSON(w, http.StatusOK, ValidationResult{Valid: true, Errors: map[string][]string{}})
		return
	}

	a.log.InfoContext(r.Context(), "submission rejected",
		logger.Form(s.Name), slog.Any("fields", errs.Fields()))
	writeJSON(w, http.StatusUnprocessableEntity, ValidationResult{
		Errors:   errs.ByField(),
		Messages: messages(errs),
	})
}

func messages(errs validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(errs))
	for _, field := range errs.Fields() {
		out[field] = errs.Get(field)
	}
	return out
}
