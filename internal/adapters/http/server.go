package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/vcfranco/castpanel/internal/adapters/http/mid"
	"github.com/vcfranco/castpanel/internal/application"
	"github.com/vcfranco/castpanel/internal/i18n"
	"github.com/vcfranco/castpanel/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server provides the locale HTTP API consumed by the castpanel SPA.
type Server struct {
	localeService *application.LocaleService
	registry      *i18n.Registry
}

// New creates a new HTTP server instance.
func New(localeService *application.LocaleService, registry *i18n.Registry) *Server {
	return &Server{
		localeService: localeService,
		registry:      registry,
	}
}

// Handler builds the router with all middleware and routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(mid.I18n(s.registry))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			dur := time.Since(start)
			utils.Logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", dur.String(),
			)
		})
	})

	r.Get("/lang", ChangeLanguage)

	r.Get("/api/locales", s.apiListLocales)
	r.Get("/api/locales/{tag}/strings", s.apiLocaleStrings)
	r.Get("/api/translate", s.apiTranslate)

	return r
}

// Run starts the HTTP server on the given address.
func (s *Server) Run(addr string) error {
	utils.Logger.Info("HTTP server listening", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) apiListLocales(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.localeService.ListLocales())
}

func (s *Server) apiLocaleStrings(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")
	table, err := s.localeService.Strings(tag)
	if err != nil {
		if errors.Is(err, application.ErrLocaleNotFound) {
			http.Error(w, "locale not found", http.StatusNotFound)
			return
		}
		utils.Logger.Error("locale strings failed", "tag", tag, "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (s *Server) apiTranslate(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if strings.TrimSpace(key) == "" {
		http.Error(w, "missing key parameter", http.StatusBadRequest)
		return
	}

	// remaining query parameters become interpolation params
	params := map[string]any{}
	for name, values := range r.URL.Query() {
		if name == "key" || name == "lang" || len(values) == 0 {
			continue
		}
		params[name] = values[0]
	}

	tr := mid.FromContext(r.Context())
	if tr == nil {
		tr = s.registry.NewTranslator("")
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"key":     key,
		"message": tr.Translate(key, params),
	})
}

// ChangeLanguage changes the language preference via a query parameter and sets a cookie.
func ChangeLanguage(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "lang",
		Value:    lang,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   31536000,
	})

	ref := r.Header.Get("Referer")
	if ref == "" {
		ref = "/"
	}

	http.Redirect(w, r, ref, http.StatusSeeOther)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		utils.Logger.Error("write json failed", "err", err)
	}
}
