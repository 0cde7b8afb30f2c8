// Package mid provides HTTP middleware implementations for request
// processing. It includes middleware for internationalization (i18n) that
// handles locale detection from cookies, query parameters, and headers.
package mid

import (
	"context"
	"net/http"
	"time"

	"github.com/vcfranco/castpanel/internal/i18n"
)

const langCookie = "lang"

type translatorKey struct{}

// I18n returns middleware that picks the request locale from the lang
// cookie, the lang query parameter, or the Accept-Language header (in that
// order) and stores a request-scoped translator in the context. When the
// locale came from the query parameter the resolved tag is persisted in the
// lang cookie.
func I18n(registry *i18n.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var lang string

			if c, err := r.Cookie(langCookie); err == nil {
				lang = c.Value
			}

			if lang == "" {
				lang = r.URL.Query().Get("lang")
			}

			if lang == "" {
				lang = r.Header.Get("Accept-Language")
			}

			tr := registry.NewTranslator(lang)

			if r.URL.Query().Has("lang") {
				http.SetCookie(w, &http.Cookie{
					Name:     langCookie,
					Value:    tr.Active().Tag().String(),
					Path:     "/",
					HttpOnly: false,
					SameSite: http.SameSiteLaxMode,
					MaxAge:   int((365 * 24 * time.Hour).Seconds()),
				})
			}

			next.ServeHTTP(w, r.WithContext(WithTranslator(r.Context(), tr)))
		})
	}
}

// WithTranslator stores a translator in the context.
func WithTranslator(ctx context.Context, tr *i18n.Translator) context.Context {
	return context.WithValue(ctx, translatorKey{}, tr)
}

// FromContext returns the request-scoped translator, or nil when the I18n
// middleware is not installed.
func FromContext(ctx context.Context) *i18n.Translator {
	tr, _ := ctx.Value(translatorKey{}).(*i18n.Translator)
	return tr
}
