package mid_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/vcfranco/castpanel/internal/adapters/http/mid"
	"github.com/vcfranco/castpanel/internal/i18n"
)

func testRegistry(t *testing.T) *i18n.Registry {
	t.Helper()
	en := i18n.NewCatalog(language.English, map[string]any{
		"button": map[string]any{"login": "Sign in"},
	})
	ptBR := i18n.NewCatalog(language.MustParse("pt-BR"), map[string]any{
		"button": map[string]any{"login": "Logar"},
	})
	de := i18n.NewCatalog(language.German, map[string]any{
		"button": map[string]any{"login": "Anmelden"},
	})
	reg, err := i18n.NewRegistry(language.English, []*i18n.Catalog{en, ptBR, de})
	require.NoError(t, err)
	return reg
}

// probe records the tag the middleware resolved for the request.
func probe(t *testing.T, reg *i18n.Registry, mutate func(*http.Request)) (string, *httptest.ResponseRecorder) {
	t.Helper()
	var tag string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tr := mid.FromContext(r.Context())
		require.NotNil(t, tr)
		tag = tr.Active().Tag().String()
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	mutate(req)
	rec := httptest.NewRecorder()
	mid.I18n(reg)(next).ServeHTTP(rec, req)
	return tag, rec
}

func TestI18n_CookieWinsOverQueryAndHeader(t *testing.T) {
	reg := testRegistry(t)
	tag, _ := probe(t, reg, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "lang", Value: "pt-BR"})
		q := r.URL.Query()
		q.Set("lang", "de")
		r.URL.RawQuery = q.Encode()
		r.Header.Set("Accept-Language", "en")
	})
	require.Equal(t, "pt-BR", tag)
}

func TestI18n_QueryWinsOverHeader(t *testing.T) {
	reg := testRegistry(t)
	tag, rec := probe(t, reg, func(r *http.Request) {
		q := r.URL.Query()
		q.Set("lang", "de")
		r.URL.RawQuery = q.Encode()
		r.Header.Set("Accept-Language", "pt-BR")
	})
	require.Equal(t, "de", tag)

	// the resolved tag is persisted when the query parameter was used
	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "lang" && c.Value == "de" {
			found = true
		}
	}
	require.True(t, found, "expected lang cookie")
}

func TestI18n_AcceptLanguageNegotiation(t *testing.T) {
	reg := testRegistry(t)
	tag, rec := probe(t, reg, func(r *http.Request) {
		r.Header.Set("Accept-Language", "pt,en;q=0.5")
	})
	require.Equal(t, "pt-BR", tag)
	require.Empty(t, rec.Result().Cookies(), "no cookie without explicit selection")
}

func TestI18n_DefaultWithoutPreference(t *testing.T) {
	reg := testRegistry(t)
	tag, _ := probe(t, reg, func(*http.Request) {})
	require.Equal(t, "en", tag)
}

func TestI18n_UnknownLocaleFallsBack(t *testing.T) {
	reg := testRegistry(t)
	tag, _ := probe(t, reg, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "lang", Value: "zu"})
	})
	require.Equal(t, "en", tag)
}

func TestFromContext_MissingMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Nil(t, mid.FromContext(req.Context()))
}
