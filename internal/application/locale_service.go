package application

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/vcfranco/castpanel/internal/i18n"
)

// LocaleService provides locale data for the web UI: the language picker
// list, full per-locale string dumps for the SPA and one-shot translations.
type LocaleService struct {
	registry *i18n.Registry
}

// NewLocaleService creates a new locale service.
func NewLocaleService(registry *i18n.Registry) *LocaleService {
	return &LocaleService{registry: registry}
}

// LocaleInfo describes one selectable locale for the language picker.
type LocaleInfo struct {
	Tag  string `json:"tag"`
	Name string `json:"name"`
}

// ListLocales lists the loaded locales, default first, each with its native
// display name (e.g. "português (Brasil)").
func (s *LocaleService) ListLocales() []LocaleInfo {
	tags := s.registry.Tags()
	out := make([]LocaleInfo, 0, len(tags))
	for _, tag := range tags {
		out = append(out, LocaleInfo{
			Tag:  tag.String(),
			Name: display.Self.Name(tag),
		})
	}
	return out
}

// Strings returns the complete flattened key → string table for one locale.
// Every key of the reference catalog is present; keys the locale does not
// translate carry the reference string. The SPA fetches this once per
// locale switch.
func (s *LocaleService) Strings(tag string) (map[string]string, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return nil, ErrLocaleNotFound
	}
	catalog, ok := s.registry.Lookup(parsed)
	if !ok {
		return nil, ErrLocaleNotFound
	}

	tr := i18n.NewTranslator(catalog, s.registry.Default())
	keys := s.registry.Default().Keys()
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		out[key] = tr.Translate(key, nil)
	}
	return out, nil
}

// Resolve negotiates a preference string (tag or Accept-Language list) to
// the tag of the catalog that would serve it.
func (s *LocaleService) Resolve(prefs string) string {
	return s.registry.Match(prefs).Tag().String()
}

// Translate renders a single key for a preference string.
func (s *LocaleService) Translate(prefs, key string, params map[string]any) string {
	return s.registry.NewTranslator(prefs).Translate(key, params)
}
