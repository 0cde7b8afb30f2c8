package i18n

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Registry holds every loaded catalog keyed by language tag plus the default
// (reference) locale the UI falls back to. The catalog set is replaced
// wholesale on reload, never edited in place.
type Registry struct {
	mu       sync.RWMutex
	catalogs map[language.Tag]*Catalog
	tags     []language.Tag
	matcher  language.Matcher
	def      language.Tag
}

// NewRegistry creates a registry over the given catalogs. The default tag's
// catalog must be present; it is the reference every translator falls back
// to.
func NewRegistry(def language.Tag, catalogs []*Catalog) (*Registry, error) {
	r := &Registry{def: def}
	if err := r.Replace(catalogs); err != nil {
		return nil, err
	}
	return r, nil
}

// Replace swaps the whole catalog set, e.g. after a hot reload. It fails
// without touching the current set when the default locale is missing.
func (r *Registry) Replace(catalogs []*Catalog) error {
	set := make(map[language.Tag]*Catalog, len(catalogs))
	for _, c := range catalogs {
		set[c.Tag()] = c
	}
	if _, ok := set[r.def]; !ok {
		return fmt.Errorf("default locale %s not among loaded catalogs", r.def)
	}

	// matcher prefers earlier tags; the default goes first
	tags := []language.Tag{r.def}
	for tag := range set {
		if tag != r.def {
			tags = append(tags, tag)
		}
	}
	rest := tags[1:]
	sort.Slice(rest, func(i, j int) bool {
		return rest[i].String() < rest[j].String()
	})

	r.mu.Lock()
	r.catalogs = set
	r.tags = tags
	r.matcher = language.NewMatcher(tags)
	r.mu.Unlock()
	return nil
}

// Default returns the reference catalog.
func (r *Registry) Default() *Catalog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.catalogs[r.def]
}

// Lookup returns the catalog for an exact tag.
func (r *Registry) Lookup(tag language.Tag) (*Catalog, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.catalogs[tag]
	return c, ok
}

// Tags lists the loaded language tags, default first.
func (r *Registry) Tags() []language.Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]language.Tag, len(r.tags))
	copy(out, r.tags)
	return out
}

// Match resolves a user preference string, either a single tag ("pt-BR") or
// an Accept-Language list ("pt-BR,pt;q=0.9,en;q=0.8"), to the best loaded
// catalog. Empty or unrecognized input resolves to the default catalog.
func (r *Registry) Match(prefs string) *Catalog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.matchLocked(prefs)
}

func (r *Registry) matchLocked(prefs string) *Catalog {
	if strings.TrimSpace(prefs) == "" {
		return r.catalogs[r.def]
	}
	if tag, err := language.Parse(prefs); err == nil {
		if c, ok := r.catalogs[tag]; ok {
			return c
		}
	}
	// unmatchable input lands on the first (default) tag
	_, idx := language.MatchStrings(r.matcher, prefs)
	return r.catalogs[r.tags[idx]]
}

// NewTranslator builds a translator for a preference string: the matched
// catalog becomes active and the default catalog is the fallback. Both are
// read under one lock so they always come from the same catalog set.
func (r *Registry) NewTranslator(prefs string) *Translator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return NewTranslator(r.matchLocked(prefs), r.catalogs[r.def])
}
