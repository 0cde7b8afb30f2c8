package i18n

import (
	"fmt"
	"regexp"
	"strings"
	"sync/atomic"
)

var placeholderRe = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Translator resolves UI translation requests against the active catalog,
// falling back to the reference catalog and finally to the key itself, so a
// missing translation shows up in the UI as a greppable key instead of a
// blank.
//
// Translate is a pure read over immutable catalogs and is safe for any
// number of concurrent callers. SetActiveCatalog publishes a new catalog
// with a single atomic store, so readers always observe one catalog in full.
type Translator struct {
	active   atomic.Pointer[Catalog]
	fallback *Catalog
}

// NewTranslator creates a translator with the given active catalog over the
// fallback (reference) catalog. A nil active catalog means fallback only.
func NewTranslator(active, fallback *Catalog) *Translator {
	t := &Translator{fallback: fallback}
	if active != nil {
		t.active.Store(active)
	}
	return t
}

// Active returns the currently active catalog, which may be nil.
func (t *Translator) Active() *Catalog {
	return t.active.Load()
}

// SetActiveCatalog atomically swaps the active catalog. The fallback catalog
// is untouched; subsequent Translate calls observe the new catalog
// immediately.
func (t *Translator) SetActiveCatalog(c *Catalog) {
	t.active.Store(c)
}

// Translate resolves dottedKey through the active catalog, then the fallback
// catalog, then falls back to the key itself, and interpolates {name}
// placeholders from params. Placeholders without a matching param stay
// literal; param values may be strings or numbers.
//
// An empty (or all-blank) key is a programming error and panics.
func (t *Translator) Translate(dottedKey string, params map[string]any) string {
	if strings.TrimSpace(dottedKey) == "" {
		panic("i18n: empty translation key")
	}
	return interpolate(t.resolve(dottedKey), params)
}

// T is shorthand for Translate without parameters.
func (t *Translator) T(dottedKey string) string {
	return t.Translate(dottedKey, nil)
}

func (t *Translator) resolve(dottedKey string) string {
	if c := t.active.Load(); c != nil {
		if s, ok := c.Get(dottedKey); ok {
			return s
		}
	}
	if t.fallback != nil {
		if s, ok := t.fallback.Get(dottedKey); ok {
			return s
		}
	}
	return dottedKey
}

func interpolate(template string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(template, "{") {
		return template
	}
	return placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		v, ok := params[m[1:len(m)-1]]
		if !ok {
			return m
		}
		return fmt.Sprint(v)
	})
}
