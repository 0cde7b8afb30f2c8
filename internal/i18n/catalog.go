// Package i18n implements the localization core of the castpanel UI:
// immutable per-locale string catalogs with dotted-key lookup, a translator
// with fallback-chain resolution and {name} interpolation, and a registry
// that negotiates language tags for incoming requests.
package i18n

import (
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/vcfranco/castpanel/internal/utils"
)

// Catalog is the immutable string table for one locale. Entries form a
// nested mapping of string leaves addressed by dotted keys, e.g.
// "player.generate" or "message.placeholder.text".
//
// A Catalog is never mutated after construction, so any number of goroutines
// may call Get concurrently without synchronization.
type Catalog struct {
	tag     language.Tag
	entries map[string]any
}

// NewCatalog builds a catalog from a decoded resource document. Leaves that
// are not strings are dropped with a warning; lookups treat them as missing
// so the fallback chain handles them.
func NewCatalog(tag language.Tag, entries map[string]any) *Catalog {
	return &Catalog{tag: tag, entries: sanitize(tag, "", entries)}
}

func sanitize(tag language.Tag, prefix string, in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[k] = val
		case map[string]any:
			out[k] = sanitize(tag, path, val)
		default:
			if utils.Logger != nil {
				utils.Logger.Warn("locale entry is not a string, dropping", "locale", tag, "key", path)
			}
		}
	}
	return out
}

// Tag returns the catalog's BCP-47 language tag.
func (c *Catalog) Tag() language.Tag {
	return c.tag
}

// Get resolves a dotted key to its leaf string. The boolean reports whether
// every segment resolved and the final value is a string; a miss is a normal
// negative result, not an error.
func (c *Catalog) Get(dottedKey string) (string, bool) {
	node := c.entries
	segs := strings.Split(dottedKey, ".")
	for i, seg := range segs {
		v, ok := node[seg]
		if !ok {
			return "", false
		}
		if i == len(segs)-1 {
			s, isLeaf := v.(string)
			return s, isLeaf
		}
		child, isNode := v.(map[string]any)
		if !isNode {
			return "", false
		}
		node = child
	}
	return "", false
}

// Keys returns every dotted key addressing a string leaf, sorted.
func (c *Catalog) Keys() []string {
	var keys []string
	flatten("", c.entries, &keys)
	sort.Strings(keys)
	return keys
}

func flatten(prefix string, node map[string]any, keys *[]string) {
	for k, v := range node {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			*keys = append(*keys, path)
		case map[string]any:
			flatten(path, val, keys)
		}
	}
}
