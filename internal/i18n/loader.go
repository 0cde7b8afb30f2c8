package i18n

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// LoadFS reads every locale resource at the root of fsys. A file named
// <tag>.yaml, <tag>.yml or <tag>.toml becomes the catalog for that language
// tag; other files are skipped. Used for the embedded locales and for an
// optional on-disk override directory.
func LoadFS(fsys fs.FS) ([]*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	var catalogs []*Catalog
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := filepath.Ext(name)

		var unmarshal func([]byte, any) error
		switch ext {
		case ".yaml", ".yml":
			unmarshal = func(b []byte, v any) error { return yaml.Unmarshal(b, v) }
		case ".toml":
			unmarshal = func(b []byte, v any) error { return toml.Unmarshal(b, v) }
		default:
			continue
		}

		tag, err := language.Parse(strings.TrimSuffix(name, ext))
		if err != nil {
			return nil, fmt.Errorf("locale file %s: %w", name, err)
		}
		b, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		var doc map[string]any
		if err := unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		catalogs = append(catalogs, NewCatalog(tag, doc))
	}

	if len(catalogs) == 0 {
		return nil, fmt.Errorf("no locale resources found")
	}
	return catalogs, nil
}
