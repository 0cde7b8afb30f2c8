// Package locales provides the embedded localization resource files for the
// castpanel web UI. Each YAML file holds the translated strings for one
// language tag (en is the complete reference catalog; pt-BR and de may be
// partial and fall back to en at lookup time).
package locales

import "embed"

//go:embed en.yaml
//go:embed pt-BR.yaml
//go:embed de.yaml

// Content is an embedded file system containing the localized resource files.
var Content embed.FS
