// Package assets embeds the export templates.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed templates
var assetsFS embed.FS

// Templates is the template tree rooted at templates/, e.g.
// "react/layout.tsx.tmpl".
func Templates() fs.FS {
	sub, err := fs.Sub(assetsFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}
