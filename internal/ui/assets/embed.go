// Package assets embeds the UI's static files.
package assets

import "embed"

//go:embed static
var staticFS embed.FS

// StaticFS returns the embedded static tree rooted at "static/".
func StaticFS() embed.FS {
	return staticFS
}
