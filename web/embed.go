// Package web embeds the browser page into the binary.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var embedded embed.FS

// StaticFiles is an fs.FS rooted at web/static/.
var StaticFiles, _ = fs.Sub(embedded, "static")
