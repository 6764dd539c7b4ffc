// Package web embeds the page templates and static assets into the binary.
package web

import "embed"

// Templates holds the HTML templates.
//
//go:embed templates/*.html
var Templates embed.FS

// Static holds CSS, JS and, when built, the WebAssembly client.
//
//go:embed static
var Static embed.FS
