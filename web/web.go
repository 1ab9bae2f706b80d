// Package web holds the embedded templates and static assets served by
// the HTTP handlers.
package web

import "embed"

//go:embed templates static
var FS embed.FS
