// Package web holds the HTML views served next to the JSON API.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
