// Package myworkoutapp carries the embedded frontend assets.
package myworkoutapp

import "embed"

// WebFS holds the built SPA, served by the HTTP server with an index.html
// fallback for client-side routing.
//
//go:embed web/dist
var WebFS embed.FS
