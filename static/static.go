// Package static embeds the API documentation assets.
package static

import "embed"

//go:embed openapi.html openapi.json
var Files embed.FS
