// Package data embeds the built-in card set used when no card library is configured.
package data

import "embed"

// FS holds the built-in card and power files.
//
//go:embed *.toml *.yaml
var FS embed.FS
