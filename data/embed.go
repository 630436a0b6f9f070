// Package data provides the embedded game tables for every supported world.
package data

import "embed"

// dataFS embeds the JSON tables of each game directory at build time.
//
//go:embed swapforce/*.json giants/*.json
var dataFS embed.FS

// FS returns the embedded filesystem containing game data.
// Each game lives in its own directory (e.g. "swapforce/items.json").
func FS() embed.FS {
	return dataFS
}
