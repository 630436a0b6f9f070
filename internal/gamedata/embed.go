// Package gamedata loads the per-game data tables (game, items, locations,
// regions and categories) and provides the registries used to draw items.
package gamedata

import (
	"fmt"
	"io/fs"

	"github.com/samdwyer/skymanual/data"
)

// gameFS returns the embedded directory holding one game's tables.
func gameFS(dir string) (fs.FS, error) {
	sub, err := fs.Sub(data.FS(), dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded game directory %s: %w", dir, err)
	}
	return sub, nil
}
