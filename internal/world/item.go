package world

import (
	"slices"

	"github.com/samdwyer/skymanual/internal/gamedata"
)

// VictoryEventName is the event item locked into the victory location.
const VictoryEventName = "Victory"

// Item is one copy of an item owned by a player.
type Item struct {
	Name       string
	Player     int
	ID         int64 // 0 for events
	Class      Classification
	Categories []string
}

// NewItem creates one copy of the defined item for player.
func NewItem(def *gamedata.ItemDef, player int) *Item {
	return &Item{
		Name:       def.Name,
		Player:     player,
		ID:         def.ID,
		Class:      Classify(def),
		Categories: slices.Clone(def.Category),
	}
}

// NewEvent creates an addressless progression item.
func NewEvent(name string, player int) *Item {
	return &Item{Name: name, Player: player, Class: ClassProgression}
}

// IsEvent reports whether the item has no address.
func (i *Item) IsEvent() bool {
	return i.ID == 0
}

// HasCategory reports whether the item belongs to the category.
func (i *Item) HasCategory(category string) bool {
	return slices.Contains(i.Categories, category)
}
