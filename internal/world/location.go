package world

import "slices"

// AccessRule decides whether a location can be reached with the given state.
type AccessRule func(state *CollectionState) bool

// Location is a check within a region.
type Location struct {
	Name       string
	Player     int
	Address    int64
	Region     string
	Categories []string
	Requires   string
	Victory    bool

	// Access is nil when the location is always reachable.
	Access AccessRule

	Item   *Item
	Locked bool
}

// CanAccess evaluates the location's access rule.
func (l *Location) CanAccess(state *CollectionState) bool {
	if l.Access == nil {
		return true
	}
	return l.Access(state)
}

// PlaceLockedItem puts item at the location and prevents the fill from moving it.
func (l *Location) PlaceLockedItem(item *Item) {
	l.Item = item
	l.Locked = true
}

// Filled reports whether an item has been placed.
func (l *Location) Filled() bool {
	return l.Item != nil
}

// HasCategory reports whether the location belongs to the category.
func (l *Location) HasCategory(category string) bool {
	return slices.Contains(l.Categories, category)
}
