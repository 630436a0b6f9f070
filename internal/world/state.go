package world

// CollectionState tracks how many copies of each item every player holds.
type CollectionState struct {
	mw     *Multiworld
	counts map[int]map[string]int
}

// NewCollectionState returns an empty state over the multiworld.
func NewCollectionState(mw *Multiworld) *CollectionState {
	return &CollectionState{
		mw:     mw,
		counts: make(map[int]map[string]int),
	}
}

// Collect adds one copy of item to its owner's inventory.
func (s *CollectionState) Collect(item *Item) {
	s.Add(item.Name, item.Player, 1)
}

// Add adds n copies of the named item for player.
func (s *CollectionState) Add(name string, player, n int) {
	inv, ok := s.counts[player]
	if !ok {
		inv = make(map[string]int)
		s.counts[player] = inv
	}
	inv[name] += n
}

// Count returns how many copies of the item player holds.
func (s *CollectionState) Count(name string, player int) int {
	return s.counts[player][name]
}

// Has reports whether player holds at least count copies.
func (s *CollectionState) Has(name string, player, count int) bool {
	return s.Count(name, player) >= count
}

// HasAll reports whether player holds at least one copy of every name.
func (s *CollectionState) HasAll(names []string, player int) bool {
	for _, n := range names {
		if s.Count(n, player) < 1 {
			return false
		}
	}
	return true
}

// HasAny reports whether player holds at least one copy of any name.
func (s *CollectionState) HasAny(names []string, player int) bool {
	for _, n := range names {
		if s.Count(n, player) > 0 {
			return true
		}
	}
	return false
}

// CountGroup sums the player's copies of every item in the named item group.
func (s *CollectionState) CountGroup(group string, player int) int {
	w, err := s.mw.World(player)
	if err != nil {
		return 0
	}
	total := 0
	for _, n := range w.ItemNameGroups[group] {
		total += s.Count(n, player)
	}
	return total
}
