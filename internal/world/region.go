package world

import "slices"

// Region is a node of a player's region graph.
type Region struct {
	Name      string
	Player    int
	Requires  string
	Exits     []string // Names of connected regions, in order
	Locations []*Location
}

// SetExits replaces the region's exits.
func (r *Region) SetExits(names []string) {
	r.Exits = slices.Clone(names)
}

// AddExits appends exits that are not already present.
func (r *Region) AddExits(names ...string) {
	for _, n := range names {
		if !slices.Contains(r.Exits, n) {
			r.Exits = append(r.Exits, n)
		}
	}
}

// Location returns the location with the given name, or nil if not in this region.
func (r *Region) Location(name string) *Location {
	for _, l := range r.Locations {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// RemoveLocation removes the named location and reports whether it was present.
func (r *Region) RemoveLocation(name string) bool {
	for i, l := range r.Locations {
		if l.Name == name {
			r.Locations = slices.Delete(r.Locations, i, i+1)
			return true
		}
	}
	return false
}
