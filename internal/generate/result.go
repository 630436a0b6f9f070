package generate

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of one generation.
type Result struct {
	ID        uuid.UUID      `json:"id"`
	Seed      int64          `json:"seed"`
	CreatedAt time.Time      `json:"created_at"`
	Players   []PlayerResult `json:"players"`
}

// PlayerResult is one player's prepared world.
type PlayerResult struct {
	Player     int              `json:"player"`
	Name       string           `json:"name"`
	Game       string           `json:"game"`
	FillerItem string           `json:"filler_item"`
	Options    map[string]any   `json:"options"`
	ItemPool   []string         `json:"item_pool"`
	ItemCounts map[string]int   `json:"item_counts"`
	Regions    []RegionResult   `json:"regions"`
	SlotData   map[string]any   `json:"slot_data"`
	HintData   map[int64]string `json:"hint_data,omitempty"`
	Spoiler    string           `json:"spoiler,omitempty"`
	Warnings   []string         `json:"warnings,omitempty"`

	// VictoryReachable is true when the victory location's access rule passes
	// with every item of the world collected.
	VictoryReachable bool `json:"victory_reachable"`
}

// RegionResult is a region with its exits and locations.
type RegionResult struct {
	Name      string           `json:"name"`
	Exits     []string         `json:"exits"`
	Locations []LocationResult `json:"locations,omitempty"`
}

// LocationResult is a location, its expanded requires string and any locked item.
type LocationResult struct {
	Name     string `json:"name"`
	Address  int64  `json:"address,omitempty"`
	Requires string `json:"requires,omitempty"`
	Item     string `json:"item,omitempty"`
	Class    string `json:"class,omitempty"`
	Locked   bool   `json:"locked,omitempty"`
	Victory  bool   `json:"victory,omitempty"`
}

// LocationCount returns the number of locations across all regions.
func (p *PlayerResult) LocationCount() int {
	n := 0
	for _, r := range p.Regions {
		n += len(r.Locations)
	}
	return n
}

// Player returns the result for the given player number.
func (r *Result) Player(player int) (*PlayerResult, bool) {
	for i := range r.Players {
		if r.Players[i].Player == player {
			return &r.Players[i], true
		}
	}
	return nil, false
}
