package hooks

import "errors"

// MinWhitelistSize is the fewest characters a whitelist may name.
const MinWhitelistSize = 8

var (
	// ErrWhitelistTooSmall aborts generation when whitelist mode names too few characters.
	ErrWhitelistTooSmall = errors.New("whitelist was enabled, but does not contain enough skylanders; " +
		"the whitelist must contain at least 8 skylanders, at least one from each element, and at least one giant")
	// ErrItemNotInPool is returned when a hook expects an item the pool does not hold.
	ErrItemNotInPool = errors.New("item not in pool")
)
