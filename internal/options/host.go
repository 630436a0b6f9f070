package options

// Host option keys. These are registered by the generator, not by a world.
const (
	KeyFillerTraps = "filler_traps"
	KeyDeathLink   = "death_link"
)

// FillerTraps is the percentage of filler slots that become traps.
func FillerTraps(def int) Def {
	return Range(KeyFillerTraps, "Trap Percentage",
		"Percentage of filler items to replace with traps.", 0, 100, def)
}

// DeathLink is the shared-death toggle every world carries.
func DeathLink() Def {
	return Toggle(KeyDeathLink, "Death Link",
		"When you die, everyone dies. Of course the reverse is true too.", false)
}

// AddHostDefaults registers the options every world receives from the host.
// filler_traps only exists for games with trap items.
func AddHostDefaults(t *Table, hasTraps bool) {
	if hasTraps {
		t.Set(FillerTraps(0))
	}
	t.Set(DeathLink())
}
