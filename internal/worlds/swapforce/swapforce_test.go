package swapforce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/skymanual/internal/hooks"
	"github.com/samdwyer/skymanual/internal/options"
	"github.com/samdwyer/skymanual/internal/rules"
)

func resolve(t *testing.T, raw map[string]any) *options.Values {
	t.Helper()
	def, err := Definition()
	require.NoError(t, err)
	v, err := def.Resolve(raw)
	require.NoError(t, err)
	return v
}

func TestOptionTable(t *testing.T) {
	def, err := Definition()
	require.NoError(t, err)
	table := def.OptionTable()

	ft, ok := table.Get(options.KeyFillerTraps)
	require.True(t, ok)
	assert.Equal(t, 50, ft.Default, "world overrides the host default")
	assert.True(t, table.Has(options.KeyDeathLink))

	// Every trap has a weight option.
	for _, trap := range def.Tables.TrapNames() {
		assert.True(t, table.Has(hooks.TrapWeightKey(trap)), trap)
	}
}

func TestNewSettingsDefaults(t *testing.T) {
	s := NewSettings(resolve(t, nil))

	assert.Equal(t, GoalDefeatKaos, s.Goal)
	assert.True(t, s.LinearMode)
	assert.Equal(t, 16, s.ChaptersToBeat)
	assert.True(t, s.CharactersAsItems)
	assert.True(t, s.ArenasAsLocations)
	assert.False(t, s.ChallengesAsLocations)
	assert.Equal(t, 50, s.FillerTraps)
	assert.Zero(t, s.EnabledPacks())
}

func TestNewSettings(t *testing.T) {
	s := NewSettings(resolve(t, map[string]any{
		"goal":                    "All_Levels_Perfected",
		"include_ship":            true,
		"include_peak":            "on",
		"characters_to_exclude":   []any{"Boom Jet"},
		"whitelist_characters":    false,
		"challenges_as_locations": 1,
	}))

	assert.Equal(t, GoalAllLevelsPerfected, s.Goal)
	assert.Equal(t, "all_levels_perfected", s.Goal.String())
	assert.Equal(t, 2, s.EnabledPacks())

	f := s.CharacterFilter()
	assert.True(t, f.Enabled)
	assert.False(t, f.Whitelist)
	assert.True(t, f.Challenges)
	assert.Equal(t, []string{"Boom Jet"}, f.Names)
}

func TestRules(t *testing.T) {
	r := Rules()
	assert.Contains(t, r.Names(), "requiresSwapper")
	assert.Contains(t, r.Names(), "OptOneDynamic")

	out, err := r.Expand(rules.Env{}, "{requiresSwapper()}")
	require.NoError(t, err)
	assert.Equal(t, "|@Swap Force:1|", out)
}

func TestGoalString(t *testing.T) {
	assert.Equal(t, "defeat_kaos", GoalDefeatKaos.String())
	assert.Equal(t, "unknown", Goal(9).String())
}
