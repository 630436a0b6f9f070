package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/skymanual/internal/gamedata"
	"github.com/samdwyer/skymanual/internal/options"
	"github.com/samdwyer/skymanual/internal/world"
)

func testEnv(t *testing.T, fragments int) Env {
	t.Helper()

	table := options.NewTable().Add(
		options.Toggle("characters_as_items", "", "", true),
		options.Range("chapters_to_beat", "", "", 1, 20, 16),
		options.ItemSet("characters_to_exclude", "", "", false),
	)
	values := options.Defaults(table)

	mw := world.NewMultiworld(1)
	w := mw.AddWorld(1, "Player1", gamedata.MustLoadTables("swapforce"))
	require.NoError(t, mw.CreateRegions(context.Background(), 1, values))

	for i := 0; i < fragments; i++ {
		item, err := w.CreateItem("Map of Arkus Fragment")
		require.NoError(t, err)
		w.Pool = append(w.Pool, item)
	}
	w.RecordItemCounts()

	return Env{World: w, Multiworld: mw, Player: 1, Options: values}
}

func TestAndOr(t *testing.T) {
	yes := func(*world.CollectionState) bool { return true }
	no := func(*world.CollectionState) bool { return false }

	assert.True(t, And()(nil))
	assert.True(t, And(nil, yes)(nil))
	assert.False(t, And(yes, no)(nil))

	assert.True(t, Or()(nil))
	assert.True(t, Or(no, yes)(nil))
	assert.True(t, Or(no, nil)(nil))
	assert.False(t, Or(no, no)(nil))
}

func TestRestrictAndRelax(t *testing.T) {
	loc := &world.Location{Name: "Defeat Kaos"}
	state := world.NewCollectionState(world.NewMultiworld(1))

	Relax(loc, HasCount("Key", 1, 1))
	assert.Nil(t, loc.Access, "relaxing an open location keeps it open")

	Restrict(loc, HasCount("Key", 1, 2))
	assert.False(t, loc.CanAccess(state))
	state.Add("Key", 1, 2)
	assert.True(t, loc.CanAccess(state))
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{16, 1, 20, 16},
		{25, 1, 20, 20},
		{0, 1, 5, 1},
		{5, 1, 0, 0},
		{0, 1, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clamp(tt.v, tt.lo, tt.hi), "Clamp(%d, %d, %d)", tt.v, tt.lo, tt.hi)
	}
}

func TestOptOneDynamic(t *testing.T) {
	tests := []struct {
		name      string
		fragments int
		arg       string
		want      string
	}{
		{"option below pool", 20, "|Map of Arkus Fragment:chapters_to_beat|", "|Map of Arkus Fragment:16|"},
		{"option above pool", 3, "|Map of Arkus Fragment:chapters_to_beat|", "|Map of Arkus Fragment:3|"},
		{"category", 20, "|@Map of Arkus:chapters_to_beat|", "|@Map of Arkus:16|"},
		{"no option", 5, "|Map of Arkus Fragment|", "|Map of Arkus Fragment:1|"},
		{"absent item", 0, "|Map of Arkus Fragment|", "|Map of Arkus Fragment:0|"},
		{"non-numeric option", 5, "|Map of Arkus Fragment:characters_to_exclude|", "|Map of Arkus Fragment:[]|"},
		{"blank", 5, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testEnv(t, tt.fragments)
			got, err := OptOneDynamic(env, tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptOneDynamicUnknownOption(t *testing.T) {
	env := testEnv(t, 5)
	_, err := OptOneDynamic(env, "|Map of Arkus Fragment:nope|")
	assert.ErrorIs(t, err, options.ErrUnknownOption)
}

func TestFullElementAnywhere(t *testing.T) {
	env := testEnv(t, 0)
	env.State = world.NewCollectionState(env.Multiworld)

	ok, err := FullElementAnywhere(env)
	require.NoError(t, err)
	assert.False(t, ok)

	for _, name := range env.World.ItemNameGroups["Magic Element"] {
		env.State.Add(name, 1, 1)
	}
	ok, err = FullElementAnywhere(env)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAnyUpgradeLevel(t *testing.T) {
	env := testEnv(t, 0)
	env.State = world.NewCollectionState(env.Multiworld)
	env.State.Add("Universal Upgrade", 1, 2)

	ok, err := AnyUpgradeLevel(env, "2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = AnyUpgradeLevel(env, "3")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = AnyUpgradeLevel(env, "three")
	assert.ErrorIs(t, err, ErrHelperArgs)
}

func TestExpand(t *testing.T) {
	env := testEnv(t, 20)
	reg := Base()
	reg.RegisterTemplate("requiresSwapper", Template("|@Swap Force:1|"))

	requires := "{OptOneDynamic(|Map of Arkus Fragment:chapters_to_beat|)} and {fullElementAnywhere()} and {requiresSwapper()}"

	got, err := reg.Expand(env, requires)
	require.NoError(t, err)
	assert.Equal(t, "|Map of Arkus Fragment:16| and {fullElementAnywhere()} and |@Swap Force:1|", got)

	env.State = world.NewCollectionState(env.Multiworld)
	got, err = reg.Expand(env, requires)
	require.NoError(t, err)
	assert.Equal(t, "|Map of Arkus Fragment:16| and false and |@Swap Force:1|", got)
}

func TestExpandUnknownHelper(t *testing.T) {
	env := testEnv(t, 0)
	_, err := Base().Expand(env, "{nope()}")
	assert.ErrorIs(t, err, ErrUnknownHelper)
}

func TestExpandPlainString(t *testing.T) {
	env := testEnv(t, 0)
	got, err := Base().Expand(env, "|Boom Jet| or |Scratch|")
	require.NoError(t, err)
	assert.Equal(t, "|Boom Jet| or |Scratch|", got)
}
