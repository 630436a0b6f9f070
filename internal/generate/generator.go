package generate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/skymanual/internal/hooks"
	"github.com/samdwyer/skymanual/internal/options"
	"github.com/samdwyer/skymanual/internal/telemetry"
	"github.com/samdwyer/skymanual/internal/world"
)

var (
	// ErrUnknownGame is returned when a player names a game with no definition.
	ErrUnknownGame = errors.New("unknown game")
	// ErrNoPlayers is returned when Generate is called without players.
	ErrNoPlayers = errors.New("no players")
	// ErrNoVictoryLocation is returned when a world has no victory location left.
	ErrNoVictoryLocation = errors.New("no victory location")
)

// PlayerSettings is one player's input: a name, a game and raw option values.
type PlayerSettings struct {
	Name    string
	Game    string
	Options map[string]any
}

// Generator runs the pipeline over a set of world definitions.
type Generator struct {
	defs   []*hooks.Definition
	logger *slog.Logger
}

// New creates a generator for the given worlds. A nil logger uses slog.Default.
func New(logger *slog.Logger, defs ...*hooks.Definition) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{defs: defs, logger: logger}
}

// Definitions returns the registered worlds.
func (g *Generator) Definitions() []*hooks.Definition {
	return slices.Clone(g.defs)
}

// Lookup finds a world by key or full game name.
func (g *Generator) Lookup(game string) (*hooks.Definition, error) {
	for _, d := range g.defs {
		if d.Matches(game) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGame, game)
}

// Validate resolves a player's options without generating.
func (g *Generator) Validate(p PlayerSettings) (*options.Values, error) {
	def, err := g.Lookup(p.Game)
	if err != nil {
		return nil, err
	}
	return def.Resolve(p.Options)
}

// slot is the pipeline's working state for one player.
type slot struct {
	def    *hooks.Definition
	table  *options.Table
	values *options.Values
	hooks  hooks.Hooks
	hctx   *hooks.Context
	pool   []*world.Item

	fillerItem       string
	expanded         map[string]string
	slotData         hooks.SlotData
	hints            hooks.HintData
	spoiler          bytes.Buffer
	victoryReachable bool
}

// Generate prepares every player's world and returns the result.
func (g *Generator) Generate(ctx context.Context, cfg Config, players []PlayerSettings) (*Result, error) {
	tracer := telemetry.Tracer("generate")
	ctx, span := tracer.Start(ctx, "generate.run")
	defer span.End()

	startTime := time.Now()

	if len(players) == 0 {
		return nil, ErrNoPlayers
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.New(rand.NewSource(time.Now().UnixNano())).Int63()
	}

	mw := world.NewMultiworld(seed)
	slots := make([]*slot, len(players))

	for _, stage := range Stages {
		if err := g.runStage(ctx, stage, mw, players, slots); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("stage %s: %w", stage, err)
		}
	}

	result := &Result{
		ID:        uuid.New(),
		Seed:      seed,
		CreatedAt: time.Now().UTC(),
	}
	for i, s := range slots {
		result.Players = append(result.Players, s.result(i+1))
	}

	span.SetAttributes(
		attribute.String("generate.id", result.ID.String()),
		attribute.Int64("generate.seed", seed),
		attribute.Int("generate.players", len(players)),
		attribute.Int64("generate.duration_ms", time.Since(startTime).Milliseconds()),
	)
	g.logger.Info("generation complete", "id", result.ID, "seed", seed, "players", len(players))
	return result, nil
}

func (g *Generator) runStage(ctx context.Context, stage Stage, mw *world.Multiworld, players []PlayerSettings, slots []*slot) error {
	ctx, span := telemetry.Tracer("generate").Start(ctx, "stage."+stage.String())
	defer span.End()

	for i := range players {
		player := i + 1
		if err := g.runPlayerStage(ctx, stage, mw, player, players[i], &slots[i]); err != nil {
			span.RecordError(err)
			return fmt.Errorf("player %d (%s): %w", player, players[i].Name, err)
		}
	}
	return nil
}

func (g *Generator) runPlayerStage(ctx context.Context, stage Stage, mw *world.Multiworld, player int, p PlayerSettings, sp **slot) error {
	if stage == StageOptions {
		def, err := g.Lookup(p.Game)
		if err != nil {
			return err
		}
		*sp = &slot{def: def, table: def.OptionTable()}
		return nil
	}

	s := *sp
	switch stage {
	case StageSettings:
		return g.settings(mw, player, p, s)

	case StageBeforeCreateRegions:
		return s.hooks.BeforeCreateRegions(s.hctx)

	case StageCreateRegions:
		return mw.CreateRegions(ctx, player, s.values)

	case StageAfterCreateRegions:
		return s.hooks.AfterCreateRegions(s.hctx)

	case StageCreateItems:
		return s.createItems()

	case StageItemsStarting:
		pool, err := s.hooks.BeforeCreateItemsStarting(s.hctx, s.pool)
		if err != nil {
			return err
		}
		s.pool = pool

	case StageItemsFiller:
		pool, err := s.hooks.BeforeCreateItemsFiller(s.hctx, s.pool)
		if err != nil {
			return err
		}
		s.pool = pool

	case StageAfterCreateItems:
		pool, err := s.hooks.AfterCreateItems(s.hctx, s.pool)
		if err != nil {
			return err
		}
		s.pool = pool
		w := s.hctx.World
		w.Pool = pool
		w.RecordItemCounts()
		if unfilled := len(w.UnfilledLocations()); len(pool) > unfilled {
			s.hctx.Warn(fmt.Sprintf("item pool holds %d items for %d locations", len(pool), unfilled))
		}

	case StageSetRules:
		return s.setRules()

	case StageGenerateBasic:
		if err := s.hooks.BeforeGenerateBasic(s.hctx); err != nil {
			return err
		}
		return s.hooks.AfterGenerateBasic(s.hctx)

	case StagePreFill:
		return s.preFill(mw, player)

	case StageSlotData:
		data := s.hooks.BeforeFillSlotData(s.hctx, hooks.SlotData{})
		for k, v := range s.values.Map() {
			data[k] = v
		}
		data["game"] = s.def.Game()
		data["player_name"] = p.Name
		data["player_id"] = player
		data["seed"] = mw.Seed
		s.slotData = s.hooks.AfterFillSlotData(s.hctx, data)

	case StageHints:
		s.hints = hooks.HintData{}
		s.hooks.BeforeExtendHintInformation(s.hctx, s.hints)
		s.hooks.AfterExtendHintInformation(s.hctx, s.hints)

	case StageSpoiler:
		return s.hooks.BeforeWriteSpoiler(s.hctx, &s.spoiler)
	}
	return nil
}

// settings resolves the player's options and builds the hook context.
func (g *Generator) settings(mw *world.Multiworld, player int, p PlayerSettings, s *slot) error {
	values, err := options.Resolve(s.table, p.Options, s.def.ItemNames())
	if err != nil {
		return err
	}
	s.values = values
	s.hooks = s.def.NewHooks(values)

	w := mw.AddWorld(player, p.Name, s.def.Tables)
	hctx := &hooks.Context{
		World:      w,
		Multiworld: mw,
		Player:     player,
		Options:    values,
		RNG:        rand.New(rand.NewSource(mw.Seed + int64(player))),
		Logger:     g.logger.With("player", player, "game", s.def.Game()),
		Rules:      s.def.Rules,
	}
	hctx.CreateItem = func(name string) (*world.Item, error) {
		name = s.hooks.BeforeCreateItem(hctx, name)
		item, err := w.CreateItem(name)
		if err != nil {
			return nil, err
		}
		return s.hooks.AfterCreateItem(hctx, item), nil
	}
	s.hctx = hctx

	s.fillerItem = s.def.Tables.Game.FillerItemName
	if name, ok := s.hooks.FillerItemName(hctx); ok {
		s.fillerItem = name
	}
	return nil
}

// createItems fills the pool with every enabled item. Traps and filler are
// left to the filler stage.
func (s *slot) createItems() error {
	tables := s.def.Tables
	for i := range tables.Items {
		def := &tables.Items[i]
		if def.Trap || def.Filler || !tables.ItemEnabled(def.Name, s.values) {
			continue
		}
		for range def.Copies() {
			item, err := s.hctx.CreateItem(def.Name)
			if err != nil {
				return err
			}
			s.pool = append(s.pool, item)
		}
	}
	return nil
}

// setRules runs the rule hooks around requires string expansion.
func (s *slot) setRules() error {
	if err := s.hooks.BeforeSetRules(s.hctx); err != nil {
		return err
	}

	s.expanded = make(map[string]string)
	env := s.hctx.RuleEnv()
	for _, loc := range s.hctx.World.Locations() {
		if loc.Requires == "" {
			continue
		}
		out, err := s.def.Rules.Expand(env, loc.Requires)
		if err != nil {
			return fmt.Errorf("location %q: %w", loc.Name, err)
		}
		s.expanded[loc.Name] = out
	}

	return s.hooks.AfterSetRules(s.hctx)
}

// preFill locks the victory event into each remaining victory location and
// checks the location is reachable with everything collected.
func (s *slot) preFill(mw *world.Multiworld, player int) error {
	w := s.hctx.World

	var victories []*world.Location
	for _, loc := range w.Locations() {
		if loc.Victory {
			victories = append(victories, loc)
		}
	}
	if len(victories) == 0 {
		return fmt.Errorf("%w for %s", ErrNoVictoryLocation, w.Game())
	}

	state := world.NewCollectionState(mw)
	for _, it := range w.Pool {
		state.Collect(it)
	}
	for _, loc := range w.Locations() {
		if loc.Locked && loc.Item != nil {
			state.Collect(loc.Item)
		}
	}

	for _, loc := range victories {
		loc.PlaceLockedItem(world.NewEvent(world.VictoryEventName, player))
		if loc.CanAccess(state) {
			s.victoryReachable = true
		}
	}
	if !s.victoryReachable {
		s.hctx.Warn("victory location is not reachable with the full item pool")
	}
	return nil
}

// result records the slot's prepared world.
func (s *slot) result(player int) PlayerResult {
	w := s.hctx.World

	pr := PlayerResult{
		Player:           player,
		Name:             w.Name,
		Game:             s.def.Game(),
		FillerItem:       s.fillerItem,
		Options:          s.values.Map(),
		ItemCounts:       w.ItemCounts,
		SlotData:         s.slotData,
		HintData:         s.hints[player],
		Spoiler:          s.spoiler.String(),
		Warnings:         s.hctx.Warnings,
		VictoryReachable: s.victoryReachable,
	}
	for _, it := range w.Pool {
		pr.ItemPool = append(pr.ItemPool, it.Name)
	}
	for _, r := range w.Regions {
		rr := RegionResult{Name: r.Name, Exits: slices.Clone(r.Exits)}
		if rr.Exits == nil {
			rr.Exits = []string{}
		}
		for _, loc := range r.Locations {
			lr := LocationResult{
				Name:     loc.Name,
				Address:  loc.Address,
				Requires: loc.Requires,
				Locked:   loc.Locked,
				Victory:  loc.Victory,
			}
			if exp, ok := s.expanded[loc.Name]; ok {
				lr.Requires = exp
			}
			if loc.Item != nil {
				lr.Item = loc.Item.Name
				lr.Class = loc.Item.Class.String()
			}
			rr.Locations = append(rr.Locations, lr)
		}
		pr.Regions = append(pr.Regions, rr)
	}
	return pr
}
