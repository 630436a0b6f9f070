package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/skymanual/internal/generate"
)

var (
	seed    int64
	noStore bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <player.yaml>...",
	Short: "Generate worlds for one or more players",
	Long: `Generate reads one player file per player, runs every world's hooks and
stores the result. Player files name the player and the game and hold the
options in a block keyed by the game name:

  name: Spyro
  game: Skylanders Swap Force
  Skylanders Swap Force:
    linear_mode: false
    chapters_to_beat: 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "generation seed (0 picks one at random)")
	generateCmd.Flags().BoolVar(&noStore, "no-store", false, "do not save the result")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	players, err := generate.LoadPlayers(args...)
	if err != nil {
		return err
	}
	g, err := newGenerator()
	if err != nil {
		return err
	}
	result, err := g.Generate(ctx, generate.Config{Seed: seed}, players)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "generation %s (seed %d)\n", result.ID, result.Seed)
	for _, p := range result.Players {
		fmt.Fprintf(out, "  player %d %s: %s, %d items, %d locations\n",
			p.Player, p.Name, p.Game, len(p.ItemPool), p.LocationCount())
		for _, w := range p.Warnings {
			fmt.Fprintf(out, "    warning: %s\n", w)
		}
	}

	if noStore {
		return nil
	}
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Save(ctx, result); err != nil {
		return err
	}
	fmt.Fprintf(out, "saved to %s store\n", app.cfg.StorageBackend)
	return nil
}
