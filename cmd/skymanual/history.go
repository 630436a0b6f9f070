package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/samdwyer/skymanual/internal/ui"
	"github.com/samdwyer/skymanual/internal/worlds"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored generations, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		list, err := store.List(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCREATED\tSEED\tPLAYERS")
		for _, s := range list {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
				s.ID, s.CreatedAt.Local().Format(time.DateTime), s.Seed, strings.Join(s.Players, ", "))
		}
		return w.Flush()
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a stored generation as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		result, err := store.Load(cmd.Context(), id)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

var viewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Browse a stored generation in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		result, err := store.Load(cmd.Context(), id)
		if err != nil {
			return err
		}
		palette, err := gamePalette()
		if err != nil {
			return err
		}

		screen, err := ui.NewScreen()
		if err != nil {
			return err
		}
		v, err := ui.NewViewer(screen, result, palette)
		if err != nil {
			screen.Close()
			return err
		}
		return v.Run(cmd.Context())
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of generations to list (0 for all)")
}

// gamePalette colours items by each game's classification colours.
func gamePalette() (ui.Palette, error) {
	defs, err := worlds.All()
	if err != nil {
		return nil, err
	}
	return func(game, class string) tcell.Color {
		for _, d := range defs {
			if d.Game() == game {
				return d.Tables.Game.ClassColor(class)
			}
		}
		return tcell.ColorDefault
	}, nil
}
