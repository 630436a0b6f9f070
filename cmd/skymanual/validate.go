package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/skymanual/internal/generate"
	"github.com/samdwyer/skymanual/internal/options"
)

var validateCmd = &cobra.Command{
	Use:   "validate <player.yaml>...",
	Short: "Check player files without generating",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		failed := 0
		for _, path := range args {
			p, err := generate.LoadPlayer(path)
			if err == nil {
				_, err = g.Validate(p)
			}
			if err == nil {
				fmt.Fprintf(out, "%s: ok (%s, %s)\n", path, p.Name, p.Game)
				continue
			}

			failed++
			var verr *options.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(out, "%s:\n", path)
				for _, problem := range verr.Problems {
					fmt.Fprintf(out, "  %v\n", problem)
				}
				continue
			}
			fmt.Fprintf(out, "%s: %v\n", path, err)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d player files are invalid", failed, len(args))
		}
		return nil
	},
}
