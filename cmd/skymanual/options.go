package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/samdwyer/skymanual/internal/options"
)

var optionsCmd = &cobra.Command{
	Use:   "options <game>",
	Short: "List a game's options and their defaults",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator()
		if err != nil {
			return err
		}
		def, err := g.Lookup(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, def.Game())
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tKIND\tDEFAULT\tRANGE")
		for _, d := range def.OptionTable().Defs() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Key, d.Kind, d.DefaultString(), describeRange(d))
		}
		return w.Flush()
	},
}

func describeRange(d options.Def) string {
	switch d.Kind {
	case options.KindRange:
		return fmt.Sprintf("%d..%d", d.Min, d.Max)
	case options.KindChoice:
		s := ""
		for i, c := range d.Choices {
			if i > 0 {
				s += ", "
			}
			s += c.Name
		}
		return s
	default:
		return ""
	}
}
