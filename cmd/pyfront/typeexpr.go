package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pyfront/internal/convert"
	"pyfront/internal/diag"
	"pyfront/internal/diagfmt"
	"pyfront/internal/source"
	"pyfront/internal/types"
)

var typeexprCmd = &cobra.Command{
	Use:   "typeexpr <comment>",
	Short: "Evaluate a type comment fragment",
	Long:  `Evaluate a single type comment the way function and assignment comments are evaluated, and print the resulting type`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTypeexpr,
}

func runTypeexpr(cmd *cobra.Command, args []string) error {
	bag := diag.NewBag(64)
	rep := diag.BagReporter{Bag: bag}

	typ := convert.TypeFromCommentText(args[0], source.Pos{Line: 1, Col: 0}, rep)

	if bag.Len() > 0 {
		colored, err := useColor(cmd, os.Stderr)
		if err != nil {
			return err
		}
		err = diagfmt.Pretty(os.Stderr, bag, "<typeexpr>", diagfmt.PrettyOpts{
			Color:     colored,
			ShowNotes: true,
		})
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(os.Stdout, types.String(typ))

	if bag.HasErrors() {
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return fmt.Errorf("type comment is invalid")
	}
	return nil
}
