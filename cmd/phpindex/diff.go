package main

import (
	"fmt"
	"os"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/urfave/cli/v2"
)

// diffCommand prints a unified diff between two PHP files, useful for
// eyeballing what a reformat or codemod changed before re-indexing.
func diffCommand() *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "print a unified diff between two PHP files",
		ArgsUsage: "<a.php> <b.php>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() < 2 {
				return fmt.Errorf("phpindex diff: usage: phpindex diff <a.php> <b.php>")
			}
			pathA, pathB := c.Args().Get(0), c.Args().Get(1)

			before, err := os.ReadFile(pathA)
			if err != nil {
				return err
			}
			after, err := os.ReadFile(pathB)
			if err != nil {
				return err
			}

			edits := myers.ComputeEdits(span.URIFromPath(pathA), string(before), string(after))
			unified := gotextdiff.ToUnified(pathA, pathB, string(before), edits)
			fmt.Fprint(os.Stdout, unified)
			return nil
		},
	}
}
