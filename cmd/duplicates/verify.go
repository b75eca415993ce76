package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suseejs/duplicates"
)

func newVerifyCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [path...]",
		Short: "Report top-level names still declared by multiple modules",
		Long: `Verify parses the bundle without rewriting anything and lists every
top-level name declared in two or more modules. The exit code is 2 when
collisions remain, 0 when the bundle is clean.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := c.buildSource(args)
			if err != nil {
				return err
			}

			collisions, err := duplicates.LoadVerify(src, c.options()...)
			if err != nil {
				return err
			}

			if len(collisions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no collisions")
				return nil
			}
			for _, collision := range collisions {
				fmt.Fprintln(cmd.OutOrStdout(), collision.String())
			}
			return errCollisionsRemain
		},
	}
}
