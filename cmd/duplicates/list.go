package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suseejs/duplicates"
)

func newListCmd(c *cli) *cobra.Command {
	var (
		jsonOut bool
		deps    bool
		decls   bool
	)

	cmd := &cobra.Command{
		Use:   "list [path...]",
		Short: "List the modules of a bundle",
		Long: `List prints the module paths of a bundle. With --decls each module's
top-level declarations are listed beneath its path. With --deps the
modules are ordered with imported modules before their importers, and
import cycles are reported on stderr.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := c.buildSource(args)
			if err != nil {
				return err
			}

			mods, err := duplicates.ReadModules(src, c.options()...)
			if err != nil {
				return err
			}

			if decls {
				declList, err := duplicates.Declarations(mods, c.options()...)
				if err != nil {
					return err
				}
				if jsonOut {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(declList)
				}
				for _, mod := range declList {
					fmt.Fprintln(cmd.OutOrStdout(), mod.Path)
					for _, name := range mod.Names {
						fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
					}
				}
				return nil
			}

			paths := make([]string, 0, len(mods))
			if deps {
				order, err := duplicates.DependencyOrder(mods, c.options()...)
				if err != nil {
					return err
				}
				paths = order.Order
				for _, cycle := range order.Cycles {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: import cycle: %v\n", cycle)
				}
			} else {
				for _, mod := range mods {
					paths = append(paths, mod.Path)
				}
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(paths)
			}
			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON array")
	cmd.Flags().BoolVar(&deps, "deps", false, "order by import dependencies and report cycles")
	cmd.Flags().BoolVar(&decls, "decls", false, "list each module's top-level declarations")
	return cmd
}
