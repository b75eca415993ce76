package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/suseejs/duplicates"
	"github.com/suseejs/duplicates/cmd/internal/cliutil"
)

func newResolveCmd(c *cli) *cobra.Command {
	var (
		outDir  string
		output  string
		changed bool
	)

	cmd := &cobra.Command{
		Use:   "resolve [path...]",
		Short: "Rename colliding declarations and rewrite the bundle",
		Long: `Resolve loads every module under the given directories (or the listed
files), renames colliding top-level declarations, and emits the
rewritten bundle. Without --out-dir the modules are printed to stdout,
each preceded by a "// module:" header line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := c.buildSource(args)
			if err != nil {
				return err
			}

			resolved, err := duplicates.Load(src, c.options()...)
			if err != nil {
				return err
			}

			originals := make(map[string]string)
			if changed {
				mods, err := duplicates.ReadModules(src)
				if err != nil {
					return err
				}
				for _, mod := range mods {
					originals[mod.Path] = mod.Text
				}
			}

			if outDir != "" {
				for _, mod := range resolved {
					if changed && originals[mod.Path] == mod.Text {
						continue
					}
					if err := cliutil.WriteModuleFile(outDir, mod.Path, mod.Text); err != nil {
						return err
					}
				}
				return nil
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, closeOutput, err := cliutil.GetOutput(output)
				if err != nil {
					return err
				}
				defer closeOutput()
				w = f
			}

			first := true
			for _, mod := range resolved {
				if changed && originals[mod.Path] == mod.Text {
					continue
				}
				if !first {
					fmt.Fprintln(w)
				}
				first = false
				fmt.Fprintf(w, "// module: %s\n%s", mod.Path, mod.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out-dir", "d", "", "write rewritten modules under this directory")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write output to file (default stdout)")
	cmd.Flags().BoolVar(&changed, "changed-only", false, "emit only modules whose text changed")
	return cmd
}
