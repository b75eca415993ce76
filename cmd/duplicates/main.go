// Command duplicates resolves top-level name collisions across a
// bundle of JavaScript/TypeScript modules.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/suseejs/duplicates"
	"github.com/suseejs/duplicates/cmd/internal/cliutil"
)

// Exit codes.
const (
	exitOK         = 0 // success
	exitError      = 1 // user error or processing failure
	exitCollisions = 2 // verify found remaining collisions
)

// errCollisionsRemain marks the verify outcome that maps to
// exitCollisions; the collisions themselves are already printed.
var errCollisionsRemain = errors.New("collisions remain")

type cli struct {
	verbose    int
	prefix     string
	fixpoint   bool
	nodePaths  bool
	configPath string
	extensions []string
}

func main() {
	os.Exit(run())
}

func run() int {
	c := &cli{}
	root := newRootCmd(c)
	if err := root.Execute(); err != nil {
		if errors.Is(err, errCollisionsRemain) {
			return exitCollisions
		}
		cliutil.PrintError("%v", err)
		return exitError
	}
	return exitOK
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "duplicates",
		Short: "Rename colliding top-level declarations across a module bundle",
		Long: `duplicates finds top-level names declared by more than one module in a
bundle, renames them to globally unique identifiers, and rewrites every
reference, export, and import the renames touch.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.applyConfigFile(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.CountVarP(&c.verbose, "verbose", "v", "enable debug logging (repeat for trace)")
	flags.StringVar(&c.prefix, "prefix", duplicates.DefaultPrefix, "prefix for generated names")
	flags.BoolVar(&c.fixpoint, "fixpoint", false, "iterate rewrites until renames stop propagating")
	flags.BoolVar(&c.nodePaths, "node-paths", false, "append NODE_PATH directories as fallback sources")
	flags.StringVar(&c.configPath, "config", "", "YAML config file")
	flags.StringSliceVar(&c.extensions, "ext", nil, "module file extensions to recognize")

	root.AddCommand(
		newResolveCmd(c),
		newVerifyCmd(c),
		newListCmd(c),
		newVersionCmd(),
	)
	return root
}

// setupLogger builds the slog logger backed by a charm log handler.
// No verbosity means no logger at all, which keeps the library silent.
func (c *cli) setupLogger() *slog.Logger {
	if c.verbose == 0 {
		return nil
	}
	handler := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "duplicates",
		Level:  log.DebugLevel,
	})
	if c.verbose >= 2 {
		handler.SetLevel(log.Level(duplicates.LevelTrace))
	}
	return slog.New(handler)
}

// options translates CLI state into library options.
func (c *cli) options() []duplicates.Option {
	opts := []duplicates.Option{duplicates.WithPrefix(c.prefix)}
	if c.fixpoint {
		opts = append(opts, duplicates.WithFixpoint())
	}
	if c.nodePaths {
		opts = append(opts, duplicates.WithNodePaths())
	}
	if logger := c.setupLogger(); logger != nil {
		opts = append(opts, duplicates.WithLogger(logger))
	}
	return opts
}

// buildSource composes a Source from the positional arguments: each
// directory becomes a recursive tree source and each file is taken
// verbatim. No arguments means the current directory.
func (c *cli) buildSource(args []string) (duplicates.Source, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	var sourceOpts []duplicates.SourceOption
	if len(c.extensions) > 0 {
		sourceOpts = append(sourceOpts, duplicates.WithExtensions(c.extensions...))
	}

	var sources []duplicates.Source
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			src, err := duplicates.DirTree(arg, sourceOpts...)
			if err != nil {
				return nil, err
			}
			sources = append(sources, src)
		} else {
			files = append(files, arg)
		}
	}
	if len(files) > 0 {
		sources = append(sources, duplicates.Files(files...))
	}
	if len(sources) == 1 {
		return sources[0], nil
	}
	return duplicates.Multi(sources...), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			version := "(devel)"
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
				version = info.Main.Version
			}
			fmt.Fprintf(cmd.OutOrStdout(), "duplicates %s\n", version)
		},
	}
}
