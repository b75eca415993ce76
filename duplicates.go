package duplicates

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/suseejs/duplicates/internal/namegen"
	"github.com/suseejs/duplicates/internal/parser"
	"github.com/suseejs/duplicates/internal/printer"
	"github.com/suseejs/duplicates/internal/resolver"
)

// ErrNoModules is returned when Resolve, Verify, or Load is given an
// empty batch.
var ErrNoModules = errors.New("no modules provided")

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-item iteration logging (tokens, declarations, rename entries).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// Option configures Resolve, Verify, and Load.
type Option func(*config)

type config struct {
	logger    *slog.Logger
	prefix    string
	fixpoint  bool
	nodePaths bool
}

func newConfig(opts []Option) config {
	cfg := config{prefix: namegen.DefaultPrefix}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithPrefix sets the prefix of generated names. The default is "d_".
func WithPrefix(prefix string) Option {
	return func(c *config) { c.prefix = prefix }
}

// WithFixpoint repeats the rewrite cycle until renames stop
// propagating, which resolves re-export chains of any depth. The
// default schedule pushes renames across a single re-export hop.
func WithFixpoint() Option {
	return func(c *config) { c.fixpoint = true }
}

// Resolve renames every top-level name declared by two or more modules
// in the batch and propagates the renames through references, exports,
// and imports. It returns the batch in input order; modules without a
// rewrite keep their text byte for byte.
//
// Example:
//
//	resolved, err := duplicates.Resolve(mods,
//	    duplicates.WithLogger(slog.Default()),
//	)
func Resolve(modules []Module, opts ...Option) ([]Module, error) {
	cfg := newConfig(opts)
	if len(modules) == 0 {
		return nil, ErrNoModules
	}

	parsed, err := parseAll(modules, cfg)
	if err != nil {
		return nil, err
	}

	gen := namegen.New()
	if err := gen.Configure("resolve", cfg.prefix); err != nil {
		return nil, err
	}

	resolver.Resolve(parsed, resolver.Config{
		Generator: gen,
		Logger:    componentLogger(cfg.logger, "resolver"),
		Fixpoint:  cfg.fixpoint,
	})

	out := make([]Module, len(parsed))
	for i, mod := range parsed {
		text := modules[i].Text
		if printer.Changed(mod.Prog) {
			text = printer.Print(mod.Prog, mod.Source)
		}
		out[i] = Module{Path: mod.Path, Text: text}
	}
	return out, nil
}

// Verify parses the batch and reports every top-level name still
// declared in two or more modules. A nil collision slice means the
// batch is collision free.
func Verify(modules []Module, opts ...Option) ([]Collision, error) {
	cfg := newConfig(opts)
	if len(modules) == 0 {
		return nil, ErrNoModules
	}

	parsed, err := parseAll(modules, cfg)
	if err != nil {
		return nil, err
	}
	return resolver.Verify(parsed, componentLogger(cfg.logger, "verifier")), nil
}

// parseAll parses every module in parallel, preserving batch order.
// Any parse failure fails the whole batch; partially rewriting a
// bundle would leave it inconsistent.
func parseAll(modules []Module, cfg config) ([]*resolver.Module, error) {
	logger := componentLogger(cfg.logger, "parser")

	parsed := make([]*resolver.Module, len(modules))
	errs := make([]error, len(modules))

	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.NumCPU())

	for i, mod := range modules {
		wg.Add(1)
		go func(i int, mod Module) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			source := []byte(mod.Text)
			prog, err := parser.New(source, logger).Parse()
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", mod.Path, err)
				return
			}
			parsed[i] = &resolver.Module{Path: mod.Path, Source: source, Prog: prog}
		}(i, mod)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return parsed, nil
}

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("component", component))
}

// logEnabled returns true if logging is enabled at the given level.
func logEnabled(logger *slog.Logger, level slog.Level) bool {
	return logger != nil && logger.Enabled(context.Background(), level)
}
