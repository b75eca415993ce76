package duplicates

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
)

// Load reads every module from the source and resolves the batch.
// Use Multi() to combine multiple sources.
//
// Module paths are sorted before resolution, so the generated name
// sequence is stable no matter what order the source lists files in.
//
// Example:
//
//	resolved, err := duplicates.Load(
//	    duplicates.MustDirTree("./src"),
//	    duplicates.WithLogger(slog.Default()),
//	)
func Load(source Source, opts ...Option) ([]Module, error) {
	cfg := newConfig(opts)
	source = withFallbackSources(source, cfg)
	if source == nil {
		return nil, ErrNoModules
	}

	modules, err := readModules(source, cfg)
	if err != nil {
		return nil, err
	}
	if len(modules) == 0 {
		return nil, ErrNoModules
	}
	return Resolve(modules, opts...)
}

// LoadVerify reads every module from the source and reports remaining
// collisions without rewriting anything.
func LoadVerify(source Source, opts ...Option) ([]Collision, error) {
	cfg := newConfig(opts)
	source = withFallbackSources(source, cfg)
	if source == nil {
		return nil, ErrNoModules
	}

	modules, err := readModules(source, cfg)
	if err != nil {
		return nil, err
	}
	if len(modules) == 0 {
		return nil, ErrNoModules
	}
	return Verify(modules, opts...)
}

// ReadModules reads every module the source lists, in sorted path
// order, without resolving. Duplicate paths keep the first listing.
func ReadModules(source Source, opts ...Option) ([]Module, error) {
	cfg := newConfig(opts)
	if source == nil {
		return nil, ErrNoModules
	}
	return readModules(source, cfg)
}

// withFallbackSources appends NODE_PATH-discovered sources when
// enabled. A nil source with discovered fallbacks is still loadable.
func withFallbackSources(source Source, cfg config) Source {
	if !cfg.nodePaths {
		return source
	}
	discovered := discoverNodeSources(cfg.logger)
	if len(discovered) == 0 {
		return source
	}
	if source == nil {
		return Multi(discovered...)
	}
	return Multi(append([]Source{source}, discovered...)...)
}

// readModules lists and reads the source in parallel.
func readModules(source Source, cfg config) ([]Module, error) {
	logger := cfg.logger

	files, err := source.ListFiles()
	if err != nil {
		return nil, err
	}
	files = sortedUnique(files)

	if logEnabled(logger, slog.LevelInfo) {
		logger.LogAttrs(context.Background(), slog.LevelInfo, "parallel loading",
			slog.Int("files", len(files)))
	}

	modules := make([]Module, len(files))
	errs := make([]error, len(files))

	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.NumCPU())

	for i, path := range files {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			f, err := source.Open(path)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", path, err)
				return
			}
			content, err := io.ReadAll(f)
			_ = f.Close()
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", path, err)
				return
			}
			modules[i] = Module{Path: path, Text: string(content)}
		}(i, path)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	if logEnabled(logger, slog.LevelInfo) {
		logger.LogAttrs(context.Background(), slog.LevelInfo, "parallel loading complete",
			slog.Int("modules", len(modules)))
	}
	return modules, nil
}
