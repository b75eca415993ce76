package duplicates

import (
	"log/slog"
	"os"
	"strings"
)

// WithNodePaths enables automatic discovery of module directories from
// the NODE_PATH environment variable. Discovered directories are
// appended after the explicit source, serving as fallback.
func WithNodePaths() Option {
	return func(c *config) { c.nodePaths = true }
}

// discoverNodeSources returns Sources for all discovered NODE_PATH
// directories.
func discoverNodeSources(logger *slog.Logger) []Source {
	dirs := discoverNodePaths(logger)
	var sources []Source
	for _, d := range dirs {
		if src, err := Dir(d); err == nil {
			sources = append(sources, src)
		}
	}
	return sources
}

// discoverNodePaths returns the NODE_PATH directories, deduplicated
// and filtered to directories that exist.
func discoverNodePaths(logger *slog.Logger) []string {
	value := os.Getenv("NODE_PATH")
	if value == "" {
		return nil
	}
	dirs := filterExistingDirs(dedup(splitPaths(value)))
	if logEnabled(logger, slog.LevelDebug) {
		logger.Debug("node path discovery",
			slog.Int("directories", len(dirs)))
	}
	return dirs
}

func splitPaths(s string) []string {
	var result []string
	for _, p := range strings.Split(s, string(os.PathListSeparator)) {
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func dedup(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	var result []string
	for _, p := range paths {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			result = append(result, p)
		}
	}
	return result
}

func filterExistingDirs(paths []string) []string {
	var result []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err == nil && info.IsDir() {
			result = append(result, p)
		}
	}
	return result
}
