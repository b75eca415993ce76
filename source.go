package duplicates

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// DefaultExtensions are the file extensions recognized as bundle modules.
var DefaultExtensions = []string{".js", ".mjs", ".cjs", ".ts", ".mts", ".jsx", ".tsx"}

// Source enumerates and opens the modules of a bundle.
//
// The paths a Source lists become the module identities of the loaded
// bundle, so import specifiers inside the modules must resolve against
// them. Directory-backed sources list slash-separated paths relative
// to their root for exactly this reason.
type Source interface {
	// ListFiles returns all module paths known to this source.
	ListFiles() ([]string, error)

	// Open opens one listed module for reading.
	Open(path string) (io.ReadCloser, error)
}

// SourceOption configures a source.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	extensions []string
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		extensions: DefaultExtensions,
	}
}

// WithExtensions sets the file extensions to recognize for this source.
func WithExtensions(exts ...string) SourceOption {
	return func(c *sourceConfig) {
		c.extensions = exts
	}
}

// --- Dir Source (single directory, no recursion) ---

type dirSource struct {
	path   string
	config sourceConfig
}

// Dir creates a Source over the module files of a single directory
// (no recursion). Module paths are the bare file names.
func Dir(path string, opts ...SourceOption) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrInvalid}
	}
	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &dirSource{path: path, config: cfg}, nil
}

// MustDir is like Dir but panics on error.
func MustDir(path string, opts ...SourceOption) Source {
	src, err := Dir(path, opts...)
	if err != nil {
		panic(err)
	}
	return src
}

func (s *dirSource) ListFiles() ([]string, error) {
	extSet := makeExtensionSet(s.config.extensions)

	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if hasValidExtension(entry.Name(), extSet) {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

func (s *dirSource) Open(path string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.path, filepath.FromSlash(path)))
}

// --- DirTree Source (recursive directory, indexed) ---

type treeSource struct {
	root   string
	files  []string // slash paths relative to root
	config sourceConfig
}

// DirTree creates a Source that recursively indexes a directory tree.
// It walks the tree once at construction; module paths are slash paths
// relative to the root, which is how relative import specifiers inside
// the tree address each other.
func DirTree(root string, opts ...SourceOption) (Source, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &os.PathError{Op: "open", Path: root, Err: os.ErrInvalid}
	}

	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	extSet := makeExtensionSet(cfg.extensions)
	var files []string

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !hasValidExtension(path, extSet) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &treeSource{root: root, files: files, config: cfg}, nil
}

// MustDirTree is like DirTree but panics on error.
func MustDirTree(root string, opts ...SourceOption) Source {
	src, err := DirTree(root, opts...)
	if err != nil {
		panic(err)
	}
	return src
}

func (s *treeSource) ListFiles() ([]string, error) {
	files := make([]string, len(s.files))
	copy(files, s.files)
	return files, nil
}

func (s *treeSource) Open(path string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.root, filepath.FromSlash(path)))
}

// --- FS Source (for embed.FS, testing, http filesystems) ---

type fsSource struct {
	fsys   fs.FS
	config sourceConfig

	once  sync.Once
	files []string
	err   error
}

// FS creates a Source backed by an fs.FS (e.g., embed.FS).
// It lazily indexes the filesystem on first use.
func FS(fsys fs.FS, opts ...SourceOption) Source {
	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &fsSource{fsys: fsys, config: cfg}
}

func (s *fsSource) ListFiles() ([]string, error) {
	s.once.Do(func() {
		s.files, s.err = s.buildIndex()
	})
	if s.err != nil {
		return nil, s.err
	}
	files := make([]string, len(s.files))
	copy(files, s.files)
	return files, nil
}

func (s *fsSource) Open(path string) (io.ReadCloser, error) {
	return s.fsys.Open(path)
}

func (s *fsSource) buildIndex() ([]string, error) {
	extSet := makeExtensionSet(s.config.extensions)
	var files []string

	err := fs.WalkDir(s.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if hasValidExtension(path, extSet) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// --- Files Source (explicit file list) ---

type filesSource struct {
	paths []string
}

// Files creates a Source over an explicit list of module files. The
// given paths are used verbatim (slash-normalized) as module
// identities.
func Files(paths ...string) Source {
	normalized := make([]string, len(paths))
	for i, p := range paths {
		normalized[i] = filepath.ToSlash(p)
	}
	return &filesSource{paths: normalized}
}

func (s *filesSource) ListFiles() ([]string, error) {
	paths := make([]string, len(s.paths))
	copy(paths, s.paths)
	return paths, nil
}

func (s *filesSource) Open(path string) (io.ReadCloser, error) {
	return os.Open(filepath.FromSlash(path))
}

// --- Multi Source (combines multiple sources) ---

type multiSource struct {
	sources []Source
}

// Multi combines multiple sources into one. Listings are concatenated
// in source order; Open tries each source in order, returning the
// first match.
func Multi(sources ...Source) Source {
	return &multiSource{sources: sources}
}

func (s *multiSource) ListFiles() ([]string, error) {
	var files []string
	for _, src := range s.sources {
		f, err := src.ListFiles()
		if err != nil {
			return nil, err
		}
		files = append(files, f...)
	}
	return files, nil
}

func (s *multiSource) Open(path string) (io.ReadCloser, error) {
	for _, src := range s.sources {
		f, err := src.Open(path)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, fs.ErrNotExist
}

// --- Helpers ---

func makeExtensionSet(extensions []string) map[string]struct{} {
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = struct{}{}
	}
	return set
}

func hasValidExtension(path string, extSet map[string]struct{}) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := extSet[ext]
	return ok
}

func sortedUnique(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	var result []string
	for _, p := range paths {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			result = append(result, p)
		}
	}
	sort.Strings(result)
	return result
}
