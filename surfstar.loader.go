package surfstar

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"unicode/utf8"
)

// SourceLoader resolves a template path to its source text.
// Implementations must be safe for concurrent use.
type SourceLoader interface {
	Load(ctx context.Context, path string) (string, error)
}

// LoaderFunc adapts a plain function to SourceLoader
type LoaderFunc func(ctx context.Context, path string) (string, error)

// Load calls f
func (f LoaderFunc) Load(ctx context.Context, path string) (string, error) {
	return f(ctx, path)
}

// FileLoader reads UTF-8 template files. Relative paths are joined to Root
// when Root is set; the path is otherwise used as given.
type FileLoader struct {
	Root string
}

// NewFileLoader creates a loader rooted at root. An empty root resolves
// paths against the working directory.
func NewFileLoader(root string) *FileLoader {
	return &FileLoader{Root: root}
}

// Load reads the file at path
func (l *FileLoader) Load(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if path == "" {
		return "", NewFileError(ErrMsgEmptyPath, path, nil)
	}

	full := path
	if l.Root != "" && !filepath.IsAbs(path) {
		full = filepath.Join(l.Root, path)
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", NewTemplateNotFoundError(path)
		}
		return "", NewFileError(ErrMsgLoadFailed, path, err)
	}
	if !utf8.Valid(data) {
		return "", NewFileError(ErrMsgInvalidUTF8, path, nil)
	}
	return string(data), nil
}

// MemoryLoader serves template sources from an in-memory map
type MemoryLoader struct {
	mu      sync.RWMutex
	sources map[string]string
}

// NewMemoryLoader creates a loader seeded with sources. The map is copied.
func NewMemoryLoader(sources map[string]string) *MemoryLoader {
	l := &MemoryLoader{sources: make(map[string]string, len(sources))}
	for path, src := range sources {
		l.sources[path] = src
	}
	return l
}

// Load returns the source registered for path
func (l *MemoryLoader) Load(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	src, ok := l.sources[path]
	if !ok {
		return "", NewTemplateNotFoundError(path)
	}
	return src, nil
}

// Set registers or replaces the source for path
func (l *MemoryLoader) Set(path, source string) {
	l.mu.Lock()
	l.sources[path] = source
	l.mu.Unlock()
}

// Delete removes path. It reports whether path was registered.
func (l *MemoryLoader) Delete(path string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.sources[path]; !ok {
		return false
	}
	delete(l.sources, path)
	return true
}

// Paths returns all registered paths in sorted order
func (l *MemoryLoader) Paths() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	paths := make([]string, 0, len(l.sources))
	for path := range l.sources {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
