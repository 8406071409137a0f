package input

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

const maxLineBytes = 1 << 20

// Data is the content read from one input.
type Data struct {
	Path    string
	Content string
	Lines   []string
}

// Source provides access to the inputs the packer reads.
type Source interface {
	Read(path string) (Data, error)
}

// FileSource reads inputs from the filesystem.
type FileSource struct {
	roots []string
}

// NewFileSource creates a FileSource searching the given resource directories.
// With no directories it searches the working directory.
func NewFileSource(roots ...string) *FileSource {
	if len(roots) == 0 {
		roots = []string{"."}
	}
	return &FileSource{roots: slices.Clone(roots)}
}

// Read resolves path, reads it and splits it into lines.
func (s *FileSource) Read(path string) (Data, error) {
	if strings.TrimSpace(path) == "" {
		return Data{}, ErrBlankPath
	}

	resolved, err := s.resolve(path)
	if err != nil {
		return Data{}, err
	}

	raw, err := os.ReadFile(resolved)
	if err != nil {
		return Data{}, fmt.Errorf("read %s: %w", resolved, err)
	}

	return parse(resolved, raw)
}

// resolve locates path as given, then relative to each root by walking up
// the directory tree.
func (s *FileSource) resolve(path string) (string, error) {
	if isFile(path) {
		return path, nil
	}
	if filepath.IsAbs(path) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	for _, root := range s.roots {
		dir, err := filepath.Abs(root)
		if err != nil {
			continue
		}
		for {
			candidate := filepath.Join(dir, path)
			if isFile(candidate) {
				return candidate, nil
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNotFound, path)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// MemorySource keeps inputs in memory and guards access with a RWMutex.
type MemorySource struct {
	mu     sync.RWMutex
	inputs map[string][]byte
}

// NewMemorySource creates an empty MemorySource.
func NewMemorySource() *MemorySource {
	return &MemorySource{inputs: make(map[string][]byte)}
}

// Put stores a copy of content under path.
func (s *MemorySource) Put(path string, content []byte) {
	s.mu.Lock()
	s.inputs[path] = bytes.Clone(content)
	s.mu.Unlock()
}

// Read returns the lines stored under path.
func (s *MemorySource) Read(path string) (Data, error) {
	if strings.TrimSpace(path) == "" {
		return Data{}, ErrBlankPath
	}

	s.mu.RLock()
	raw, ok := s.inputs[path]
	s.mu.RUnlock()
	if !ok {
		return Data{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	return parse(path, raw)
}

// parse splits raw into lines. CRLF endings are accepted and trailing empty
// lines are dropped; interior empty lines are kept.
func parse(path string, raw []byte) (Data, error) {
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Data{}, fmt.Errorf("scan %s: %w", path, err)
	}

	content := strings.Join(lines, "\n")
	if len(content) == 0 {
		return Data{}, fmt.Errorf("%w: %s", ErrEmptyInput, path)
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return Data{
		Path:    path,
		Content: content,
		Lines:   lines,
	}, nil
}
