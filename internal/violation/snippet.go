package violation

import (
	"os"
	"strings"
)

// SnippetLoader reads single source lines for record snippets. File
// contents are cached per path so a file with many findings is read
// once. Read failures degrade to an empty snippet, never an error.
type SnippetLoader struct {
	lines map[string][]string
}

// NewSnippetLoader returns an empty loader.
func NewSnippetLoader() *SnippetLoader {
	return &SnippetLoader{lines: make(map[string][]string)}
}

// Line returns the trimmed source line at the 1-based line number, or
// empty when the file is unreadable or the line is out of range.
func (s *SnippetLoader) Line(path string, line int) string {
	if line < 1 {
		return ""
	}

	lines, ok := s.lines[path]
	if !ok {
		lines = s.load(path)
		s.lines[path] = lines
	}

	if line > len(lines) {
		return ""
	}

	return strings.TrimSpace(lines[line-1])
}

func (s *SnippetLoader) load(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	return strings.Split(string(data), "\n")
}
