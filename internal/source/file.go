package source

import (
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// File is a source buffer together with the path it was loaded from.
// Tokens and AST nodes produced from Content share its memory, so a File
// must be kept alive as long as anything derived from it is in use.
type File struct {
	Path    string
	Content string

	once  sync.Once
	lines []string
}

// NewFile wraps in-memory content.
func NewFile(path, content string) *File {
	return &File{Path: path, Content: content}
}

// ReadFile loads a file from disk.
func ReadFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return NewFile(path, string(content)), nil
}

// Line returns the 1-based line n without its trailing line break.
func (f *File) Line(n int) (string, bool) {
	f.once.Do(func() {
		f.lines = strings.Split(f.Content, "\n")
	})
	if n < 1 || n > len(f.lines) {
		return "", false
	}
	return strings.TrimSuffix(f.lines[n-1], "\r"), true
}

// Slice returns the text covered by r.
func (f *File) Slice(r Range) string {
	return r.Text(f.Content)
}
