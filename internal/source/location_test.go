package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionAdvance(t *testing.T) {
	pos := Start()

	pos.Advance('a')
	assert.Equal(t, Position{Line: 1, Column: 2, Index: 1}, pos)

	pos.Advance('\n')
	assert.Equal(t, Position{Line: 2, Column: 1, Index: 2}, pos)

	// multi-byte characters take one column but several bytes
	pos.Advance('é')
	assert.Equal(t, Position{Line: 2, Column: 2, Index: 4}, pos)
}

func TestPositionBefore(t *testing.T) {
	a := Position{Line: 1, Column: 5}
	b := Position{Line: 2, Column: 1}
	c := Position{Line: 2, Column: 3}

	assert.True(t, a.Before(b))
	assert.True(t, b.Before(c))
	assert.False(t, c.Before(a))
	assert.False(t, c.Before(c))
}

func TestRangeText(t *testing.T) {
	src := "let x\nwörld y"

	tests := []struct {
		name     string
		start    Position
		text     string
		expected string
	}{
		{
			name:     "first word",
			start:    Position{Line: 1, Column: 1, Index: 0},
			text:     "let",
			expected: "let",
		},
		{
			name:     "second line with multi-byte rune",
			start:    Position{Line: 2, Column: 1, Index: 6},
			text:     "wörld",
			expected: "wörld",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRange(tt.start)
			for _, ch := range tt.text {
				r.Grow(ch)
			}
			assert.Equal(t, tt.expected, r.Text(src))
			assert.Equal(t, len([]rune(tt.text)), r.Length)
			assert.Equal(t, len(tt.text), r.Width)
		})
	}
}

func TestRangeTextOutOfBounds(t *testing.T) {
	r := Range{Start: Position{Line: 1, Column: 1, Index: 3}, Length: 4, Width: 4}
	assert.Equal(t, "", r.Text("abc"))
}

func TestRangeEndAndContains(t *testing.T) {
	r := Range{Start: Position{Line: 3, Column: 4, Index: 20}, Length: 3, Width: 3}

	assert.Equal(t, Position{Line: 3, Column: 7, Index: 23}, r.End())
	assert.True(t, r.Contains(Position{Line: 3, Column: 4}))
	assert.True(t, r.Contains(Position{Line: 3, Column: 6}))
	assert.False(t, r.Contains(Position{Line: 3, Column: 7}))
	assert.False(t, r.Contains(Position{Line: 2, Column: 5}))
	assert.Equal(t, "3:4", r.String())
}

func TestEmptyRange(t *testing.T) {
	r := NewRange(Start())
	assert.True(t, r.IsEmpty())
	assert.Equal(t, Start(), r.End())
	assert.Equal(t, "", r.Text("anything"))
}

func TestFileLine(t *testing.T) {
	f := NewFile("mem.ir", "BLOCK a()\r\n  END\n")

	line, ok := f.Line(1)
	require.True(t, ok)
	assert.Equal(t, "BLOCK a()", line)

	line, ok = f.Line(2)
	require.True(t, ok)
	assert.Equal(t, "  END", line)

	_, ok = f.Line(0)
	assert.False(t, ok)
	_, ok = f.Line(10)
	assert.False(t, ok)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.ir")
	require.NoError(t, os.WriteFile(path, []byte("BLOCK main()\nEND\n"), 0644))

	f, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Path)

	r := Range{Start: Position{Line: 1, Column: 7, Index: 6}, Length: 4, Width: 4}
	assert.Equal(t, "main", f.Slice(r))

	_, err = ReadFile(filepath.Join(dir, "missing.ir"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.ir")
}
