package source

import "unicode/utf8"

// Position represents a specific location in the source code with line, column, and index information.
type Position struct {
	Line   int // Line number in the source code, 1-based.
	Column int // Column number in characters, 1-based.
	Index  int // Byte offset in the source code.
}

// Start is the position of the first character of any buffer.
func Start() Position {
	return Position{Line: 1, Column: 1, Index: 0}
}

// Advance moves the Position past a single character.
// A line break increments the line number and resets the column to 1;
// every other character moves one column to the right.
// The index is incremented by the encoded width of the character.
func (p *Position) Advance(ch rune) *Position {
	if ch == '\n' {
		p.Line++
		p.Column = 1
	} else {
		p.Column++
	}
	p.Index += runeWidth(ch)
	return p
}

// Before reports whether p comes strictly before other in the buffer.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

func runeWidth(ch rune) int {
	if n := utf8.RuneLen(ch); n > 0 {
		return n
	}
	// invalid runes were decoded from a single byte
	return 1
}
