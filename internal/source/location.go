package source

import "fmt"

// Range represents a span of source code on a single line.
// Length counts characters, Width counts bytes; the two differ only for non-ASCII text.
type Range struct {
	Start  Position
	Length int
	Width  int
}

// NewRange creates an empty Range starting at the given position
func NewRange(start Position) Range {
	return Range{Start: start}
}

// Grow extends the range by one character.
func (r *Range) Grow(ch rune) *Range {
	r.Length++
	r.Width += runeWidth(ch)
	return r
}

// End returns the position immediately after the last character of the range.
func (r Range) End() Position {
	return Position{
		Line:   r.Start.Line,
		Column: r.Start.Column + r.Length,
		Index:  r.Start.Index + r.Width,
	}
}

// IsEmpty reports whether the range covers no characters.
func (r Range) IsEmpty() bool {
	return r.Length == 0
}

// Contains checks if the given position is within this range
func (r Range) Contains(pos Position) bool {
	if pos.Line != r.Start.Line {
		return false
	}
	return pos.Column >= r.Start.Column && pos.Column < r.Start.Column+r.Length
}

// Text re-slices the buffer the range was taken from.
// Returns empty string if the range does not fit the buffer.
func (r Range) Text(src string) string {
	end := r.Start.Index + r.Width
	if r.Start.Index < 0 || end > len(src) || r.Width < 0 {
		return ""
	}
	return src[r.Start.Index:end]
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d", r.Start.Line, r.Start.Column)
}

// Ptr returns a pointer to a copy of r, for optional range fields.
func (r Range) Ptr() *Range {
	return &r
}
