package diagnostics

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/zesterer/ir/colors"
	"github.com/zesterer/ir/internal/tokens"
)

// SyntaxHighlighter provides syntax highlighting for IR source snippets
type SyntaxHighlighter struct {
	enabled bool
}

// NewSyntaxHighlighter creates a new syntax highlighter
func NewSyntaxHighlighter(enabled bool) *SyntaxHighlighter {
	return &SyntaxHighlighter{enabled: enabled}
}

// IsEnabled returns whether syntax highlighting is enabled
func (sh *SyntaxHighlighter) IsEnabled() bool {
	return sh.enabled
}

// Segment is a run of source text sharing one style. A nil Color is plain text.
type Segment struct {
	Text  string
	Color *colors.COLOR
}

// Highlight splits a single source line into styled segments.
// Concatenating the segment texts always reproduces the line.
func (sh *SyntaxHighlighter) Highlight(line string) []Segment {
	if !sh.enabled {
		return []Segment{{Text: line}}
	}

	var segments []Segment
	runes := []rune(line)
	i := 0

	for i < len(runes) {
		start := i
		ch := runes[i]

		switch {
		case unicode.IsSpace(ch):
			for i < len(runes) && unicode.IsSpace(runes[i]) {
				i++
			}
			segments = append(segments, Segment{Text: string(runes[start:i])})

		case ch == tokens.CommentStart:
			segments = append(segments, Segment{Text: string(runes[start:]), Color: &colors.GREY})
			i = len(runes)

		case ch == tokens.Quote:
			i++
			for i < len(runes) && runes[i] != tokens.Quote {
				i++
			}
			if i < len(runes) {
				i++ // closing quote
			}
			segments = append(segments, Segment{Text: string(runes[start:i]), Color: &colors.GREEN})

		case unicode.IsDigit(ch):
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == tokens.DecimalPoint) {
				i++
			}
			segments = append(segments, Segment{Text: string(runes[start:i]), Color: &colors.YELLOW})

		case unicode.IsLetter(ch) || ch == '_':
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			word := string(runes[start:i])
			segments = append(segments, Segment{Text: word, Color: wordColor(word)})

		default:
			i++
			segments = append(segments, Segment{Text: string(ch), Color: &colors.GREY})
		}
	}

	return segments
}

func wordColor(word string) *colors.COLOR {
	if !tokens.IsKeyword(word) {
		return nil
	}
	kind := tokens.TOKEN(word)
	switch {
	case tokens.IsType(kind):
		return &colors.BLUE
	case tokens.IsBranch(kind), kind == tokens.BLOCK_TOKEN:
		return &colors.PURPLE
	default:
		return &colors.CYAN
	}
}

// Render writes a highlighted line to w without a trailing newline.
func (sh *SyntaxHighlighter) Render(w io.Writer, line string) {
	for _, seg := range sh.Highlight(line) {
		if seg.Color == nil {
			fmt.Fprint(w, seg.Text)
			continue
		}
		seg.Color.Fprint(w, seg.Text)
	}
}

// HighlightToString is Render into a string.
func (sh *SyntaxHighlighter) HighlightToString(line string) string {
	var sb strings.Builder
	sh.Render(&sb, line)
	return sb.String()
}
