package colors

import (
	"fmt"
	"strings"
)

// StripANSI removes ANSI color codes from a string
func StripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			inEscape = true
			i++
			continue
		}
		if inEscape {
			if (s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z') {
				inEscape = false
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// SGR foreground codes emitted by fatih/color, mapped to CSS colours.
var htmlColors = map[string]string{
	"30": "#000000",
	"31": "#ef4444",
	"32": "#10b981",
	"33": "#f59e0b",
	"34": "#3b82f6",
	"35": "#c678dd",
	"36": "#56b6c2",
	"37": "#e5e7eb",
	"90": "#5c6370",
	"91": "#f87171",
	"92": "#34d399",
	"93": "#fbbf24",
	"94": "#60a5fa",
	"95": "#c084fc",
	"96": "#22d3ee",
	"97": "#f3f4f6",
}

// ConvertANSIToHTML converts ANSI color codes to HTML span tags
func ConvertANSIToHTML(text string) string {
	var b strings.Builder
	open := 0

	for i := 0; i < len(text); i++ {
		if text[i] == '\033' && i+1 < len(text) && text[i+1] == '[' {
			end := strings.IndexByte(text[i:], 'm')
			if end < 0 {
				break
			}
			params := text[i+2 : i+end]
			i += end

			if params == "" || params == "0" {
				for ; open > 0; open-- {
					b.WriteString("</span>")
				}
				continue
			}
			b.WriteString(spanFor(params))
			open++
			continue
		}

		switch text[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '\n':
			b.WriteString("<br>")
		default:
			b.WriteByte(text[i])
		}
	}
	for ; open > 0; open-- {
		b.WriteString("</span>")
	}

	// Preserve double spaces
	return strings.ReplaceAll(b.String(), "  ", "&nbsp;&nbsp;")
}

func spanFor(params string) string {
	var styles []string
	for _, p := range strings.Split(params, ";") {
		if p == "1" {
			styles = append(styles, "font-weight: bold")
			continue
		}
		if c, ok := htmlColors[p]; ok {
			styles = append(styles, "color: "+c)
		}
	}
	return fmt.Sprintf("<span style=\"%s\">", strings.Join(styles, "; "))
}
