package colors

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// COLOR is a terminal style. The embedded color provides the
// Print/Fprint/Sprint family; output is plain text while colours are disabled.
type COLOR struct {
	*color.Color
}

func newColor(attrs ...color.Attribute) COLOR {
	return COLOR{color.New(attrs...)}
}

var (
	RED      = newColor(color.FgRed)
	BOLD_RED = newColor(color.Bold, color.FgRed)
	GREEN    = newColor(color.FgGreen)
	YELLOW   = newColor(color.FgHiYellow)
	BLUE     = newColor(color.FgHiBlue)
	CYAN     = newColor(color.FgCyan)
	PURPLE   = newColor(color.FgMagenta)
	GREY     = newColor(color.FgHiBlack)
	WHITE    = newColor(color.Bold, color.FgHiWhite)
)

// Mode selects when colour output is used.
type Mode string

const (
	Auto   Mode = "auto"
	Always Mode = "always"
	Never  Mode = "never"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case Auto, Always, Never:
		return true
	}
	return false
}

// Configure enables or disables colour output globally.
// In Auto mode colours are used only when out is a terminal and NO_COLOR is unset.
func Configure(mode Mode, out *os.File) {
	switch mode {
	case Always:
		color.NoColor = false
	case Never:
		color.NoColor = true
	default:
		color.NoColor = out == nil || !term.IsTerminal(int(out.Fd())) || os.Getenv("NO_COLOR") != ""
	}
}

// Enabled reports whether colour output is currently on.
func Enabled() bool {
	return !color.NoColor
}
