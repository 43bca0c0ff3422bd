package diagnostics

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/zesterer/ir/colors"
	"github.com/zesterer/ir/internal/source"
)

const (
	STR_MULTIPLIER = "%*d | "
	LINE_POS       = "%s--> %s:%d:%d\n"
)

// SourceCache caches source files for error reporting
type SourceCache struct {
	mu    sync.Mutex
	files map[string]*source.File
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string]*source.File),
	}
}

// AddFile registers an already loaded file.
func (sc *SourceCache) AddFile(file *source.File) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.files[file.Path] = file
}

// GetLine retrieves a specific line from a source file, loading it from disk
// the first time an unknown path is asked for.
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	sc.mu.Lock()
	file, ok := sc.files[filepath]
	sc.mu.Unlock()

	if !ok {
		loaded, err := source.ReadFile(filepath)
		if err != nil {
			return "", err
		}
		sc.AddFile(loaded)
		file = loaded
	}

	text, ok := file.Line(line)
	if !ok {
		return "", fmt.Errorf("line %d out of range", line)
	}
	return text, nil
}

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	cache               *SourceCache
	writer              io.Writer // Where to write output (os.Stderr, a buffer, etc.)
	highlighter         *SyntaxHighlighter
	currentLineNumWidth int // Line number width for current diagnostic
}

// NewEmitter creates an emitter that writes to a specific writer
func NewEmitter(w io.Writer) *Emitter {
	return NewEmitterWithCache(w, NewSourceCache())
}

// NewEmitterWithCache creates an emitter reading snippets from an existing cache
func NewEmitterWithCache(w io.Writer, cache *SourceCache) *Emitter {
	return &Emitter{
		cache:       cache,
		writer:      w,
		highlighter: NewSyntaxHighlighter(colors.Enabled()),
	}
}

// labelledLine is one source line together with the labels pointing into it
type labelledLine struct {
	line   int
	labels []Label
}

func groupLabels(labels []Label) []labelledLine {
	byLine := make(map[int][]Label)
	for _, label := range labels {
		if label.Range == nil {
			continue
		}
		line := label.Range.Start.Line
		byLine[line] = append(byLine[line], label)
	}

	grouped := make([]labelledLine, 0, len(byLine))
	for line, ls := range byLine {
		// primary first, then left to right
		sort.SliceStable(ls, func(i, j int) bool {
			if ls[i].Style != ls[j].Style {
				return ls[i].Style == Primary
			}
			return ls[i].Range.Start.Column < ls[j].Range.Start.Column
		})
		grouped = append(grouped, labelledLine{line: line, labels: ls})
	}
	sort.Slice(grouped, func(i, j int) bool { return grouped[i].line < grouped[j].line })
	return grouped
}

// lineNumWidth is the width of the widest line number displayed for this diagnostic
func lineNumWidth(lines []labelledLine) int {
	maxLine := 1
	for _, l := range lines {
		if l.line > maxLine {
			maxLine = l.line
		}
	}
	return len(fmt.Sprintf("%d", maxLine))
}

func (e *Emitter) Emit(diag *Diagnostic) {
	lines := groupLabels(diag.Labels)
	e.currentLineNumWidth = 0
	if len(lines) > 0 {
		e.currentLineNumWidth = lineNumWidth(lines)
	}

	e.printHeader(diag)

	if len(lines) > 0 {
		e.printLocation(diag)
		e.printSeparator()
		for i, l := range lines {
			if i > 0 && l.line > lines[i-1].line+1 {
				colors.GREY.Fprintln(e.writer, strings.Repeat(" ", e.currentLineNumWidth)+"...")
			}
			e.printLine(diag, l, i == 0)
		}
		e.printSeparator()
	}

	for _, note := range diag.Notes {
		e.printNote(note)
	}

	if diag.Help != "" {
		e.printHelp(diag.Help)
	}

	fmt.Fprintln(e.writer)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	color := e.getSeverityColor(diag.Severity)
	if diag.Severity == Error {
		color = colors.BOLD_RED
	}

	color.Fprint(e.writer, diag.Severity.String())
	if diag.Code != "" {
		color.Fprintf(e.writer, "[%s]", diag.Code)
	}
	fmt.Fprint(e.writer, ": ")
	colors.WHITE.Fprintln(e.writer, diag.Message)
}

func (e *Emitter) printLocation(diag *Diagnostic) {
	label, ok := diag.PrimaryLabel()
	if !ok || label.Range == nil {
		label = diag.Labels[0]
	}
	start := label.Range.Start
	colors.BLUE.Fprintf(e.writer, LINE_POS, strings.Repeat(" ", e.currentLineNumWidth), diag.FilePath, start.Line, start.Column)
}

func (e *Emitter) printSeparator() {
	fmt.Fprint(e.writer, strings.Repeat(" ", e.currentLineNumWidth))
	colors.GREY.Fprintln(e.writer, " |")
}

func (e *Emitter) printLine(diag *Diagnostic, l labelledLine, first bool) {
	// Previous line for context, if it is not blank
	if first && l.line > 1 {
		prev, err := e.cache.GetLine(diag.FilePath, l.line-1)
		if err == nil && strings.TrimSpace(prev) != "" {
			colors.GREY.Fprintf(e.writer, STR_MULTIPLIER, e.currentLineNumWidth, l.line-1)
			colors.GREY.Fprintln(e.writer, prev)
		}
	}

	sourceLine, err := e.cache.GetLine(diag.FilePath, l.line)
	if err != nil {
		return
	}

	colors.GREY.Fprintf(e.writer, STR_MULTIPLIER, e.currentLineNumWidth, l.line)
	e.highlighter.Render(e.writer, sourceLine)
	fmt.Fprintln(e.writer)

	for _, label := range l.labels {
		e.printMarker(sourceLine, label, diag.Severity)
	}
}

func (e *Emitter) printMarker(sourceLine string, label Label, severity Severity) {
	fmt.Fprint(e.writer, strings.Repeat(" ", e.currentLineNumWidth))
	colors.GREY.Fprint(e.writer, " | ")

	fmt.Fprint(e.writer, markerPadding(sourceLine, label.Range.Start.Column-1))

	length := label.Range.Length
	if length <= 0 {
		length = 1
	}

	color := colors.BLUE
	char := "-"
	if label.Style == Primary {
		color = e.getSeverityColor(severity)
		char = "^"
	}

	color.Fprint(e.writer, strings.Repeat(char, length))
	if label.Message != "" {
		color.Fprintf(e.writer, " %s", label.Message)
	}
	fmt.Fprintln(e.writer)
}

// markerPadding reproduces the first n characters of line as blanks, keeping
// tabs so that markers stay aligned with the text above them.
func markerPadding(line string, n int) string {
	var sb strings.Builder
	i := 0
	for _, ch := range line {
		if i == n {
			break
		}
		if ch == '\t' {
			sb.WriteRune('\t')
		} else {
			sb.WriteRune(' ')
		}
		i++
	}
	// Columns past the end of the line (line break or end of input)
	for ; i < n; i++ {
		sb.WriteRune(' ')
	}
	return sb.String()
}

func (e *Emitter) printNote(note Note) {
	fmt.Fprint(e.writer, strings.Repeat(" ", e.currentLineNumWidth+1))
	colors.CYAN.Fprint(e.writer, "= note: ")
	fmt.Fprintln(e.writer, note.Message)
}

func (e *Emitter) printHelp(help string) {
	fmt.Fprint(e.writer, strings.Repeat(" ", e.currentLineNumWidth+1))
	colors.GREEN.Fprint(e.writer, "= help: ")
	fmt.Fprintln(e.writer, help)
}

// getSeverityColor returns the color for a given severity
func (e *Emitter) getSeverityColor(severity Severity) colors.COLOR {
	switch severity {
	case Error:
		return colors.RED
	case Warning:
		return colors.YELLOW
	case Info:
		return colors.BLUE
	case Hint:
		return colors.PURPLE
	default:
		return colors.RED
	}
}
