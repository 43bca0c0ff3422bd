package dump

import (
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/zesterer/ir/colors"
)

// Diff writes a line diff from before to after, with removed lines marked
// '-' and added lines '+'. It reports whether the texts differ.
func Diff(w io.Writer, path, before, after string) (bool, error) {
	if before == after {
		return false, nil
	}

	differ := diffmatchpatch.New()
	differ.DiffTimeout = 0

	hashed1, hashed2, lineArray := differ.DiffLinesToChars(before, after)
	diffs := differ.DiffCharsToLines(differ.DiffMain(hashed1, hashed2, false), lineArray)

	colors.RED.Fprintf(w, "--- %s\n", path)
	colors.GREEN.Fprintf(w, "+++ %s (formatted)\n", path)

	for _, diff := range diffs {
		for _, line := range splitLines(diff.Text) {
			var err error
			switch diff.Type {
			case diffmatchpatch.DiffDelete:
				_, err = colors.RED.Fprintf(w, "-%s\n", line)
			case diffmatchpatch.DiffInsert:
				_, err = colors.GREEN.Fprintf(w, "+%s\n", line)
			default:
				_, err = io.WriteString(w, " "+line+"\n")
			}
			if err != nil {
				return true, err
			}
		}
	}
	return true, nil
}

// splitLines splits text into lines, dropping the empty string after a
// trailing line break.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
