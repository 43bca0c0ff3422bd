package pipeline

import (
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/zesterer/ir/colors"
)

// PrintSummary writes the phase every unit reached
func (p *Pipeline) PrintSummary(w io.Writer, units []*Unit) {
	fmt.Fprintln(w)
	colors.CYAN.Fprintln(w, "═══════════════════════════════════════")
	colors.CYAN.Fprintln(w, "           CHECK SUMMARY")
	colors.CYAN.Fprintln(w, "═══════════════════════════════════════")

	var size uint64
	for _, u := range units {
		if u.File != nil {
			size += uint64(len(u.File.Content))
		}
	}
	fmt.Fprintf(w, "Total Files: %d\n", len(units))
	fmt.Fprintf(w, "Total Size: %s\n\n", humanize.Bytes(size))

	sorted := make([]*Unit, len(units))
	copy(sorted, units)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	for _, u := range sorted {
		switch {
		case u.Failed():
			colors.RED.Fprintf(w, " - %s (%s, failed)\n", u.Path, u.Phase())
		case u.Program == nil:
			colors.YELLOW.Fprintf(w, " - %s (%s, skipped)\n", u.Path, u.Phase())
		default:
			fmt.Fprintf(w, " - %s (%s, %d block(s))\n", u.Path, u.Phase(), u.Program.Len())
		}
	}
}
