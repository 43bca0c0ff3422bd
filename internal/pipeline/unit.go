package pipeline

import (
	"sync"

	"github.com/zesterer/ir/internal/frontend/ast"
	"github.com/zesterer/ir/internal/phase"
	"github.com/zesterer/ir/internal/source"
	"github.com/zesterer/ir/internal/tokens"
)

// Unit is one source file moving through the front end.
// Tokens and Program borrow from File, so the unit keeps it alive.
type Unit struct {
	Path    string
	File    *source.File
	Tokens  []tokens.Token
	Program *ast.Program
	Err     error

	mu    sync.Mutex
	phase phase.FilePhase
}

func newUnit(path string) *Unit {
	return &Unit{Path: path, phase: phase.PhaseNotStarted}
}

// Phase returns the last phase the unit completed.
func (u *Unit) Phase() phase.FilePhase {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.phase
}

// Failed reports whether processing stopped with an error.
func (u *Unit) Failed() bool {
	return u.Err != nil
}

// Skipped reports whether the run was cancelled before the unit started.
func (u *Unit) Skipped() bool {
	return u.Err == nil && u.Phase() == phase.PhaseNotStarted
}

// advancePhase moves the unit forward, refusing out-of-order transitions.
func (u *Unit) advancePhase(to phase.FilePhase) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !phase.CanAdvance(u.phase, to) {
		return false
	}
	u.phase = to
	return true
}
