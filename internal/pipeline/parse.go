package pipeline

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/zesterer/ir/internal/frontend/lexer"
	"github.com/zesterer/ir/internal/frontend/parser"
	"github.com/zesterer/ir/internal/phase"
	"github.com/zesterer/ir/internal/source"
)

// processUnit loads, lexes and parses a single unit, recording the first
// failure in the unit and in the diagnostic bag.
func (p *Pipeline) processUnit(u *Unit) {
	if err := p.runPhases(u); err != nil {
		u.Err = err
		p.Diagnostics.AddError(u.Path, err)
		glog.V(1).Infof("%s: failed after %s: %v", u.Path, u.Phase(), err)
		return
	}
	glog.V(1).Infof("%s: %d block(s)", u.Path, u.Program.Len())
}

func (p *Pipeline) runPhases(u *Unit) error {
	// Load
	if u.File == nil {
		file, err := source.ReadFile(u.Path)
		if err != nil {
			return err
		}
		u.File = file
	}
	p.Diagnostics.AddFile(u.File)
	if err := p.advance(u, phase.PhaseLoaded); err != nil {
		return err
	}

	// Lex
	toks, err := lexer.Tokenize(u.File.Content)
	if err != nil {
		return err
	}
	u.Tokens = toks
	if err := p.advance(u, phase.PhaseLexed); err != nil {
		return err
	}

	// Parse
	program, err := parser.Parse(u.Tokens)
	if err != nil {
		return err
	}
	u.Program = program
	return p.advance(u, phase.PhaseParsed)
}

func (p *Pipeline) advance(u *Unit, to phase.FilePhase) error {
	if !u.advancePhase(to) {
		return errors.Errorf("cannot advance %s from %s to %s", u.Path, u.Phase(), to)
	}
	glog.V(1).Infof("%s: %s", u.Path, to)
	return nil
}
