package pipeline

import (
	"context"
	"runtime"
	"sync"

	"github.com/golang/glog"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/zesterer/ir/internal/diagnostics"
	"github.com/zesterer/ir/internal/source"
)

// Options controls a pipeline run
type Options struct {
	// Jobs bounds how many files are processed at once; 0 means one per CPU.
	Jobs int
}

// Pipeline checks many source files concurrently
type Pipeline struct {
	opts        Options
	Diagnostics *diagnostics.DiagnosticBag

	// seen ensures each path is scheduled exactly once
	seen sync.Map // map[string]struct{}
}

// New creates a new pipeline with an empty diagnostic bag
func New(opts Options) *Pipeline {
	return &Pipeline{
		opts:        opts,
		Diagnostics: diagnostics.NewDiagnosticBag(),
	}
}

func (p *Pipeline) jobs() int {
	if p.opts.Jobs > 0 {
		return p.opts.Jobs
	}
	return runtime.NumCPU()
}

// Run processes every file in paths. Units come back in input order with
// duplicates removed. The error combines every per-file failure, or is the
// context error when ctx was cancelled before all files were scheduled.
func (p *Pipeline) Run(ctx context.Context, paths []string) ([]*Unit, error) {
	units := make([]*Unit, 0, len(paths))
	for _, path := range paths {
		if _, loaded := p.seen.LoadOrStore(path, struct{}{}); loaded {
			glog.V(1).Infof("%s: already scheduled", path)
			continue
		}
		units = append(units, newUnit(path))
	}
	return p.run(ctx, units)
}

// RunSources processes in-memory files the same way Run processes paths.
func (p *Pipeline) RunSources(ctx context.Context, files ...*source.File) ([]*Unit, error) {
	units := make([]*Unit, 0, len(files))
	for _, file := range files {
		if _, loaded := p.seen.LoadOrStore(file.Path, struct{}{}); loaded {
			continue
		}
		u := newUnit(file.Path)
		u.File = file
		units = append(units, u)
	}
	return p.run(ctx, units)
}

func (p *Pipeline) run(ctx context.Context, units []*Unit) ([]*Unit, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.jobs())

	for _, u := range units {
		if gctx.Err() != nil {
			break
		}
		u := u
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p.processUnit(u)
			return nil
		})
	}

	// per-file failures never cancel the group, so this is only ever the
	// context error
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		p.reportSkipped(units, err)
		return units, err
	}

	var result *multierror.Error
	for _, u := range units {
		if u.Failed() {
			result = multierror.Append(result, errors.Wrap(u.Err, u.Path))
		}
	}
	return units, result.ErrorOrNil()
}

// reportSkipped adds a warning for every unit the cancelled run never started
func (p *Pipeline) reportSkipped(units []*Unit, cause error) {
	for _, u := range units {
		if u.Skipped() {
			glog.V(1).Infof("%s: skipped: %v", u.Path, cause)
			p.Diagnostics.Add(diagnostics.SkippedFile(u.Path, cause))
		}
	}
}
