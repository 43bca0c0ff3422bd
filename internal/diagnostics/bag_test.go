package diagnostics

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/zesterer/ir/colors"
	"github.com/zesterer/ir/internal/source"
)

func TestNewDiagnosticBag(t *testing.T) {
	bag := NewDiagnosticBag()

	assert.Equal(t, 0, bag.ErrorCount())
	assert.Equal(t, 0, bag.WarningCount())
	assert.False(t, bag.HasErrors())
	assert.Empty(t, bag.Diagnostics())
}

func TestDiagnosticBagCounts(t *testing.T) {
	bag := NewDiagnosticBag()

	bag.Add(NewError("error 1"))
	bag.Add(NewWarning("warning 1"))
	bag.Add(NewError("error 2"))

	assert.True(t, bag.HasErrors())
	assert.Equal(t, 2, bag.ErrorCount())
	assert.Equal(t, 1, bag.WarningCount())
	assert.Len(t, bag.Diagnostics(), 3)
}

func TestDiagnosticBagConcurrentAdd(t *testing.T) {
	bag := NewDiagnosticBag()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bag.Add(NewError("concurrent"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, bag.ErrorCount())
}

func TestDiagnosticBagEmitAll(t *testing.T) {
	colors.Configure(colors.Never, nil)

	bag := NewDiagnosticBag()
	bag.AddFile(source.NewFile("a.ir", "BLOCK main()\n  RETURN [x]\n"))
	bag.AddError("a.ir", NewSyntaxError(UnresolvedBinding).At(rangeAt(2, 11, 1)).WithText("x"))

	out := bag.EmitAllToString()
	assert.Contains(t, out, "error[P0013]: unresolved binding \"x\"\n")
	assert.Contains(t, out, "2 |   RETURN [x]\n")
	assert.Contains(t, out, "\nFailed with 1 error(s)\n")

	html := bag.EmitAllToHTML()
	assert.Contains(t, html, "unresolved binding \"x\"")
}

func TestDiagnosticBagWarningSummary(t *testing.T) {
	colors.Configure(colors.Never, nil)

	bag := NewDiagnosticBag()
	bag.Add(SkippedFile("a.ir", errors.New("context canceled")))

	out := bag.EmitAllToString()
	assert.Contains(t, out, "warning[W0001]: file was not checked\n")
	assert.Contains(t, out, "= note: context canceled\n")
	assert.Contains(t, out, "Finished with 1 warning(s)")
	assert.False(t, bag.HasErrors())
}
