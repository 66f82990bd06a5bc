package batch

import (
	"context"
	"os"
	"testing"

	"github.com/optofluidics/ofbatch/internal/infra/ui"
)

type recordProcessor struct {
	arguments []string
	err       error
}

func (p *recordProcessor) Invoke(_ context.Context, argument string) error {
	p.arguments = append(p.arguments, argument)
	return p.err
}

type testUI struct {
	lines []string
}

func (u *testUI) Info(msg string)    { u.lines = append(u.lines, msg) }
func (u *testUI) Warn(msg string)    { u.lines = append(u.lines, msg) }
func (u *testUI) Success(msg string) { u.lines = append(u.lines, msg) }

func (u *testUI) Block(_, _ string, _ []ui.KeyValue) {}

func countStats(t *testing.T) *int {
	t.Helper()
	orig := statPath
	t.Cleanup(func() { statPath = orig })
	calls := 0
	statPath = func(name string) (os.FileInfo, error) {
		calls++
		return orig(name)
	}
	return &calls
}
