package command

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/optofluidics/ofbatch/internal/infra/interaction"
	"github.com/optofluidics/ofbatch/internal/usecase/batch"
)

type fakeProcessor struct {
	arguments []string
	err       error
	command   []string
}

func (p *fakeProcessor) Invoke(_ context.Context, argument string) error {
	p.arguments = append(p.arguments, argument)
	return p.err
}

func (p *fakeProcessor) Command(argument string) ([]string, error) {
	return append(append([]string{}, p.command...), argument), nil
}

type recordingFactory struct {
	requests  []ProcessorRequest
	processor *fakeProcessor
	closed    int
}

func (f *recordingFactory) build(req ProcessorRequest) (batch.Processor, io.Closer, error) {
	f.requests = append(f.requests, req)
	return f.processor, closerFunc(func() error {
		f.closed++
		return nil
	}), nil
}

type closerFunc func() error

func (c closerFunc) Close() error { return c() }

type fakePrompter struct {
	title   string
	options []interaction.SelectOption
	choice  string
}

func (p *fakePrompter) SelectValue(title string, options []interaction.SelectOption) (string, error) {
	p.title = title
	p.options = options
	return p.choice, nil
}

type harness struct {
	out      *bytes.Buffer
	errOut   *bytes.Buffer
	factory  *recordingFactory
	prompter *fakePrompter
	tty      bool
}

// newHarness isolates a test in a fresh working directory with no config file.
func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("OFBATCH_HOME", t.TempDir())
	setWorkingDir(t, t.TempDir())
	return &harness{
		out:      &bytes.Buffer{},
		errOut:   &bytes.Buffer{},
		factory:  &recordingFactory{processor: &fakeProcessor{command: []string{"fiji", "--run"}}},
		prompter: &fakePrompter{},
	}
}

func (h *harness) deps() Dependencies {
	return Dependencies{
		Out:          h.out,
		ErrOut:       h.errOut,
		Stdin:        os.Stdin,
		Prompter:     h.prompter,
		IsTerminal:   func(*os.File) bool { return h.tty },
		Getwd:        func() (string, error) { return "/work", nil },
		NewProcessor: h.factory.build,
	}
}

func (h *harness) run(args ...string) int {
	return Run(args, h.deps())
}

func setWorkingDir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore cwd %s: %v", prev, err)
		}
	})
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
