// Where: internal/usecase/batch/batch.go
// What: Batch invocation workflow.
// Why: Validate the request and hand one argument string to the host plugin.
package batch

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/optofluidics/ofbatch/internal/domain/macro"
	"github.com/optofluidics/ofbatch/internal/infra/ui"
)

const (
	MessageStarting = "Starting batch processing."
	MessageDone     = "Done."
)

// statPath is swapped in tests to observe filesystem access.
var statPath = os.Stat

// Processor is the host-provided processing capability. Invoke blocks until
// the plugin returns.
type Processor interface {
	Invoke(ctx context.Context, argument string) error
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx context.Context, argument string) error

func (f ProcessorFunc) Invoke(ctx context.Context, argument string) error {
	return f(ctx, argument)
}

// Request captures one invocation built from the command line.
type Request struct {
	Folder        string
	Parameters    string
	HasParameters bool
	Output        string
}

// ParseArgs builds a Request from positional arguments. args[0] is the
// folder, args[1] the optional parameter string. Extra arguments are ignored.
func ParseArgs(args []string) (Request, error) {
	if len(args) == 0 {
		return Request{}, UsageError{}
	}
	req := Request{Folder: args[0]}
	if len(args) > 1 {
		req.Parameters = args[1]
		req.HasParameters = true
	}
	return req, nil
}

// Argument renders the macro argument string for the request.
func (r Request) Argument() string {
	return macro.Argument(macro.Options{
		Folder:        r.Folder,
		Parameters:    r.Parameters,
		HasParameters: r.HasParameters,
		Output:        r.Output,
	})
}

// Workflow runs a single batch invocation.
type Workflow struct {
	Processor Processor
	UI        ui.UserInterface
	Logger    *log.Logger
}

// NewWorkflow constructs a Workflow writing status lines to userInterface.
func NewWorkflow(processor Processor, userInterface ui.UserInterface, logger *log.Logger) Workflow {
	return Workflow{Processor: processor, UI: userInterface, Logger: logger}
}

// CheckPath fails with a PathNotFoundError when path does not exist.
func CheckPath(path string) error {
	if _, err := statPath(path); err != nil {
		return &PathNotFoundError{Path: path, Err: err}
	}
	return nil
}

// Prepare checks that req.Folder exists and returns the argument string without invoking
// the processor.
func (w Workflow) Prepare(req Request) (string, error) {
	if err := CheckPath(req.Folder); err != nil {
		return "", err
	}
	if req.HasParameters && macro.NeedsQuoting(req.Parameters) {
		w.logger().Warn("parameters contain whitespace or brackets and are passed unquoted", "parameters", req.Parameters)
	}
	return req.Argument(), nil
}

// Run validates req, echoes the argument string, and invokes the processor.
// "Done." is printed only when the processor returns without error.
func (w Workflow) Run(ctx context.Context, req Request) error {
	if w.Processor == nil {
		return errProcessorNotConfigured
	}
	argument, err := w.Prepare(req)
	if err != nil {
		return err
	}

	out := w.ui()
	out.Info(argument)
	out.Info(MessageStarting)

	w.logger().Debug("invoking processor", "argument", argument)
	if err := w.Processor.Invoke(ctx, argument); err != nil {
		var invocation *ExternalInvocationError
		if errors.As(err, &invocation) {
			return err
		}
		return &ExternalInvocationError{Err: err}
	}

	out.Success(MessageDone)
	return nil
}

func (w Workflow) ui() ui.UserInterface {
	if w.UI == nil {
		return ui.NewPlainUI(os.Stdout)
	}
	return w.UI
}

func (w Workflow) logger() *log.Logger {
	if w.Logger == nil {
		return log.New(io.Discard)
	}
	return w.Logger
}
