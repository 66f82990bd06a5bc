// Where: internal/infra/host/exec.go
// What: Processor that runs the host executable as a child process.
// Why: The host application owns the plugin; we only launch it headless.
package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/optofluidics/ofbatch/internal/infra/config"
	"github.com/optofluidics/ofbatch/internal/usecase/batch"
)

// ExecProcessor invokes the plugin through a local host installation.
type ExecProcessor struct {
	Runner   CommandRunner
	Settings config.Settings
	Dir      string
	Logger   *log.Logger
}

// NewExecProcessor creates an ExecProcessor running commands in dir.
func NewExecProcessor(runner CommandRunner, settings config.Settings, dir string, logger *log.Logger) ExecProcessor {
	return ExecProcessor{Runner: runner, Settings: settings, Dir: dir, Logger: logger}
}

// Command returns the full host command line for argument.
func (p ExecProcessor) Command(argument string) ([]string, error) {
	hostPath := strings.TrimSpace(p.Settings.Host)
	if hostPath == "" {
		return nil, errHostRequired
	}
	args, err := RenderArgs(p.Settings.Args, InvocationData{Plugin: p.Settings.Plugin, Argument: argument})
	if err != nil {
		return nil, err
	}
	return append([]string{hostPath}, args...), nil
}

// Invoke runs the host and blocks until it exits.
func (p ExecProcessor) Invoke(ctx context.Context, argument string) error {
	if p.Runner == nil {
		return errCommandRunnerNil
	}
	command, err := p.Command(argument)
	if err != nil {
		return err
	}

	loggerOrDiscard(p.Logger).Debug("starting host", "dir", p.Dir, "command", command)
	if err := p.Runner.Run(ctx, p.Dir, command[0], command[1:]...); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &batch.ExternalInvocationError{Err: err, ExitCode: exitErr.ExitCode()}
		}
		return &batch.ExternalInvocationError{Err: fmt.Errorf("start host: %w", err)}
	}
	return nil
}

func loggerOrDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}
