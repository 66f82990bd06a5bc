// Where: internal/wire/wire.go
// What: CLI dependency wiring.
// Why: Centralize dependency construction for reuse by main and tests.
package wire

import (
	"fmt"
	"io"
	"os"

	"github.com/optofluidics/ofbatch/internal/command"
	"github.com/optofluidics/ofbatch/internal/infra/config"
	"github.com/optofluidics/ofbatch/internal/infra/host"
	"github.com/optofluidics/ofbatch/internal/infra/interaction"
	"github.com/optofluidics/ofbatch/internal/usecase/batch"
)

var (
	// Getwd returns the current working directory. Tests may override this helper.
	Getwd = os.Getwd
	// NewDockerClient creates the Docker client. Tests may override this helper.
	NewDockerClient = host.NewDockerClient
	// Stdout is the writer used for CLI output (used by command.Dependencies).
	Stdout io.Writer = os.Stdout
	// Stderr receives diagnostics and host errors.
	Stderr io.Writer = os.Stderr
)

// BuildDependencies constructs CLI dependencies. The Docker client is only
// created when the docker runner is selected.
func BuildDependencies() command.Dependencies {
	return command.Dependencies{
		Out:          Stdout,
		ErrOut:       Stderr,
		Stdin:        os.Stdin,
		Prompter:     interaction.HuhPrompter{},
		IsTerminal:   interaction.IsTerminal,
		Getwd:        Getwd,
		NewProcessor: NewProcessor,
	}
}

// NewProcessor builds the host processor named by the resolved runner.
func NewProcessor(req command.ProcessorRequest) (batch.Processor, io.Closer, error) {
	switch req.Settings.Runner {
	case config.RunnerExec:
		runner := host.ExecRunner{Stdout: req.Stdout, Stderr: req.Stderr}
		return host.NewExecProcessor(runner, req.Settings, req.Dir, req.Logger), nil, nil
	case config.RunnerDocker:
		client, err := NewDockerClient()
		if err != nil {
			return nil, nil, err
		}
		processor := host.NewDockerProcessor(client, req.Settings, req.Dir, req.Paths, req.Logger)
		if req.Stdout != nil {
			processor.Stdout = req.Stdout
		}
		if req.Stderr != nil {
			processor.Stderr = req.Stderr
		}
		return processor, asCloser(client), nil
	default:
		return nil, nil, fmt.Errorf("unsupported runner %q", req.Settings.Runner)
	}
}

func asCloser(client host.DockerClient) io.Closer {
	if closer, ok := client.(io.Closer); ok {
		return closer
	}
	return nil
}
