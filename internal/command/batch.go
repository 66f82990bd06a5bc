// Where: internal/command/batch.go
// What: Batch command adapter.
// Why: Translate parsed flags into a batch request and run the workflow.
package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/optofluidics/ofbatch/internal/usecase/batch"
)

var errProcessorFactoryNil = errors.New("processor factory is not configured")

// commandDescriber is implemented by processors that can show the host
// command line they would run.
type commandDescriber interface {
	Command(argument string) ([]string, error)
}

func runBatch(cli CLI, deps Dependencies, logger *log.Logger) int {
	out := deps.Out

	req, err := batch.ParseArgs(cli.Args)
	if err != nil {
		return exitForBatchError(out, err)
	}
	req.Output = cli.Output
	if len(cli.Args) > 2 {
		logger.Warn("ignoring extra arguments", "args", cli.Args[2:])
	}
	if err := batch.CheckPath(req.Folder); err != nil {
		return exitForBatchError(out, err)
	}

	settings, err := resolveSettings(cli, logger)
	if err != nil {
		return exitWithError(out, err)
	}

	if cli.Choose && !req.HasParameters {
		selected, ok, err := chooseParameterSet(deps, settings.ParametersDir)
		if err != nil {
			if errors.Is(err, errNotInteractive) {
				return exitWithSuggestion(out, err.Error(), []string{
					fmt.Sprintf("%s %s <parameter-set>", cliName(), req.Folder),
					fmt.Sprintf("%s --list-parameters", cliName()),
				})
			}
			return exitWithError(out, err)
		}
		if ok {
			req.Parameters = selected
			req.HasParameters = true
		}
	}

	if deps.NewProcessor == nil {
		return exitWithError(out, errProcessorFactoryNil)
	}
	dir, err := deps.Getwd()
	if err != nil {
		return exitWithError(out, fmt.Errorf("resolve working dir: %w", err))
	}
	processor, closer, err := deps.NewProcessor(ProcessorRequest{
		Settings: settings,
		Dir:      dir,
		Paths:    mountPaths(req),
		Stdout:   deps.Out,
		Stderr:   deps.ErrOut,
		Logger:   logger,
	})
	if err != nil {
		return exitWithError(out, err)
	}
	if closer != nil {
		defer closer.Close()
	}

	workflow := batch.NewWorkflow(processor, plainUI(out), logger)
	if cli.DryRun {
		return runDryRun(workflow, processor, req, deps)
	}
	if err := workflow.Run(context.Background(), req); err != nil {
		return exitForBatchError(out, err)
	}
	return 0
}

func runDryRun(workflow batch.Workflow, processor batch.Processor, req batch.Request, deps Dependencies) int {
	argument, err := workflow.Prepare(req)
	if err != nil {
		return exitForBatchError(deps.Out, err)
	}
	console := plainUI(deps.Out)
	console.Info(argument)

	describer, ok := processor.(commandDescriber)
	if !ok {
		return 0
	}
	command, err := describer.Command(argument)
	if err != nil {
		return exitWithError(deps.Out, err)
	}
	console.Info("Host command: " + shellJoin(command))
	return 0
}

func mountPaths(req batch.Request) []string {
	paths := []string{req.Folder}
	if req.Output != "" {
		paths = append(paths, req.Output)
	}
	return paths
}

func shellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		if arg == "" || strings.ContainsAny(arg, " \t\n\"'[]$&;|<>()*?") {
			quoted[i] = strconv.Quote(arg)
			continue
		}
		quoted[i] = arg
	}
	return strings.Join(quoted, " ")
}
