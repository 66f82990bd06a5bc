// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/optofluidics/ofbatch/internal/constants"
	"github.com/optofluidics/ofbatch/internal/infra/config"
	"github.com/optofluidics/ofbatch/internal/infra/interaction"
	"github.com/optofluidics/ofbatch/internal/meta"
	"github.com/optofluidics/ofbatch/internal/usecase/batch"
	"github.com/optofluidics/ofbatch/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// This structure enables dependency injection for testing and allows swapping
// the host processor for a fake.
type Dependencies struct {
	Out          io.Writer
	ErrOut       io.Writer
	Stdin        *os.File
	Prompter     interaction.Prompter
	IsTerminal   func(*os.File) bool
	Getwd        func() (string, error)
	NewProcessor ProcessorFactory
}

// ProcessorRequest carries everything a factory needs to reach the host.
type ProcessorRequest struct {
	Settings config.Settings
	Dir      string
	Paths    []string
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *log.Logger
}

// ProcessorFactory builds the processing capability for one invocation.
// The returned closer may be nil.
type ProcessorFactory func(ProcessorRequest) (batch.Processor, io.Closer, error)

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Args           []string         `arg:"" optional:"" passthrough:"partial" name:"folder" help:"Folder to process, optionally followed by the plugin parameter string"`
	Config         string           `name:"config" env:"${env_config}" help:"Path to config file (default: ~/.ofbatch/config.yaml)"`
	EnvFile        string           `name:"env-file" help:"Path to .env file"`
	Runner         string           `name:"runner" env:"${env_runner}" help:"Host runner (exec/docker)"`
	Host           string           `name:"host" env:"${env_host}" help:"Host executable (e.g. ImageJ-linux64)"`
	Plugin         string           `name:"plugin" env:"${env_plugin}" help:"Plugin command name"`
	Image          string           `name:"image" env:"${env_image}" help:"Container image for the docker runner"`
	ParametersDir  string           `name:"parameters-dir" env:"${env_parameters_dir}" help:"Directory holding *.properties parameter sets"`
	Output         string           `short:"o" name:"output" help:"Output folder passed to the plugin"`
	Choose         bool             `short:"c" name:"choose" help:"Choose a parameter set interactively when none is given"`
	ListParameters bool             `name:"list-parameters" help:"List parameter sets and exit"`
	DryRun         bool             `name:"dry-run" help:"Print the argument string and host command without running"`
	Verbose        bool             `short:"v" name:"verbose" env:"${env_verbose}" help:"Verbose output"`
	Version        kong.VersionFlag `name:"version" help:"Show version information"`
}

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments and runs one batch invocation.
// Returns 0 on success, 1 on usage or validation errors, and the host's
// exit status when the plugin fails.
func Run(args []string, deps Dependencies) int {
	deps = withDefaults(deps)
	out := deps.Out

	// No arguments at all: usage only, nothing else is touched.
	if len(args) == 0 {
		return runNoArgs(out)
	}

	loadEnvFile(envFileFlag(args), out)

	cli := CLI{}
	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name(cliName()),
		kong.Description("Run the "+meta.AppName+" on a folder through a headless Fiji host."),
		kong.Writers(out, deps.ErrOut),
		kong.Exit(func(code int) {
			if exitCode < 0 {
				exitCode = code
			}
		}),
		kongVars(),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	_, err = parser.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		return handleParseError(err, out)
	}

	logger := newLogger(deps.ErrOut, cli.Verbose)

	if cli.ListParameters {
		return runListParameters(cli, deps, logger)
	}
	cli.Args = positionalArgs(cli.Args)
	if len(cli.Args) == 0 {
		return runNoArgs(out)
	}
	return runBatch(cli, deps, logger)
}

// positionalArgs drops one "--" separator placed before or right after the
// folder. Everything after the folder reaches the parser untouched, so the
// separator is only needed for folder names starting with "-".
func positionalArgs(args []string) []string {
	switch {
	case len(args) > 0 && args[0] == "--":
		return args[1:]
	case len(args) > 1 && args[1] == "--":
		return append([]string{args[0]}, args[2:]...)
	default:
		return args
	}
}

// kongVars exposes the version and environment variable names to struct tags.
func kongVars() kong.Vars {
	return kong.Vars{
		"version":            version.GetVersion(),
		"env_config":         constants.EnvConfig,
		"env_runner":         constants.EnvRunner,
		"env_host":           constants.EnvHost,
		"env_plugin":         constants.EnvPlugin,
		"env_image":          constants.EnvImage,
		"env_parameters_dir": constants.EnvParametersDir,
		"env_verbose":        constants.EnvVerbose,
	}
}

func withDefaults(deps Dependencies) Dependencies {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.IsTerminal == nil {
		deps.IsTerminal = interaction.IsTerminal
	}
	if deps.Prompter == nil {
		deps.Prompter = interaction.HuhPrompter{}
	}
	if deps.Getwd == nil {
		deps.Getwd = os.Getwd
	}
	return deps
}

// resolveSettings loads the config file and layers flag/env overrides on it.
func resolveSettings(cli CLI, logger *log.Logger) (config.Settings, error) {
	path := cli.Config
	if path == "" {
		defaultPath, err := config.ConfigPath()
		if err != nil {
			return config.Settings{}, err
		}
		path = defaultPath
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Settings{}, err
	}
	settings, err := config.Resolve(cfg, config.Overrides{
		Runner:        cli.Runner,
		Host:          cli.Host,
		Plugin:        cli.Plugin,
		Image:         cli.Image,
		ParametersDir: cli.ParametersDir,
	})
	if err != nil {
		return config.Settings{}, err
	}
	logger.Debug("resolved settings",
		"config", path,
		"runner", settings.Runner,
		"host", settings.Host,
		"plugin", settings.Plugin,
	)
	return settings, nil
}
