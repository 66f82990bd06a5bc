// Where: internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Map each failure class to one message shape and exit code.
package command

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/optofluidics/ofbatch/internal/infra/ui"
	"github.com/optofluidics/ofbatch/internal/usecase/batch"
)

var errNotInteractive = errors.New("--choose requires an interactive terminal")

// exitWithError prints an error message to the output writer and returns
// exit code 1 for CLI error handling.
func exitWithError(out io.Writer, err error) int {
	ui.New(out).Failure(err.Error())
	return 1
}

// exitWithSuggestion prints a message followed by next steps and returns 1.
func exitWithSuggestion(out io.Writer, message string, suggestions []string) int {
	ui.New(out).Suggest(message, suggestions)
	return 1
}

// exitForBatchError maps workflow errors to their user-visible form.
func exitForBatchError(out io.Writer, err error) int {
	var usage batch.UsageError
	var notFound *batch.PathNotFoundError
	var invocation *batch.ExternalInvocationError
	switch {
	case errors.As(err, &usage):
		return runNoArgs(out)
	case errors.As(err, &notFound):
		plainUI(out).Warn(notFound.Error())
		return 1
	case errors.As(err, &invocation):
		exitWithError(out, err)
		return batch.ExitStatus(err)
	default:
		return exitWithError(out, err)
	}
}

// runNoArgs prints the usage line and fails.
func runNoArgs(out io.Writer) int {
	plainUI(out).Info(usageText())
	return 1
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(err error, out io.Writer) int {
	msg := err.Error()
	cmd := cliName()
	if strings.Contains(msg, "expected string value") || strings.Contains(msg, "expected a value") {
		switch {
		case strings.Contains(msg, "--output"):
			return exitWithSuggestion(out, "`-o/--output` expects a folder path.", []string{
				fmt.Sprintf("%s -o ./results ./data", cmd),
			})
		case strings.Contains(msg, "--runner"):
			return exitWithSuggestion(out, "`--runner` expects exec or docker.", []string{
				fmt.Sprintf("%s --runner docker ./data", cmd),
			})
		case strings.Contains(msg, "--env-file"):
			return exitWithSuggestion(out, "`--env-file` expects a file path.", []string{
				fmt.Sprintf("%s --env-file .env.lab ./data", cmd),
			})
		}
	}
	if strings.Contains(msg, "unknown flag") {
		return exitWithSuggestion(out, msg, []string{
			fmt.Sprintf("Flags go before the folder; the argument after it reaches the plugin as is: %s -v ./data -p", cmd),
			fmt.Sprintf("%s --help", cmd),
		})
	}
	return exitWithError(out, err)
}
