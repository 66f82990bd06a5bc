// Where: internal/usecase/batch/errors.go
// What: Error taxonomy for batch invocation.
// Why: Let the CLI map each failure class to its exit behavior with errors.As.
package batch

import (
	"errors"
	"fmt"
)

var errProcessorNotConfigured = errors.New("processor is not configured")

// UsageError reports that the required folder argument is missing.
type UsageError struct{}

func (UsageError) Error() string {
	return "missing required argument: folder path"
}

// PathNotFoundError reports that the folder argument does not exist.
type PathNotFoundError struct {
	Path string
	Err  error
}

func (e *PathNotFoundError) Error() string {
	return "File does not exist at path: " + e.Path
}

func (e *PathNotFoundError) Unwrap() error {
	return e.Err
}

// ExternalInvocationError wraps a failure raised by the processing
// capability. ExitCode is the host's exit status when known, otherwise 0.
type ExternalInvocationError struct {
	Err      error
	ExitCode int
}

func (e *ExternalInvocationError) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("batch processing failed (exit status %d): %v", e.ExitCode, e.Err)
	}
	return fmt.Sprintf("batch processing failed: %v", e.Err)
}

func (e *ExternalInvocationError) Unwrap() error {
	return e.Err
}

// ExitStatus returns the process exit code to report for err. Known host
// exit codes pass through; every other failure maps to 1.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	var invocation *ExternalInvocationError
	if errors.As(err, &invocation) && invocation.ExitCode > 0 {
		return invocation.ExitCode
	}
	return 1
}
