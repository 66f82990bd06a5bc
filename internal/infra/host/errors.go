// Where: internal/infra/host/errors.go
// What: Shared error definitions for host processors.
// Why: Ensure consistent error wrapping without dynamic error creation.
package host

import "errors"

var (
	errCommandRunnerNil = errors.New("command runner is nil")
	errDockerClientNil  = errors.New("docker client is nil")
	errHostRequired     = errors.New("host executable is required")
	errImageRequired    = errors.New("container image is required")
	errWaitClosed       = errors.New("wait container: status channel closed")
)
