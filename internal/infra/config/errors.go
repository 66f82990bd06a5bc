// Where: internal/infra/config/errors.go
// What: Shared error definitions for config resolution.
// Why: Ensure consistent error wrapping without dynamic error creation.
package config

import "errors"

var errUnsupportedRunner = errors.New("unsupported runner")
