// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"
	"strings"

	"github.com/optofluidics/ofbatch/internal/meta"
)

// HostEnvKey constructs a brand-prefixed environment variable name.
// Example: HostEnvKey("HOME") returns "OFBATCH_HOME".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + suffix
}

// GetHostEnv retrieves a brand-prefixed environment variable, trimmed.
// Example: GetHostEnv("HOME") returns the value of OFBATCH_HOME.
func GetHostEnv(suffix string) string {
	return strings.TrimSpace(os.Getenv(HostEnvKey(suffix)))
}
