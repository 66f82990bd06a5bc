// Where: internal/infra/config/settings.go
// What: Effective host settings resolution.
// Why: Merge defaults, the config file, and flag/env overrides in one place.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/optofluidics/ofbatch/internal/meta"
)

const (
	RunnerExec   = "exec"
	RunnerDocker = "docker"
)

// DefaultArgs is the host argument template. Each element is rendered with
// the plugin command and the macro argument string.
var DefaultArgs = []string{"--headless", "--console", "--run", "{{ .Plugin }}", "{{ .Argument }}"}

// Settings holds the resolved values used to reach the host.
type Settings struct {
	Runner        string
	Host          string
	Plugin        string
	Image         string
	ParametersDir string
	Args          []string
}

// Overrides carries values from flags or environment variables.
// Empty fields leave the lower layers untouched.
type Overrides struct {
	Runner        string
	Host          string
	Plugin        string
	Image         string
	ParametersDir string
}

// Resolve layers overrides over cfg over built-in defaults.
// Priority order.
// 1. Overrides (flags, then their environment variables).
// 2. Config file values.
// 3. Defaults for the selected runner.
func Resolve(cfg Config, overrides Overrides) (Settings, error) {
	settings := Settings{
		Runner:        firstNonEmpty(overrides.Runner, cfg.Runner, RunnerExec),
		Plugin:        firstNonEmpty(overrides.Plugin, cfg.Plugin, meta.DefaultPlugin),
		Image:         firstNonEmpty(overrides.Image, cfg.Image, meta.DefaultImage),
		ParametersDir: firstNonEmpty(overrides.ParametersDir, cfg.ParametersDir),
	}
	settings.Runner = strings.ToLower(settings.Runner)

	switch settings.Runner {
	case RunnerExec:
		settings.Host = firstNonEmpty(overrides.Host, cfg.Host, meta.DefaultHost)
		if settings.ParametersDir == "" && strings.ContainsRune(settings.Host, filepath.Separator) {
			settings.ParametersDir = filepath.Dir(settings.Host)
		}
	case RunnerDocker:
		settings.Host = firstNonEmpty(overrides.Host, cfg.Host, meta.DefaultContainerHost)
	default:
		return Settings{}, fmt.Errorf("%w: %q (expected %s or %s)", errUnsupportedRunner, settings.Runner, RunnerExec, RunnerDocker)
	}

	if len(cfg.Args) > 0 {
		settings.Args = append([]string{}, cfg.Args...)
	} else {
		settings.Args = append([]string{}, DefaultArgs...)
	}
	return settings, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
