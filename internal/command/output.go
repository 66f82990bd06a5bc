// Where: internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface usage and logger construction.
package command

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/optofluidics/ofbatch/internal/infra/ui"
	"github.com/optofluidics/ofbatch/internal/meta"
)

func plainUI(out io.Writer) ui.UserInterface {
	return ui.NewPlainUI(out)
}

// newLogger returns a diagnostics logger on w. Only errors are shown unless
// verbose is set.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.ErrorLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          meta.Slug,
		ReportTimestamp: verbose,
		Level:           level,
	})
}
