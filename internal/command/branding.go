// Where: internal/command/branding.go
// What: Brand-aware CLI naming.
// Why: Keep user-facing command names consistent when the binary is wrapped.
package command

import (
	"os"
	"strings"

	"github.com/optofluidics/ofbatch/internal/constants"
	"github.com/optofluidics/ofbatch/internal/meta"
)

func cliName() string {
	name := strings.TrimSpace(os.Getenv(constants.EnvCLICmd))
	if name == "" {
		name = strings.TrimSpace(meta.Slug)
	}
	if name == "" {
		name = "ofbatch"
	}
	return name
}

func usageText() string {
	return "Usage: " + cliName() + " [flags] <folder-path> [parameters]"
}
