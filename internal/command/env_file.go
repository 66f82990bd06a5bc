// Where: internal/command/env_file.go
// What: dotenv loading ahead of flag parsing.
// Why: Env-backed flags are resolved during parsing, so the file must load first.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// envFileFlag extracts the --env-file value from raw arguments.
// Scanning stops at "--".
func envFileFlag(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			return ""
		}
		if value, ok := strings.CutPrefix(arg, "--env-file="); ok {
			return value
		}
		if arg == "--env-file" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// loadEnvFile loads path, or .env in the current directory when path is
// empty. Existing environment variables are never overridden.
func loadEnvFile(path string, out io.Writer) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			plainUI(out).Warn(fmt.Sprintf("Warning: failed to load env file %s: %v", path, err))
		}
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			plainUI(out).Warn(fmt.Sprintf("Warning: failed to load .env: %v", err))
		}
	}
}
