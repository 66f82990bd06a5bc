// Where: internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

const (
	// CLI Configuration
	EnvConfig  = "OFBATCH_CONFIG"
	EnvHome    = "OFBATCH_HOME"
	EnvVerbose = "OFBATCH_VERBOSE"
	EnvCLICmd  = "CLI_CMD"

	// Host Configuration
	EnvRunner        = "OFBATCH_RUNNER"
	EnvHost          = "OFBATCH_HOST"
	EnvPlugin        = "OFBATCH_PLUGIN"
	EnvImage         = "OFBATCH_IMAGE"
	EnvParametersDir = "OFBATCH_PARAMETERS_DIR"
)
