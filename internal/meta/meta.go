// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep the tool identity and directory layout in one place.
package meta

const (
	// Project Identity
	AppName   = "Optofluidics batch tracker"
	Slug      = "ofbatch"
	EnvPrefix = "OFBATCH"

	// Directory Layout
	HomeDir        = ".ofbatch"
	ConfigFilename = "config.yaml"

	// Host Defaults
	DefaultHost   = "ImageJ-linux64"
	DefaultPlugin = "Optofluidics batch processor"
	DefaultImage  = "fiji/fiji:latest"
	// DefaultContainerHost is the launcher path inside DefaultImage.
	DefaultContainerHost = "/opt/fiji/Fiji.app/ImageJ-linux64"

	ParameterSetExt     = ".properties"
	ParameterCommentKey = "comments"
)
