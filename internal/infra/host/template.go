// Where: internal/infra/host/template.go
// What: Host argument template rendering.
// Why: Different Fiji launchers want the plugin name and option string in different flags.
package host

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// InvocationData is the data available to argument templates.
type InvocationData struct {
	Plugin   string
	Argument string
}

// RenderArgs renders each template into exactly one argv element. Values are
// inserted as-is; text/template performs no escaping.
func RenderArgs(templates []string, data InvocationData) ([]string, error) {
	args := make([]string, 0, len(templates))
	for i, text := range templates {
		tmpl, err := template.New(fmt.Sprintf("arg%d", i)).
			Option("missingkey=error").
			Funcs(sprig.TxtFuncMap()).
			Parse(text)
		if err != nil {
			return nil, fmt.Errorf("parse host arg %d %q: %w", i, text, err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("render host arg %d %q: %w", i, text, err)
		}
		args = append(args, buf.String())
	}
	return args, nil
}
