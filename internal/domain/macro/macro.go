// Where: internal/domain/macro/macro.go
// What: Macro argument string construction.
// Why: The host plugin reads its options from a single `key=[value]` string.
package macro

import "strings"

const (
	KeyFolder     = "folder"
	KeyParameters = "parameters"
	KeyOutput     = "output"
)

// Options holds the values that make up a plugin argument string.
type Options struct {
	Folder        string
	Parameters    string
	HasParameters bool
	Output        string
}

// Argument renders opts as `folder=[<path>]`, followed by
// ` parameters=<value>` when HasParameters is set and ` output=[<dir>]`
// when Output is non-empty. Values are copied verbatim.
func Argument(opts Options) string {
	var b strings.Builder
	b.WriteString(Bracketed(KeyFolder, opts.Folder))
	if opts.HasParameters {
		b.WriteByte(' ')
		b.WriteString(KeyParameters + "=" + opts.Parameters)
	}
	if opts.Output != "" {
		b.WriteByte(' ')
		b.WriteString(Bracketed(KeyOutput, opts.Output))
	}
	return b.String()
}

// Bracketed renders a single `key=[value]` pair.
func Bracketed(key, value string) string {
	return key + "=[" + value + "]"
}

// NeedsQuoting reports whether value contains characters that the host's
// option splitter treats as delimiters when they appear unbracketed.
func NeedsQuoting(value string) bool {
	return strings.ContainsAny(value, " \t\n[]")
}
