// Where: internal/infra/ui/console.go
// What: Console rendering for listings, failures, and next-step hints.
// Why: Keep every non-status line in one shape across commands.
package ui

import (
	"fmt"
	"io"
	"strings"
)

// Console renders structured output. Status lines bypass it so scripts can
// match them verbatim.
type Console struct {
	Out   io.Writer
	Emoji bool
}

// New creates a Console with emoji markers enabled.
func New(out io.Writer) *Console {
	return &Console{Out: out, Emoji: true}
}

// Block prints a titled list with keys aligned to the widest key.
//
//	🧪 Parameter sets in /opt/Fiji.app
//	   fast.properties:  Quick run
func (c *Console) Block(emoji, title string, rows []KeyValue) {
	fmt.Fprintln(c.Out)
	fmt.Fprintln(c.Out, c.marker(emoji, "")+title)
	width := 0
	for _, row := range rows {
		width = max(width, len(row.Key)+1)
	}
	for _, row := range rows {
		fmt.Fprintf(c.Out, "   %-*s %v\n", width, row.Key+":", row.Value)
	}
	fmt.Fprintln(c.Out)
}

// Failure prints a one-line error.
func (c *Console) Failure(msg string) {
	fmt.Fprintln(c.Out, c.marker("✗", "[error]")+msg)
}

// Suggest prints a warning followed by next steps, one per line.
func (c *Console) Suggest(msg string, steps []string) {
	marker := "[warn] "
	if c.Emoji {
		marker = "⚠️  "
	}
	fmt.Fprintln(c.Out, marker+msg)
	if len(steps) == 0 {
		return
	}
	fmt.Fprintln(c.Out, "Next steps:")
	for _, step := range steps {
		fmt.Fprintln(c.Out, "  - "+step)
	}
}

func (c *Console) marker(emoji, fallback string) string {
	if c.Emoji && strings.TrimSpace(emoji) != "" {
		return emoji + " "
	}
	if fallback == "" {
		return ""
	}
	return fallback + " "
}
