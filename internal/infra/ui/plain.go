// Where: internal/infra/ui/plain.go
// What: Plain line-oriented UI adapter for use cases.
// Why: Status lines are matched verbatim by scripts wrapping the CLI.
package ui

import (
	"fmt"
	"io"
)

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by use cases.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Block(emoji, title string, rows []KeyValue)
}

// NewPlainUI returns a UserInterface that writes messages as bare lines.
func NewPlainUI(out io.Writer) UserInterface {
	return plainUI{
		out:     out,
		console: New(out),
	}
}

type plainUI struct {
	out     io.Writer
	console *Console
}

func (p plainUI) Info(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p plainUI) Warn(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p plainUI) Success(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p plainUI) Block(emoji, title string, rows []KeyValue) {
	p.console.Block(emoji, title, rows)
}
