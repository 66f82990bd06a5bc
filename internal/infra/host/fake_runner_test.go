package host

import (
	"context"
)

type fakeRunner struct {
	dir  string
	name string
	args []string
	err  error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.dir = dir
	f.name = name
	f.args = args
	return f.err
}
