// Where: internal/infra/host/exec_test.go
// What: Tests for the exec processor.
// Why: Verify host command construction and exit-code propagation.
package host

import (
	"context"
	"errors"
	"os/exec"
	"reflect"
	"testing"

	"github.com/optofluidics/ofbatch/internal/infra/config"
	"github.com/optofluidics/ofbatch/internal/usecase/batch"
)

var errNotFound = errors.New("executable file not found")

func testSettings() config.Settings {
	return config.Settings{
		Runner: config.RunnerExec,
		Host:   "/opt/Fiji.app/ImageJ-linux64",
		Plugin: "Optofluidics batch processor",
		Image:  "fiji/fiji:latest",
		Args:   config.DefaultArgs,
	}
}

func TestExecProcessorInvoke(t *testing.T) {
	runner := &fakeRunner{}
	processor := NewExecProcessor(runner, testSettings(), "/work", nil)

	if err := processor.Invoke(context.Background(), "folder=[./data]"); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if runner.dir != "/work" || runner.name != "/opt/Fiji.app/ImageJ-linux64" {
		t.Fatalf("unexpected command: dir=%s name=%s", runner.dir, runner.name)
	}
	want := []string{"--headless", "--console", "--run", "Optofluidics batch processor", "folder=[./data]"}
	if !reflect.DeepEqual(runner.args, want) {
		t.Fatalf("unexpected args: %q", runner.args)
	}
}

func TestExecProcessorStartFailure(t *testing.T) {
	runner := &fakeRunner{err: errNotFound}
	err := NewExecProcessor(runner, testSettings(), "", nil).Invoke(context.Background(), "folder=[x]")

	var invocation *batch.ExternalInvocationError
	if !errors.As(err, &invocation) {
		t.Fatalf("expected ExternalInvocationError, got %v", err)
	}
	if invocation.ExitCode != 0 || !errors.Is(err, errNotFound) {
		t.Fatalf("unexpected invocation error: %#v", invocation)
	}
}

func TestExecProcessorPropagatesExitCode(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	settings := testSettings()
	settings.Host = "sh"
	settings.Args = []string{"-c", "exit 3", "{{ .Argument }}"}

	err := NewExecProcessor(ExecRunner{}, settings, t.TempDir(), nil).Invoke(context.Background(), "folder=[x]")
	if got := batch.ExitStatus(err); got != 3 {
		t.Fatalf("expected exit status 3, got %d (%v)", got, err)
	}
}

func TestExecProcessorRequiresRunnerAndHost(t *testing.T) {
	if err := (ExecProcessor{Settings: testSettings()}).Invoke(context.Background(), "x"); !errors.Is(err, errCommandRunnerNil) {
		t.Fatalf("expected runner error, got %v", err)
	}
	settings := testSettings()
	settings.Host = " "
	if _, err := (ExecProcessor{Settings: settings}).Command("x"); !errors.Is(err, errHostRequired) {
		t.Fatalf("expected host error, got %v", err)
	}
}
