// Where: internal/command/parameters_test.go
// What: Tests for parameter-set listing and selection.
// Why: Interactive selection must never change non-interactive behavior.
package command

import (
	"path/filepath"
	"strings"
	"testing"
)

func parameterDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "fast.properties"), "comments = Quick run\n")
	writeFile(t, filepath.Join(dir, "slow.properties"), "velocity = 1\n")
	return dir
}

func TestListParameters(t *testing.T) {
	h := newHarness(t)
	dir := parameterDir(t)

	if code := h.run("--list-parameters", "--parameters-dir", dir); code != 0 {
		t.Fatalf("expected exit code 0, got %d (%s)", code, h.out.String())
	}
	output := h.out.String()
	for _, want := range []string{"Parameter sets in " + dir, "fast.properties:", "Quick run", "slow.properties:"} {
		if !strings.Contains(output, want) {
			t.Fatalf("missing %q in output: %q", want, output)
		}
	}
	if len(h.factory.requests) != 0 {
		t.Fatal("listing must not build a processor")
	}
}

func TestListParametersHostDirDefault(t *testing.T) {
	h := newHarness(t)
	dir := parameterDir(t)

	code := h.run("--list-parameters", "--host", filepath.Join(dir, "ImageJ-linux64"))
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (%s)", code, h.out.String())
	}
	if !strings.Contains(h.out.String(), "fast.properties") {
		t.Fatalf("expected sets next to the host: %q", h.out.String())
	}
}

func TestListParametersWithoutDir(t *testing.T) {
	h := newHarness(t)
	if code := h.run("--list-parameters"); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(h.out.String(), "parameter set directory is not configured") {
		t.Fatalf("unexpected output: %q", h.out.String())
	}
}

func TestChooseParameterSet(t *testing.T) {
	h := newHarness(t)
	h.tty = true
	h.prompter.choice = "slow.properties"
	mkdir(t, "data")

	if code := h.run("--choose", "--parameters-dir", parameterDir(t), "data"); code != 0 {
		t.Fatalf("expected exit code 0, got %d (%s)", code, h.out.String())
	}
	if got := h.factory.processor.arguments[0]; got != "folder=[data] parameters=slow.properties" {
		t.Fatalf("unexpected argument: %q", got)
	}
	if len(h.prompter.options) != 2 || h.prompter.options[0].Label != "fast.properties: Quick run" {
		t.Fatalf("unexpected options: %#v", h.prompter.options)
	}
}

func TestChooseKeepsExplicitParameters(t *testing.T) {
	h := newHarness(t)
	h.tty = true
	mkdir(t, "data")

	if code := h.run("-c", "data", "given.properties"); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if h.prompter.title != "" {
		t.Fatal("prompt must be skipped when parameters are given")
	}
	if got := h.factory.processor.arguments[0]; got != "folder=[data] parameters=given.properties" {
		t.Fatalf("unexpected argument: %q", got)
	}
}

func TestChooseWithoutSetsFallsBackToDefaults(t *testing.T) {
	h := newHarness(t)
	h.tty = true
	mkdir(t, "data")

	if code := h.run("--choose", "--parameters-dir", t.TempDir(), "data"); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.HasPrefix(h.out.String(), noParameterSetsMessage+"\n") {
		t.Fatalf("expected fallback warning: %q", h.out.String())
	}
	if got := h.factory.processor.arguments[0]; got != "folder=[data]" {
		t.Fatalf("unexpected argument: %q", got)
	}
}

func TestChooseRequiresTerminal(t *testing.T) {
	h := newHarness(t)
	mkdir(t, "data")

	if code := h.run("--choose", "--parameters-dir", parameterDir(t), "data"); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(h.out.String(), "interactive terminal") {
		t.Fatalf("unexpected output: %q", h.out.String())
	}
	if len(h.factory.requests) != 0 {
		t.Fatal("processor must not be built")
	}
}

func TestChooseChecksPathBeforePrompt(t *testing.T) {
	h := newHarness(t)
	h.tty = true

	if code := h.run("--choose", "--parameters-dir", parameterDir(t), "./missing"); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if h.prompter.title != "" {
		t.Fatal("prompt must not run for a missing folder")
	}
	if got := h.out.String(); got != "File does not exist at path: ./missing\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}
