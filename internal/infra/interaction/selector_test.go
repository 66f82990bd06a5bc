package interaction

import (
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
)

func TestHuhPrompterSelectValueUsesRunner(t *testing.T) {
	orig := runSelectPrompt
	t.Cleanup(func() { runSelectPrompt = orig })

	var gotTitle string
	var gotOptions int
	runSelectPrompt = func(title string, options []huh.Option[string], selected *string) error {
		gotTitle = title
		gotOptions = len(options)
		*selected = options[1].Value
		return nil
	}

	got, err := (HuhPrompter{}).SelectValue("Parameter set", []SelectOption{
		{Label: "fast.properties: quick run", Value: "fast.properties"},
		{Label: "slow.properties", Value: "slow.properties"},
	})
	if err != nil {
		t.Fatalf("SelectValue() error = %v", err)
	}
	if got != "slow.properties" {
		t.Fatalf("SelectValue() = %q, want %q", got, "slow.properties")
	}
	if gotTitle != "Parameter set" {
		t.Fatalf("title = %q", gotTitle)
	}
	if gotOptions != 2 {
		t.Fatalf("options len = %d, want 2", gotOptions)
	}
}

func TestHuhPrompterSelectValueEmptyOptionsReturnsEmpty(t *testing.T) {
	orig := runSelectPrompt
	t.Cleanup(func() { runSelectPrompt = orig })
	called := false
	runSelectPrompt = func(string, []huh.Option[string], *string) error {
		called = true
		return nil
	}

	got, err := (HuhPrompter{}).SelectValue("Parameter set", nil)
	if err != nil {
		t.Fatalf("SelectValue() error = %v", err)
	}
	if got != "" {
		t.Fatalf("SelectValue() = %q, want empty", got)
	}
	if called {
		t.Fatal("runner must not be called for empty options")
	}
}

func TestHuhPrompterSelectValueWrapsError(t *testing.T) {
	orig := runSelectPrompt
	t.Cleanup(func() { runSelectPrompt = orig })
	runSelectPrompt = func(string, []huh.Option[string], *string) error {
		return errors.New("select value failed")
	}

	_, err := (HuhPrompter{}).SelectValue("Parameter set", []SelectOption{{Label: "a", Value: "a.properties"}})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "prompt select value: select value failed" {
		t.Fatalf("unexpected error: %v", err)
	}
}
