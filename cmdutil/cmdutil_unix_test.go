//go:build !windows

package cmdutil

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sony/gobreaker"
)

func TestRunnerSuccess(t *testing.T) {
	r := NewRunner("echo")

	out, err := r.Run(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.TrimSpace(string(out)) != "hello" {
		t.Errorf("Run() output = %q, want hello", out)
	}
}

func TestRunnerExitFailureKeepsBreakerClosed(t *testing.T) {
	r := NewRunner("false", WithBreaker(1, 0))

	for i := 0; i < 3; i++ {
		_, err := r.Run(context.Background())
		if !errors.Is(err, ErrCommandFailed) {
			t.Fatalf("Run() error = %v, want ErrCommandFailed", err)
		}
	}

	if r.State() != gobreaker.StateClosed {
		t.Errorf("State() = %v, want closed for ordinary exit failures", r.State())
	}
}

func TestRunCommandWithOutputIncludesOutput(t *testing.T) {
	_, err := RunCommandWithOutput(context.Background(), "sh", []string{"-c", "echo boom >&2; exit 3"}, "")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error %q should include command output", err)
	}
}

func TestLookupTool(t *testing.T) {
	if got := LookupTool("sh"); got == "" {
		t.Fatal("LookupTool(sh) = \"\", want a path")
	}
	if got := LookupTool("/bin/sh"); got != "/bin/sh" {
		t.Errorf("LookupTool(/bin/sh) = %q", got)
	}
	if got := LookupTool("sysext-no-such-tool"); got != "" {
		t.Errorf("LookupTool(missing) = %q, want empty", got)
	}
	if got := LookupTool("/etc"); got != "" {
		t.Errorf("LookupTool(directory) = %q, want empty", got)
	}
	if got := LookupTool(""); got != "" {
		t.Errorf("LookupTool(\"\") = %q, want empty", got)
	}
}

func TestLookupToolSystemDirFallback(t *testing.T) {
	t.Setenv("PATH", "")

	if got := LookupTool("touch"); !strings.HasSuffix(got, "/touch") {
		t.Errorf("LookupTool(touch) with empty PATH = %q, want a system path", got)
	}
}
