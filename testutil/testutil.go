package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"
	"time"
)

// TempDir creates a temporary directory that is removed when the test ends.
// Files inside that were made read-only are made writable again first so
// cleanup cannot fail on them.
func TempDir(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "sysext-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	t.Cleanup(func() {
		_ = filepath.Walk(tmpDir, func(p string, info os.FileInfo, err error) error {
			if err == nil {
				_ = os.Chmod(p, info.Mode()|0o200)
			}
			return nil
		})
		if err := os.RemoveAll(tmpDir); err != nil {
			t.Logf("Failed to clean up temp directory %s: %v", tmpDir, err)
		}
	})

	return tmpDir
}

// WriteFile creates dir/name with content and returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", p, err)
	}
	return p
}

// StartSleeper starts a child process that idles for d and returns it. The
// process is killed and reaped when the test ends.
func StartSleeper(t *testing.T, d time.Duration) *exec.Cmd {
	t.Helper()

	secs := int(d.Seconds())
	if secs < 1 {
		secs = 1
	}

	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("powershell", "-NoProfile", "-Command", "Start-Sleep", "-Seconds", strconv.Itoa(secs))
	} else {
		cmd = exec.Command("sleep", strconv.Itoa(secs))
	}

	if err := cmd.Start(); err != nil {
		t.Fatalf("Failed to start test process: %v", err)
	}

	t.Cleanup(func() {
		if cmd.ProcessState == nil {
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
		}
	})

	return cmd
}

// StopProcess kills cmd and waits for it to be reaped.
func StopProcess(t *testing.T, cmd *exec.Cmd) {
	t.Helper()

	if err := cmd.Process.Kill(); err != nil {
		t.Fatalf("Failed to kill test process: %v", err)
	}
	_ = cmd.Wait()
}
