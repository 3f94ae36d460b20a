package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestTempDirCleansReadOnlyFiles(t *testing.T) {
	var dir string
	t.Run("inner", func(t *testing.T) {
		dir = TempDir(t)
		p := WriteFile(t, dir, "ro.txt", "x")
		if err := os.Chmod(p, 0o444); err != nil {
			t.Fatalf("chmod: %v", err)
		}
	})

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("temp dir %s still exists after cleanup: %v", dir, err)
	}
}

func TestWriteFile(t *testing.T) {
	dir := TempDir(t)
	p := WriteFile(t, dir, "a.txt", "hello")

	if filepath.Dir(p) != dir {
		t.Errorf("WriteFile path %s not in %s", p, dir)
	}
	data, err := os.ReadFile(p)
	if err != nil || string(data) != "hello" {
		t.Errorf("ReadFile = %q, %v", data, err)
	}
}

func TestStartSleeperAndStop(t *testing.T) {
	cmd := StartSleeper(t, 10*time.Second)
	if cmd.Process == nil || cmd.Process.Pid <= 0 {
		t.Fatal("expected a started process")
	}

	StopProcess(t, cmd)
	if cmd.ProcessState == nil {
		t.Error("expected process to be reaped")
	}
}
