// Package testutil holds test helpers for this module.
//
//	dir := testutil.TempDir(t)
//	p := testutil.WriteFile(t, dir, "notes.txt", "hello")
//
//	cmd := testutil.StartSleeper(t, 10*time.Second)
//	pid := uint32(cmd.Process.Pid)
package testutil
