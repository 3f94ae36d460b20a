// Package procutil finds processes by name and checks whether a process id
// is still alive.
//
// Each platform has its own directory:
//
//   - Linux: /proc, read with github.com/prometheus/procfs
//   - Windows: Toolhelp snapshots and wait handles from golang.org/x/sys/windows
//   - macOS and the BSDs: github.com/shirou/gopsutil/v4/process
//
// Matching is not uniform. On Windows a process matches when the first
// whitespace-delimited token of its executable name equals the query. On the
// Unix platforms a process matches when the query occurs anywhere in its
// command line, so "sleep" also matches "/usr/bin/sleep 30". The first match
// in scan order wins; the Unix directories scan in ascending id order.
//
// Results are snapshots. A process reported running may exit, and its id may
// be reused, before the caller acts on the answer.
//
// # Example Usage
//
//	pid, err := procutil.FindProcessID("nginx")
//	if errors.Is(err, procutil.ErrNotFound) {
//	    fmt.Println("nginx is not running")
//	    return
//	}
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//	if err := procutil.WaitForExit(ctx, int(pid), time.Second); err != nil {
//	    fmt.Println("still running:", err)
//	}
package procutil
