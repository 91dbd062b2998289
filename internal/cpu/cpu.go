// Package cpu wraps the host CPU facts and thread-affinity syscalls the
// benchmark harness depends on: logical core detection (read once by the
// engine) and pinning pool workers to distinct cores during saturation runs.
package cpu

import "runtime"

// LogicalCores returns the number of logical CPUs available to the process.
func LogicalCores() int {
	return runtime.NumCPU()
}

// SetupWorkerAffinity locks the calling goroutine to an OS thread and, on
// platforms that support it, pins that thread to core workerID (mod the core
// count). Returns a cleanup function that should be deferred.
func SetupWorkerAffinity(workerID int) func() {
	runtime.LockOSThread()
	pinToCore(workerID)

	return func() {
		runtime.UnlockOSThread()
	}
}
