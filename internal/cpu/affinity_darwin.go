//go:build darwin

package cpu

// pinToCore is a no-op on macOS: there is no public thread-affinity API.
// Workers still benefit from the OS thread lock done by SetupWorkerAffinity.
func pinToCore(int) {}
