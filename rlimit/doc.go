// Package rlimit imposes CPU-time, memory and output-size limits on
// the current process through OS resource limits, for the cnfid
// command line.
//
// The limits are enforced by the kernel, not by instrumentation:
//   - CPU seconds  → RLIMIT_CPU, overrun delivers SIGXCPU
//   - memory (MB)  → RLIMIT_AS, overrun surfaces as allocation failure
//   - output (MB)  → RLIMIT_FSIZE, overrun delivers SIGXFSZ
//
// The time limit counts CPU seconds of the process, not wall-clock
// time; time spent blocked on I/O does not count towards it.
//
// The CLI installs the limits before parsing, listens for the limit
// signals and turns them into the fixed diagnostics "Time Limit
// Exceeded" / "File Size Limit Exceeded" on stderr with a non-zero
// exit. A memory overrun raises no signal: the process ends with the
// Go runtime's own out-of-memory error, and no "Memory Limit Exceeded"
// line is printed.
//
// On platforms without setrlimit the package compiles to a no-op and
// the flags are silently ignored.
package rlimit
