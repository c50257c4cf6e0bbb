//go:build unix

package rlimit

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

const bytesPerMB = 1024 * 1024

// Apply installs the configured limits on the current process. Zero
// fields are skipped.
func (l Limits) Apply() error {
	if l.WallSeconds > 0 {
		if err := set(unix.RLIMIT_CPU, uint64(l.WallSeconds)); err != nil {
			return fmt.Errorf("rlimit: cpu: %w", err)
		}
	}
	if l.MemoryMB > 0 {
		if err := set(unix.RLIMIT_AS, uint64(l.MemoryMB)*bytesPerMB); err != nil {
			return fmt.Errorf("rlimit: memory: %w", err)
		}
	}
	if l.FileSizeMB > 0 {
		if err := set(unix.RLIMIT_FSIZE, uint64(l.FileSizeMB)*bytesPerMB); err != nil {
			return fmt.Errorf("rlimit: file size: %w", err)
		}
	}

	return nil
}

func set(resource int, value uint64) error {
	return unix.Setrlimit(resource, &unix.Rlimit{Cur: value, Max: value})
}

// Signals returns the limit-overrun signals the CLI must listen for.
func Signals() []os.Signal {
	return []os.Signal{unix.SIGXCPU, unix.SIGXFSZ}
}

// Classify maps a limit signal to its Kind.
func Classify(sig os.Signal) (Kind, bool) {
	switch sig {
	case unix.SIGXCPU:
		return Time, true
	case unix.SIGXFSZ:
		return Output, true
	}

	return 0, false
}
