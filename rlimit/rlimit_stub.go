//go:build !unix

package rlimit

import "os"

// Apply is a no-op on platforms without setrlimit.
func (l Limits) Apply() error { return nil }

// Signals returns no signals on platforms without setrlimit.
func Signals() []os.Signal { return nil }

// Classify never matches on platforms without setrlimit.
func Classify(os.Signal) (Kind, bool) { return 0, false }
