package rlimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cnfid/rlimit"
)

// TestKind_Message pins the fixed diagnostic lines.
func TestKind_Message(t *testing.T) {
	assert.Equal(t, "Time Limit Exceeded", rlimit.Time.Message())
	assert.Equal(t, "Memory Limit Exceeded", rlimit.Memory.Message())
	assert.Equal(t, "File Size Limit Exceeded", rlimit.Output.Message())
}

// TestLimits_Enabled reports whether any budget is set.
func TestLimits_Enabled(t *testing.T) {
	assert.False(t, rlimit.Limits{}.Enabled())
	assert.True(t, rlimit.Limits{WallSeconds: 1}.Enabled())
	assert.True(t, rlimit.Limits{MemoryMB: 1}.Enabled())
	assert.True(t, rlimit.Limits{FileSizeMB: 1}.Enabled())
}
