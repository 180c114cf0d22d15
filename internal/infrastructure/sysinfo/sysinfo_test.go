package sysinfo

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	c := NewCollector()

	snap, err := c.Collect(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, snap.Host.Hostname)
	assert.NotEmpty(t, snap.Host.Platform)
	assert.NotEmpty(t, snap.Host.GoVersion)
	assert.Greater(t, snap.Host.Cores, 0)

	assert.Greater(t, snap.Memory.TotalMB, uint64(0))
	assert.GreaterOrEqual(t, snap.Memory.UsedPercent, float64(0))
	assert.LessOrEqual(t, snap.Memory.UsedPercent, float64(100))

	assert.Equal(t, os.Getpid(), snap.Process.PID)
	assert.GreaterOrEqual(t, snap.Process.HeapMB, float64(0))
	assert.GreaterOrEqual(t, snap.Process.UptimeSeconds, int64(0))
}

func TestUsedPercent(t *testing.T) {
	tests := []struct {
		name  string
		total uint64
		free  uint64
		want  float64
	}{
		{name: "half used", total: 100, free: 50, want: 50},
		{name: "all free", total: 100, free: 100, want: 0},
		{name: "none free", total: 100, free: 0, want: 100},
		{name: "rounds to nearest integer", total: 1000, free: 333, want: 67},
		{name: "zero total guarded", total: 0, free: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usedPercent(tt.total, tt.free))
		})
	}
}

func TestUptimeAdvances(t *testing.T) {
	c := NewCollector()
	assert.GreaterOrEqual(t, c.Uptime().Nanoseconds(), int64(0))
}
