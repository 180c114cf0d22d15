package sysinfo

import (
	"context"
	"fmt"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

const bytesPerMB = 1024 * 1024

// Snapshot is a point-in-time view of the host and the running process,
// assembled fresh on every call and never cached.
type Snapshot struct {
	Host    HostInfo
	Memory  MemoryInfo
	Process ProcessInfo
}

type HostInfo struct {
	Hostname  string
	Platform  string
	Arch      string
	GoVersion string
	Cores     int
	CPUModel  string
}

type MemoryInfo struct {
	TotalMB     uint64
	FreeMB      uint64
	UsedPercent float64
}

type ProcessInfo struct {
	PID           int
	HeapMB        float64
	UptimeSeconds int64
}

// Collector gathers host and process introspection data. The zero value is
// not usable; NewCollector pins the process start time for uptime reporting.
type Collector struct {
	startTime time.Time
}

func NewCollector() *Collector {
	return &Collector{startTime: time.Now()}
}

// Uptime reports how long the process has been running.
func (c *Collector) Uptime() time.Duration {
	return time.Since(c.startTime)
}

// Collect queries the OS and the Go runtime for a fresh snapshot. Any
// failing introspection call aborts the whole snapshot.
func (c *Collector) Collect(ctx context.Context) (*Snapshot, error) {
	hostInfo, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read host info: %w", err)
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read virtual memory: %w", err)
	}

	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to count CPUs: %w", err)
	}

	cpuModel := ""
	if infos, err := cpu.InfoWithContext(ctx); err == nil && len(infos) > 0 {
		cpuModel = infos[0].ModelName
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return &Snapshot{
		Host: HostInfo{
			Hostname:  hostInfo.Hostname,
			Platform:  hostInfo.OS,
			Arch:      runtime.GOARCH,
			GoVersion: runtime.Version(),
			Cores:     cores,
			CPUModel:  cpuModel,
		},
		Memory: MemoryInfo{
			TotalMB:     vm.Total / bytesPerMB,
			FreeMB:      vm.Free / bytesPerMB,
			UsedPercent: usedPercent(vm.Total, vm.Free),
		},
		Process: ProcessInfo{
			PID:           os.Getpid(),
			HeapMB:        math.Round(float64(memStats.HeapAlloc)/bytesPerMB*100) / 100,
			UptimeSeconds: int64(c.Uptime().Seconds()),
		},
	}, nil
}

func usedPercent(total, free uint64) float64 {
	if total == 0 {
		return 0
	}

	return math.Round((1 - float64(free)/float64(total)) * 100)
}
