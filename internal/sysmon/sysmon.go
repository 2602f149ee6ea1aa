// Package sysmon provides system-wide CPU and memory usage sampling.
package sysmon

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

var (
	cpuUsageGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "nttcalc",
		Subsystem: "system",
		Name:      "cpu_percent",
		Help:      "System-wide CPU usage percentage.",
	})
	memUsageGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "nttcalc",
		Subsystem: "system",
		Name:      "memory_percent",
		Help:      "System-wide memory usage percentage.",
	})
)

// DefaultPollInterval is the sampling period used by Poll.
const DefaultPollInterval = 2 * time.Second

// Poll samples system usage at the given interval and publishes the readings
// as Prometheus gauges until the context is canceled. A non-positive interval
// selects DefaultPollInterval. Poll blocks; run it on its own goroutine.
func Poll(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Prime the CPU delta baseline.
	Sample()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s := Sample()
			cpuUsageGauge.Set(s.CPUPercent)
			memUsageGauge.Set(s.MemPercent)
		}
	}
}
