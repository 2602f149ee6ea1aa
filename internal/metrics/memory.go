package metrics

import "runtime"

// Snapshot is a point-in-time view of the Go runtime memory statistics
// relevant to large modular-arithmetic workloads.
type Snapshot struct {
	HeapAlloc   uint64 // live bytes on the heap
	HeapSys     uint64 // heap bytes obtained from the OS
	TotalSys    uint64 // total bytes obtained from the OS
	HeapObjects uint64 // live allocated objects
	GCCycles    uint32 // completed GC cycles
	GCPauseNs   uint64 // cumulative GC pause time
}

// Collector samples runtime memory statistics.
type Collector struct{}

// NewCollector creates a memory statistics collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Snapshot reads the current runtime memory statistics.
func (c *Collector) Snapshot() Snapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Snapshot{
		HeapAlloc:   m.HeapAlloc,
		HeapSys:     m.HeapSys,
		TotalSys:    m.Sys,
		HeapObjects: m.HeapObjects,
		GCCycles:    m.NumGC,
		GCPauseNs:   m.PauseTotalNs,
	}
}

// AllocDelta returns the growth in live heap bytes since an earlier
// snapshot. It returns zero when the heap shrank in between, which happens
// when a GC cycle ran.
func (s Snapshot) AllocDelta(earlier Snapshot) uint64 {
	if s.HeapAlloc < earlier.HeapAlloc {
		return 0
	}
	return s.HeapAlloc - earlier.HeapAlloc
}
