package metrics

import (
	"sort"
	"time"
)

// MemoryStat describes virtual memory usage in bytes.
type MemoryStat struct {
	Total     uint64
	Used      uint64
	Available uint64
	Percent   float64
}

// SwapStat describes swap usage in bytes.
type SwapStat struct {
	Total   uint64
	Used    uint64
	Percent float64
}

// GPURecord is one device's telemetry for one tick.
type GPURecord struct {
	Index       int
	Name        string
	UtilPercent float64
	MemUsed     uint64
	MemTotal    uint64
	MemPercent  float64
}

// ProcessRecord is one process row for one tick. Rows carry no identity
// across ticks; the whole listing is rebuilt every sample.
type ProcessRecord struct {
	PID        int32
	Name       string
	CPUPercent float64
	MemPercent float64
	RSS        uint64
	Shared     uint64 // 0 where the platform does not report shared RSS
	HasMemInfo bool
}

// Snapshot is the full set of metrics collected in one tick. It is created
// fresh each tick and never retained by the sampler.
type Snapshot struct {
	Time       time.Time
	CPUPercent float64
	CPUCount   int
	CPUFreqMHz float64 // 0 when the platform does not report it
	Memory     MemoryStat
	Swap       SwapStat
	NetUp      float64 // bytes/sec
	NetDown    float64 // bytes/sec
	GPUs       []GPURecord
	Procs      []ProcessRecord
}

// TopByCPU returns the n processes with the highest CPU percentage,
// descending. The input is not modified.
func TopByCPU(procs []ProcessRecord, n int) []ProcessRecord {
	return topBy(procs, n, func(p ProcessRecord) float64 { return p.CPUPercent })
}

// TopByMemory returns the n processes with the highest memory percentage,
// descending. The input is not modified.
func TopByMemory(procs []ProcessRecord, n int) []ProcessRecord {
	return topBy(procs, n, func(p ProcessRecord) float64 { return p.MemPercent })
}

func topBy(procs []ProcessRecord, n int, key func(ProcessRecord) float64) []ProcessRecord {
	out := make([]ProcessRecord, len(procs))
	copy(out, procs)
	sort.SliceStable(out, func(i, j int) bool { return key(out[i]) > key(out[j]) })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
