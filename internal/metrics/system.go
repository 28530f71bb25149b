package metrics

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	gopsnet "github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

// System implements SystemProvider on top of gopsutil.
type System struct{}

// NewSystem creates the provider and primes the CPU usage delta so the
// first real reading reflects usage since startup rather than boot.
func NewSystem() *System {
	_, _ = cpu.Percent(0, false)
	return &System{}
}

// CPUPercent returns overall CPU utilization since the previous call.
func (s *System) CPUPercent() (float64, error) {
	pcts, err := cpu.Percent(0, false)
	if err != nil {
		return 0, err
	}
	if len(pcts) == 0 {
		return 0, fmt.Errorf("no cpu usage reported")
	}
	return pcts[0], nil
}

// CPUCount returns the logical core count, 0 if unknown.
func (s *System) CPUCount() int {
	n, err := cpu.Counts(true)
	if err != nil {
		return 0
	}
	return n
}

// CPUFrequencyMHz returns the current CPU frequency where the platform
// reports one.
func (s *System) CPUFrequencyMHz() (float64, bool) {
	infos, err := cpu.Info()
	if err != nil || len(infos) == 0 || infos[0].Mhz <= 0 {
		return 0, false
	}
	return infos[0].Mhz, true
}

// VirtualMemory returns RAM usage.
func (s *System) VirtualMemory() (MemoryStat, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return MemoryStat{}, err
	}
	return MemoryStat{
		Total:     vm.Total,
		Used:      vm.Used,
		Available: vm.Available,
		Percent:   vm.UsedPercent,
	}, nil
}

// SwapMemory returns swap usage.
func (s *System) SwapMemory() (SwapStat, error) {
	sw, err := mem.SwapMemory()
	if err != nil {
		return SwapStat{}, err
	}
	return SwapStat{
		Total:   sw.Total,
		Used:    sw.Used,
		Percent: sw.UsedPercent,
	}, nil
}

// NetCounters returns the aggregate bytes sent and received across all
// interfaces.
func (s *System) NetCounters() (uint64, uint64, error) {
	counters, err := gopsnet.IOCounters(false)
	if err != nil {
		return 0, 0, err
	}
	if len(counters) == 0 {
		return 0, 0, fmt.Errorf("no network counters reported")
	}
	return counters[0].BytesSent, counters[0].BytesRecv, nil
}

// Processes enumerates processes with CPU and memory usage. A process that
// vanishes or denies access mid-enumeration is dropped silently; the
// listing itself only fails if the enumeration does.
func (s *System) Processes() ([]ProcessRecord, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	out := make([]ProcessRecord, 0, len(procs))
	for _, p := range procs {
		if p.Pid == 0 {
			continue
		}
		name, err := p.Name()
		if err != nil || name == "" {
			continue
		}
		cpuPct, err := p.CPUPercent()
		if err != nil {
			continue
		}
		memPct, err := p.MemoryPercent()
		if err != nil {
			continue
		}

		rec := ProcessRecord{
			PID:        p.Pid,
			Name:       name,
			CPUPercent: cpuPct,
			MemPercent: float64(memPct),
		}
		if mi, err := p.MemoryInfo(); err == nil && mi != nil {
			rec.RSS = mi.RSS
			rec.HasMemInfo = true
			rec.Shared = sharedRSS(p)
		}
		out = append(out, rec)
	}
	return out, nil
}
