//go:build linux

package metrics

import "github.com/shirou/gopsutil/v3/process"

// sharedRSS returns the shared portion of a process's resident set, 0 when
// it cannot be read.
func sharedRSS(p *process.Process) uint64 {
	ex, err := p.MemoryInfoEx()
	if err != nil || ex == nil {
		return 0
	}
	return ex.Shared
}
