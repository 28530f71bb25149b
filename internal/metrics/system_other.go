//go:build !linux

package metrics

import "github.com/shirou/gopsutil/v3/process"

// sharedRSS is unavailable off Linux; the process tables show shared memory
// as zero there.
func sharedRSS(_ *process.Process) uint64 {
	return 0
}
