package metrics

import (
	"time"

	"github.com/rileyhilliard/ktop/internal/logger"
)

// SystemProvider supplies host statistics. Implementations return
// best-effort instantaneous values; any call may fail on a given tick.
type SystemProvider interface {
	CPUPercent() (float64, error)
	CPUCount() int
	CPUFrequencyMHz() (float64, bool)
	VirtualMemory() (MemoryStat, error)
	SwapMemory() (SwapStat, error)
	// NetCounters returns cumulative bytes sent and received. Counters are
	// assumed monotonically non-decreasing; resets show up as negative
	// deltas and are clamped by the sampler.
	NetCounters() (sent, recv uint64, err error)
	Processes() ([]ProcessRecord, error)
}

// GPUProvider supplies per-device GPU telemetry. The device count is fixed
// at startup; every per-device query may fail independently.
type GPUProvider interface {
	DeviceCount() int
	Query(index int) (GPURecord, error)
	// Close releases the telemetry handle. Errors are swallowed; Close must
	// be safe to call on every exit path.
	Close()
}

// Sampler pulls one Snapshot per tick from the providers and maintains the
// rolling histories and the network scale. It is not safe for concurrent
// use; the control loop is single-threaded by design.
type Sampler struct {
	system SystemProvider
	gpu    GPUProvider // nil when telemetry is unavailable
	now    func() time.Time
	log    logger.Logger

	cpuHist  *History
	netUp    *History
	netDown  *History
	gpuUtil  map[int]*History
	gpuMem   map[int]*History
	netScale *NetScale

	lastSent  uint64
	lastRecv  uint64
	lastNetAt time.Time
	netSeeded bool
}

// NewSampler builds a sampler with histories of the given capacity.
// gpu may be nil. The first CPU reading is primed so the first tick reports
// a meaningful percentage, and the network counters are seeded so the first
// tick reports a rate instead of the absolute counter values.
func NewSampler(system SystemProvider, gpu GPUProvider, histLen int, log logger.Logger) *Sampler {
	if log == nil {
		log = logger.Noop()
	}
	s := &Sampler{
		system:   system,
		gpu:      gpu,
		now:      time.Now,
		log:      log,
		cpuHist:  NewHistory(histLen),
		netUp:    NewHistory(histLen),
		netDown:  NewHistory(histLen),
		gpuUtil:  make(map[int]*History),
		gpuMem:   make(map[int]*History),
		netScale: NewNetScale(),
	}

	if gpu != nil {
		for i := 0; i < gpu.DeviceCount(); i++ {
			s.gpuUtil[i] = NewHistory(histLen)
			s.gpuMem[i] = NewHistory(histLen)
		}
	}

	// Prime the CPU delta and the network counters.
	if _, err := system.CPUPercent(); err != nil {
		s.log.Debug("cpu prime failed: %v", err)
	}
	if sent, recv, err := system.NetCounters(); err == nil {
		s.lastSent, s.lastRecv = sent, recv
		s.lastNetAt = s.now()
		s.netSeeded = true
	} else {
		s.log.Debug("net counter seed failed: %v", err)
	}

	return s
}

// Sample performs one tick: reads every provider, appends to the histories,
// and returns a fresh snapshot. Individual provider failures leave the
// corresponding history untouched and the snapshot field zeroed.
func (s *Sampler) Sample() Snapshot {
	now := s.now()
	snap := Snapshot{Time: now}

	if pct, err := s.system.CPUPercent(); err == nil {
		snap.CPUPercent = pct
		s.cpuHist.Append(pct)
	} else {
		s.log.Debug("cpu sample failed: %v", err)
	}
	snap.CPUCount = s.system.CPUCount()
	if mhz, ok := s.system.CPUFrequencyMHz(); ok {
		snap.CPUFreqMHz = mhz
	}

	if vm, err := s.system.VirtualMemory(); err == nil {
		snap.Memory = vm
	} else {
		s.log.Debug("memory sample failed: %v", err)
	}
	if sw, err := s.system.SwapMemory(); err == nil {
		snap.Swap = sw
	} else {
		s.log.Debug("swap sample failed: %v", err)
	}

	snap.NetUp, snap.NetDown = s.sampleNet(now)

	if s.gpu != nil {
		for i := 0; i < s.gpu.DeviceCount(); i++ {
			rec, err := s.gpu.Query(i)
			if err != nil {
				// Dropped sample, not a zero: the device's histories keep
				// their last values and the device returns next tick.
				s.log.Debug("gpu %d query failed: %v", i, err)
				continue
			}
			if h := s.gpuUtil[i]; h != nil {
				h.Append(rec.UtilPercent)
			}
			if h := s.gpuMem[i]; h != nil {
				h.Append(rec.MemPercent)
			}
			snap.GPUs = append(snap.GPUs, rec)
		}
	}

	if procs, err := s.system.Processes(); err == nil {
		snap.Procs = procs
	} else {
		s.log.Debug("process listing failed: %v", err)
	}

	return snap
}

// sampleNet computes up/down rates from counter deltas and wall-clock time,
// records them, and feeds the auto-scale ceiling.
func (s *Sampler) sampleNet(now time.Time) (up, down float64) {
	sent, recv, err := s.system.NetCounters()
	if err != nil {
		s.log.Debug("net sample failed: %v", err)
		return 0, 0
	}

	if !s.netSeeded {
		s.lastSent, s.lastRecv, s.lastNetAt = sent, recv, now
		s.netSeeded = true
		return 0, 0
	}

	elapsed := now.Sub(s.lastNetAt).Seconds()
	if elapsed <= 0 {
		// Clock anomaly; a nominal second avoids a divide blow-up.
		elapsed = 1.0
	}

	dSent := float64(sent) - float64(s.lastSent)
	dRecv := float64(recv) - float64(s.lastRecv)
	// Counter reset (e.g. interface bounce) reads as a negative delta.
	if dSent < 0 {
		dSent = 0
	}
	if dRecv < 0 {
		dRecv = 0
	}

	up = dSent / elapsed
	down = dRecv / elapsed
	s.lastSent, s.lastRecv, s.lastNetAt = sent, recv, now

	s.netScale.Observe(up, down)
	s.netUp.Append(up)
	s.netDown.Append(down)
	return up, down
}

// CPUHistory returns the CPU percent history.
func (s *Sampler) CPUHistory() *History { return s.cpuHist }

// NetUpHistory returns the upload rate history in bytes/sec.
func (s *Sampler) NetUpHistory() *History { return s.netUp }

// NetDownHistory returns the download rate history in bytes/sec.
func (s *Sampler) NetDownHistory() *History { return s.netDown }

// NetCeiling returns the auto-scale ceiling.
func (s *Sampler) NetCeiling() *NetScale { return s.netScale }

// GPUUtilHistory returns the utilization history for a device index, or nil
// for an unknown device.
func (s *Sampler) GPUUtilHistory(index int) *History { return s.gpuUtil[index] }

// GPUMemHistory returns the memory-percent history for a device index, or
// nil for an unknown device.
func (s *Sampler) GPUMemHistory(index int) *History { return s.gpuMem[index] }
