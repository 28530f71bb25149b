package metrics

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/rileyhilliard/ktop/internal/logger"
)

const smiTimeout = 2 * time.Second

// runnerFunc executes a command and returns its combined stdout. Swappable
// in tests.
type runnerFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// NvidiaSMI implements GPUProvider by shelling out to nvidia-smi. The
// device count is probed once at construction; machines without the binary
// (or without devices) get a zero-device provider rather than an error.
type NvidiaSMI struct {
	run   runnerFunc
	count int
	log   logger.Logger
}

// NewNvidiaSMI probes for GPUs and returns a provider for however many it
// finds. A failed probe means zero devices, never a startup failure.
func NewNvidiaSMI(log logger.Logger) *NvidiaSMI {
	if log == nil {
		log = logger.Noop()
	}
	g := &NvidiaSMI{run: runCommand, log: log}
	g.count = g.probeCount()
	return g
}

// DeviceCount returns the number of GPUs found at startup.
func (g *NvidiaSMI) DeviceCount() int { return g.count }

// Close releases nothing; the provider holds no persistent handle.
func (g *NvidiaSMI) Close() {}

func (g *NvidiaSMI) probeCount() int {
	ctx, cancel := context.WithTimeout(context.Background(), smiTimeout)
	defer cancel()

	out, err := g.run(ctx, "nvidia-smi", "--query-gpu=index", "--format=csv,noheader")
	if err != nil {
		g.log.Debug("nvidia-smi probe failed: %v", err)
		return 0
	}
	count := 0
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// Query reads one device's name, utilization and memory usage.
func (g *NvidiaSMI) Query(index int) (GPURecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), smiTimeout)
	defer cancel()

	out, err := g.run(ctx, "nvidia-smi",
		"-i", strconv.Itoa(index),
		"--query-gpu=name,utilization.gpu,memory.used,memory.total",
		"--format=csv,noheader,nounits")
	if err != nil {
		return GPURecord{}, fmt.Errorf("nvidia-smi query for gpu %d: %w", index, err)
	}
	rec, err := parseSMILine(strings.TrimSpace(string(out)))
	if err != nil {
		return GPURecord{}, err
	}
	rec.Index = index
	return rec, nil
}

// parseSMILine parses one "name, util, mem.used, mem.total" CSV line from
// nvidia-smi with nounits (memory values in MiB).
func parseSMILine(line string) (GPURecord, error) {
	if line == "" {
		return GPURecord{}, fmt.Errorf("empty nvidia-smi output")
	}
	fields := strings.Split(line, ",")
	if len(fields) != 4 {
		return GPURecord{}, fmt.Errorf("malformed nvidia-smi line: %q", line)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	rec := GPURecord{Name: shortGPUName(fields[0])}

	util, err := smiFloat(fields[1])
	if err != nil {
		return GPURecord{}, fmt.Errorf("gpu utilization %q: %w", fields[1], err)
	}
	rec.UtilPercent = util

	usedMiB, err := smiFloat(fields[2])
	if err != nil {
		return GPURecord{}, fmt.Errorf("gpu memory used %q: %w", fields[2], err)
	}
	totalMiB, err := smiFloat(fields[3])
	if err != nil {
		return GPURecord{}, fmt.Errorf("gpu memory total %q: %w", fields[3], err)
	}
	rec.MemUsed = uint64(usedMiB) * 1024 * 1024
	rec.MemTotal = uint64(totalMiB) * 1024 * 1024
	if totalMiB > 0 {
		rec.MemPercent = usedMiB / totalMiB * 100
	}
	return rec, nil
}

// smiFloat parses an nvidia-smi numeric field, treating the driver's
// "[N/A]" and "[Not Supported]" placeholders as zero.
func smiFloat(s string) (float64, error) {
	if strings.HasPrefix(s, "[") {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// shortGPUName trims marketing boilerplate so device names fit panel titles.
func shortGPUName(name string) string {
	name = strings.TrimPrefix(name, "NVIDIA ")
	name = strings.TrimSuffix(name, " Generation")
	return strings.TrimSpace(name)
}
