// Package metrics owns the numeric side of the dashboard: bounded rolling
// histories, the auto-scaling network ceiling, per-tick snapshots, and the
// sampler that fills them from the system-stats and GPU-telemetry providers.
//
// Providers are interfaces so tests substitute fakes; the real
// implementations are gopsutil for host statistics and nvidia-smi for GPU
// telemetry. Every provider call is best-effort per tick: a failure drops
// that sample and self-heals on the next tick, it is never retried.
package metrics
