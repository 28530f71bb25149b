package ui

import "fmt"

// FormatBytes formats a byte count for panel captions: megabytes with one
// decimal below 1000 MB, gigabytes with one decimal from there up.
func FormatBytes(b float64) string {
	mb := b / (1024 * 1024)
	if mb >= 1000 {
		return fmt.Sprintf("%.1f GB", mb/1024)
	}
	return fmt.Sprintf("%.1f MB", mb)
}

// FormatSpeed formats a bytes-per-second rate with 1024-based unit
// selection. Whole numbers for B/s, one decimal for everything larger.
func FormatSpeed(bps float64) string {
	const (
		kib = 1024
		mib = 1024 * kib
		gib = 1024 * mib
	)
	switch {
	case bps >= gib:
		return fmt.Sprintf("%.1f GB/s", bps/gib)
	case bps >= mib:
		return fmt.Sprintf("%.1f MB/s", bps/mib)
	case bps >= kib:
		return fmt.Sprintf("%.1f KB/s", bps/kib)
	default:
		return fmt.Sprintf("%.0f B/s", bps)
	}
}
