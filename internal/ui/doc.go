// Package ui contains the pure visual encoders for the dashboard: gradient
// bars, sparklines, threshold color bands, and byte/throughput formatting.
//
// Everything here is a function from numbers (and theme colors) to strings.
// Nothing reads the terminal, keeps state, or knows about panels; layout and
// composition live in internal/dashboard.
package ui
