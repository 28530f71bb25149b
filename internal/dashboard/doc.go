// Package dashboard implements the terminal UI: a Bubble Tea model that
// samples system metrics on a timer and renders GPU, network, CPU, memory
// and process panels, plus a full-screen theme picker overlay.
package dashboard
