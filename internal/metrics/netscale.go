package metrics

// NetScale tracks the auto-scaling ceiling used to normalize network
// throughput into a [0, 100] gauge range. The ceiling only ever grows
// during a session so the gauges stay comparable across ticks, and it
// never drops below 1 byte/sec so normalization never divides by zero.
type NetScale struct {
	ceiling float64
}

// NewNetScale returns a scale seeded at 1.0.
func NewNetScale() *NetScale {
	return &NetScale{ceiling: 1.0}
}

// Observe raises the ceiling to cover the given rates.
func (s *NetScale) Observe(up, down float64) {
	if up > s.ceiling {
		s.ceiling = up
	}
	if down > s.ceiling {
		s.ceiling = down
	}
	if s.ceiling < 1.0 {
		s.ceiling = 1.0
	}
}

// Ceiling returns the current ceiling in bytes/sec. Always >= 1.0.
func (s *NetScale) Ceiling() float64 {
	return s.ceiling
}

// Normalize maps a bytes/sec rate onto [0, 100] against the ceiling.
func (s *NetScale) Normalize(rate float64) float64 {
	pct := rate / s.ceiling * 100
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// NormalizeAll maps a slice of rates onto [0, 100] against the ceiling.
func (s *NetScale) NormalizeAll(rates []float64) []float64 {
	out := make([]float64, len(rates))
	for i, r := range rates {
		out[i] = s.Normalize(r)
	}
	return out
}
