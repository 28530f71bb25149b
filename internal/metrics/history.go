package metrics

// DefaultHistoryLen is the default number of samples retained per metric.
const DefaultHistoryLen = 300

// History is a fixed-capacity ring buffer of float64 samples for one metric
// stream. Appending past capacity evicts the oldest sample. Only the sampler
// that owns a History mutates it; everything else reads snapshots.
type History struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a history with the given capacity.
// Non-positive capacities fall back to DefaultHistoryLen.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistoryLen
	}
	return &History{
		data: make([]float64, size),
		size: size,
	}
}

// Append pushes a sample, evicting the oldest if the buffer is full.
func (h *History) Append(v float64) {
	h.data[h.head] = v
	h.head = (h.head + 1) % h.size
	if h.count < h.size {
		h.count++
	}
}

// Len returns the number of stored samples.
func (h *History) Len() int {
	return h.count
}

// Cap returns the capacity.
func (h *History) Cap() int {
	return h.size
}

// Snapshot returns the most recent min(Len, maxWidth) samples in
// chronological order. A non-positive maxWidth returns all stored samples.
// The returned slice is freshly allocated. Safe on a nil receiver, which
// reads as empty.
func (h *History) Snapshot(maxWidth int) []float64 {
	if h == nil {
		return nil
	}
	n := h.count
	if maxWidth > 0 && maxWidth < n {
		n = maxWidth
	}
	if n == 0 {
		return nil
	}

	// head points at the next write slot, so the most recent sample sits at
	// head-1 and the window of n samples starts n slots before that.
	out := make([]float64, n)
	start := (h.head - n + h.size) % h.size
	for i := 0; i < n; i++ {
		out[i] = h.data[(start+i)%h.size]
	}
	return out
}
