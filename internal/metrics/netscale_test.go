package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNetScaleSeed(t *testing.T) {
	s := NewNetScale()
	assert.Equal(t, 1.0, s.Ceiling())
}

func TestNetScaleObserveOnlyRaises(t *testing.T) {
	s := NewNetScale()

	s.Observe(5000, 200)
	assert.Equal(t, 5000.0, s.Ceiling())

	// Lower rates never pull the ceiling back down.
	s.Observe(100, 50)
	assert.Equal(t, 5000.0, s.Ceiling())

	s.Observe(100, 9000)
	assert.Equal(t, 9000.0, s.Ceiling())
}

func TestNetScaleObserveFloor(t *testing.T) {
	s := NewNetScale()
	s.Observe(0, 0)
	assert.Equal(t, 1.0, s.Ceiling())

	s.Observe(0.2, 0.1)
	assert.Equal(t, 1.0, s.Ceiling())
}

func TestNetScaleNormalize(t *testing.T) {
	s := NewNetScale()
	s.Observe(1000, 0)

	tests := []struct {
		name string
		rate float64
		want float64
	}{
		{"zero", 0, 0},
		{"half of ceiling", 500, 50},
		{"at ceiling", 1000, 100},
		{"above ceiling clamps", 2000, 100},
		{"negative clamps", -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, s.Normalize(tt.rate), 0.0001)
		})
	}
}

func TestNetScaleNormalizeAll(t *testing.T) {
	s := NewNetScale()
	s.Observe(200, 0)

	got := s.NormalizeAll([]float64{0, 100, 200, 400})
	assert.Equal(t, []float64{0, 50, 100, 100}, got)

	assert.Empty(t, s.NormalizeAll(nil))
}
