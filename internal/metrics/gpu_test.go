package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/ktop/internal/logger"
)

func fakeRunner(output string, err error) runnerFunc {
	return func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte(output), err
	}
}

func TestNvidiaSMIProbeCount(t *testing.T) {
	tests := []struct {
		name   string
		output string
		err    error
		want   int
	}{
		{"two devices", "0\n1\n", nil, 2},
		{"single device", "0\n", nil, 1},
		{"blank lines ignored", "0\n\n1\n\n", nil, 2},
		{"no devices", "", nil, 0},
		{"binary missing", "", errors.New("exec: nvidia-smi not found"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &NvidiaSMI{run: fakeRunner(tt.output, tt.err), log: logger.Noop()}
			assert.Equal(t, tt.want, g.probeCount())
		})
	}
}

func TestNvidiaSMIQuery(t *testing.T) {
	g := &NvidiaSMI{
		run: fakeRunner("NVIDIA GeForce RTX 4090, 55, 12282, 24564\n", nil),
		log: logger.Noop(),
	}

	rec, err := g.Query(0)
	require.NoError(t, err)

	assert.Equal(t, 0, rec.Index)
	assert.Equal(t, "GeForce RTX 4090", rec.Name)
	assert.Equal(t, 55.0, rec.UtilPercent)
	assert.Equal(t, uint64(12282)*1024*1024, rec.MemUsed)
	assert.Equal(t, uint64(24564)*1024*1024, rec.MemTotal)
	assert.InDelta(t, 50.0, rec.MemPercent, 0.01)
}

func TestNvidiaSMIQueryCommandFailure(t *testing.T) {
	g := &NvidiaSMI{run: fakeRunner("", errors.New("timeout")), log: logger.Noop()}

	_, err := g.Query(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gpu 1")
}

func TestParseSMILine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr bool
		check   func(t *testing.T, rec GPURecord)
	}{
		{
			name: "standard line",
			line: "NVIDIA RTX A6000, 12, 1024, 49140",
			check: func(t *testing.T, rec GPURecord) {
				assert.Equal(t, "RTX A6000", rec.Name)
				assert.Equal(t, 12.0, rec.UtilPercent)
			},
		},
		{
			name: "not supported placeholders read as zero",
			line: "Tesla T4, [N/A], [Not Supported], 15360",
			check: func(t *testing.T, rec GPURecord) {
				assert.Equal(t, 0.0, rec.UtilPercent)
				assert.Equal(t, uint64(0), rec.MemUsed)
				assert.Equal(t, 0.0, rec.MemPercent)
			},
		},
		{
			name: "zero total memory avoids division",
			line: "Ghost GPU, 10, 0, 0",
			check: func(t *testing.T, rec GPURecord) {
				assert.Equal(t, 0.0, rec.MemPercent)
			},
		},
		{"empty line", "", true, nil},
		{"too few fields", "RTX 4090, 55, 1000", true, nil},
		{"garbage utilization", "RTX 4090, lots, 10, 100", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := parseSMILine(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, rec)
		})
	}
}

func TestShortGPUName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"NVIDIA GeForce RTX 4090", "GeForce RTX 4090"},
		{"NVIDIA RTX 6000 Ada Generation", "RTX 6000 Ada"},
		{"Tesla T4", "Tesla T4"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, shortGPUName(tt.in))
	}
}
