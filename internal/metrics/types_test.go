package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProcs() []ProcessRecord {
	return []ProcessRecord{
		{PID: 10, Name: "idle", CPUPercent: 0.1, MemPercent: 1},
		{PID: 20, Name: "browser", CPUPercent: 35, MemPercent: 22},
		{PID: 30, Name: "model-server", CPUPercent: 90, MemPercent: 60},
		{PID: 40, Name: "editor", CPUPercent: 12, MemPercent: 8},
	}
}

func TestTopByCPU(t *testing.T) {
	top := TopByCPU(testProcs(), 2)

	assert.Len(t, top, 2)
	assert.Equal(t, "model-server", top[0].Name)
	assert.Equal(t, "browser", top[1].Name)
}

func TestTopByMemory(t *testing.T) {
	top := TopByMemory(testProcs(), 3)

	assert.Len(t, top, 3)
	assert.Equal(t, "model-server", top[0].Name)
	assert.Equal(t, "browser", top[1].Name)
	assert.Equal(t, "editor", top[2].Name)
}

func TestTopByDoesNotMutateInput(t *testing.T) {
	procs := testProcs()
	_ = TopByCPU(procs, 2)

	assert.Equal(t, "idle", procs[0].Name)
	assert.Equal(t, "editor", procs[3].Name)
}

func TestTopByWithFewerProcsThanRequested(t *testing.T) {
	top := TopByCPU(testProcs(), 10)
	assert.Len(t, top, 4)
}

func TestTopByStableForTies(t *testing.T) {
	procs := []ProcessRecord{
		{PID: 1, Name: "a", CPUPercent: 5},
		{PID: 2, Name: "b", CPUPercent: 5},
		{PID: 3, Name: "c", CPUPercent: 5},
	}

	top := TopByCPU(procs, 3)
	assert.Equal(t, []int32{1, 2, 3}, []int32{top[0].PID, top[1].PID, top[2].PID})
}
