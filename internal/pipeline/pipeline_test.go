package pipeline

import (
	"testing"

	"github.com/byezy/sysinfo-cli/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProcs() []snapshot.ProcessInfo {
	return []snapshot.ProcessInfo{
		{PID: 1, Name: "a", CPUUsage: 1.0, Memory: 100},
		{PID: 2, Name: "b", CPUUsage: 2.0, Memory: 300},
		{PID: 3, Name: "c", CPUUsage: 0.5, Memory: 200},
	}
}

func pids(procs []snapshot.ProcessInfo) []uint32 {
	out := make([]uint32, 0, len(procs))
	for _, p := range procs {
		out = append(out, p.PID)
	}
	return out
}

func TestEmptyFilterIsIdentity(t *testing.T) {
	in := sampleProcs()
	out := Apply(in, Options{Limit: -1})
	assert.Equal(t, in, out)
}

func TestFilterIsCaseSensitiveSubstring(t *testing.T) {
	in := []snapshot.ProcessInfo{
		{PID: 1, Name: "Chrome"},
		{PID: 2, Name: "chrome-helper"},
		{PID: 3, Name: "bash"},
	}
	assert.Equal(t, []uint32{1}, pids(Apply(in, Options{Filter: "Chrome", Limit: -1})))
	assert.Equal(t, []uint32{2}, pids(Apply(in, Options{Filter: "chrome", Limit: -1})))
	assert.Equal(t, []uint32{1, 2}, pids(Apply(in, Options{Filter: "hrome", Limit: -1})))
	assert.Empty(t, Apply(in, Options{Filter: "zsh", Limit: -1}))
}

func TestSortMemoryThenLimit(t *testing.T) {
	// processes --sort memory --limit 2
	out := Apply(sampleProcs(), Options{Sort: SortMemory, Limit: 2})
	require.Len(t, out, 2)
	assert.Equal(t, []uint32{2, 3}, pids(out))
	assert.Equal(t, uint64(300), out[0].Memory)
	assert.Equal(t, uint64(200), out[1].Memory)
}

func TestSortDirections(t *testing.T) {
	in := []snapshot.ProcessInfo{
		{PID: 30, Name: "Beta", CPUUsage: 5.0, Memory: 10},
		{PID: 10, Name: "alpha", CPUUsage: 1.0, Memory: 30},
		{PID: 20, Name: "Alpha", CPUUsage: 3.0, Memory: 20},
	}
	assert.Equal(t, []uint32{30, 20, 10}, pids(Apply(in, Options{Sort: SortCPU, Limit: -1})))
	assert.Equal(t, []uint32{10, 20, 30}, pids(Apply(in, Options{Sort: SortMemory, Limit: -1})))
	assert.Equal(t, []uint32{10, 20, 30}, pids(Apply(in, Options{Sort: SortPID, Limit: -1})))
	// Name ordering is case-sensitive lexical: uppercase sorts before lowercase.
	assert.Equal(t, []uint32{20, 30, 10}, pids(Apply(in, Options{Sort: SortName, Limit: -1})))
}

func TestSortIsStableAndIdempotent(t *testing.T) {
	in := []snapshot.ProcessInfo{
		{PID: 5, Name: "x", Memory: 100},
		{PID: 6, Name: "y", Memory: 100},
		{PID: 7, Name: "z", Memory: 100},
	}
	once := Apply(in, Options{Sort: SortMemory, Limit: -1})
	twice := Apply(once, Options{Sort: SortMemory, Limit: -1})
	// Equal keys keep provider order, and re-sorting changes nothing.
	assert.Equal(t, []uint32{5, 6, 7}, pids(once))
	assert.Equal(t, once, twice)
}

func TestLimit(t *testing.T) {
	in := sampleProcs()
	assert.Len(t, Apply(in, Options{Limit: 0}), 0)
	assert.Len(t, Apply(in, Options{Limit: 2}), 2)
	assert.Len(t, Apply(in, Options{Limit: 3}), 3)
	assert.Len(t, Apply(in, Options{Limit: 10}), 3)
	assert.Len(t, Apply(in, Options{Limit: -1}), 3)
}

func TestInputIsNotMutated(t *testing.T) {
	in := sampleProcs()
	_ = Apply(in, Options{Sort: SortMemory, Limit: 1})
	assert.Equal(t, sampleProcs(), in)
}

func TestParseSortKey(t *testing.T) {
	for _, valid := range []string{"cpu", "memory", "pid", "name"} {
		key, err := ParseSortKey(valid)
		require.NoError(t, err)
		assert.Equal(t, SortKey(valid), key)
	}
	_, err := ParseSortKey("rss")
	assert.Error(t, err)
	_, err = ParseSortKey("CPU")
	assert.Error(t, err)
}
