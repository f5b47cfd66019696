// Package pipeline narrows and orders process lists for display.
package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/byezy/sysinfo-cli/internal/snapshot"
)

// SortKey selects the process attribute to order by.
type SortKey string

const (
	SortNone   SortKey = ""
	SortCPU    SortKey = "cpu"
	SortMemory SortKey = "memory"
	SortPID    SortKey = "pid"
	SortName   SortKey = "name"
)

// ParseSortKey validates a user-supplied sort key.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortCPU, SortMemory, SortPID, SortName:
		return SortKey(s), nil
	}
	return SortNone, fmt.Errorf("invalid sort key %q: must be one of cpu, memory, pid, name", s)
}

// Options controls the filter → sort → limit transform. The zero Filter keeps
// everything, SortNone keeps the provider's native order, and a negative
// Limit keeps the full list.
type Options struct {
	Filter string
	Sort   SortKey
	Limit  int
}

// Apply runs the transform in fixed order: filter, then a stable sort, then
// truncation. The input slice is never mutated. The name filter is a
// case-sensitive substring match.
func Apply(procs []snapshot.ProcessInfo, opts Options) []snapshot.ProcessInfo {
	out := make([]snapshot.ProcessInfo, 0, len(procs))
	for _, p := range procs {
		if opts.Filter != "" && !strings.Contains(p.Name, opts.Filter) {
			continue
		}
		out = append(out, p)
	}

	if less := lessFor(opts.Sort, out); less != nil {
		sort.SliceStable(out, less)
	}

	if opts.Limit >= 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}
	return out
}

// lessFor returns the comparison for a sort key: cpu and memory descending
// (heaviest consumers first), pid and name ascending.
func lessFor(key SortKey, procs []snapshot.ProcessInfo) func(i, j int) bool {
	switch key {
	case SortCPU:
		return func(i, j int) bool { return procs[i].CPUUsage > procs[j].CPUUsage }
	case SortMemory:
		return func(i, j int) bool { return procs[i].Memory > procs[j].Memory }
	case SortPID:
		return func(i, j int) bool { return procs[i].PID < procs[j].PID }
	case SortName:
		return func(i, j int) bool { return procs[i].Name < procs[j].Name }
	}
	return nil
}
