package snapshot

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/process"
)

// collectProcesses enumerates running processes in the provider's native
// order. Processes that disappear mid-enumeration or refuse inspection are
// skipped, not fatal.
func collectProcesses(ctx context.Context) ([]ProcessInfo, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("process list: %w", err)
	}

	out := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		if p == nil {
			continue
		}
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		info := ProcessInfo{
			PID:  uint32(p.Pid),
			Name: name,
		}
		if usage, err := p.CPUPercentWithContext(ctx); err == nil {
			info.CPUUsage = usage
		}
		if mem, err := p.MemoryInfoWithContext(ctx); err == nil && mem != nil {
			info.Memory = mem.RSS
		}
		out = append(out, info)
	}
	return out, nil
}
