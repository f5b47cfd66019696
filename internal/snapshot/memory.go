package snapshot

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"
)

func collectMemory(ctx context.Context) (*MemoryInfo, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("virtual memory: %w", err)
	}
	sm, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("swap memory: %w", err)
	}
	return &MemoryInfo{
		TotalMemory: vm.Total,
		UsedMemory:  vm.Used,
		TotalSwap:   sm.Total,
		UsedSwap:    sm.Used,
	}, nil
}
