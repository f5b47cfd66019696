package snapshot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
)

// collectCPU samples per-core usage over one blocking window and derives the
// global usage from the same sample so the snapshot stays self-consistent.
func collectCPU(ctx context.Context, window time.Duration) (*CPUInfo, error) {
	perCore, err := cpu.PercentWithContext(ctx, window, true)
	if err != nil {
		return nil, fmt.Errorf("cpu usage: %w", err)
	}

	// Vendor and brand are best-effort; usage alone is still a valid answer.
	descs, descErr := cpu.InfoWithContext(ctx)
	if descErr != nil {
		descs = nil
	}

	info := &CPUInfo{
		NbCPUs: len(perCore),
		CPUs:   make([]CoreInfo, 0, len(perCore)),
	}

	var sum float64
	for i, usage := range perCore {
		core := CoreInfo{ID: i, Usage: usage}
		switch {
		case i < len(descs):
			core.Vendor = descs[i].VendorID
			core.Brand = strings.TrimSpace(descs[i].ModelName)
		case len(descs) > 0:
			// Some platforms report one InfoStat for the whole package.
			core.Vendor = descs[0].VendorID
			core.Brand = strings.TrimSpace(descs[0].ModelName)
		}
		info.CPUs = append(info.CPUs, core)
		sum += usage
	}
	if len(perCore) > 0 {
		info.TotalUsage = sum / float64(len(perCore))
	}
	return info, nil
}
