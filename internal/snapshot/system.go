package snapshot

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/host"
)

func collectSystem(ctx context.Context) (*SystemInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("host info: %w", err)
	}
	return &SystemInfo{
		Name:          info.Platform,
		KernelVersion: info.KernelVersion,
		OSVersion:     info.PlatformVersion,
		HostName:      info.Hostname,
	}, nil
}
