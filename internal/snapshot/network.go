package snapshot

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/net"
)

func collectNetworks(ctx context.Context) ([]NetworkInfo, error) {
	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("network io counters: %w", err)
	}
	networks := make([]NetworkInfo, 0, len(counters))
	for _, c := range counters {
		networks = append(networks, NetworkInfo{
			Interface:   c.Name,
			Received:    c.BytesRecv,
			Transmitted: c.BytesSent,
		})
	}
	return networks, nil
}
