package snapshot

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/disk"
)

// collectDisks lists mounted partitions with their usage. Drive kind comes
// from ghw's block-device metadata, keyed by mountpoint; when ghw cannot read
// the topology (containers, restricted permissions) every kind degrades to
// Unknown rather than failing the category.
func (c *Collector) collectDisks(ctx context.Context) ([]DiskInfo, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("disk partitions: %w", err)
	}

	kinds := c.diskKindsByMount()

	disks := make([]DiskInfo, 0, len(parts))
	for _, p := range parts {
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil || usage == nil {
			continue
		}
		kind, ok := kinds[p.Mountpoint]
		if !ok {
			kind = DiskKindUnknown
		}
		disks = append(disks, DiskInfo{
			Name:           p.Device,
			Kind:           kind,
			FileSystem:     p.Fstype,
			AvailableSpace: usage.Free,
			TotalSpace:     usage.Total,
		})
	}
	return disks, nil
}

func (c *Collector) diskKindsByMount() map[string]DiskKind {
	info, err := ghw.Block()
	if err != nil {
		c.log.WithError(err).Debug("block device metadata unavailable")
		return nil
	}

	kinds := make(map[string]DiskKind)
	for _, d := range info.Disks {
		kind := driveKind(d.DriveType.String(), d.StorageController.String())
		for _, p := range d.Partitions {
			if p == nil || p.MountPoint == "" {
				continue
			}
			kinds[p.MountPoint] = kind
		}
	}
	return kinds
}

// driveKind folds ghw's drive type and storage controller into the closed
// SSD/HDD/Unknown set. NVMe devices report as SSD.
func driveKind(driveType, controller string) DiskKind {
	if strings.EqualFold(strings.TrimSpace(controller), "nvme") {
		return DiskKindSSD
	}
	switch strings.ToUpper(strings.TrimSpace(driveType)) {
	case "SSD":
		return DiskKindSSD
	case "HDD":
		return DiskKindHDD
	}
	return DiskKindUnknown
}
