package snapshot

import "context"

// Categories is a bitset of telemetry categories a caller wants refreshed.
// Collectors only poll what was requested so cheap commands stay cheap.
type Categories uint8

const (
	CategorySystem Categories = 1 << iota
	CategoryCPU
	CategoryMemory
	CategoryDisks
	CategoryNetworks
	CategoryComponents
	CategoryProcesses
)

// Has reports whether any category in other is requested.
func (c Categories) Has(other Categories) bool {
	return c&other != 0
}

// Provider delivers point-in-time snapshots of the requested categories.
type Provider interface {
	Collect(ctx context.Context, cats Categories) (*Snapshot, error)
}

// Snapshot holds the values gathered by one Collect call. Only the requested
// categories are populated; a category that failed to collect keeps its zero
// value and records the failure in Errors.
type Snapshot struct {
	System     *SystemInfo
	CPU        *CPUInfo
	Memory     *MemoryInfo
	Disks      []DiskInfo
	Networks   []NetworkInfo
	Components []ComponentInfo
	Processes  []ProcessInfo
	Errors     Errors
}

// Errors records per-category collection failures. Sibling categories are
// independent: one failing never aborts the others.
type Errors struct {
	System     error
	CPU        error
	Memory     error
	Disks      error
	Networks   error
	Components error
	Processes  error
}

type SystemInfo struct {
	Name          string `json:"name"`
	KernelVersion string `json:"kernel_version"`
	OSVersion     string `json:"os_version"`
	HostName      string `json:"host_name"`
}

type CPUInfo struct {
	NbCPUs     int        `json:"nb_cpus"`
	CPUs       []CoreInfo `json:"cpus"`
	TotalUsage float64    `json:"total_usage"`
}

type CoreInfo struct {
	ID     int     `json:"id"`
	Usage  float64 `json:"usage"`
	Vendor string  `json:"vendor"`
	Brand  string  `json:"brand"`
}

type MemoryInfo struct {
	TotalMemory uint64 `json:"total_memory"`
	UsedMemory  uint64 `json:"used_memory"`
	TotalSwap   uint64 `json:"total_swap"`
	UsedSwap    uint64 `json:"used_swap"`
}

type DiskKind string

const (
	DiskKindSSD     DiskKind = "SSD"
	DiskKindHDD     DiskKind = "HDD"
	DiskKindUnknown DiskKind = "Unknown"
)

type DiskInfo struct {
	Name           string   `json:"name"`
	Kind           DiskKind `json:"kind"`
	FileSystem     string   `json:"file_system"`
	AvailableSpace uint64   `json:"available_space"`
	TotalSpace     uint64   `json:"total_space"`
}

// NetworkInfo counters are cumulative since the OS's own baseline, not since
// this process started.
type NetworkInfo struct {
	Interface   string `json:"interface"`
	Received    uint64 `json:"received"`
	Transmitted uint64 `json:"transmitted"`
}

type ComponentInfo struct {
	Label       string   `json:"label"`
	Temperature *float64 `json:"temperature"`
	Max         *float64 `json:"max"`
}

type ProcessInfo struct {
	PID      uint32  `json:"pid"`
	Name     string  `json:"name"`
	CPUUsage float64 `json:"cpu_usage"`
	Memory   uint64  `json:"memory"`
}
