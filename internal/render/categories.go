package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/byezy/sysinfo-cli/internal/snapshot"
	"github.com/byezy/sysinfo-cli/internal/units"
	"github.com/olekukonko/tablewriter"
)

// maxProcessNameLen caps process names in table mode; JSON keeps them whole.
const maxProcessNameLen = 30

func (r *Renderer) System(info *snapshot.SystemInfo) (string, error) {
	if r.json {
		return marshal(info)
	}
	var rows [][]string
	if info != nil {
		rows = append(rows, []string{info.Name, info.KernelVersion, info.OSVersion, info.HostName})
	}
	return r.table([]string{"System name", "Kernel version", "OS version", "Host name"}, rows), nil
}

func (r *Renderer) CPU(info *snapshot.CPUInfo) (string, error) {
	if r.json {
		return marshal(info)
	}
	var b strings.Builder
	b.WriteString(r.pal.section.Sprint("=> CPUs:") + "\n")
	if info != nil {
		r.field(&b, "Total CPUs:", fmt.Sprintf("%d", info.NbCPUs))
		r.field(&b, "Global usage:", units.FormatPercent(info.TotalUsage)+"%")
	}
	var rows [][]string
	if info != nil {
		for _, core := range info.CPUs {
			rows = append(rows, []string{
				fmt.Sprintf("%d", core.ID),
				units.FormatPercent(core.Usage),
				core.Vendor,
				core.Brand,
			})
		}
	}
	b.WriteString(r.table([]string{"ID", "Usage %", "Vendor", "Brand"}, rows))
	return b.String(), nil
}

func (r *Renderer) Memory(info *snapshot.MemoryInfo) (string, error) {
	if r.json {
		return marshal(info)
	}
	var rows [][]string
	if info != nil {
		rows = append(rows, []string{
			units.FormatBytes(info.TotalMemory),
			units.FormatBytes(info.UsedMemory),
			units.FormatBytes(info.TotalSwap),
			units.FormatBytes(info.UsedSwap),
		})
	}
	return r.table([]string{"Total memory", "Used memory", "Total swap", "Used swap"}, rows), nil
}

func (r *Renderer) Disks(disks []snapshot.DiskInfo) (string, error) {
	if r.json {
		if disks == nil {
			disks = []snapshot.DiskInfo{}
		}
		return marshal(disks)
	}
	rows := make([][]string, 0, len(disks))
	for _, d := range disks {
		rows = append(rows, []string{
			r.pal.ident.Sprint(d.Name),
			string(d.Kind),
			d.FileSystem,
			units.FormatBytes(d.AvailableSpace),
			units.FormatBytes(d.TotalSpace),
		})
	}
	return r.pal.section.Sprint("=> Disks:") + "\n" +
		r.table([]string{"Name", "Kind", "FS", "Available", "Total"}, rows), nil
}

func (r *Renderer) Networks(networks []snapshot.NetworkInfo) (string, error) {
	if r.json {
		if networks == nil {
			networks = []snapshot.NetworkInfo{}
		}
		return marshal(networks)
	}
	rows := make([][]string, 0, len(networks))
	for _, n := range networks {
		rows = append(rows, []string{
			r.pal.ident.Sprint(n.Interface),
			units.FormatBytes(n.Received),
			units.FormatBytes(n.Transmitted),
		})
	}
	return r.pal.section.Sprint("=> Networks:") + "\n" +
		r.table([]string{"Interface", "Received", "Transmitted"}, rows), nil
}

func (r *Renderer) Components(components []snapshot.ComponentInfo) (string, error) {
	if r.json {
		if components == nil {
			components = []snapshot.ComponentInfo{}
		}
		return marshal(components)
	}
	rows := make([][]string, 0, len(components))
	for _, c := range components {
		rows = append(rows, []string{
			r.pal.ident.Sprint(c.Label),
			tempCell(c.Temperature),
			tempCell(c.Max),
		})
	}
	return r.pal.section.Sprint("=> Components:") + "\n" +
		r.table([]string{"Label", "Temp", "Max"}, rows), nil
}

func (r *Renderer) Processes(procs []snapshot.ProcessInfo) (string, error) {
	if r.json {
		if procs == nil {
			procs = []snapshot.ProcessInfo{}
		}
		return marshal(procs)
	}
	rows := make([][]string, 0, len(procs))
	for _, p := range procs {
		name := p.Name
		if len(name) > maxProcessNameLen {
			name = name[:maxProcessNameLen-3] + "..."
		}
		rows = append(rows, []string{
			r.pal.ident.Sprintf("%d", p.PID),
			name,
			units.FormatPercent(p.CPUUsage),
			units.FormatBytes(p.Memory),
		})
	}
	return r.pal.section.Sprint("=> Processes:") + "\n" +
		r.table([]string{"PID", "Name", "CPU %", "Memory"}, rows), nil
}

func (r *Renderer) Summary(sum Summary) (string, error) {
	if r.json {
		return marshal(sum)
	}
	var b strings.Builder
	b.WriteString(r.pal.banner.Sprint("--- System Summary ---") + "\n")
	if sum.System != nil {
		r.field(&b, "System name:", sum.System.Name)
		r.field(&b, "Kernel version:", sum.System.KernelVersion)
		r.field(&b, "OS version:", sum.System.OSVersion)
		r.field(&b, "Host name:", sum.System.HostName)
	}
	b.WriteString("\n" + r.pal.banner.Sprint("--- Memory Summary ---") + "\n")
	if sum.Memory != nil {
		r.field(&b, "Total memory:", units.FormatBytes(sum.Memory.TotalMemory))
		r.field(&b, "Used memory:", units.FormatBytes(sum.Memory.UsedMemory))
	}
	b.WriteString("\n" + r.pal.banner.Sprint("--- CPU Summary ---") + "\n")
	if sum.NbCPUs != nil {
		r.field(&b, "Total CPUs:", fmt.Sprintf("%d", *sum.NbCPUs))
	}
	if sum.CPUTotalUsage != nil {
		r.field(&b, "Global usage:", units.FormatPercent(*sum.CPUTotalUsage)+"%")
	}
	return b.String(), nil
}

// table draws a bordered grid. An empty row set still renders the header so a
// category with nothing to report stays recognizable.
func (r *Renderer) table(headers []string, rows [][]string) string {
	var buf bytes.Buffer
	t := tablewriter.NewWriter(&buf)
	t.SetHeader(headers)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	for _, row := range rows {
		t.Append(row)
	}
	t.Render()
	return buf.String()
}

func (r *Renderer) field(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-25s %s\n", r.pal.label.Sprint(label), value)
}

func tempCell(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return units.FormatTemp(*v)
}
