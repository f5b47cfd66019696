package app

import "github.com/byezy/sysinfo-cli/internal/snapshot"

// Command is the closed set of things the CLI can be asked to show. Each case
// knows exactly which snapshot categories it needs, so nothing unrequested is
// ever polled.
type Command int

const (
	CommandSummary Command = iota
	CommandSystem
	CommandCPU
	CommandMemory
	CommandDisks
	CommandNetwork
	CommandComponents
	CommandProcesses
)

func (c Command) categories() snapshot.Categories {
	switch c {
	case CommandSystem:
		return snapshot.CategorySystem
	case CommandCPU:
		return snapshot.CategoryCPU
	case CommandMemory:
		return snapshot.CategoryMemory
	case CommandDisks:
		return snapshot.CategoryDisks
	case CommandNetwork:
		return snapshot.CategoryNetworks
	case CommandComponents:
		return snapshot.CategoryComponents
	case CommandProcesses:
		return snapshot.CategoryProcesses
	}
	// Summary shows abbreviated system, memory and cpu only.
	return snapshot.CategorySystem | snapshot.CategoryMemory | snapshot.CategoryCPU
}

func (c Command) String() string {
	switch c {
	case CommandSystem:
		return "system"
	case CommandCPU:
		return "cpu"
	case CommandMemory:
		return "memory"
	case CommandDisks:
		return "disks"
	case CommandNetwork:
		return "network"
	case CommandComponents:
		return "components"
	case CommandProcesses:
		return "processes"
	}
	return "summary"
}
