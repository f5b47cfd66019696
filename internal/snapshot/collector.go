// Package snapshot polls host telemetry through gopsutil and ghw, one
// category at a time.
package snapshot

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// minUsageWindow is the sampling window for CPU usage deltas. Reading usage
// with no window would always report 0 on the first poll of a fresh process.
const minUsageWindow = 200 * time.Millisecond

// Collector is the live Provider. It keeps no state between Collect calls;
// every snapshot is complete and self-consistent on its own.
type Collector struct {
	usageWindow time.Duration
	log         *logrus.Logger
}

func NewCollector() *Collector {
	return &Collector{
		usageWindow: minUsageWindow,
		log:         logrus.StandardLogger(),
	}
}

// Collect gathers exactly the requested categories. A category that cannot be
// collected records its error on the snapshot instead of failing the call;
// Collect itself only fails when the context is cancelled.
func (c *Collector) Collect(ctx context.Context, cats Categories) (*Snapshot, error) {
	snap := &Snapshot{}

	steps := []struct {
		cat Categories
		run func() error
	}{
		{CategorySystem, func() (err error) { snap.System, err = collectSystem(ctx); return }},
		{CategoryCPU, func() (err error) { snap.CPU, err = collectCPU(ctx, c.usageWindow); return }},
		{CategoryMemory, func() (err error) { snap.Memory, err = collectMemory(ctx); return }},
		{CategoryDisks, func() (err error) { snap.Disks, err = c.collectDisks(ctx); return }},
		{CategoryNetworks, func() (err error) { snap.Networks, err = collectNetworks(ctx); return }},
		{CategoryComponents, func() (err error) { snap.Components, err = collectComponents(ctx); return }},
		{CategoryProcesses, func() (err error) { snap.Processes, err = collectProcesses(ctx); return }},
	}

	for _, step := range steps {
		if !cats.Has(step.cat) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		snap.Errors.set(step.cat, step.run())
	}
	return snap, nil
}

func (e *Errors) set(cat Categories, err error) {
	switch cat {
	case CategorySystem:
		e.System = err
	case CategoryCPU:
		e.CPU = err
	case CategoryMemory:
		e.Memory = err
	case CategoryDisks:
		e.Disks = err
	case CategoryNetworks:
		e.Networks = err
	case CategoryComponents:
		e.Components = err
	case CategoryProcesses:
		e.Processes = err
	}
}

// For returns the recorded collection error for a single category.
func (e Errors) For(cat Categories) error {
	switch cat {
	case CategorySystem:
		return e.System
	case CategoryCPU:
		return e.CPU
	case CategoryMemory:
		return e.Memory
	case CategoryDisks:
		return e.Disks
	case CategoryNetworks:
		return e.Networks
	case CategoryComponents:
		return e.Components
	case CategoryProcesses:
		return e.Processes
	}
	return nil
}
