package app

import (
	"context"
	"fmt"
	"time"

	"github.com/byezy/sysinfo-cli/internal/pipeline"
	"github.com/byezy/sysinfo-cli/internal/render"
	"github.com/byezy/sysinfo-cli/internal/sink"
	"github.com/byezy/sysinfo-cli/internal/snapshot"
	"github.com/urfave/cli/v2"
)

// clearScreen is the ANSI erase-display + cursor-home sequence used between
// watch cycles in terminal table mode.
const clearScreen = "\x1B[2J\x1B[1;1H"

// run validates the global flags, then performs one collect→transform→render→
// write cycle, or keeps repeating it when --watch is set.
func (a *App) run(c *cli.Context, cmd Command, popts pipeline.Options) error {
	jsonMode := c.Bool("json")
	outputPath := c.String("output")

	var interval time.Duration
	if c.IsSet("watch") {
		secs := c.Float64("watch")
		if secs <= 0 {
			return cli.Exit(fmt.Sprintf("invalid --watch %v: interval must be a positive number of seconds", secs), 2)
		}
		interval = time.Duration(secs * float64(time.Second))
	}

	terminal := outputPath == ""
	r := render.New(jsonMode, terminal)
	snk := sink.New(a.stdout)

	cycle := func(ctx context.Context) error {
		return a.runOnce(ctx, cmd, popts, r, snk, outputPath)
	}

	if interval == 0 {
		return exitOnError(cycle(c.Context))
	}

	var between func()
	if !jsonMode && terminal {
		between = func() { fmt.Fprint(a.stdout, clearScreen) }
	}
	return exitOnError(runWatch(c.Context, interval, a.sleeper, cycle, between))
}

func (a *App) runOnce(ctx context.Context, cmd Command, popts pipeline.Options, r *render.Renderer, snk *sink.Sink, outputPath string) error {
	snap, err := a.provider.Collect(ctx, cmd.categories())
	if err != nil {
		return err
	}
	content, err := a.renderCommand(cmd, snap, popts, r)
	if err != nil {
		return err
	}
	return snk.Write(content, outputPath)
}

// renderCommand picks the snapshot slice a command asked for. For a single
// category its collection error is fatal; the summary instead degrades
// per-section and only logs what went missing.
func (a *App) renderCommand(cmd Command, snap *snapshot.Snapshot, popts pipeline.Options, r *render.Renderer) (string, error) {
	if cmd != CommandSummary {
		if err := snap.Errors.For(cmd.categories()); err != nil {
			return "", fmt.Errorf("collect %s: %w", cmd, err)
		}
	}

	switch cmd {
	case CommandSystem:
		return r.System(snap.System)
	case CommandCPU:
		return r.CPU(snap.CPU)
	case CommandMemory:
		return r.Memory(snap.Memory)
	case CommandDisks:
		return r.Disks(snap.Disks)
	case CommandNetwork:
		return r.Networks(snap.Networks)
	case CommandComponents:
		return r.Components(snap.Components)
	case CommandProcesses:
		return r.Processes(pipeline.Apply(snap.Processes, popts))
	}
	return r.Summary(a.buildSummary(snap))
}

func (a *App) buildSummary(snap *snapshot.Snapshot) render.Summary {
	for _, section := range []struct {
		name string
		err  error
	}{
		{"system", snap.Errors.System},
		{"memory", snap.Errors.Memory},
		{"cpu", snap.Errors.CPU},
	} {
		if section.err != nil {
			a.log.WithError(section.err).Warnf("%s info unavailable", section.name)
		}
	}

	sum := render.Summary{
		System: snap.System,
		Memory: snap.Memory,
	}
	if snap.CPU != nil {
		usage := snap.CPU.TotalUsage
		count := snap.CPU.NbCPUs
		sum.CPUTotalUsage = &usage
		sum.NbCPUs = &count
	}
	return sum
}

// exitOnError maps a runtime failure (collection, IO) to exit code 1, leaving
// nil results alone so a finished watch still exits 0.
func exitOnError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(cli.ExitCoder); ok {
		return err
	}
	return cli.Exit(err.Error(), 1)
}
