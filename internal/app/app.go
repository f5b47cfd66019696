// Package app wires the CLI surface to the snapshot provider, the process
// pipeline, the renderer and the output sink.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/byezy/sysinfo-cli/internal/pipeline"
	"github.com/byezy/sysinfo-cli/internal/snapshot"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

type App struct {
	provider snapshot.Provider
	sleeper  Sleeper
	stdout   io.Writer
	log      *logrus.Logger
	version  string
}

type Option func(*App)

// WithProvider swaps the live collector for another snapshot source.
func WithProvider(p snapshot.Provider) Option {
	return func(a *App) { a.provider = p }
}

// WithSleeper swaps the watch-loop clock.
func WithSleeper(s Sleeper) Option {
	return func(a *App) { a.sleeper = s }
}

// WithStdout redirects rendered output.
func WithStdout(w io.Writer) Option {
	return func(a *App) { a.stdout = w }
}

func WithVersion(v string) Option {
	return func(a *App) { a.version = v }
}

func New(opts ...Option) *App {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	a := &App{
		provider: snapshot.NewCollector(),
		sleeper:  timerSleeper{},
		stdout:   os.Stdout,
		log:      log,
		version:  "unknown",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run parses args and executes one command. Usage and argument errors come
// back as cli.ExitCoder with code 2, runtime failures with code 1; the caller
// owns process exit.
func (a *App) Run(ctx context.Context, args []string) error {
	return a.cliApp().RunContext(ctx, args)
}

func (a *App) cliApp() *cli.App {
	return &cli.App{
		Name:    "sysinfo",
		Usage:   "inspect host cpu, memory, disk, network, sensor and process telemetry",
		Version: a.version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "output in JSON format",
				EnvVars: []string{"SYSINFO_JSON"},
			},
			&cli.Float64Flag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "refresh interval in seconds for continuous monitoring",
				EnvVars: []string{"SYSINFO_WATCH"},
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "save output to a file instead of the terminal",
				EnvVars: []string{"SYSINFO_OUTPUT"},
			},
		},
		Commands: []*cli.Command{
			a.categoryCommand("system", "Show general system information", CommandSystem),
			a.categoryCommand("cpu", "Show per-core and global CPU usage", CommandCPU),
			a.categoryCommand("memory", "Show memory and swap usage", CommandMemory),
			a.categoryCommand("disks", "Show mounted disks", CommandDisks),
			a.categoryCommand("network", "Show per-interface traffic counters", CommandNetwork),
			a.categoryCommand("components", "Show component temperatures", CommandComponents),
			a.processesCommand(),
		},
		CommandNotFound: func(c *cli.Context, command string) {
			fmt.Fprintf(c.App.ErrWriter, "unknown command %q\n\n", command)
			_ = cli.ShowAppHelp(c)
			cli.OsExiter(2)
		},
		Action: func(c *cli.Context) error {
			return a.run(c, CommandSummary, pipeline.Options{Limit: -1})
		},
		ExitErrHandler: func(*cli.Context, error) {},
		BashComplete:   cli.ShowCompletions,
	}
}

func (a *App) categoryCommand(name, usage string, cmd Command) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Action: func(c *cli.Context) error {
			return a.run(c, cmd, pipeline.Options{Limit: -1})
		},
	}
}

func (a *App) processesCommand() *cli.Command {
	return &cli.Command{
		Name:  "processes",
		Usage: "Show running processes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "keep processes whose name contains this (case-sensitive) substring",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "number of processes to show (default: all)",
				Value:   -1,
			},
			&cli.StringFlag{
				Name:    "sort",
				Aliases: []string{"s"},
				Usage:   "sort by cpu, memory, pid or name (default: provider order)",
			},
		},
		Action: func(c *cli.Context) error {
			opts := pipeline.Options{
				Filter: c.String("filter"),
				Limit:  c.Int("limit"),
			}
			if c.IsSet("limit") && opts.Limit < 0 {
				return cli.Exit(fmt.Sprintf("invalid --limit %d: must be zero or a positive integer", opts.Limit), 2)
			}
			if c.IsSet("sort") {
				key, err := pipeline.ParseSortKey(c.String("sort"))
				if err != nil {
					return cli.Exit(err.Error(), 2)
				}
				opts.Sort = key
			}
			return a.run(c, CommandProcesses, opts)
		},
	}
}
