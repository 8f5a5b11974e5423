package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/stopwatch/profile"
	"go.jacobcolvin.com/stopwatch/statistics"
)

// ErrInvalidCount indicates a run count below one.
var ErrInvalidCount = errors.New("invalid count")

type runOptions struct {
	name    string
	count   int
	summary bool
}

func newRunCmd(a *app) *cobra.Command {
	opts := runOptions{count: 1}

	cmd := &cobra.Command{
		Use:   "run [flags] -- command [args...]",
		Short: "Run a command repeatedly and report its timing",
		Example: `  stopwatch run --count 10 -- go build ./...
  stopwatch run --report-every 5 --log-format json -- curl -s example.com`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), opts, args)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.count, "count", "n", opts.count, "number of runs")
	flags.StringVar(&opts.name, "name", "", "report name (default: command name)")
	flags.BoolVar(&opts.summary, "summary", term.IsTerminal(int(os.Stdout.Fd())),
		"print a statistics table after the last run")

	must(cmd.RegisterFlagCompletionFunc("count", cobra.NoFileCompletions))
	must(cmd.RegisterFlagCompletionFunc("name", cobra.NoFileCompletions))

	return cmd
}

func (a *app) run(ctx context.Context, opts runOptions, args []string) error {
	if opts.count < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, opts.count)
	}

	sink, err := a.logCfg.NewSink(a.stderr)
	if err != nil {
		return err
	}

	name := opts.name
	if name == "" {
		name = filepath.Base(args[0])
	}

	p, err := a.profileCfg.NewProfiler(
		profile.WithName(name),
		profile.WithLogger(sink),
		profile.WithRegistry(a.registry),
		profile.WithColor(a.logCfg.Plain()),
	)
	if err != nil {
		return err
	}

	execute := profile.FuncErr(p, func(argv []string) (struct{}, error) {
		c := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // Running the given command is the point.
		c.Stdin = os.Stdin
		c.Stdout = a.stdout
		c.Stderr = a.stderr

		return struct{}{}, c.Run()
	})

	for i := range opts.count {
		_, err := execute(args)
		if err != nil {
			return fmt.Errorf("run %d of %d: %w", i+1, opts.count, err)
		}
	}

	if opts.summary {
		a.printSummary(name, p.Statistics())
	}

	return nil
}

func (a *app) printSummary(name string, stats *statistics.Statistics) {
	table := tablewriter.NewWriter(a.stdout)
	table.Header("Statistic", name)

	for _, field := range append([]string{"hits"}, statistics.DefaultFields()...) {
		out, err := stats.Dump(field)
		must(err)

		_, value, ok := strings.Cut(out, "=")
		if !ok {
			continue
		}

		must(table.Append([]string{field, value}))
	}

	must(table.Render())
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
