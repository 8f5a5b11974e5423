// Package main provides the CLI entry point for stopwatch, a tool that times
// repeated runs of a command and reports descriptive statistics.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/stopwatch/atexit"
	"go.jacobcolvin.com/stopwatch/log"
	"go.jacobcolvin.com/stopwatch/profile"
)

func main() {
	cmd := newRootCmd(os.Stdout, log.Stderr().Writer(), atexit.Default)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		atexit.Exit(exitCode(err))
	}

	atexit.Run()
}

// app holds the state shared by all subcommands.
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	registry   *atexit.Registry
	logCfg     *log.Config
	profileCfg *profile.Config
	configPath string
}

func newRootCmd(stdout, stderr io.Writer, registry *atexit.Registry) *cobra.Command {
	a := &app{
		stdout:     stdout,
		stderr:     stderr,
		registry:   registry,
		logCfg:     log.NewConfig(),
		profileCfg: profile.NewConfig(),
	}

	rootCmd := &cobra.Command{
		Use:   "stopwatch",
		Short: "Time repeated runs of a command",
		Long: `stopwatch runs a command repeatedly, reports the duration of every run
and summarizes all runs when it exits.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.configPath == "" {
				return nil
			}

			return a.profileCfg.LoadFile(a.configPath, cmd.Flags())
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML file with reporting configuration")
	a.logCfg.RegisterFlags(flags)
	a.profileCfg.RegisterFlags(flags)

	rootCmd.AddCommand(newRunCmd(a), newSchemaCmd(a), newVersionCmd(a))

	for _, register := range []func(*cobra.Command) error{
		a.logCfg.RegisterCompletions,
		a.profileCfg.RegisterCompletions,
	} {
		err := register(rootCmd)
		if err != nil {
			fmt.Fprintf(stderr, "register completions: %v\n", err)
		}
	}

	return rootCmd
}

// exitCode returns the exit status of a failed child process, or 1.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}

	return 1
}
