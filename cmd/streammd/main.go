// Command streammd normalizes AI chat markdown for display and export.
//
// Subcommands:
//
//	render    Normalize a transcript and print it styled for the terminal
//	stream    Replay a transcript in chunks, re-rendering each snapshot
//	export    Export a transcript as a standalone HTML or PDF document
//	styles    List embedded export stylesheets
//	version   Show version information
//	help      Show help for a command
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := notifyContext(context.Background())
	defer stop()

	env := DefaultEnv()
	if err := run(ctx, os.Args[1:], env); err != nil {
		fmt.Fprintln(env.Stderr, "Error:", err)
		os.Exit(exitCodeFor(err))
	}
}

// run dispatches to a subcommand. Args exclude the program name.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "render":
		return runRender(ctx, rest, env)
	case "stream":
		return runStream(ctx, rest, env)
	case "export":
		return runExport(ctx, rest, env)
	case "styles":
		return runStyles(env)
	case "version", "--version", "-v":
		fmt.Fprintf(env.Stdout, "streammd %s\n", Version)
		return nil
	case "help", "--help", "-h":
		runHelp(rest, env)
		return nil
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return errUsage
	}
}

// errUsage marks invocation errors that already printed usage.
var errUsage = errors.New("invalid usage")
