// Package cmd implements the playerui CLI commands.
//
// The root command dispatches to subcommands (render, simulate). Each
// subcommand parses its own flags, including the shared configuration flags
// from pkg/config.
package cmd

import (
	"fmt"
	"io"
	"os"

	"emperror.dev/errors"

	"github.com/go-drift/playerui/pkg/player"
)

// BuildTime is set at build time.
var BuildTime = "unknown"

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string, stdout io.Writer) error
}

var rootCmd = struct {
	Long  string
	Usage string
}{
	Long: `playerui builds the player control tree in a headless document.

Use "playerui <command> --help" for more information about a command.`,
	Usage: "playerui <command> [flags]",
}

// Commands registered with the CLI, in registration order.
var (
	commands = make(map[string]*Command)
	ordered  []*Command
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	ordered = append(ordered, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	return execute(args, os.Stdout)
}

func execute(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		printHelp(stdout)
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp(stdout)
		return nil
	case "-v", "--version", "version":
		fmt.Fprintf(stdout, "playerui version %s (built %s)\n", player.Version, BuildTime)
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		printHelp(os.Stderr)
		return errors.Errorf("unknown command: %s", args[0])
	}
	for _, arg := range args[1:] {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(stdout, cmd)
			return nil
		}
	}
	return cmd.Run(args[1:], stdout)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, rootCmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range ordered {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  playerui render -lang de              Print the controls in German")
	fmt.Fprintln(w, "  playerui simulate -script hover.yaml  Replay a pointer session")
}

func printCommandHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
}
