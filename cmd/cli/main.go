package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/john-livingston/DNest4/internal/cli"
)

// main is the entrypoint for the model builder.
func main() {
	// Minimal logger until the app configures the real one.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates command execution so tests can capture output.
func run(outW io.Writer, args []string) error {
	cmd := cli.NewRootCmd()
	cmd.SetOut(outW)
	cmd.SetErr(outW)
	cmd.SetArgs(args)
	return cmd.Execute()
}
