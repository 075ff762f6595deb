package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/serpentarium/version"
)

// exitMissingInput distinguishes an absent input report from other failures.
const exitMissingInput = 2

func main() {
	ctx := context.Background()

	appl := &cli.Command{
		Name:    version.Name(),
		Usage:   "Trim and summarize Slither static-analysis reports",
		Version: version.Version() + " " + version.Commit(),
		Commands: []*cli.Command{
			summarizeCommand(),
			digestCommand(),
		},
	}

	if err := appl.Run(ctx, os.Args); err != nil {
		slog.Error("failed to run", "error", err)

		if errors.Is(err, fs.ErrNotExist) {
			os.Exit(exitMissingInput)
		}

		os.Exit(1)
	}
}
