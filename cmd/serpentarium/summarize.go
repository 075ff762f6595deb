package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/serpentarium"
	"github.com/farcloser/serpentarium/internal/output"
	"github.com/farcloser/serpentarium/internal/report"
)

// Fixed artifact names, resolved against the project root.
const (
	inputFile   = "sliver-report.json"
	trimmedFile = "sliver-report-trimmed.json"
	summaryFile = "slither-summary.md"
	countsFile  = "slither-detector-counts.csv"
)

var errTooManyArgs = errors.New("expected at most one argument: project root directory")

func summarizeCommand() *cli.Command {
	return &cli.Command{
		Name:      "summarize",
		Usage:     "Trim oversized line lists and write summary artifacts next to the report",
		ArgsUsage: "[dir]",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() > 1 {
				return fmt.Errorf("%w: got %d", errTooManyArgs, cmd.NArg())
			}

			root := cmd.Args().First()
			if root == "" {
				root = "."
			}

			return runSummarize(root)
		},
	}
}

func runSummarize(root string) error {
	doc, err := report.Load(filepath.Join(root, inputFile))
	if err != nil {
		if errors.Is(err, report.ErrNoDetectors) {
			slog.Warn("no detectors found in report, nothing to do")

			return nil
		}

		return fmt.Errorf("loading report: %w", err)
	}

	digest := serpentarium.Summarize(doc.Findings)

	trimmedPath := filepath.Join(root, trimmedFile)
	if err := output.WriteTrimmed(trimmedPath, doc.WithFindings(digest.Trimmed)); err != nil {
		return err
	}

	slog.Info("trimmed report written", "path", trimmedPath)

	countsPath := filepath.Join(root, countsFile)
	if err := output.WriteCounts(countsPath, digest.SortedStats()); err != nil {
		return err
	}

	slog.Info("detector counts written", "path", countsPath)

	summaryPath := filepath.Join(root, summaryFile)
	if err := output.WriteSummary(summaryPath, digest); err != nil {
		return err
	}

	slog.Info("summary written", "path", summaryPath)

	return nil
}
