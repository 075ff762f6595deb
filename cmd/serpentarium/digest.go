//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/farcloser/primordium/format"
	"github.com/urfave/cli/v3"

	"github.com/farcloser/serpentarium"
	"github.com/farcloser/serpentarium/internal/report"
)

func digestCommand() *cli.Command {
	return &cli.Command{
		Name:      "digest",
		Usage:     "Print a summary digest of the report without writing artifacts",
		ArgsUsage: "[dir]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
			},
			&cli.StringFlag{
				Name:  "check",
				Usage: "Show representative findings for a specific detector (e.g., reentrancy-eth)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() > 1 {
				return fmt.Errorf("%w: got %d", errTooManyArgs, cmd.NArg())
			}

			root := cmd.Args().First()
			if root == "" {
				root = "."
			}

			return runDigest(root, cmd.String("format"), cmd.String("check"))
		},
	}
}

func runDigest(root, formatName, checkFilter string) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	path := filepath.Join(root, inputFile)

	doc, err := report.Load(path)
	if err != nil {
		if errors.Is(err, report.ErrNoDetectors) {
			slog.Warn("no detectors found in report, nothing to do")

			return nil
		}

		return fmt.Errorf("loading report: %w", err)
	}

	digest := serpentarium.Summarize(doc.Findings)

	data := &format.Data{
		Object: path,
		Meta:   digestMeta(digest),
	}

	if err := formatter.PrintAll([]*format.Data{data}, os.Stdout); err != nil {
		return err
	}

	if checkFilter != "" {
		printCheckDetail(digest, checkFilter)
	}

	return nil
}

func digestMeta(digest *serpentarium.Digest) map[string]any {
	meta := map[string]any{
		"summary": fmt.Sprintf("%d findings across %d detectors", digest.Total, len(digest.Stats)),
	}

	detectors := make([]any, 0, len(digest.Stats))
	for _, stats := range digest.SortedStats() {
		detectors = append(detectors, fmt.Sprintf("%s: %d (impact: %s, confidence: %s)",
			stats.Check, stats.Count, stats.Impacts.MostCommon(), stats.Confidences.MostCommon()))
	}

	if len(detectors) > 0 {
		meta["detectors"] = detectors
	}

	return meta
}

func printCheckDetail(digest *serpentarium.Digest, check string) {
	fmt.Println()

	stats := digest.Stat(check)
	if stats == nil {
		fmt.Printf("No findings for %s\n", check)

		return
	}

	fmt.Printf("=== %s: %d findings ===\n\n", check, stats.Count)

	for _, example := range stats.Examples {
		fmt.Printf("  impact: %s  confidence: %s\n", example.Impact, example.Confidence)

		description := strings.TrimSpace(example.Description)
		if description != "" {
			fmt.Printf("    %s\n", strings.ReplaceAll(description, "\n", "\n    "))
		}

		fmt.Println()
	}
}
