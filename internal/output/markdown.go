package output

import (
	"fmt"
	"os"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/farcloser/serpentarium"
)

const (
	// topDetectorLimit caps the by-count detector listing.
	topDetectorLimit = 30

	// exampleCategoryLimit caps the representative-findings section to the
	// first categories encountered in the report.
	exampleCategoryLimit = 30
)

// WriteSummary writes the markdown summary: totals, the highest-count
// detectors, representative findings per detector in first-seen order, and a
// distribution overview of findings per detector.
func WriteSummary(path string, digest *serpentarium.Digest) error {
	f, err := os.Create(path) //nolint:gosec // CLI tool writes user-specified artifact paths
	if err != nil {
		return fmt.Errorf("creating summary file: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "# Slither Summary\n\n")
	fmt.Fprintf(f, "- Total findings: **%d**\n", digest.Total)
	fmt.Fprintf(f, "- Unique detector types: **%d**\n\n", len(digest.Stats))

	fmt.Fprintf(f, "## Top detectors (by count)\n\n")

	for i, stats := range digest.SortedStats() {
		if i >= topDetectorLimit {
			break
		}

		fmt.Fprintf(f, "- **%s**: %d\n", stats.Check, stats.Count)
	}

	fmt.Fprintf(f, "\n")

	fmt.Fprintf(f, "## Representative findings (up to 3 per detector)\n\n")

	for i, stats := range digest.Stats {
		if i >= exampleCategoryLimit {
			break
		}

		fmt.Fprintf(f, "### %s (%d)\n", stats.Check, stats.Count)

		for _, example := range stats.Examples {
			fmt.Fprintf(f, "- Impact: %s • Confidence: %s\n", example.Impact, example.Confidence)

			description := strings.TrimSpace(example.Description)
			if description != "" {
				// Continuation lines become nested bullets.
				fmt.Fprintf(f, "  - %s\n", strings.ReplaceAll(description, "\n", "\n  - "))
			}
		}

		fmt.Fprintf(f, "\n")
	}

	writeDistribution(f, digest)

	return nil
}

func writeDistribution(f *os.File, digest *serpentarium.Digest) {
	if len(digest.Stats) == 0 {
		return
	}

	counts := make([]float64, 0, len(digest.Stats))
	for _, stats := range digest.Stats {
		counts = append(counts, float64(stats.Count))
	}

	fmt.Fprintf(f, "## Detector distribution\n\n")
	fmt.Fprintf(f, "- Mean findings per detector: %.1f\n", stat.Mean(counts, nil))

	if len(counts) > 1 {
		fmt.Fprintf(f, "- Std dev: %.1f\n", stat.StdDev(counts, nil))
	}
}
