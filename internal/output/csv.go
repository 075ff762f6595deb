package output

import (
	"bufio"
	"fmt"
	"os"

	"github.com/farcloser/serpentarium"
)

// WriteCounts writes one row per detector, in the order given (callers pass
// descending-count order). String fields are quoted, the count is bare,
// matching the format downstream tooling already parses.
func WriteCounts(path string, stats []*serpentarium.DetectorStats) error {
	f, err := os.Create(path) //nolint:gosec // CLI tool writes user-specified artifact paths
	if err != nil {
		return fmt.Errorf("creating counts file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "check,count,top_impact,top_confidence")

	for _, st := range stats {
		fmt.Fprintf(w, "\"%s\",%d,\"%s\",\"%s\"\n",
			st.Check, st.Count, st.Impacts.MostCommon(), st.Confidences.MostCommon())
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing counts file: %w", err)
	}

	return nil
}
