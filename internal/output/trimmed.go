// Package output writes the derived report artifacts: the trimmed report,
// the detector counts table, and the markdown summary.
package output

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteTrimmed serializes the rebuilt report document as indented JSON.
func WriteTrimmed(path string, doc map[string]any) error {
	f, err := os.Create(path) //nolint:gosec // CLI tool writes user-specified artifact paths
	if err != nil {
		return fmt.Errorf("creating trimmed report: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding trimmed report: %w", err)
	}

	return nil
}
