// Package report loads Slither JSON reports and locates the detector
// findings inside their permissively shaped container.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"

	"github.com/farcloser/primordium/fault"
)

// ErrNoDetectors signals a report that parsed but holds no recognizable
// findings collection. Callers treat it as a benign no-op, not a failure.
var ErrNoDetectors = errors.New("no detectors found in report")

// Document is a parsed report plus the location of its findings collection.
type Document struct {
	// Findings is the detector list, in report order. Entries are usually
	// objects but nothing here guarantees it.
	Findings []any

	raw      map[string]any
	listForm bool
}

// Load reads and parses the report at path. A missing or unreadable file
// wraps fault.ErrReadFailure (and keeps the os error in the chain), invalid
// JSON wraps fault.ErrInvalidJSON.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified report files
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrInvalidJSON, err)
	}

	return Parse(raw)
}

// Parse locates the findings collection: a "results" mapping holding a
// "detectors" list, or a "results" value that is itself the list. Anything
// else resolves to ErrNoDetectors.
func Parse(raw map[string]any) (*Document, error) {
	switch results := raw["results"].(type) {
	case map[string]any:
		findings, ok := results["detectors"].([]any)
		if !ok {
			return nil, ErrNoDetectors
		}

		return &Document{Findings: findings, raw: raw}, nil
	case []any:
		return &Document{Findings: results, raw: raw, listForm: true}, nil
	default:
		return nil, ErrNoDetectors
	}
}

// WithFindings rebuilds the document around a replacement findings
// collection, preserving every other top-level field and the container shape
// the report arrived with.
func (d *Document) WithFindings(findings []any) map[string]any {
	doc := maps.Clone(d.raw)

	if d.listForm {
		doc["results"] = findings

		return doc
	}

	results, ok := d.raw["results"].(map[string]any)
	if ok {
		results = maps.Clone(results)
	} else {
		results = map[string]any{}
	}

	results["detectors"] = findings
	doc["results"] = results

	return doc
}
