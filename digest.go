package serpentarium

import (
	"maps"
	"slices"
)

/*
Usage:

doc, err := report.Load("sliver-report.json")
digest := serpentarium.Summarize(doc.Findings)

for _, stats := range digest.SortedStats() {
    fmt.Printf("%s: %d\n", stats.Check, stats.Count)
}

// Trimmed copies, same order as the input
_ = doc.WithFindings(digest.Trimmed)
*/

const (
	// checkUnknown labels findings whose check field is missing or empty.
	checkUnknown = "unknown"

	// maxExamples caps the representative findings kept per check.
	maxExamples = 3

	// previewLimit is the longest lines list kept verbatim; anything longer
	// is reduced to its first and last edgeCount entries.
	previewLimit = 10
	edgeCount    = 5
)

// Summarize makes one pass over the findings collection, counting per-check
// occurrences and impact/confidence frequencies, retaining representative
// findings, and producing a trimmed copy of every record. Records that are
// not JSON objects still count (under the "unknown" check) and pass through
// to the trimmed sequence untouched.
func Summarize(findings []any) *Digest {
	digest := &Digest{
		Trimmed: make([]any, 0, len(findings)),
		byCheck: map[string]*DetectorStats{},
	}

	for _, item := range findings {
		raw := asMap(item)
		finding := findingFrom(raw)

		stats, ok := digest.byCheck[finding.Check]
		if !ok {
			stats = &DetectorStats{
				Check:       finding.Check,
				Impacts:     NewTally(),
				Confidences: NewTally(),
			}
			digest.byCheck[finding.Check] = stats
			digest.Stats = append(digest.Stats, stats)
		}

		stats.Count++
		stats.Impacts.Add(finding.Impact)
		stats.Confidences.Add(finding.Confidence)

		if len(stats.Examples) < maxExamples {
			stats.Examples = append(stats.Examples, finding)
		}

		if raw == nil {
			digest.Trimmed = append(digest.Trimmed, item)
		} else {
			digest.Trimmed = append(digest.Trimmed, trimFinding(raw))
		}

		digest.Total++
	}

	return digest
}

// SortedStats returns the per-check stats ordered by descending count.
// Equal counts keep their first-seen order.
func (d *Digest) SortedStats() []*DetectorStats {
	sorted := slices.Clone(d.Stats)
	slices.SortStableFunc(sorted, func(a, b *DetectorStats) int {
		return b.Count - a.Count
	})

	return sorted
}

// findingFrom resolves the optional fields of a raw finding record once,
// applying the documented defaults. A nil record resolves to all defaults.
func findingFrom(raw map[string]any) Finding {
	check := stringField(raw, "check")
	if check == "" {
		check = checkUnknown
	}

	description := stringField(raw, "description")
	if description == "" {
		description = stringField(raw, "markdown")
	}

	return Finding{
		Check:       check,
		Impact:      stringField(raw, "impact"),
		Confidence:  stringField(raw, "confidence"),
		Description: description,
		Raw:         raw,
	}
}

// trimFinding returns a shallow copy of the finding with every oversized
// lines list in its elements replaced by a compact summary. Structures not
// touched by trimming stay shared with the original.
func trimFinding(raw map[string]any) map[string]any {
	trimmed := maps.Clone(raw)

	elements, _ := trimmed["elements"].([]any)
	newElements := make([]any, 0, len(elements))

	for _, element := range elements {
		em := asMap(element)
		if em == nil {
			newElements = append(newElements, element)

			continue
		}

		newElements = append(newElements, trimElement(em))
	}

	trimmed["elements"] = newElements

	return trimmed
}

func trimElement(element map[string]any) map[string]any {
	trimmed := maps.Clone(element)

	if mapping, ok := trimmed["source_mapping"].(map[string]any); ok {
		if lines, present := mapping["lines"]; present && lines != nil {
			mapping = maps.Clone(mapping)
			mapping["lines"] = summarizeLines(lines)
			trimmed["source_mapping"] = mapping
		}
	}

	// Nested parent mappings are trimmed at this fixed depth only.
	if fields, ok := trimmed["type_specific_fields"].(map[string]any); ok {
		if parent, ok := fields["parent"].(map[string]any); ok {
			if mapping, ok := parent["source_mapping"].(map[string]any); ok {
				if _, present := mapping["lines"]; present {
					mapping = maps.Clone(mapping)
					mapping["lines"] = summarizeLines(mapping["lines"])

					parent = maps.Clone(parent)
					parent["source_mapping"] = mapping

					fields = maps.Clone(fields)
					fields["parent"] = parent

					trimmed["type_specific_fields"] = fields
				}
			}
		}
	}

	return trimmed
}

// summarizeLines reduces a lines list to its boundary summary. Values that
// are not lists pass through unchanged, which makes trimming idempotent: an
// already-summarized value is a map and never re-trims.
func summarizeLines(value any) any {
	lines, ok := value.([]any)
	if !ok {
		return value
	}

	count := len(lines)
	if count <= previewLimit {
		return map[string]any{
			"count":         count,
			"lines_preview": lines,
		}
	}

	return map[string]any{
		"count": count,
		"first": lines[:edgeCount],
		"last":  lines[count-edgeCount:],
	}
}

func asMap(value any) map[string]any {
	m, _ := value.(map[string]any)

	return m
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)

	return s
}
