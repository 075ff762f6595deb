package serpentarium

// Finding is the typed view of one detector hit, resolved once at read time.
// Raw keeps the original record so emitters can reproduce fields the view
// does not model.
type Finding struct {
	Check       string
	Impact      string
	Confidence  string
	Description string

	Raw map[string]any
}

// Tally is an insertion-ordered frequency table over string values.
type Tally struct {
	counts map[string]int
	order  []string
}

// NewTally returns an empty frequency table.
func NewTally() *Tally {
	return &Tally{counts: map[string]int{}}
}

// Add counts one occurrence of value.
func (t *Tally) Add(value string) {
	if _, seen := t.counts[value]; !seen {
		t.order = append(t.order, value)
	}

	t.counts[value]++
}

// Count returns the number of occurrences recorded for value.
func (t *Tally) Count(value string) int {
	return t.counts[value]
}

// Len returns the number of distinct values recorded.
func (t *Tally) Len() int {
	return len(t.order)
}

// MostCommon returns the most frequent value, breaking ties in favor of the
// value seen first. It returns the empty string for an empty table.
func (t *Tally) MostCommon() string {
	best := ""
	bestCount := 0

	for _, value := range t.order {
		if t.counts[value] > bestCount {
			best = value
			bestCount = t.counts[value]
		}
	}

	return best
}

// DetectorStats aggregates every finding sharing one check identifier.
type DetectorStats struct {
	Check       string
	Count       int
	Impacts     *Tally
	Confidences *Tally

	// Examples holds up to maxExamples findings in input order, never
	// evicted once filled.
	Examples []Finding
}

// Digest is the output of one aggregation pass: per-check stats in first-seen
// order, trimmed copies of every finding in input order, and the grand total.
type Digest struct {
	Stats   []*DetectorStats
	Trimmed []any
	Total   int

	byCheck map[string]*DetectorStats
}

// Stat returns the stats for check, or nil when the check never occurred.
func (d *Digest) Stat(check string) *DetectorStats {
	return d.byCheck[check]
}
