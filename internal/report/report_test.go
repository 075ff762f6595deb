package report

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/farcloser/primordium/fault"
)

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "sliver-report.json"))
	if err == nil {
		t.Fatal("expected an error for a missing report")
	}
	if !errors.Is(err, fault.ErrReadFailure) {
		t.Errorf("error %v does not wrap fault.ErrReadFailure", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v must keep fs.ErrNotExist in the chain", err)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sliver-report.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, fault.ErrInvalidJSON) {
		t.Errorf("error %v does not wrap fault.ErrInvalidJSON", err)
	}
}

func TestLoadMapShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sliver-report.json")
	content := `{"success": true, "results": {"detectors": [{"check": "reentrancy"}, {"check": "pragma"}]}}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Findings) != 2 {
		t.Errorf("findings = %d, want 2", len(doc.Findings))
	}
}

func TestParseNoDetectors(t *testing.T) {
	for name, raw := range map[string]map[string]any{
		"empty document":       {},
		"results not present":  {"success": true},
		"results scalar":       {"results": "oops"},
		"detectors missing":    {"results": map[string]any{}},
		"detectors not a list": {"results": map[string]any{"detectors": "oops"}},
	} {
		if _, err := Parse(raw); !errors.Is(err, ErrNoDetectors) {
			t.Errorf("%s: err = %v, want ErrNoDetectors", name, err)
		}
	}
}

func TestParseListShape(t *testing.T) {
	doc, err := Parse(map[string]any{
		"results": []any{map[string]any{"check": "assembly"}},
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Findings) != 1 {
		t.Errorf("findings = %d, want 1", len(doc.Findings))
	}
}

func TestParseEmptyDetectors(t *testing.T) {
	doc, err := Parse(map[string]any{
		"results": map[string]any{"detectors": []any{}},
	})
	if err != nil {
		t.Fatalf("an empty detectors list is still a findings collection: %v", err)
	}
	if len(doc.Findings) != 0 {
		t.Errorf("findings = %d, want 0", len(doc.Findings))
	}
}

func TestWithFindingsMapShape(t *testing.T) {
	raw := map[string]any{
		"success": true,
		"error":   nil,
		"results": map[string]any{
			"detectors": []any{map[string]any{"check": "pragma"}},
			"extra":     "kept",
		},
	}

	doc, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	replacement := []any{map[string]any{"check": "trimmed"}}
	rebuilt := doc.WithFindings(replacement)

	if rebuilt["success"] != true {
		t.Error("top-level fields must be preserved")
	}

	results := rebuilt["results"].(map[string]any)
	if results["extra"] != "kept" {
		t.Error("sibling results fields must be preserved")
	}
	if got := results["detectors"].([]any); len(got) != 1 || got[0].(map[string]any)["check"] != "trimmed" {
		t.Errorf("detectors not replaced: %v", got)
	}

	// The original document is untouched.
	original := raw["results"].(map[string]any)["detectors"].([]any)
	if original[0].(map[string]any)["check"] != "pragma" {
		t.Error("WithFindings mutated the source document")
	}
}

func TestWithFindingsListShape(t *testing.T) {
	doc, err := Parse(map[string]any{
		"version": "0.10.0",
		"results": []any{map[string]any{"check": "pragma"}},
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	rebuilt := doc.WithFindings([]any{})

	if got, ok := rebuilt["results"].([]any); !ok || len(got) != 0 {
		t.Errorf("list-form results must stay a list, got %T", rebuilt["results"])
	}
	if rebuilt["version"] != "0.10.0" {
		t.Error("top-level fields must be preserved")
	}
}
