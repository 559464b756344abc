package dataset

import (
	"strings"
	"testing"
)

func sampleElementList() []Element {
	return []Element{
		{Number: 3, Symbol: "Li", Name: "Lithium", Period: 2, Group: 1, Category: "alkali", AtomicMass: NewAtomicMass([]byte("6.94"))},
		{Number: 10, Symbol: "Ne", Name: "Neon", Period: 2, Group: 18, Category: "noble"},
		{Number: 11, Symbol: "Na", Name: "Sodium", Period: 3, Group: 1, Category: "alkali"},
	}
}

func TestElement_Summary(t *testing.T) {
	summary := sampleElementList()[0].Summary()

	if strings.Count(summary, "\n") > 0 {
		t.Error("Summary() should return a single line")
	}
	for _, part := range []string{"3", "Li", "Lithium", "period 2", "group 1", "alkali"} {
		if !strings.Contains(summary, part) {
			t.Errorf("Summary() missing expected part: %s", part)
		}
	}
}

func TestElement_FormatDetailed(t *testing.T) {
	elements := sampleElementList()

	detailed := elements[0].FormatDetailed()
	for _, part := range []string{"Lithium (Li)", "Atomic Number: 3", "Category:      alkali", "Atomic Mass:   6.94"} {
		if !strings.Contains(detailed, part) {
			t.Errorf("FormatDetailed() missing expected part: %s", part)
		}
	}

	if !strings.Contains(elements[1].FormatDetailed(), "Atomic Mass:   (none)") {
		t.Error("FormatDetailed() should show (none) for a missing atomic mass")
	}
}

func TestFormatCategoryTable(t *testing.T) {
	table := FormatCategoryTable(sampleElementList())

	lines := strings.Split(strings.TrimSpace(table), "\n")
	if len(lines) != 4 {
		t.Fatalf("FormatCategoryTable() has %d lines, want 4:\n%s", len(lines), table)
	}
	if !strings.HasPrefix(lines[2], "alkali") || !strings.HasSuffix(lines[2], "| 2") {
		t.Errorf("first category row = %q, want alkali with 2 elements", lines[2])
	}
	if !strings.HasPrefix(lines[3], "noble") || !strings.HasSuffix(lines[3], "| 1") {
		t.Errorf("second category row = %q, want noble with 1 element", lines[3])
	}

	if !strings.Contains(FormatCategoryTable(nil), "(no elements loaded)") {
		t.Error("FormatCategoryTable(nil) should say no elements are loaded")
	}
}

func TestFormatConfigSummary(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	summary := FormatConfigSummary(cfg)
	if !strings.Contains(summary, "Layouts: compact, normal") {
		t.Errorf("FormatConfigSummary() = %q", summary)
	}
	if !strings.Contains(summary, "Themes:  bare, light") {
		t.Errorf("FormatConfigSummary() = %q", summary)
	}
}
