package dataset

import (
	"fmt"
	"strings"
)

// Summary returns a one-line summary of the element
func (e Element) Summary() string {
	return fmt.Sprintf("%d %s (%s) period %d group %d [%s]", e.Number, e.Symbol, e.Name, e.Period, e.Group, e.Category)
}

// FormatDetailed returns a multi-line description of the element
func (e Element) FormatDetailed() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== %s (%s) ===\n", e.Name, e.Symbol))
	b.WriteString(fmt.Sprintf("Atomic Number: %d\n", e.Number))
	b.WriteString(fmt.Sprintf("Period:        %d\n", e.Period))
	b.WriteString(fmt.Sprintf("Group:         %d\n", e.Group))
	b.WriteString(fmt.Sprintf("Category:      %s\n", e.Category))
	if e.AtomicMass.IsZero() {
		b.WriteString("Atomic Mass:   (none)\n")
	} else {
		b.WriteString(fmt.Sprintf("Atomic Mass:   %s\n", e.AtomicMass))
	}

	return b.String()
}

// FormatCategoryTable returns a table of categories with element counts,
// in first-occurrence order.
func FormatCategoryTable(elements []Element) string {
	var b strings.Builder

	categories := Categories(elements)
	counts := make(map[string]int, len(categories))
	width := len("Category")
	for _, el := range elements {
		counts[el.Category]++
	}
	for _, c := range categories {
		width = max(width, len(c))
	}

	b.WriteString(fmt.Sprintf("%-*s | Elements\n", width, "Category"))
	b.WriteString(strings.Repeat("-", width+1) + "+---------\n")
	for _, c := range categories {
		b.WriteString(fmt.Sprintf("%-*s | %d\n", width, c, counts[c]))
	}

	if len(categories) == 0 {
		b.WriteString("(no elements loaded)\n")
	}

	return b.String()
}

// FormatConfigSummary lists the layouts and themes a configuration offers.
func FormatConfigSummary(cfg *Config) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Layouts: %s\n", strings.Join(cfg.LayoutNames(), ", ")))
	b.WriteString(fmt.Sprintf("Themes:  %s\n", strings.Join(cfg.ThemeNames(), ", ")))

	return b.String()
}
