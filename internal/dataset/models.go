package dataset

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
)

// Default colors used when a theme leaves a value unset.
const (
	DefaultCategoryColor = "#CCCCCC"
	DefaultTextColor     = "#000000"
	DefaultStrokeColor   = "#333333"
	DefaultStrokeWidth   = 1.0
)

// Element is one record of the element dataset. Identity is Number.
type Element struct {
	Number     int        `json:"number"`
	Symbol     string     `json:"symbol"`
	Name       string     `json:"name"`
	Period     int        `json:"period"`   // Row, 1-7
	Group      int        `json:"group"`    // Column, 1-18
	Category   string     `json:"category"` // Free-form color lookup key
	AtomicMass AtomicMass `json:"atomic_mass"`
}

// AtomicMass holds the raw JSON value of an element's atomic_mass field.
// It is never validated; numbers, strings or anything else pass through.
type AtomicMass struct {
	raw json.RawMessage
}

// NewAtomicMass wraps a raw JSON value.
func NewAtomicMass(raw []byte) AtomicMass {
	if len(raw) == 0 {
		return AtomicMass{}
	}
	return AtomicMass{raw: bytes.Clone(raw)}
}

// String renders the value as-is: numbers keep their literal JSON text,
// strings are unquoted, a missing or null value renders empty.
func (m AtomicMass) String() string {
	if len(m.raw) == 0 || bytes.Equal(m.raw, []byte("null")) {
		return ""
	}
	if m.raw[0] == '"' {
		var s string
		if err := json.Unmarshal(m.raw, &s); err == nil {
			return s
		}
	}
	return string(m.raw)
}

// IsZero reports whether the record carried no atomic mass.
func (m AtomicMass) IsZero() bool {
	return len(m.raw) == 0
}

// MarshalJSON implements json.Marshaler
func (m AtomicMass) MarshalJSON() ([]byte, error) {
	if len(m.raw) == 0 {
		return []byte("null"), nil
	}
	return m.raw, nil
}

// UnmarshalJSON implements json.Unmarshaler
func (m *AtomicMass) UnmarshalJSON(data []byte) error {
	m.raw = bytes.Clone(data)
	return nil
}

// Layout is a named bundle of box sizing and spacing metrics.
type Layout struct {
	BoxWidth  float64 `json:"boxWidth"`
	BoxHeight float64 `json:"boxHeight"`
	Gap       float64 `json:"gap"`
	Padding   float64 `json:"padding"`
}

// Theme is a named bundle of colors. Unset values fall back to defaults.
type Theme struct {
	Background  string            `json:"background,omitempty"`
	Text        string            `json:"text,omitempty"`
	Stroke      string            `json:"stroke,omitempty"`
	StrokeWidth *float64          `json:"strokeWidth,omitempty"`
	Categories  map[string]string `json:"categories,omitempty"`
}

// CategoryColor returns the fill color mapped to category, or neutral gray.
func (t Theme) CategoryColor(category string) string {
	if c := t.Categories[category]; c != "" {
		return c
	}
	return DefaultCategoryColor
}

// TextColor returns the text color, defaulting to black.
func (t Theme) TextColor() string {
	if t.Text != "" {
		return t.Text
	}
	return DefaultTextColor
}

// StrokeColor returns the box outline color.
func (t Theme) StrokeColor() string {
	if t.Stroke != "" {
		return t.Stroke
	}
	return DefaultStrokeColor
}

// Width returns the stroke width, 1 when unset.
func (t Theme) Width() float64 {
	if t.StrokeWidth != nil {
		return *t.StrokeWidth
	}
	return DefaultStrokeWidth
}

// Typography is a named bundle of font sizes, keyed by layout name.
type Typography struct {
	SymbolSize float64 `json:"symbolSize"`
	NumberSize float64 `json:"numberSize"`
	NameSize   float64 `json:"nameSize"`
}

// Config is the validated configuration document.
type Config struct {
	Layouts    map[string]Layout     `json:"layouts"`
	Themes     map[string]Theme      `json:"themes"`
	Typography map[string]Typography `json:"typography"`
	SVG        json.RawMessage       `json:"svg"` // Presence checked only
}

// LayoutNames returns the configured layout names, sorted.
func (c *Config) LayoutNames() []string {
	return slices.Sorted(maps.Keys(c.Layouts))
}

// ThemeNames returns the configured theme names, sorted.
func (c *Config) ThemeNames() []string {
	return slices.Sorted(maps.Keys(c.Themes))
}

// Layout resolves a layout by name.
func (c *Config) Layout(name string) (Layout, error) {
	l, ok := c.Layouts[name]
	if !ok {
		return Layout{}, NewSectionError(SectionLayouts, name, "", "unknown layout: "+quote(name))
	}
	return l, nil
}

// Theme resolves a theme by name.
func (c *Config) Theme(name string) (Theme, error) {
	t, ok := c.Themes[name]
	if !ok {
		return Theme{}, NewSectionError(SectionThemes, name, "", "unknown theme: "+quote(name))
	}
	return t, nil
}

// TypographyFor resolves the typography scale for a layout name.
func (c *Config) TypographyFor(layout string) (Typography, error) {
	t, ok := c.Typography[layout]
	if !ok {
		return Typography{}, NewSectionError(SectionTypography, layout, "", "no typography for layout: "+quote(layout))
	}
	return t, nil
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
