package dataset

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleElements = `{
  "elements": [
    {"number": 1, "symbol": "H", "name": "Hydrogen", "period": 1, "group": 1, "category": "nonmetal", "atomic_mass": 1.008},
    {"number": 2, "symbol": "He", "name": "Helium", "period": 1, "group": 18, "category": "noble gas", "atomic_mass": "4.0026"},
    {"number": 3, "symbol": "Li", "name": "Lithium", "period": 2, "group": 1, "category": "alkali metal"}
  ]
}`

const sampleConfig = `{
  "layouts": {
    "normal": {"boxWidth": 60, "boxHeight": 60, "gap": 2, "padding": 10},
    "compact": {"boxWidth": 40, "boxHeight": 40, "gap": 0, "padding": 0}
  },
  "themes": {
    "light": {
      "background": "#FFFFFF", "text": "#111111", "stroke": "#444444", "strokeWidth": 0.5,
      "categories": {"nonmetal": "#A0FFA0", "noble gas": "#C0E0FF", "bogus": 12}
    },
    "bare": {}
  },
  "typography": {
    "normal": {"symbolSize": 18, "numberSize": 9, "nameSize": 7},
    "compact": {"symbolSize": 12, "numberSize": 6, "nameSize": 5}
  },
  "svg": {"title": "Periodic Table"}
}`

func TestParseElements_Valid(t *testing.T) {
	elements, err := ParseElements([]byte(sampleElements))
	if err != nil {
		t.Fatalf("ParseElements() error = %v", err)
	}

	got := make([]string, len(elements))
	for i, el := range elements {
		got[i] = el.Summary()
	}
	want := []string{
		"1 H (Hydrogen) period 1 group 1 [nonmetal]",
		"2 He (Helium) period 1 group 18 [noble gas]",
		"3 Li (Lithium) period 2 group 1 [alkali metal]",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseElements() mismatch (-want +got):\n%s", diff)
	}

	if s := elements[0].AtomicMass.String(); s != "1.008" {
		t.Errorf("numeric atomic mass = %q, want 1.008", s)
	}
	if s := elements[1].AtomicMass.String(); s != "4.0026" {
		t.Errorf("string atomic mass = %q, want 4.0026", s)
	}
	if !elements[2].AtomicMass.IsZero() {
		t.Errorf("missing atomic mass should be zero, got %q", elements[2].AtomicMass)
	}
}

func TestParseElements_FormatErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Not JSON", `{"elements": [`},
		{"Top-level array", `[{"number": 1}]`},
		{"Missing elements key", `{"items": []}`},
		{"Elements is an object", `{"elements": {"number": 1}}`},
		{"Elements is a string", `{"elements": "H"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseElements([]byte(tt.data))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !IsFormatError(err) {
				t.Errorf("Expected FormatError, got %v", err)
			}
		})
	}
}

func TestParseElements_EmptyArray(t *testing.T) {
	elements, err := ParseElements([]byte(`{"elements": []}`))
	if err != nil {
		t.Fatalf("ParseElements() error = %v", err)
	}
	if elements == nil || len(elements) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", elements)
	}
}

func TestParseElements_ValidationErrors(t *testing.T) {
	base := map[string]string{
		"number":   `1`,
		"symbol":   `"H"`,
		"name":     `"Hydrogen"`,
		"period":   `1`,
		"group":    `1`,
		"category": `"nonmetal"`,
	}
	record := func(overrides map[string]string, omit ...string) string {
		var parts []string
		for _, f := range requiredElementFields {
			skip := false
			for _, o := range omit {
				if o == f {
					skip = true
				}
			}
			if skip {
				continue
			}
			v := base[f]
			if o, ok := overrides[f]; ok {
				v = o
			}
			parts = append(parts, `"`+f+`": `+v)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	valid := record(nil)

	tests := []struct {
		name      string
		records   []string
		wantIndex int
		wantField string
	}{
		{"Missing symbol", []string{valid, record(map[string]string{"number": "2"}, "symbol")}, 1, "symbol"},
		{"Missing number and symbol reports number", []string{record(nil, "number", "symbol")}, 0, "number"},
		{"Missing category", []string{record(nil, "category")}, 0, "category"},
		{"Number is a string", []string{record(map[string]string{"number": `"1"`})}, 0, "number"},
		{"Number zero", []string{record(map[string]string{"number": `0`})}, 0, "number"},
		{"Number fractional", []string{record(map[string]string{"number": `1.5`})}, 0, "number"},
		{"Empty symbol", []string{record(map[string]string{"symbol": `""`})}, 0, "symbol"},
		{"Name is a number", []string{record(map[string]string{"name": `7`})}, 0, "name"},
		{"Period zero", []string{record(map[string]string{"period": `0`})}, 0, "period"},
		{"Period eight", []string{record(map[string]string{"period": `8`})}, 0, "period"},
		{"Group nineteen", []string{record(map[string]string{"group": `19`})}, 0, "group"},
		{"Group null", []string{record(map[string]string{"group": `null`})}, 0, "group"},
		{"Category empty", []string{record(map[string]string{"category": `""`})}, 0, "category"},
		{"Invalid period reported before invalid group", []string{record(map[string]string{"period": `9`, "group": `40`})}, 0, "period"},
		{"Duplicate atomic number", []string{valid, valid}, 1, "number"},
		{"Record not an object", []string{valid, `"H"`}, 1, ""},
		{"Duplicate period key", []string{`{"number": 1, "symbol": "H", "name": "Hydrogen", "period": 1, "group": 1, "category": "nonmetal", "period": 9}`}, 0, "period"},
		{"Duplicate atomic mass key", []string{`{"number": 1, "symbol": "H", "name": "Hydrogen", "period": 1, "group": 1, "category": "nonmetal", "atomic_mass": 1, "atomic_mass": 2}`}, 0, "atomic_mass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := `{"elements": [` + strings.Join(tt.records, ",") + `]}`
			_, err := ParseElements([]byte(data))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !IsValidationError(err) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			dsErr := err.(*Error)
			if dsErr.Index != tt.wantIndex {
				t.Errorf("Index = %d, want %d (%v)", dsErr.Index, tt.wantIndex, err)
			}
			if dsErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q (%v)", dsErr.Field, tt.wantField, err)
			}
		})
	}
}

func TestParseConfig_Valid(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	wantLayout := Layout{BoxWidth: 60, BoxHeight: 60, Gap: 2, Padding: 10}
	if diff := cmp.Diff(wantLayout, cfg.Layouts["normal"]); diff != "" {
		t.Errorf("normal layout mismatch (-want +got):\n%s", diff)
	}

	wantTypo := Typography{SymbolSize: 12, NumberSize: 6, NameSize: 5}
	if diff := cmp.Diff(wantTypo, cfg.Typography["compact"]); diff != "" {
		t.Errorf("compact typography mismatch (-want +got):\n%s", diff)
	}

	light := cfg.Themes["light"]
	if light.Background != "#FFFFFF" || light.TextColor() != "#111111" || light.StrokeColor() != "#444444" {
		t.Errorf("light theme colors = %+v", light)
	}
	if light.Width() != 0.5 {
		t.Errorf("light stroke width = %v, want 0.5", light.Width())
	}
	if _, ok := light.Categories["bogus"]; ok {
		t.Error("non-string category color should be dropped")
	}

	if diff := cmp.Diff([]string{"compact", "normal"}, cfg.LayoutNames()); diff != "" {
		t.Errorf("LayoutNames() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"bare", "light"}, cfg.ThemeNames()); diff != "" {
		t.Errorf("ThemeNames() mismatch (-want +got):\n%s", diff)
	}
	if string(cfg.SVG) != `{"title": "Periodic Table"}` {
		t.Errorf("SVG section = %s", cfg.SVG)
	}
}

func TestParseConfig_EscapedKeys(t *testing.T) {
	data := `{
  "layouts": {"print\\big": {"boxWidth": 10, "boxHeight": 10, "gap": 1, "padding": 2}, "tab\tname": {"boxWidth": 1, "boxHeight": 1, "gap": 0, "padding": 0}},
  "themes": {"light": {"categories": {"a\\nb": "#111111", "caf\u00e9": "#222222"}}},
  "typography": {"print\\big": {"symbolSize": 8, "numberSize": 4, "nameSize": 3}},
  "svg": {}
}`
	cfg, err := ParseConfig([]byte(data))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	tests := []struct {
		name   string
		layout string
	}{
		{"Escaped backslash", `print\big`},
		{"Escaped tab", "tab\tname"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := cfg.Layout(tt.layout); err != nil {
				t.Errorf("Layout(%q) error = %v", tt.layout, err)
			}
		})
	}
	if _, err := cfg.TypographyFor(`print\big`); err != nil {
		t.Errorf("TypographyFor() error = %v", err)
	}

	light := cfg.Themes["light"]
	if got := light.CategoryColor(`a\nb`); got != "#111111" {
		t.Errorf("CategoryColor(a\\nb) = %q, want #111111", got)
	}
	if got := light.CategoryColor("café"); got != "#222222" {
		t.Errorf("CategoryColor(café) = %q, want #222222", got)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		wantFormat  bool
		wantSection string
		wantKey     string
		wantField   string
	}{
		{
			name:       "Top-level array",
			data:       `[]`,
			wantFormat: true,
		},
		{
			name:        "Missing layouts",
			data:        `{"themes": {}, "typography": {}, "svg": {}}`,
			wantSection: "layouts",
		},
		{
			name:        "Missing svg",
			data:        `{"layouts": {}, "themes": {}, "typography": {}}`,
			wantSection: "svg",
		},
		{
			name:        "Missing themes reported before svg",
			data:        `{"layouts": {}, "typography": {}}`,
			wantSection: "themes",
		},
		{
			name:        "Negative gap",
			data:        `{"layouts": {"normal": {"boxWidth": 60, "boxHeight": 60, "gap": -1, "padding": 10}}, "themes": {}, "typography": {}, "svg": {}}`,
			wantSection: "layouts", wantKey: "normal", wantField: "gap",
		},
		{
			name:        "Layout field missing",
			data:        `{"layouts": {"normal": {"boxWidth": 60, "gap": 1, "padding": 10}}, "themes": {}, "typography": {}, "svg": {}}`,
			wantSection: "layouts", wantKey: "normal", wantField: "boxHeight",
		},
		{
			name:        "Layout field is a string",
			data:        `{"layouts": {"wide": {"boxWidth": "60", "boxHeight": 60, "gap": 1, "padding": 10}}, "themes": {}, "typography": {}, "svg": {}}`,
			wantSection: "layouts", wantKey: "wide", wantField: "boxWidth",
		},
		{
			name:        "Layouts not an object",
			data:        `{"layouts": 5, "themes": {}, "typography": {}, "svg": {}}`,
			wantSection: "layouts",
		},
		{
			name:        "Zero symbol size",
			data:        `{"layouts": {}, "themes": {}, "typography": {"normal": {"symbolSize": 0, "numberSize": 9, "nameSize": 7}}, "svg": {}}`,
			wantSection: "typography", wantKey: "normal", wantField: "symbolSize",
		},
		{
			name:        "Missing name size",
			data:        `{"layouts": {}, "themes": {}, "typography": {"large": {"symbolSize": 20, "numberSize": 9}}, "svg": {}}`,
			wantSection: "typography", wantKey: "large", wantField: "nameSize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if tt.wantFormat {
				if !IsFormatError(err) {
					t.Errorf("Expected FormatError, got %v", err)
				}
				return
			}
			if !IsValidationError(err) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			dsErr := err.(*Error)
			if dsErr.Section != tt.wantSection || dsErr.Key != tt.wantKey || dsErr.Field != tt.wantField {
				t.Errorf("got section=%q key=%q field=%q, want %q/%q/%q",
					dsErr.Section, dsErr.Key, dsErr.Field, tt.wantSection, tt.wantKey, tt.wantField)
			}
		})
	}
}

func TestParseConfig_ZeroLayoutMetricsAllowed(t *testing.T) {
	data := `{"layouts": {"flat": {"boxWidth": 0, "boxHeight": 0, "gap": 0, "padding": 0}}, "themes": {}, "typography": {}, "svg": null}`
	if _, err := ParseConfig([]byte(data)); err != nil {
		t.Errorf("ParseConfig() error = %v, want nil", err)
	}
}

func TestThemeDefaults(t *testing.T) {
	var theme Theme
	if got := theme.CategoryColor("anything"); got != DefaultCategoryColor {
		t.Errorf("CategoryColor() = %q, want %q", got, DefaultCategoryColor)
	}
	if got := theme.TextColor(); got != DefaultTextColor {
		t.Errorf("TextColor() = %q, want %q", got, DefaultTextColor)
	}
	if got := theme.StrokeColor(); got != DefaultStrokeColor {
		t.Errorf("StrokeColor() = %q, want %q", got, DefaultStrokeColor)
	}
	if got := theme.Width(); got != 1 {
		t.Errorf("Width() = %v, want 1", got)
	}

	theme.Categories = map[string]string{`a\nb`: "#111111"}
	if got := theme.CategoryColor(`a\nb`); got != "#111111" {
		t.Errorf("CategoryColor() with backslash key = %q, want #111111", got)
	}

	zero := 0.0
	theme.StrokeWidth = &zero
	if got := theme.Width(); got != 0 {
		t.Errorf("explicit zero Width() = %v, want 0", got)
	}
}

func TestAtomicMass_String(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{``, ""},
		{`null`, ""},
		{`1.008`, "1.008"},
		{`"(98)"`, "(98)"},
		{`"a \"quoted\" mass"`, `a "quoted" mass`},
		{`true`, "true"},
		{`[1,2]`, "[1,2]"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NewAtomicMass([]byte(tt.raw)).String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
