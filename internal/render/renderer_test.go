package render

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/muurk/ptable/internal/dataset"
)

func testConfig() *dataset.Config {
	width := 1.5
	return &dataset.Config{
		Layouts: map[string]dataset.Layout{
			"normal":  {BoxWidth: 60, BoxHeight: 60, Gap: 2, Padding: 10},
			"compact": {BoxWidth: 40, BoxHeight: 30, Gap: 0, Padding: 5},
			"orphan":  {BoxWidth: 10, BoxHeight: 10, Gap: 1, Padding: 1},
		},
		Themes: map[string]dataset.Theme{
			"light": {
				Background:  "#FFFFFF",
				Text:        "#111111",
				Stroke:      "#222222",
				StrokeWidth: &width,
				Categories:  map[string]string{"nonmetal": "#00FF00"},
			},
			"bare": {},
		},
		Typography: map[string]dataset.Typography{
			"normal":  {SymbolSize: 18, NumberSize: 9, NameSize: 7},
			"compact": {SymbolSize: 12, NumberSize: 6, NameSize: 5},
		},
	}
}

func hydrogen() dataset.Element {
	return dataset.Element{
		Number: 1, Symbol: "H", Name: "Hydrogen", Period: 1, Group: 1,
		Category: "nonmetal", AtomicMass: dataset.NewAtomicMass([]byte("1.008")),
	}
}

// svgDoc is the subset of the generated markup the tests inspect.
type svgDoc struct {
	Width      string `xml:"width,attr"`
	Height     string `xml:"height,attr"`
	ViewBox    string `xml:"viewBox,attr"`
	Theme      string `xml:"data-theme,attr"`
	Layout     string `xml:"data-layout,attr"`
	Background struct {
		Fill   string `xml:"fill,attr"`
		Width  string `xml:"width,attr"`
		Height string `xml:"height,attr"`
	} `xml:"rect"`
	Groups []svgGroup `xml:"g"`
}

type svgGroup struct {
	Class    string `xml:"class,attr"`
	Number   string `xml:"data-number,attr"`
	Symbol   string `xml:"data-symbol,attr"`
	Name     string `xml:"data-name,attr"`
	Gradient struct {
		ID    string `xml:"id,attr"`
		Stops []struct {
			Offset string `xml:"offset,attr"`
			Color  string `xml:"stop-color,attr"`
		} `xml:"stop"`
	} `xml:"defs>linearGradient"`
	Box struct {
		X           string `xml:"x,attr"`
		Y           string `xml:"y,attr"`
		Width       string `xml:"width,attr"`
		Height      string `xml:"height,attr"`
		Fill        string `xml:"fill,attr"`
		Stroke      string `xml:"stroke,attr"`
		StrokeWidth string `xml:"stroke-width,attr"`
	} `xml:"rect"`
	Texts []struct {
		Class    string `xml:"class,attr"`
		X        string `xml:"x,attr"`
		Y        string `xml:"y,attr"`
		FontSize string `xml:"font-size,attr"`
		Fill     string `xml:"fill,attr"`
		Value    string `xml:",chardata"`
	} `xml:"text"`
}

func parseSVG(t *testing.T, out string) svgDoc {
	t.Helper()
	var doc svgDoc
	if err := xml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("generated SVG is not well-formed XML: %v\n%s", err, out)
	}
	return doc
}

func TestGenerate_SingleElement(t *testing.T) {
	out, err := Generate([]dataset.Element{hydrogen()}, testConfig(), "light", "normal")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	doc := parseSVG(t, out)

	if doc.Width != "80" || doc.Height != "80" || doc.ViewBox != "0 0 80 80" {
		t.Errorf("canvas = %s x %s (viewBox %q), want 80 x 80", doc.Width, doc.Height, doc.ViewBox)
	}
	if doc.Theme != "light" || doc.Layout != "normal" {
		t.Errorf("metadata theme=%q layout=%q", doc.Theme, doc.Layout)
	}
	if doc.Background.Fill != "#FFFFFF" {
		t.Errorf("background fill = %q, want #FFFFFF", doc.Background.Fill)
	}
	if len(doc.Groups) != 1 {
		t.Fatalf("got %d element groups, want 1", len(doc.Groups))
	}

	g := doc.Groups[0]
	if g.Class != "element element-1" || g.Number != "1" || g.Symbol != "H" || g.Name != "Hydrogen" {
		t.Errorf("group attributes = %+v", g)
	}
	if g.Box.X != "70" || g.Box.Y != "70" {
		t.Errorf("box at (%s, %s), want (70, 70)", g.Box.X, g.Box.Y)
	}
	if g.Box.Width != "60" || g.Box.Height != "60" {
		t.Errorf("box size %s x %s, want 60 x 60", g.Box.Width, g.Box.Height)
	}
	if g.Gradient.ID != "elemGradient-1" || g.Box.Fill != "url(#elemGradient-1)" {
		t.Errorf("gradient id %q, fill %q", g.Gradient.ID, g.Box.Fill)
	}
	if len(g.Gradient.Stops) != 2 || g.Gradient.Stops[0].Color != "white" || g.Gradient.Stops[1].Color != "#00FF00" {
		t.Errorf("gradient stops = %+v", g.Gradient.Stops)
	}
	if g.Box.Stroke != "#222222" || g.Box.StrokeWidth != "1.5" {
		t.Errorf("stroke %q width %q", g.Box.Stroke, g.Box.StrokeWidth)
	}

	type label struct{ Class, X, Y, Size, Fill, Value string }
	var labels []label
	for _, tx := range g.Texts {
		labels = append(labels, label{tx.Class, tx.X, tx.Y, tx.FontSize, tx.Fill, tx.Value})
	}
	want := []label{
		{"element-number", "74", "81", "9", "#111111", "1"},
		{"element-symbol", "100", "106", "18", "#111111", "H"},
		{"element-mass", "100", "126", "9", "#111111", "1.008"},
	}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_ThemeDefaults(t *testing.T) {
	el := hydrogen()
	el.Category = "unmapped"

	out, err := Generate([]dataset.Element{el}, testConfig(), "bare", "normal")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	g := parseSVG(t, out).Groups[0]

	if c := g.Gradient.Stops[1].Color; c != dataset.DefaultCategoryColor {
		t.Errorf("unmapped category color = %q, want %q", c, dataset.DefaultCategoryColor)
	}
	if g.Box.Stroke != dataset.DefaultStrokeColor || g.Box.StrokeWidth != "1" {
		t.Errorf("default stroke = %q width %q", g.Box.Stroke, g.Box.StrokeWidth)
	}
	if g.Texts[0].Fill != dataset.DefaultTextColor {
		t.Errorf("default text fill = %q", g.Texts[0].Fill)
	}
}

func TestGenerate_InputOrderPreserved(t *testing.T) {
	elements := []dataset.Element{
		{Number: 11, Symbol: "Na", Name: "Sodium", Period: 3, Group: 1, Category: "alkali"},
		{Number: 1, Symbol: "H", Name: "Hydrogen", Period: 1, Group: 1, Category: "nonmetal"},
		{Number: 2, Symbol: "He", Name: "Helium", Period: 1, Group: 18, Category: "noble"},
	}

	out, err := Generate(elements, testConfig(), "light", "compact")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	doc := parseSVG(t, out)

	var numbers []string
	for _, g := range doc.Groups {
		numbers = append(numbers, g.Number)
	}
	if diff := cmp.Diff([]string{"11", "1", "2"}, numbers); diff != "" {
		t.Errorf("group order mismatch (-want +got):\n%s", diff)
	}

	// maxGroup 18, maxPeriod 3 with 40x30 boxes, no gap, padding 5
	if doc.Width != "730" || doc.Height != "100" {
		t.Errorf("canvas = %s x %s, want 730 x 100", doc.Width, doc.Height)
	}
}

func TestGenerate_EmptyElements(t *testing.T) {
	out, err := Generate(nil, testConfig(), "light", "normal")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	doc := parseSVG(t, out)

	if doc.Width != "20" || doc.Height != "20" {
		t.Errorf("empty canvas = %s x %s, want 20 x 20", doc.Width, doc.Height)
	}
	if len(doc.Groups) != 0 {
		t.Errorf("got %d groups, want 0", len(doc.Groups))
	}
}

func TestGenerate_MissingNames(t *testing.T) {
	tests := []struct {
		name        string
		theme       string
		layout      string
		wantSection string
		wantKey     string
	}{
		{"Unknown theme", "neon", "normal", dataset.SectionThemes, "neon"},
		{"Unknown layout", "light", "huge", dataset.SectionLayouts, "huge"},
		{"Layout without typography", "light", "orphan", dataset.SectionTypography, "orphan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate([]dataset.Element{hydrogen()}, testConfig(), tt.theme, tt.layout)
			if !dataset.IsValidationError(err) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			dsErr := err.(*dataset.Error)
			if dsErr.Section != tt.wantSection || dsErr.Key != tt.wantKey {
				t.Errorf("error names %s/%s, want %s/%s", dsErr.Section, dsErr.Key, tt.wantSection, tt.wantKey)
			}
			if !strings.Contains(err.Error(), tt.wantKey) {
				t.Errorf("error message %q should name %q", err.Error(), tt.wantKey)
			}
		})
	}
}

func TestGenerate_NilConfig(t *testing.T) {
	if _, err := Generate(nil, nil, "light", "normal"); !dataset.IsValidationError(err) {
		t.Errorf("Expected ValidationError, got %v", err)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	elements := []dataset.Element{
		hydrogen(),
		{Number: 2, Symbol: "He", Name: "Helium", Period: 1, Group: 18, Category: "noble"},
	}
	cfg := testConfig()

	first, err := Generate(elements, cfg, "light", "normal")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Generate(elements, cfg, "light", "normal")
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if again != first {
			t.Fatalf("run %d produced different output", i)
		}
	}
}

func TestGenerate_EscapesMarkup(t *testing.T) {
	el := hydrogen()
	el.Name = `Tom & "Jerry" <x>`
	el.AtomicMass = dataset.NewAtomicMass([]byte(`"<1>"`))

	out, err := Generate([]dataset.Element{el}, testConfig(), "light", "normal")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	g := parseSVG(t, out).Groups[0]

	if g.Name != el.Name {
		t.Errorf("data-name round-trip = %q, want %q", g.Name, el.Name)
	}
	if g.Texts[2].Value != "<1>" {
		t.Errorf("mass text = %q, want <1>", g.Texts[2].Value)
	}
}

func TestRenderer_Export(t *testing.T) {
	r := NewRenderer()
	if got := r.Export(); got != "" {
		t.Errorf("Export() before Generate = %q, want empty", got)
	}

	out, err := r.Generate([]dataset.Element{hydrogen()}, testConfig(), "light", "normal")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if r.Export() != out {
		t.Error("Export() should return the last generated document")
	}

	if _, err := r.Generate(nil, testConfig(), "missing", "normal"); err == nil {
		t.Fatal("Expected error for unknown theme")
	}
	if r.Export() != out {
		t.Error("A failed Generate should leave the last document in place")
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{70, "70"},
		{0, "0"},
		{30.5, "30.5"},
		{1.0 / 3, "0.3333333333333333"},
		{-2, "-2"},
	}

	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
