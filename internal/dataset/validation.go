package dataset

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"

	"github.com/buger/jsonparser"
)

// Configuration section names, in validation order.
const (
	SectionLayouts    = "layouts"
	SectionThemes     = "themes"
	SectionTypography = "typography"
	SectionSVG        = "svg"
)

// Element field names, in validation order.
const (
	FieldNumber     = "number"
	FieldSymbol     = "symbol"
	FieldName       = "name"
	FieldPeriod     = "period"
	FieldGroup      = "group"
	FieldCategory   = "category"
	FieldAtomicMass = "atomic_mass"
)

// Period and group bounds.
const (
	MinPeriod = 1
	MaxPeriod = 7
	MinGroup  = 1
	MaxGroup  = 18
)

var (
	requiredElementFields = []string{FieldNumber, FieldSymbol, FieldName, FieldPeriod, FieldGroup, FieldCategory}
	requiredSections      = []string{SectionLayouts, SectionThemes, SectionTypography, SectionSVG}
	layoutFields          = []string{"boxWidth", "boxHeight", "gap", "padding"}
	typographyFields      = []string{"symbolSize", "numberSize", "nameSize"}
)

// ParseElements validates an element dataset document and decodes its records.
// Validation stops at the first violation, checked in field order.
func ParseElements(data []byte) ([]Element, error) {
	if !json.Valid(data) {
		return nil, NewFormatError("element dataset is not valid JSON")
	}

	_, topType, _, _ := jsonparser.Get(data)
	if topType != jsonparser.Object {
		return nil, NewFormatError(`invalid elements format: expected { "elements": [...] }`)
	}

	list, listType, _, _ := jsonparser.Get(data, "elements")
	if listType != jsonparser.Array {
		return nil, NewFormatError(`invalid elements format: expected { "elements": [...] }`)
	}

	type rawRecord struct {
		value    []byte
		dataType jsonparser.ValueType
	}
	var records []rawRecord
	_, err := jsonparser.ArrayEach(list, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
		records = append(records, rawRecord{value: value, dataType: dataType})
	})
	if err != nil {
		return nil, NewFormatError(fmt.Sprintf("cannot read elements array: %v", err))
	}

	elements := make([]Element, 0, len(records))
	seen := make(map[int]int, len(records))
	for i, rec := range records {
		if rec.dataType != jsonparser.Object {
			return nil, NewElementError(i, "", "is not an object")
		}
		el, err := parseElement(i, rec.value)
		if err != nil {
			return nil, err
		}
		if first, dup := seen[el.Number]; dup {
			return nil, NewElementError(i, FieldNumber,
				fmt.Sprintf("has duplicate atomic number %d (first seen at index %d)", el.Number, first))
		}
		seen[el.Number] = i
		elements = append(elements, el)
	}

	return elements, nil
}

func parseElement(index int, record []byte) (Element, error) {
	if field := duplicateField(record); field != "" {
		return Element{}, NewElementError(index, field, "duplicate field: "+field)
	}
	for _, field := range requiredElementFields {
		if _, dataType, _, _ := jsonparser.Get(record, field); dataType == jsonparser.NotExist {
			return Element{}, NewElementError(index, field, "missing required field: "+field)
		}
	}

	var el Element
	var err error

	if el.Number, err = intField(index, record, FieldNumber, "atomic number", 1, math.MaxInt32); err != nil {
		return Element{}, err
	}
	if el.Symbol, err = stringField(index, record, FieldSymbol); err != nil {
		return Element{}, err
	}
	if el.Name, err = stringField(index, record, FieldName); err != nil {
		return Element{}, err
	}
	if el.Period, err = intField(index, record, FieldPeriod, FieldPeriod, MinPeriod, MaxPeriod); err != nil {
		return Element{}, err
	}
	if el.Group, err = intField(index, record, FieldGroup, FieldGroup, MinGroup, MaxGroup); err != nil {
		return Element{}, err
	}
	if el.Category, err = stringField(index, record, FieldCategory); err != nil {
		return Element{}, err
	}

	el.AtomicMass = NewAtomicMass(rawValue(record, FieldAtomicMass))
	return el, nil
}

// duplicateField returns the first element field that appears more than
// once in record. Unknown keys are ignored.
func duplicateField(record []byte) string {
	seen := make(map[string]bool, len(requiredElementFields)+1)
	var dup string
	_ = jsonparser.ObjectEach(record, func(key []byte, _ []byte, _ jsonparser.ValueType, _ int) error {
		name := string(key)
		if !isElementField(name) {
			return nil
		}
		if seen[name] && dup == "" {
			dup = name
		}
		seen[name] = true
		return nil
	})
	return dup
}

func isElementField(name string) bool {
	return name == FieldAtomicMass || slices.Contains(requiredElementFields, name)
}

// intField reads an integral number within [min, max].
func intField(index int, record []byte, field, label string, min, max int) (int, error) {
	value, dataType, _, _ := jsonparser.Get(record, field)
	invalid := NewElementError(index, field, fmt.Sprintf("has invalid %s: %s", label, display(value, dataType)))
	if dataType != jsonparser.Number {
		return 0, invalid
	}
	f, err := jsonparser.ParseFloat(value)
	if err != nil || f != math.Trunc(f) || f < float64(min) || f > float64(max) {
		return 0, invalid
	}
	return int(f), nil
}

// stringField reads a non-empty string.
func stringField(index int, record []byte, field string) (string, error) {
	value, dataType, _, _ := jsonparser.Get(record, field)
	invalid := NewElementError(index, field, fmt.Sprintf("has invalid %s: %s", field, display(value, dataType)))
	if dataType != jsonparser.String {
		return "", invalid
	}
	s, err := jsonparser.ParseString(value)
	if err != nil || s == "" {
		return "", invalid
	}
	return s, nil
}

// ParseConfig validates a configuration document and decodes it.
// Sections are checked for presence first, then layouts and typography
// entries are validated in document order.
func ParseConfig(data []byte) (*Config, error) {
	if !json.Valid(data) {
		return nil, NewFormatError("configuration is not valid JSON")
	}
	if _, topType, _, _ := jsonparser.Get(data); topType != jsonparser.Object {
		return nil, NewFormatError("invalid configuration format: expected an object")
	}

	for _, section := range requiredSections {
		if _, dataType, _, _ := jsonparser.Get(data, section); dataType == jsonparser.NotExist {
			return nil, NewSectionError(section, "", "", "config missing section: "+section)
		}
	}

	cfg := &Config{
		Layouts:    make(map[string]Layout),
		Themes:     make(map[string]Theme),
		Typography: make(map[string]Typography),
		SVG:        json.RawMessage(rawValue(data, SectionSVG)),
	}

	err := eachEntry(data, SectionLayouts, func(name string, entry []byte) error {
		values, err := numericFields(SectionLayouts, "Layout", name, entry, layoutFields, false)
		if err != nil {
			return err
		}
		cfg.Layouts[name] = Layout{BoxWidth: values[0], BoxHeight: values[1], Gap: values[2], Padding: values[3]}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = eachEntry(data, SectionTypography, func(name string, entry []byte) error {
		values, err := numericFields(SectionTypography, "Typography", name, entry, typographyFields, true)
		if err != nil {
			return err
		}
		cfg.Typography[name] = Typography{SymbolSize: values[0], NumberSize: values[1], NameSize: values[2]}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = eachEntry(data, SectionThemes, func(name string, entry []byte) error {
		cfg.Themes[name] = parseTheme(entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// eachEntry walks the named object section in document order.
func eachEntry(data []byte, section string, fn func(name string, entry []byte) error) error {
	value, dataType, _, _ := jsonparser.Get(data, section)
	if dataType != jsonparser.Object {
		return NewSectionError(section, "", "", fmt.Sprintf("section %s must be an object, got %s", section, dataType))
	}
	// ObjectEach hands over keys already unescaped.
	return jsonparser.ObjectEach(value, func(key []byte, entry []byte, _ jsonparser.ValueType, _ int) error {
		return fn(string(key), entry)
	})
}

// numericFields reads fields from entry in order. Values must be >= 0,
// or > 0 when strict is set.
func numericFields(section, label, name string, entry []byte, fields []string, strict bool) ([]float64, error) {
	values := make([]float64, len(fields))
	for i, field := range fields {
		value, dataType, _, _ := jsonparser.Get(entry, field)
		invalid := NewSectionError(section, name, field,
			fmt.Sprintf("%s %q has invalid %s: %s", label, name, field, display(value, dataType)))
		if dataType != jsonparser.Number {
			return nil, invalid
		}
		f, err := jsonparser.ParseFloat(value)
		if err != nil || f < 0 || (strict && f == 0) {
			return nil, invalid
		}
		values[i] = f
	}
	return values, nil
}

// parseTheme reads a theme entry leniently: wrongly typed values are treated as unset.
func parseTheme(entry []byte) Theme {
	var t Theme
	t.Background = optionalString(entry, "background")
	t.Text = optionalString(entry, "text")
	t.Stroke = optionalString(entry, "stroke")

	if value, dataType, _, _ := jsonparser.Get(entry, "strokeWidth"); dataType == jsonparser.Number {
		if f, err := jsonparser.ParseFloat(value); err == nil {
			t.StrokeWidth = &f
		}
	}

	if categories, dataType, _, _ := jsonparser.Get(entry, "categories"); dataType == jsonparser.Object {
		t.Categories = make(map[string]string)
		_ = jsonparser.ObjectEach(categories, func(key []byte, value []byte, dataType jsonparser.ValueType, _ int) error {
			if dataType != jsonparser.String {
				return nil
			}
			color, err := jsonparser.ParseString(value)
			if err != nil {
				return nil
			}
			t.Categories[string(key)] = color
			return nil
		})
	}

	return t
}

func optionalString(entry []byte, key string) string {
	value, dataType, _, _ := jsonparser.Get(entry, key)
	if dataType != jsonparser.String {
		return ""
	}
	s, err := jsonparser.ParseString(value)
	if err != nil {
		return ""
	}
	return s
}

// rawValue returns the JSON text of key, re-quoting strings that
// jsonparser hands back without their quotes. Missing keys yield nil.
func rawValue(data []byte, key string) []byte {
	value, dataType, _, _ := jsonparser.Get(data, key)
	switch dataType {
	case jsonparser.NotExist:
		return nil
	case jsonparser.String:
		quoted := make([]byte, 0, len(value)+2)
		quoted = append(quoted, '"')
		quoted = append(quoted, value...)
		return append(quoted, '"')
	default:
		return value
	}
}

// display formats an offending value for error messages.
func display(value []byte, dataType jsonparser.ValueType) string {
	switch dataType {
	case jsonparser.NotExist:
		return "undefined"
	case jsonparser.String:
		return fmt.Sprintf("%q", string(value))
	default:
		return string(value)
	}
}
