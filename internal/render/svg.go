package render

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// attr is one markup attribute; value is escaped on write.
type attr struct {
	name  string
	value string
}

func num(name string, v float64) attr {
	return attr{name: name, value: formatNumber(v)}
}

// formatNumber prints v in the shortest form that round-trips (70, 30.5, 93.33333333333333).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// markup accumulates an SVG document.
type markup struct {
	b strings.Builder
}

func (m *markup) writeTag(name string, attrs []attr, selfClose bool) {
	m.b.WriteByte('<')
	m.b.WriteString(name)
	for _, a := range attrs {
		m.b.WriteByte(' ')
		m.b.WriteString(a.name)
		m.b.WriteString(`="`)
		m.escape(a.value)
		m.b.WriteByte('"')
	}
	if selfClose {
		m.b.WriteString("/>")
	} else {
		m.b.WriteByte('>')
	}
}

// open writes a start tag.
func (m *markup) open(name string, attrs ...attr) {
	m.writeTag(name, attrs, false)
}

// empty writes a self-closing tag.
func (m *markup) empty(name string, attrs ...attr) {
	m.writeTag(name, attrs, true)
}

// close writes an end tag.
func (m *markup) close(name string) {
	m.b.WriteString("</")
	m.b.WriteString(name)
	m.b.WriteByte('>')
}

// element writes a start tag, escaped text content and the end tag.
func (m *markup) element(name, text string, attrs ...attr) {
	m.open(name, attrs...)
	m.escape(text)
	m.close(name)
}

func (m *markup) newline() {
	m.b.WriteByte('\n')
}

func (m *markup) escape(s string) {
	_ = xml.EscapeText(&m.b, []byte(s))
}

func (m *markup) String() string {
	return m.b.String()
}
