package render

import (
	"strconv"

	"github.com/muurk/ptable/internal/dataset"
	"github.com/muurk/ptable/internal/logging"
)

const (
	svgNamespace = "http://www.w3.org/2000/svg"
	fontFamily   = "Arial, sans-serif"

	// DefaultTheme and DefaultLayout are the names used when a caller has no preference
	DefaultTheme  = "light"
	DefaultLayout = "normal"

	cornerRadius = 4 // Box corner radius
	textInset    = 4 // Distance of labels from the box edge
)

// Generate renders elements as an SVG document using the named theme and
// layout from cfg. Typography is looked up by the layout name. A name
// missing from cfg yields a validation error naming it.
//
// Output depends only on the arguments: the same inputs in the same order
// always produce the same bytes.
func Generate(elements []dataset.Element, cfg *dataset.Config, theme, layout string) (string, error) {
	if cfg == nil {
		return "", dataset.NewValidationError("no configuration given")
	}

	layoutCfg, err := cfg.Layout(layout)
	if err != nil {
		return "", err
	}
	themeCfg, err := cfg.Theme(theme)
	if err != nil {
		return "", err
	}
	typo, err := cfg.TypographyFor(layout)
	if err != nil {
		return "", err
	}

	size := Canvas(elements, layoutCfg)

	var m markup
	m.open("svg",
		attr{"xmlns", svgNamespace},
		num("width", size.Width),
		num("height", size.Height),
		attr{"viewBox", "0 0 " + formatNumber(size.Width) + " " + formatNumber(size.Height)},
		attr{"class", "periodic-table"},
		attr{"data-theme", theme},
		attr{"data-layout", layout},
	)
	m.newline()

	writeBackground(&m, size, themeCfg)
	for _, el := range elements {
		writeElement(&m, el, layoutCfg, themeCfg, typo)
	}

	m.close("svg")
	m.newline()

	out := m.String()
	logging.LogRender(theme, layout, len(elements), len(out))
	return out, nil
}

func writeBackground(m *markup, size Size, theme dataset.Theme) {
	m.empty("rect",
		attr{"class", "background"},
		num("x", 0),
		num("y", 0),
		num("width", size.Width),
		num("height", size.Height),
		attr{"fill", theme.Background},
	)
	m.newline()
}

// GradientID returns the identifier of an element's fill gradient.
func GradientID(number int) string {
	return "elemGradient-" + strconv.Itoa(number)
}

func writeElement(m *markup, el dataset.Element, layout dataset.Layout, theme dataset.Theme, typo dataset.Typography) {
	pos := BoxPosition(el, layout)
	number := strconv.Itoa(el.Number)
	gradient := GradientID(el.Number)
	textColor := theme.TextColor()

	m.open("g",
		attr{"class", "element element-" + number},
		attr{"data-number", number},
		attr{"data-symbol", el.Symbol},
		attr{"data-name", el.Name},
		attr{"data-category", el.Category},
	)

	// White to category color, top-left to bottom-right
	m.open("defs")
	m.open("linearGradient",
		attr{"id", gradient},
		attr{"x1", "0%"}, attr{"y1", "0%"},
		attr{"x2", "100%"}, attr{"y2", "100%"},
	)
	m.empty("stop", attr{"offset", "0%"}, attr{"stop-color", "white"}, attr{"stop-opacity", "0.8"})
	m.empty("stop", attr{"offset", "100%"}, attr{"stop-color", theme.CategoryColor(el.Category)}, attr{"stop-opacity", "1"})
	m.close("linearGradient")
	m.close("defs")

	m.empty("rect",
		attr{"class", "element-box"},
		num("x", pos.X),
		num("y", pos.Y),
		num("width", layout.BoxWidth),
		num("height", layout.BoxHeight),
		num("rx", cornerRadius),
		attr{"fill", "url(#" + gradient + ")"},
		attr{"stroke", theme.StrokeColor()},
		num("stroke-width", theme.Width()),
	)

	m.element("text", number,
		attr{"class", "element-number"},
		num("x", pos.X+textInset),
		num("y", pos.Y+typo.NumberSize+2),
		num("font-size", typo.NumberSize),
		attr{"font-weight", "bold"},
		attr{"fill", textColor},
		attr{"font-family", fontFamily},
	)

	// Text is baseline-anchored; a third of the font size centers it visually
	centerX := pos.X + layout.BoxWidth/2
	m.element("text", el.Symbol,
		attr{"class", "element-symbol"},
		num("x", centerX),
		num("y", pos.Y+layout.BoxHeight/2+typo.SymbolSize/3),
		num("font-size", typo.SymbolSize),
		attr{"font-weight", "bold"},
		attr{"fill", textColor},
		attr{"text-anchor", "middle"},
		attr{"font-family", fontFamily},
	)

	m.element("text", el.AtomicMass.String(),
		attr{"class", "element-mass"},
		num("x", centerX),
		num("y", pos.Y+layout.BoxHeight-textInset),
		num("font-size", typo.NumberSize),
		attr{"fill", textColor},
		attr{"text-anchor", "middle"},
		attr{"font-family", fontFamily},
	)

	m.close("g")
	m.newline()
}

// Renderer keeps the most recently generated document for Export.
// Generate is the primary API; Renderer exists for callers that want the
// last output without holding on to it themselves.
type Renderer struct {
	last string
}

// NewRenderer creates an empty Renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Generate renders like the package-level Generate and remembers the output.
func (r *Renderer) Generate(elements []dataset.Element, cfg *dataset.Config, theme, layout string) (string, error) {
	out, err := Generate(elements, cfg, theme, layout)
	if err != nil {
		return "", err
	}
	r.last = out
	return out, nil
}

// Export returns the last generated document, or "" if none.
func (r *Renderer) Export() string {
	return r.last
}
