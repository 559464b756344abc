package prefs

import (
	"fmt"
	"strconv"
	"strings"
)

// CurrentVersion is the only preferences file version this build reads.
const CurrentVersion = 1

// Keys accepted by Get and Set.
const (
	KeyElements = "elements"
	KeyConfig   = "config"
	KeyTheme    = "theme"
	KeyLayout   = "layout"
	KeyOutput   = "output"
	KeyPNGScale = "png_scale"
)

// Preferences is the user preferences file.
// Empty values mean "use the built-in default".
type Preferences struct {
	Version  int     `yaml:"version"`
	Elements string  `yaml:"elements,omitempty"` // Elements document path or URL
	Config   string  `yaml:"config,omitempty"`   // Configuration document path or URL
	Theme    string  `yaml:"theme,omitempty"`
	Layout   string  `yaml:"layout,omitempty"`
	Output   string  `yaml:"output,omitempty"` // Default SVG output path
	PNGScale float64 `yaml:"png_scale,omitempty"`
}

// New returns preferences with no overrides.
func New() *Preferences {
	return &Preferences{Version: CurrentVersion}
}

// Keys lists every settable key in display order.
func Keys() []string {
	return []string{KeyElements, KeyConfig, KeyTheme, KeyLayout, KeyOutput, KeyPNGScale}
}

// Get returns the string form of a preference.
func (p *Preferences) Get(key string) (string, error) {
	switch key {
	case KeyElements:
		return p.Elements, nil
	case KeyConfig:
		return p.Config, nil
	case KeyTheme:
		return p.Theme, nil
	case KeyLayout:
		return p.Layout, nil
	case KeyOutput:
		return p.Output, nil
	case KeyPNGScale:
		if p.PNGScale == 0 {
			return "", nil
		}
		return strconv.FormatFloat(p.PNGScale, 'f', -1, 64), nil
	default:
		return "", unknownKey(key)
	}
}

// Set updates a preference from its string form. An empty value clears it.
func (p *Preferences) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case KeyElements:
		p.Elements = value
	case KeyConfig:
		p.Config = value
	case KeyTheme:
		p.Theme = value
	case KeyLayout:
		p.Layout = value
	case KeyOutput:
		p.Output = value
	case KeyPNGScale:
		if value == "" {
			p.PNGScale = 0
			return nil
		}
		scale, err := strconv.ParseFloat(value, 64)
		if err != nil || scale <= 0 {
			return fmt.Errorf("invalid %s %q: must be a positive number", key, value)
		}
		p.PNGScale = scale
	default:
		return unknownKey(key)
	}
	return nil
}

// Values returns every key with its current value.
func (p *Preferences) Values() map[string]string {
	values := make(map[string]string, len(Keys()))
	for _, key := range Keys() {
		values[key], _ = p.Get(key)
	}
	return values
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown preference %q (valid keys: %s)", key, strings.Join(Keys(), ", "))
}
