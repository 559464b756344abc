package dataset

import (
	"context"
	"net/http"
	"sync"

	"github.com/muurk/ptable/internal/logging"
	"go.uber.org/zap"
)

// Loader loads and validates the element dataset and the configuration
// document, caching each one after its first successful load.
// A failed load leaves the cache unset so a later call can retry.
type Loader struct {
	// ElementsLocator is the path or URL of the element dataset
	ElementsLocator string

	// ConfigLocator is the path or URL of the configuration document
	ConfigLocator string

	fetcher Fetcher

	mu       sync.Mutex
	elements []Element
	config   *Config
}

// Option configures a Loader
type Option func(*Loader)

// WithFetcher replaces the document fetcher
func WithFetcher(f Fetcher) Option {
	return func(l *Loader) {
		l.fetcher = f
	}
}

// WithHTTPClient sets the HTTP client used for remote locators
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		l.fetcher = &Source{HTTPClient: client}
	}
}

// NewLoader creates a Loader for the given document locators
func NewLoader(elementsLocator, configLocator string, opts ...Option) *Loader {
	l := &Loader{
		ElementsLocator: elementsLocator,
		ConfigLocator:   configLocator,
		fetcher:         NewSource(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadElements returns the element dataset, reading and validating it on first use.
func (l *Loader) LoadElements(ctx context.Context) ([]Element, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.elements != nil {
		return l.elements, nil
	}

	data, err := l.fetcher.Fetch(ctx, l.ElementsLocator)
	if err != nil {
		logging.Warn("Element dataset retrieval failed",
			zap.String("locator", l.ElementsLocator),
			zap.Error(err),
		)
		return nil, err
	}

	elements, err := ParseElements(data)
	if err != nil {
		if dsErr, ok := asError(err); ok && dsErr.Locator == "" {
			dsErr.Locator = l.ElementsLocator
		}
		logging.Warn("Element dataset rejected",
			zap.String("locator", l.ElementsLocator),
			zap.Error(err),
		)
		return nil, err
	}

	l.elements = elements
	logging.LogLoad("elements", l.ElementsLocator, len(elements))
	return l.elements, nil
}

// LoadConfig returns the configuration, reading and validating it on first use.
func (l *Loader) LoadConfig(ctx context.Context) (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.config != nil {
		return l.config, nil
	}

	data, err := l.fetcher.Fetch(ctx, l.ConfigLocator)
	if err != nil {
		logging.Warn("Configuration retrieval failed",
			zap.String("locator", l.ConfigLocator),
			zap.Error(err),
		)
		return nil, err
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		if dsErr, ok := asError(err); ok && dsErr.Locator == "" {
			dsErr.Locator = l.ConfigLocator
		}
		logging.Warn("Configuration rejected",
			zap.String("locator", l.ConfigLocator),
			zap.Error(err),
		)
		return nil, err
	}

	l.config = cfg
	logging.LogLoad("config", l.ConfigLocator, len(cfg.Layouts)+len(cfg.Themes)+len(cfg.Typography))
	return l.config, nil
}

// Load loads both documents, elements first.
func (l *Loader) Load(ctx context.Context) ([]Element, *Config, error) {
	elements, err := l.LoadElements(ctx)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := l.LoadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	return elements, cfg, nil
}

// Reset drops both cached documents so the next load reads them again.
func (l *Loader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.elements = nil
	l.config = nil
	logging.Debug("Loader cache reset")
}

// Elements returns the cached dataset, or nil if none has been loaded.
func (l *Loader) Elements() []Element {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.elements
}

// Config returns the cached configuration, or nil if none has been loaded.
func (l *Loader) Config() *Config {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.config
}

// GetElement returns the element with the given atomic number.
// It reports false when no dataset is loaded or nothing matches.
func (l *Loader) GetElement(number int) (Element, bool) {
	for _, el := range l.Elements() {
		if el.Number == number {
			return el, true
		}
	}
	return Element{}, false
}

// GetElementsByCategory returns the elements of a category in dataset order.
func (l *Loader) GetElementsByCategory(category string) []Element {
	var out []Element
	for _, el := range l.Elements() {
		if el.Category == category {
			out = append(out, el)
		}
	}
	return out
}

// GetCategories returns the distinct categories in first-occurrence order.
func (l *Loader) GetCategories() []string {
	return Categories(l.Elements())
}

// Categories returns the distinct categories of elements in first-occurrence order.
func Categories(elements []Element) []string {
	var out []string
	seen := make(map[string]bool)
	for _, el := range elements {
		if !seen[el.Category] {
			seen[el.Category] = true
			out = append(out, el.Category)
		}
	}
	return out
}
