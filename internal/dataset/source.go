package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTimeout bounds a single HTTP retrieval.
const DefaultTimeout = 10 * time.Second

// Fetcher retrieves the raw bytes of a document.
type Fetcher interface {
	Fetch(ctx context.Context, locator string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, locator string) ([]byte, error)

// Fetch implements Fetcher
func (f FetcherFunc) Fetch(ctx context.Context, locator string) ([]byte, error) {
	return f(ctx, locator)
}

// Source fetches documents from the local filesystem or over HTTP(S),
// depending on the locator. It never retries.
type Source struct {
	HTTPClient *http.Client
}

// NewSource creates a Source with the default HTTP timeout
func NewSource() *Source {
	return &Source{HTTPClient: &http.Client{Timeout: DefaultTimeout}}
}

// IsRemote reports whether locator is an HTTP(S) URL.
func IsRemote(locator string) bool {
	return strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://")
}

// Fetch implements Fetcher. YAML documents (.yaml/.yml) are converted to JSON.
func (s *Source) Fetch(ctx context.Context, locator string) ([]byte, error) {
	if locator == "" {
		return nil, NewResourceError(locator, "no document locator given", nil)
	}

	var data []byte
	var err error
	if IsRemote(locator) {
		data, err = s.fetchHTTP(ctx, locator)
	} else {
		data, err = s.fetchFile(locator)
	}
	if err != nil {
		return nil, err
	}

	if isYAML(locator) {
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, NewFormatError(fmt.Sprintf("cannot parse YAML document %s: %v", locator, err))
		}
		return converted, nil
	}
	return data, nil
}

func (s *Source) fetchHTTP(ctx context.Context, locator string) ([]byte, error) {
	client := s.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return nil, NewResourceError(locator, "failed to create request", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.1")

	resp, err := client.Do(req)
	if err != nil {
		return nil, NewResourceError(locator, "request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, NewStatusError(locator, resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewResourceError(locator, "failed to read response body", err)
	}
	return data, nil
}

func (s *Source) fetchFile(locator string) ([]byte, error) {
	data, err := os.ReadFile(locator)
	if err != nil {
		return nil, NewResourceError(locator, "failed to read file", err)
	}
	return data, nil
}

func isYAML(locator string) bool {
	p := locator
	if i := strings.IndexAny(p, "?#"); i >= 0 && IsRemote(p) {
		p = p[:i]
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// yamlToJSON re-encodes a YAML document as JSON.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	normalized, err := normalizeYAML(doc)
	if err != nil {
		return nil, err
	}
	return json.Marshal(normalized)
}

// normalizeYAML converts map[any]any nodes, which encoding/json rejects,
// into map[string]any.
func normalizeYAML(v any) (any, error) {
	switch node := v.(type) {
	case map[string]any:
		for k, child := range node {
			n, err := normalizeYAML(child)
			if err != nil {
				return nil, err
			}
			node[k] = n
		}
		return node, nil
	case map[any]any:
		out := make(map[string]any, len(node))
		for k, child := range node {
			n, err := normalizeYAML(child)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(k)] = n
		}
		return out, nil
	case []any:
		for i, child := range node {
			n, err := normalizeYAML(child)
			if err != nil {
				return nil, err
			}
			node[i] = n
		}
		return node, nil
	default:
		return node, nil
	}
}
