package entrykit

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Header is a single HTTP header as an ordered (key, value) pair.
type Header struct {
	Key   string
	Value string
}

// HTTPConfig carries the settings needed to reach an HTTP(S) resource.
// Headers preserve insertion order; duplicate keys are allowed and sent in
// order by the downstream I/O layer.
type HTTPConfig struct {
	Headers []Header
}

// Values returns every value recorded for key, in insertion order.
func (c *HTTPConfig) Values(key string) []string {
	var vals []string
	for _, h := range c.Headers {
		if h.Key == key {
			vals = append(vals, h.Value)
		}
	}

	return vals
}

// HTTPEntry describes a resource behind an HTTP(S) URL. The URL is stored
// verbatim: URL correctness is deferred to the I/O layer.
type HTTPEntry struct {
	URL    string
	Config HTTPConfig
}

func (*HTTPEntry) entry() {}

// ParseHTTP wraps url and its access configuration as an HTTPEntry.
//
// With no config option the default configuration (no headers) is used.
// WithHTTPConfig values are used unchanged. WithHTTPConfigMap values are
// validated: the only recognized key is "headers", and every element must
// be a two-element (string, string) pair.
func ParseHTTP(url string, opts ...Option) (*HTTPEntry, error) {
	o := applyOptions(opts)

	cfg, err := normalizeHTTPConfig(o)
	if err != nil {
		return nil, err
	}

	return &HTTPEntry{URL: url, Config: *cfg}, nil
}

func normalizeHTTPConfig(o *parseOptions) (*HTTPConfig, error) {
	if o.httpConfig != nil {
		return o.httpConfig, nil
	}

	if o.httpConfigMap == nil {
		return &HTTPConfig{}, nil
	}

	cfg := &HTTPConfig{}
	for key, val := range o.httpConfigMap {
		if key != "headers" {
			return nil, &InvalidConfigError{Key: key, Message: "unrecognized key"}
		}

		headers, err := headerPairs(val)
		if err != nil {
			return nil, err
		}

		cfg.Headers = headers
	}

	return cfg, nil
}

// headerPairs validates a weakly-typed headers value: a sequence whose
// elements are each a two-element (string, string) pair.
func headerPairs(val any) ([]Header, error) {
	seq, ok := val.([]any)
	if !ok {
		if typed, isTyped := val.([]Header); isTyped {
			return typed, nil
		}

		return nil, &InvalidConfigError{
			Key:     "headers",
			Message: fmt.Sprintf("expected a sequence of string pairs, got %T", val),
		}
	}

	headers := make([]Header, 0, len(seq))
	for _, elem := range seq {
		pair, ok := elem.([]any)
		if !ok || len(pair) != 2 {
			return nil, &InvalidConfigError{Key: "headers", Message: "element not a string pair"}
		}

		k, kOK := pair[0].(string)
		v, vOK := pair[1].(string)
		if !kOK || !vOK {
			return nil, &InvalidConfigError{Key: "headers", Message: "element not a string pair"}
		}

		headers = append(headers, Header{Key: k, Value: v})
	}

	return headers, nil
}

// HTTPConfigFromYAML decodes an HTTP configuration from YAML, preserving
// header order as written in the document:
//
//	headers:
//	  Authorization: Bearer abc
//	  X-Request-Id: "42"
//
// A plain map decode would lose document order, so the yaml.Node API is
// walked directly.
func HTTPConfigFromYAML(data []byte) (*HTTPConfig, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &InvalidConfigError{Message: "malformed YAML", Err: err}
	}

	if len(doc.Content) == 0 {
		return &HTTPConfig{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &InvalidConfigError{Message: "expected a YAML mapping"}
	}

	cfg := &HTTPConfig{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		if keyNode.Value != "headers" {
			return nil, &InvalidConfigError{Key: keyNode.Value, Message: "unrecognized key"}
		}

		if valNode.Kind != yaml.MappingNode {
			return nil, &InvalidConfigError{Key: "headers", Message: "expected a mapping of header names to values"}
		}

		for j := 0; j+1 < len(valNode.Content); j += 2 {
			k, v := valNode.Content[j], valNode.Content[j+1]
			if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
				return nil, &InvalidConfigError{Key: "headers", Message: "element not a string pair"}
			}

			cfg.Headers = append(cfg.Headers, Header{Key: k.Value, Value: v.Value})
		}
	}

	return cfg, nil
}
