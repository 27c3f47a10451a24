package core

import (
	"fmt"
	"net/url"
	"strings"
)

// Attribute names the single request field a caller may set.
type Attribute int

const (
	// AttrNone marks endpoints that accept neither a body nor query parameters.
	AttrNone Attribute = iota
	// AttrData marks body-bearing endpoints.
	AttrData
	// AttrParams marks query-bearing endpoints.
	AttrParams
)

// String returns the attribute name ("none", "data" or "params").
func (a Attribute) String() string {
	if a < AttrNone || a > AttrParams {
		return "unknown"
	}
	return [...]string{"none", "data", "params"}[a]
}

// Endpoint describes one REST operation. Values are immutable: they are
// copied, never shared by pointer.
type Endpoint struct {
	Op             Operation `json:"op"`
	Template       string    `json:"template" validate:"required"`
	Method         string    `json:"method" validate:"required,oneof=GET POST PUT PATCH DELETE"`
	ExpectedStatus int       `json:"expected_status" validate:"min=100,max=599"`
	Attribute      Attribute `json:"attribute" validate:"min=0,max=2"`
	// FixtureKey links the endpoint to an example response. Empty when the
	// endpoint has none.
	FixtureKey string `json:"fixture_key,omitempty"`
}

// Name returns the operation name used in errors and logs.
func (e Endpoint) Name() string {
	return e.Op.String()
}

// Validate checks the descriptor fields and the template syntax.
func (e Endpoint) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("endpoint %s: %w", e.Name(), err)
	}
	if _, err := parsePlaceholders(e.Template); err != nil {
		return fmt.Errorf("endpoint %s: %w", e.Name(), err)
	}
	return nil
}

// Placeholders returns the placeholder names of the template in order of
// appearance. Malformed templates yield the names parsed so far.
func (e Endpoint) Placeholders() []string {
	names, _ := parsePlaceholders(e.Template)
	return names
}

// Render substitutes every placeholder with its path-escaped identifier.
// A missing or empty identifier is a configuration error.
func (e Endpoint) Render(ids PathParams) (string, error) {
	var b strings.Builder
	rest := e.Template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", NewConfigurationError(e.Name(), rest[open+1:])
		}
		name := rest[open+1 : open+end]
		value := ids[name]
		if value == "" {
			return "", NewConfigurationError(e.Name(), name)
		}
		b.WriteString(rest[:open])
		b.WriteString(url.PathEscape(value))
		rest = rest[open+end+1:]
	}
}

func parsePlaceholders(template string) ([]string, error) {
	var names []string
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			if strings.IndexByte(rest, '}') >= 0 {
				return names, fmt.Errorf("unbalanced '}' in template %q", template)
			}
			return names, nil
		}
		if strings.IndexByte(rest[:open], '}') >= 0 {
			return names, fmt.Errorf("unbalanced '}' in template %q", template)
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return names, fmt.Errorf("unterminated placeholder in template %q", template)
		}
		name := rest[open+1 : open+end]
		if name == "" || strings.ContainsAny(name, "{/") {
			return names, fmt.Errorf("invalid placeholder %q in template %q", name, template)
		}
		names = append(names, name)
		rest = rest[open+end+1:]
	}
}
