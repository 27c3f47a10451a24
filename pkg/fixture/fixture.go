// Package fixture holds literal example responses keyed by endpoint. The
// examples document each endpoint and serve as golden values in tests.
package fixture

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
)

// Fixture is one literal example response.
type Fixture struct {
	Key      string
	Response []byte
}

// Table is a read-only set of fixtures. It is safe for concurrent use.
type Table struct {
	fixtures map[string][]byte
}

// NewTable builds a table from literal JSON documents, stored byte for
// byte. A document that is not valid JSON is an error.
func NewTable(literals map[string]string) (*Table, error) {
	fixtures := make(map[string][]byte, len(literals))
	for key, literal := range literals {
		raw := []byte(strings.TrimSpace(literal))
		if !sonic.Valid(raw) {
			return nil, fmt.Errorf("fixture %q: invalid JSON", key)
		}
		fixtures[key] = raw
	}
	return &Table{fixtures: fixtures}, nil
}

// MustTable is like NewTable but panics on error. It is meant for
// package-level tables built from literals.
func MustTable(literals map[string]string) *Table {
	t, err := NewTable(literals)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the fixture stored under key. The returned bytes are a
// copy, so callers cannot alter the table. A miss is not an error.
func (t *Table) Lookup(key string) (Fixture, bool) {
	if t == nil {
		return Fixture{}, false
	}
	raw, ok := t.fixtures[key]
	if !ok {
		return Fixture{}, false
	}
	return Fixture{Key: key, Response: slices.Clone(raw)}, true
}

// Decode unmarshals the fixture stored under key into v. It reports false
// without error when the key is absent.
func (t *Table) Decode(key string, v any) (bool, error) {
	f, ok := t.Lookup(key)
	if !ok {
		return false, nil
	}
	if err := sonic.Unmarshal(f.Response, v); err != nil {
		return true, fmt.Errorf("decode fixture %q: %w", key, err)
	}
	return true, nil
}

// Keys returns the fixture keys in sorted order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.fixtures))
	for k := range t.fixtures {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of fixtures.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.fixtures)
}
