// Package images picks a stock picture for recipes that have none.
package images

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed images.yaml
var defaultTable []byte

// Table maps title keywords to image URLs.
type Table struct {
	Default  string            `yaml:"default"`
	Keywords map[string]string `yaml:"keywords"`

	// ordered holds lowercased keywords, longest first, then alphabetical.
	ordered []string
}

// Parse decodes a YAML keyword table.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse image table: %w", err)
	}

	// Keys equal after lowercasing keep the value of the first key in byte order
	keys := make([]string, 0, len(t.Keywords))
	for kw := range t.Keywords {
		keys = append(keys, kw)
	}
	sort.Strings(keys)

	lowered := make(map[string]string, len(t.Keywords))
	for _, key := range keys {
		url := t.Keywords[key]
		kw := strings.ToLower(strings.TrimSpace(key))
		if kw == "" || url == "" {
			continue
		}
		if _, seen := lowered[kw]; seen {
			continue
		}
		lowered[kw] = url
		t.ordered = append(t.ordered, kw)
	}
	t.Keywords = lowered

	sort.Slice(t.ordered, func(i, j int) bool {
		a, b := t.ordered[i], t.ordered[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	return &t, nil
}

// Default returns the table embedded in the binary.
func Default() *Table {
	t, err := Parse(defaultTable)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the URL of the longest keyword contained in title, or the
// default URL when none matches.
func (t *Table) Lookup(title string) string {
	title = strings.ToLower(title)
	for _, kw := range t.ordered {
		if strings.Contains(title, kw) {
			return t.Keywords[kw]
		}
	}
	return t.Default
}
