// Package query turns free-form user input into validated invocation
// requests against the catalog.
package query

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	operator  = "="
	separator = ","
)

var pairPattern = regexp.MustCompile(`^\s*([^\s=,]+)\s*=\s*([^=,]*[^\s=,])\s*$`)

// Recognizer parses and renders query text of the form
// "key = value, key = value".
type Recognizer struct{}

// ToKeyValues parses query text into a parameter map. Later occurrences of
// the same key win.
func (Recognizer) ToKeyValues(text string) (map[string]string, error) {
	result := make(map[string]string)
	for _, part := range strings.Split(text, separator) {
		m := pairPattern.FindStringSubmatch(part)
		if m == nil {
			return nil, fmt.Errorf("%q does not match the key %s value query pattern", strings.TrimSpace(part), operator)
		}
		result[m[1]] = m[2]
	}
	return result, nil
}

// ToText renders a parameter map back to query text with keys in sorted
// order.
func (Recognizer) ToText(keyValues map[string]string) string {
	keys := make([]string, 0, len(keyValues))
	for k := range keyValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s %s %s", k, operator, keyValues[k]))
	}
	return strings.Join(pairs, separator+" ")
}
