// Package render formats normalized describe results for the terminal.
// Rendering is a pure function of its input; colorization is a separate
// post-processing step.
package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/awsdsc/awsdsc/internal/dispatch"
)

// Format selects the output style.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// ParseFormat maps user input to a Format. "yml" is accepted as an alias.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "table":
		return FormatTable, nil
	}
	return "", fmt.Errorf("unknown output format: %s", s)
}

// Render formats the result as text. A single-element result is unwrapped
// to the bare record for json and yaml output.
func Render(result dispatch.InvocationResult, format Format) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(unwrap(result.Items), "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding json: %w", err)
		}
		return string(data) + "\n", nil
	case FormatYAML:
		data, err := yaml.Marshal(unwrap(result.Items))
		if err != nil {
			return "", fmt.Errorf("encoding yaml: %w", err)
		}
		return string(data), nil
	case FormatTable:
		return renderTable(result), nil
	}
	return "", fmt.Errorf("unknown output format: %s", format)
}

// unwrap returns the bare record for single-element results, so a lone
// resource prints as one document instead of a one-element list.
func unwrap(items []map[string]any) any {
	if len(items) == 1 {
		return items[0]
	}
	return items
}

func renderTable(result dispatch.InvocationResult) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle(result.TypeName)

	cols := columnNames(result.Items)
	header := make(table.Row, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	t.AppendHeader(header)

	for _, item := range result.Items {
		row := make(table.Row, len(cols))
		for i, c := range cols {
			row[i] = cellValue(item[c])
		}
		t.AppendRow(row)
	}
	return t.Render() + "\n"
}

// columnNames is the sorted union of all field names across items, so the
// table is deterministic even when records differ in shape.
func columnNames(items []map[string]any) []string {
	seen := make(map[string]struct{})
	for _, item := range items {
		for k := range item {
			seen[k] = struct{}{}
		}
	}
	cols := make([]string, 0, len(seen))
	for k := range seen {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

func cellValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case map[string]any, []any:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	default:
		return fmt.Sprint(val)
	}
}
