// Package catalog implements the static registry mapping AWS resource type
// names to their describe-operation descriptors. Entries are registered at
// startup and immutable afterwards.
package catalog

import (
	"fmt"
	"sort"
)

// ValueKind classifies how a parameter value is validated.
type ValueKind int

const (
	// KindText accepts any non-empty free-form value; surrounding
	// whitespace is trimmed at resolution time.
	KindText ValueKind = iota
	// KindEnum accepts only one of the values declared in ParameterSpec.Enum.
	KindEnum
	// KindList accepts one or more whitespace-separated elements.
	KindList
)

func (k ValueKind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindList:
		return "list"
	default:
		return "text"
	}
}

// ParameterSpec declares one parameter of a describe operation.
type ParameterSpec struct {
	Name     string
	Required bool
	Kind     ValueKind
	// Enum holds the allowed values when Kind is KindEnum.
	Enum []string
	// Field names the response record field whose values serve as
	// completion candidates for this parameter. Empty disables completion.
	Field string
}

// Entry identifies one describable resource type.
type Entry struct {
	// TypeName is the unique key, in AWS::Service::DataType form.
	TypeName  string
	Service   string
	Operation string
	// Parameters are declared in validation/prompt order.
	Parameters []ParameterSpec
}

// NotFoundError reports a type name with no registered entry.
type NotFoundError struct {
	TypeName string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unsupported resource type: %s", e.TypeName)
}

// Catalog holds the registered entries. Read-only after New.
type Catalog struct {
	entries map[string]Entry
	names   []string
}

// New builds a catalog from the given entries. Duplicate type names are a
// construction error.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if _, ok := c.entries[e.TypeName]; ok {
			return nil, fmt.Errorf("duplicate catalog entry: %s", e.TypeName)
		}
		c.entries[e.TypeName] = e
		c.names = append(c.names, e.TypeName)
	}
	sort.Strings(c.names)
	return c, nil
}

// Lookup returns the entry for typeName.
func (c *Catalog) Lookup(typeName string) (Entry, error) {
	e, ok := c.entries[typeName]
	if !ok {
		return Entry{}, &NotFoundError{TypeName: typeName}
	}
	return e, nil
}

// TypeNames returns all registered type names in alphabetical order.
func (c *Catalog) TypeNames() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of registered entries.
func (c *Catalog) Len() int { return len(c.entries) }
