package query

import (
	"fmt"
	"strings"

	"github.com/awsdsc/awsdsc/internal/catalog"
)

// InvocationRequest is a resolved, validated describe request. All required
// parameters of the referenced entry are present and non-empty.
type InvocationRequest struct {
	Entry      catalog.Entry
	Parameters map[string]string
}

// ValidationError reports the offending parameter and the reason the value
// was rejected.
type ValidationError struct {
	Parameter string
	Reason    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("parameter %s: %s", e.Parameter, e.Reason)
}

// Resolver validates raw parameters against catalog entries.
type Resolver struct {
	catalog *catalog.Catalog
}

// NewResolver creates a resolver over the given catalog.
func NewResolver(c *catalog.Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// Resolve looks up typeName and validates raw against the entry's declared
// parameters, in declared order. Raw keys not declared by the entry are
// dropped. Unknown type names propagate the catalog's NotFoundError.
func (r *Resolver) Resolve(typeName string, raw map[string]string) (InvocationRequest, error) {
	entry, err := r.catalog.Lookup(typeName)
	if err != nil {
		return InvocationRequest{}, err
	}

	params := make(map[string]string, len(entry.Parameters))
	for _, spec := range entry.Parameters {
		value, ok := raw[spec.Name]
		value = strings.TrimSpace(value)
		if !ok || value == "" {
			if spec.Required {
				return InvocationRequest{}, &ValidationError{
					Parameter: spec.Name,
					Reason:    "required parameter is missing or empty",
				}
			}
			continue
		}
		if err := ValidateValue(spec, value); err != nil {
			return InvocationRequest{}, err
		}
		params[spec.Name] = value
	}

	return InvocationRequest{Entry: entry, Parameters: params}, nil
}

// ValidateValue checks a single non-empty, trimmed value against its
// parameter spec. The prompter uses this to re-prompt on one parameter at a
// time.
func ValidateValue(spec catalog.ParameterSpec, value string) error {
	switch spec.Kind {
	case catalog.KindEnum:
		for _, allowed := range spec.Enum {
			if value == allowed {
				return nil
			}
		}
		return &ValidationError{
			Parameter: spec.Name,
			Reason:    fmt.Sprintf("%q is not one of [%s]", value, strings.Join(spec.Enum, ", ")),
		}
	case catalog.KindList:
		if len(strings.Fields(value)) == 0 {
			return &ValidationError{
				Parameter: spec.Name,
				Reason:    "list value has no elements",
			}
		}
	}
	return nil
}

// SplitList breaks a list-kind value into its elements.
func SplitList(value string) []string {
	return strings.Fields(value)
}
