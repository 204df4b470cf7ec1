// Package dispatch executes resolved invocation requests against a provider
// client and normalizes the responses.
package dispatch

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/awsdsc/awsdsc/internal/query"
)

// Provider is the external collaborator that performs the actual API call.
// Implementations return one normalized record per matching resource, with
// provider fields passed through unmodified. Retry and backoff live behind
// this interface, not in the dispatcher.
type Provider interface {
	Call(ctx context.Context, service, operation string, params map[string]string) ([]map[string]any, error)
}

// InvocationResult is the normalized response of one describe action.
type InvocationResult struct {
	TypeName string
	Items    []map[string]any
}

// ProviderError wraps any failure surfaced by the provider client. The
// underlying error is preserved verbatim.
type ProviderError struct {
	Service   string
	Operation string
	Err       error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Service, e.Operation, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Dispatcher runs one invocation at a time.
type Dispatcher struct {
	provider Provider
	logger   zerolog.Logger
}

// NewDispatcher creates a dispatcher over the given provider.
func NewDispatcher(p Provider, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{provider: p, logger: logger}
}

// Execute performs the request's describe operation and returns the
// normalized result. Provider failures are wrapped in ProviderError and
// never retried here.
func (d *Dispatcher) Execute(ctx context.Context, req query.InvocationRequest) (InvocationResult, error) {
	entry := req.Entry
	d.logger.Debug().
		Str("type", entry.TypeName).
		Str("service", entry.Service).
		Str("operation", entry.Operation).
		Int("params", len(req.Parameters)).
		Msg("dispatching describe")

	items, err := d.provider.Call(ctx, entry.Service, entry.Operation, req.Parameters)
	if err != nil {
		return InvocationResult{}, &ProviderError{
			Service:   entry.Service,
			Operation: entry.Operation,
			Err:       err,
		}
	}
	if items == nil {
		items = []map[string]any{}
	}

	d.logger.Debug().Str("type", entry.TypeName).Int("items", len(items)).Msg("describe complete")
	return InvocationResult{TypeName: entry.TypeName, Items: items}, nil
}
