package aws

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/awsdsc/awsdsc/internal/catalog"
)

// CandidateLister suggests live parameter values during prompting by listing
// the resource's identifier field with an unfiltered describe call. Results
// land in the factory cache, so the dispatch that follows reuses them.
type CandidateLister struct {
	provider *Provider
	logger   zerolog.Logger
}

func NewCandidateLister(p *Provider, logger zerolog.Logger) *CandidateLister {
	return &CandidateLister{provider: p, logger: logger}
}

// Candidates returns the distinct values of the parameter's completion field
// across the current account. Listing is best effort; any failure yields no
// candidates rather than interrupting the prompt.
func (l *CandidateLister) Candidates(ctx context.Context, entry catalog.Entry, spec catalog.ParameterSpec) []string {
	if spec.Field == "" {
		return nil
	}

	items, err := l.provider.Call(ctx, entry.Service, entry.Operation, nil)
	if err != nil {
		l.logger.Debug().
			Err(err).
			Str("type", entry.TypeName).
			Str("parameter", spec.Name).
			Msg("candidate listing failed")
		return nil
	}

	seen := make(map[string]struct{})
	for _, item := range items {
		if v, ok := item[spec.Field].(string); ok && v != "" {
			seen[v] = struct{}{}
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
