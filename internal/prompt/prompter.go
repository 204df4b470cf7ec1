// Package prompt drives the interactive resource-type and parameter prompt
// sequence. All reads block on terminal input; cancellation (Ctrl-C or EOF)
// aborts the sequence cleanly without dispatching.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/awsdsc/awsdsc/internal/catalog"
	"github.com/awsdsc/awsdsc/internal/query"
)

// ErrCancelled signals a user-initiated interrupt during prompting. It is a
// clean cancellation, not an error condition: callers skip dispatch and
// exit zero.
var ErrCancelled = errors.New("cancelled by user input")

var typePattern = regexp.MustCompile(`^AWS::[^\s:]+::[^\s:]+$`)

// LineReader reads one line of input, offering the given completion
// candidates. Implementations return ErrCancelled on user interrupt.
type LineReader interface {
	ReadLine(promptText string, completions []string) (string, error)
}

// CandidateSource supplies live completion values for a parameter.
// Implementations are best-effort: a nil or empty slice disables
// completion for that parameter.
type CandidateSource interface {
	Candidates(ctx context.Context, entry catalog.Entry, spec catalog.ParameterSpec) []string
}

// Prompter collects a validated invocation request interactively.
type Prompter struct {
	catalog    *catalog.Catalog
	resolver   *query.Resolver
	lines      LineReader
	candidates CandidateSource
	feedback   io.Writer
	logger     zerolog.Logger
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithCandidateSource enables live value completion during parameter
// prompts.
func WithCandidateSource(cs CandidateSource) Option {
	return func(p *Prompter) { p.candidates = cs }
}

// WithFeedbackWriter redirects validation feedback (default stderr).
func WithFeedbackWriter(w io.Writer) Option {
	return func(p *Prompter) { p.feedback = w }
}

// NewPrompter creates a prompter over the catalog and resolver, reading
// input through lines.
func NewPrompter(c *catalog.Catalog, r *query.Resolver, lines LineReader, logger zerolog.Logger, opts ...Option) *Prompter {
	p := &Prompter{
		catalog:  c,
		resolver: r,
		lines:    lines,
		feedback: os.Stderr,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PromptForRequest runs the full sequence: type selection, then one prompt
// per declared parameter, then resolution.
func (p *Prompter) PromptForRequest(ctx context.Context) (query.InvocationRequest, error) {
	entry, err := p.PromptType(ctx)
	if err != nil {
		return query.InvocationRequest{}, err
	}

	raw, err := p.PromptParameters(ctx, entry)
	if err != nil {
		return query.InvocationRequest{}, err
	}

	return p.resolver.Resolve(entry.TypeName, raw)
}

// PromptType asks for a resource type until the input names a catalog
// entry. Invalid selections re-prompt rather than failing the process.
func (p *Prompter) PromptType(ctx context.Context) (catalog.Entry, error) {
	names := p.catalog.TypeNames()
	for {
		if err := ctx.Err(); err != nil {
			return catalog.Entry{}, err
		}

		line, err := p.lines.ReadLine("Resource type> ", names)
		if err != nil {
			return catalog.Entry{}, err
		}

		typeName := trimmed(line)
		if !typePattern.MatchString(typeName) {
			fmt.Fprintln(p.feedback, "expected a type of the form AWS::SERVICE::DATA_TYPE")
			continue
		}

		entry, err := p.catalog.Lookup(typeName)
		if err != nil {
			fmt.Fprintln(p.feedback, err)
			continue
		}
		return entry, nil
	}
}

// PromptParameters asks for each declared parameter in order, re-prompting
// individually on validation failure. Empty input skips an optional
// parameter.
func (p *Prompter) PromptParameters(ctx context.Context, entry catalog.Entry) (map[string]string, error) {
	raw := make(map[string]string)
	for _, spec := range entry.Parameters {
		value, err := p.promptParameter(ctx, entry, spec)
		if err != nil {
			return nil, err
		}
		if value != "" {
			raw[spec.Name] = value
		}
	}
	return raw, nil
}

func (p *Prompter) promptParameter(ctx context.Context, entry catalog.Entry, spec catalog.ParameterSpec) (string, error) {
	completions := p.completionsFor(ctx, entry, spec)
	label := fmt.Sprintf("%s (%s)> ", spec.Name, parameterHint(spec))

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		line, err := p.lines.ReadLine(label, completions)
		if err != nil {
			return "", err
		}

		value := trimmed(line)
		if value == "" {
			if spec.Required {
				fmt.Fprintf(p.feedback, "parameter %s is required\n", spec.Name)
				continue
			}
			return "", nil
		}

		if err := query.ValidateValue(spec, value); err != nil {
			fmt.Fprintln(p.feedback, err)
			continue
		}
		return value, nil
	}
}

func (p *Prompter) completionsFor(ctx context.Context, entry catalog.Entry, spec catalog.ParameterSpec) []string {
	if spec.Kind == catalog.KindEnum {
		return spec.Enum
	}
	if p.candidates == nil || spec.Field == "" {
		return nil
	}
	values := p.candidates.Candidates(ctx, entry, spec)
	if len(values) == 0 {
		p.logger.Debug().Str("type", entry.TypeName).Str("parameter", spec.Name).Msg("no completion candidates")
	}
	return values
}

func parameterHint(spec catalog.ParameterSpec) string {
	hint := spec.Kind.String()
	if !spec.Required {
		hint += ", optional"
	}
	return hint
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
