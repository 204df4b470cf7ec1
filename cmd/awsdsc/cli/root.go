// Package cli wires the describe pipeline behind the awsdsc command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	awsops "github.com/awsdsc/awsdsc/internal/aws"
	"github.com/awsdsc/awsdsc/internal/catalog"
	"github.com/awsdsc/awsdsc/internal/config"
	"github.com/awsdsc/awsdsc/internal/dispatch"
	"github.com/awsdsc/awsdsc/internal/logging"
	"github.com/awsdsc/awsdsc/internal/prompt"
	"github.com/awsdsc/awsdsc/internal/query"
	"github.com/awsdsc/awsdsc/internal/render"
)

type rootOptions struct {
	typeName  string
	queryText string
	format    string
	colorize  bool
	profile   string
	region    string
	showTypes bool
	debug     bool
}

// NewRootCommand builds the awsdsc command tree.
func NewRootCommand(version string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "awsdsc",
		Short: "Describe AWS resources by type name",
		Long: `awsdsc describes AWS resources addressed by CloudFormation-style type
names such as AWS::EC2::Instance. Type and query can be given as flags or
collected interactively with tab completion. All operations are read-only.`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.typeName, "type", "t", "", "resource type name (e.g. AWS::EC2::Instance)")
	cmd.Flags().StringVarP(&opts.queryText, "query", "q", "", `query string of the form "key = value, key = value"`)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: json, yaml or table")
	cmd.Flags().BoolVar(&opts.colorize, "colorize", true, "colorize json and yaml output")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "AWS shared config profile")
	cmd.Flags().StringVar(&opts.region, "region", "", "AWS region")
	cmd.Flags().BoolVar(&opts.showTypes, "show-supported-types", false, "list supported resource types and exit")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newHistoryCommand())
	return cmd
}

func runDescribe(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	level := cfg.LogLevel
	if opts.debug {
		level = "debug"
	}
	logger := logging.NewLogger(level)

	cat := catalog.Builtin()
	if opts.showTypes {
		for _, name := range cat.TypeNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}

	formatName := opts.format
	if formatName == "" {
		formatName = cfg.DefaultFormat
	}
	format, err := render.ParseFormat(formatName)
	if err != nil {
		return err
	}

	region := opts.region
	if region == "" {
		region = cfg.DefaultRegion
	}
	factory, err := awsops.NewClientFactory(ctx, awsops.Options{
		Profile:    opts.profile,
		Region:     region,
		RatePerSec: cfg.RateLimitPerService,
		CacheTTL:   time.Duration(cfg.CacheTTLSeconds) * time.Second,
	}, logger)
	if err != nil {
		return err
	}
	provider := awsops.NewProvider(factory)

	if opts.debug {
		if arn, account, _, err := factory.GetCallerIdentity(ctx); err == nil {
			logger.Debug().Str("arn", arn).Str("account", account).Msg("caller identity")
		} else {
			logger.Debug().Err(err).Msg("caller identity unavailable")
		}
	}

	req, queryText, err := buildRequest(ctx, opts, cat, provider, logger)
	if err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			fmt.Fprintln(os.Stderr, "cancelled")
			return nil
		}
		return err
	}

	dispatcher := dispatch.NewDispatcher(provider, logger)
	result, err := dispatcher.Execute(ctx, req)
	if err != nil {
		recordHistory(cfg, logger, req.Entry.TypeName, queryText, format, 0, "error")
		return err
	}

	out, err := render.Render(result, format)
	if err != nil {
		return err
	}
	if colorizeEnabled(cmd, opts, cfg) {
		text.EnableColors()
		out = render.Colorize(out, format)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)

	recordHistory(cfg, logger, result.TypeName, queryText, format, len(result.Items), "ok")
	return nil
}

// buildRequest assembles a validated request from the flags, prompting
// interactively for whatever the flags left out. Flag values always win over
// prompted ones.
func buildRequest(ctx context.Context, opts *rootOptions, cat *catalog.Catalog, provider *awsops.Provider, logger zerolog.Logger) (query.InvocationRequest, string, error) {
	resolver := query.NewResolver(cat)

	raw := make(map[string]string)
	if opts.queryText != "" {
		parsed, err := query.Recognizer{}.ToKeyValues(opts.queryText)
		if err != nil {
			return query.InvocationRequest{}, "", err
		}
		raw = parsed
	}

	var prompter *prompt.Prompter
	newPrompter := func() *prompt.Prompter {
		return prompt.NewPrompter(cat, resolver, prompt.TerminalLineReader{}, logger,
			prompt.WithCandidateSource(awsops.NewCandidateLister(provider, logger)))
	}

	typeName := opts.typeName
	if typeName == "" {
		if !stdinIsTerminal() {
			return query.InvocationRequest{}, "", errors.New("resource type required; pass --type or run on a terminal")
		}
		prompter = newPrompter()
		entry, err := prompter.PromptType(ctx)
		if err != nil {
			return query.InvocationRequest{}, "", err
		}
		typeName = entry.TypeName
	}

	entry, err := cat.Lookup(typeName)
	if err != nil {
		return query.InvocationRequest{}, "", err
	}

	if opts.queryText == "" && stdinIsTerminal() && len(entry.Parameters) > 0 {
		if prompter == nil {
			prompter = newPrompter()
		}
		prompted, err := prompter.PromptParameters(ctx, entry)
		if err != nil {
			return query.InvocationRequest{}, "", err
		}
		raw = prompted
	}

	req, err := resolver.Resolve(entry.TypeName, raw)
	if err != nil {
		return query.InvocationRequest{}, "", err
	}
	return req, query.Recognizer{}.ToText(req.Parameters), nil
}
