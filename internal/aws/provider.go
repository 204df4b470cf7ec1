package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// operationFunc executes one describe-style API call and returns its raw
// records.
type operationFunc func(ctx context.Context, f *ClientFactory, params map[string]string) ([]map[string]any, error)

// operations maps "service/Operation" to its implementation. Every catalog
// entry must have a row here; dispatch is a table lookup, never reflection.
var operations = map[string]operationFunc{
	"ec2/DescribeInstances":      describeInstances,
	"ec2/DescribeSecurityGroups": describeSecurityGroups,
	"ec2/DescribeVpcs":           describeVpcs,
	"ec2/DescribeSnapshots":      describeSnapshots,
	"s3/ListBuckets":             listBuckets,
	"iam/ListUsers":              listIAMUsers,
	"iam/ListRoles":              listIAMRoles,
	"iam/ListPolicies":           listIAMPolicies,
	"lambda/ListFunctions":       listLambdaFunctions,
	"kms/ListKeys":               listKMSKeys,
	"ssm/DescribeParameters":     describeSSMParameters,
	"secretsmanager/ListSecrets": listSecrets,
	"cloudtrail/DescribeTrails":  describeTrails,
	"logs/DescribeLogGroups":     describeLogGroups,
	"rds/DescribeDBInstances":    describeDBInstances,
	"dynamodb/DescribeTable":     describeDynamoDBTables,
}

// SupportsOperation reports whether the operation table has a row for the
// given call.
func SupportsOperation(service, operation string) bool {
	_, ok := operations[service+"/"+operation]
	return ok
}

// Provider executes catalog operations against AWS. It implements the
// dispatcher's Provider interface.
type Provider struct {
	factory *ClientFactory
}

// NewProvider creates a provider over the factory.
func NewProvider(f *ClientFactory) *Provider {
	return &Provider{factory: f}
}

// Call runs the named operation. Responses are cached by call identity and
// parameters for the factory's TTL, and calls are rate limited per service.
func (p *Provider) Call(ctx context.Context, service, operation string, params map[string]string) ([]map[string]any, error) {
	op, ok := operations[service+"/"+operation]
	if !ok {
		return nil, fmt.Errorf("unsupported operation: %s %s", service, operation)
	}

	key := cacheKey(service, operation, params)
	if cached, ok := p.factory.cache.Get(key); ok {
		return cached.([]map[string]any), nil
	}

	p.factory.rateLimiter.Wait(service)
	p.factory.logAPICall(service, operation, nil)

	items, err := op(ctx, p.factory, params)
	if err != nil {
		p.factory.logAPICall(service, operation, err)
		return nil, err
	}

	p.factory.cache.Put(key, items)
	return items, nil
}

func cacheKey(service, operation string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(service)
	b.WriteString(":")
	b.WriteString(operation)
	for _, k := range keys {
		b.WriteString(":")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(params[k])
	}
	return b.String()
}

// toRecord converts an SDK response value into a field map via a JSON round
// trip, so every field the provider returns passes through unmodified.
func toRecord(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding response item: %w", err)
	}
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decoding response item: %w", err)
	}
	return record, nil
}

func toRecords[T any](items []T) ([]map[string]any, error) {
	records := make([]map[string]any, 0, len(items))
	for _, item := range items {
		r, err := toRecord(item)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// filterByField keeps records whose field equals want. An empty want keeps
// everything.
func filterByField(records []map[string]any, field, want string) []map[string]any {
	if want == "" {
		return records
	}
	out := make([]map[string]any, 0, len(records))
	for _, r := range records {
		if s, ok := r[field].(string); ok && s == want {
			out = append(out, r)
		}
	}
	return out
}
