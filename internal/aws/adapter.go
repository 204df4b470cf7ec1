// Package aws provides the AWS SDK v2 adapter layer: one typed client per
// catalog service behind a factory, with per-service rate limiting and TTL
// response caching. Credentials come from the SDK default chain (shared
// config, env, SSO), optionally narrowed by profile and region.
package aws

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/rs/zerolog"
)

// Options configures factory construction.
type Options struct {
	Profile    string
	Region     string
	RatePerSec int           // default 10
	CacheTTL   time.Duration // default 5m
}

// ClientFactory creates rate-limited AWS service clients over one resolved
// credential configuration.
type ClientFactory struct {
	cfg         aws.Config
	rateLimiter *RateLimiter
	cache       *ResponseCache
	logger      zerolog.Logger
}

// NewClientFactory resolves credentials through the SDK default chain and
// returns a factory over them.
func NewClientFactory(ctx context.Context, opts Options, logger zerolog.Logger) (*ClientFactory, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS configuration: %w", err)
	}
	return NewClientFactoryFromConfig(cfg, opts, logger), nil
}

// NewClientFactoryFromConfig builds a factory over an already-resolved
// configuration.
func NewClientFactoryFromConfig(cfg aws.Config, opts Options, logger zerolog.Logger) *ClientFactory {
	rate := opts.RatePerSec
	if rate <= 0 {
		rate = 10
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ClientFactory{
		cfg:         cfg,
		rateLimiter: NewRateLimiter(rate),
		cache:       NewResponseCache(ttl),
		logger:      logger,
	}
}

// Region returns the resolved region.
func (f *ClientFactory) Region() string { return f.cfg.Region }

// Cache returns the response cache for manual invalidation.
func (f *ClientFactory) Cache() *ResponseCache { return f.cache }

func (f *ClientFactory) logAPICall(service, operation string, err error) {
	evt := f.logger.Debug().Str("service", service).Str("operation", operation)
	if err != nil {
		evt = evt.Err(err)
	}
	evt.Msg("aws api call")
}

// --- Service client factories ---

func (f *ClientFactory) STSClient() *sts.Client { return sts.NewFromConfig(f.cfg) }

func (f *ClientFactory) EC2Client() *ec2.Client { return ec2.NewFromConfig(f.cfg) }

func (f *ClientFactory) S3Client() *s3.Client { return s3.NewFromConfig(f.cfg) }

func (f *ClientFactory) IAMClient() *iam.Client { return iam.NewFromConfig(f.cfg) }

func (f *ClientFactory) LambdaClient() *lambda.Client { return lambda.NewFromConfig(f.cfg) }

func (f *ClientFactory) KMSClient() *kms.Client { return kms.NewFromConfig(f.cfg) }

func (f *ClientFactory) SSMClient() *ssm.Client { return ssm.NewFromConfig(f.cfg) }

func (f *ClientFactory) SecretsManagerClient() *secretsmanager.Client {
	return secretsmanager.NewFromConfig(f.cfg)
}

func (f *ClientFactory) CloudTrailClient() *cloudtrail.Client {
	return cloudtrail.NewFromConfig(f.cfg)
}

func (f *ClientFactory) CloudWatchLogsClient() *cloudwatchlogs.Client {
	return cloudwatchlogs.NewFromConfig(f.cfg)
}

func (f *ClientFactory) RDSClient() *rds.Client { return rds.NewFromConfig(f.cfg) }

func (f *ClientFactory) DynamoDBClient() *dynamodb.Client { return dynamodb.NewFromConfig(f.cfg) }

// GetCallerIdentity performs sts:GetCallerIdentity, so operators can confirm
// which principal a describe runs as.
func (f *ClientFactory) GetCallerIdentity(ctx context.Context) (arn, account, userID string, err error) {
	f.rateLimiter.Wait("sts")
	f.logAPICall("sts", "GetCallerIdentity", nil)

	result, err := f.STSClient().GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		f.logAPICall("sts", "GetCallerIdentity", err)
		return "", "", "", fmt.Errorf("GetCallerIdentity: %w", err)
	}
	return aws.ToString(result.Arn), aws.ToString(result.Account), aws.ToString(result.UserId), nil
}

// --- Rate Limiter ---

// RateLimiter spaces out calls per service.
type RateLimiter struct {
	mu         sync.Mutex
	ratePerSec int
	lastCall   map[string]time.Time
}

func NewRateLimiter(ratePerSec int) *RateLimiter {
	return &RateLimiter{
		ratePerSec: ratePerSec,
		lastCall:   make(map[string]time.Time),
	}
}

// Wait blocks until the rate limit allows a call to the service.
func (rl *RateLimiter) Wait(service string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	minInterval := time.Second / time.Duration(rl.ratePerSec)
	if last, ok := rl.lastCall[service]; ok {
		if elapsed := time.Since(last); elapsed < minInterval {
			time.Sleep(minInterval - elapsed)
		}
	}
	rl.lastCall[service] = time.Now()
}

// --- Response Cache ---

type cacheEntry struct {
	data      any
	expiresAt time.Time
}

// ResponseCache provides in-memory TTL caching for read-only responses, so
// a candidate listing during prompting and the subsequent dispatch share
// one API call.
type ResponseCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

// Get retrieves a cached value. Returns false if not found or expired.
func (c *ResponseCache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.data, true
}

// Put stores a value in the cache.
func (c *ResponseCache) Put(key string, data any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &cacheEntry{data: data, expiresAt: time.Now().Add(c.ttl)}
}

// Clear removes all entries, optionally filtering by key prefix. Returns
// the number of entries removed.
func (c *ResponseCache) Clear(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	if prefix == "" {
		count = len(c.entries)
		c.entries = make(map[string]*cacheEntry)
		return count
	}
	for k := range c.entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(c.entries, k)
			count++
		}
	}
	return count
}
