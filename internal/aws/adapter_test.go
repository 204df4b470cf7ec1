package aws

import (
	"testing"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/rs/zerolog"
)

func testFactory() *ClientFactory {
	cfg := sdkaws.Config{Region: "us-east-1"}
	return NewClientFactoryFromConfig(cfg, Options{}, zerolog.Nop())
}

func TestFactoryDefaults(t *testing.T) {
	f := testFactory()
	if f.Region() != "us-east-1" {
		t.Fatalf("region = %q", f.Region())
	}
	if f.rateLimiter == nil || f.cache == nil {
		t.Fatal("rate limiter and cache must be initialized")
	}
}

func TestFactoryClients(t *testing.T) {
	f := testFactory()
	if f.EC2Client() == nil || f.S3Client() == nil || f.IAMClient() == nil {
		t.Fatal("nil service client")
	}
	if f.LambdaClient() == nil || f.KMSClient() == nil || f.SSMClient() == nil {
		t.Fatal("nil service client")
	}
	if f.SecretsManagerClient() == nil || f.CloudTrailClient() == nil || f.CloudWatchLogsClient() == nil {
		t.Fatal("nil service client")
	}
	if f.RDSClient() == nil || f.DynamoDBClient() == nil || f.STSClient() == nil {
		t.Fatal("nil service client")
	}
}

func TestResponseCache(t *testing.T) {
	cache := NewResponseCache(time.Minute)

	if _, ok := cache.Get("ec2:DescribeInstances"); ok {
		t.Fatal("expected miss on empty cache")
	}

	cache.Put("ec2:DescribeInstances", []map[string]any{{"InstanceId": "i-1"}})
	got, ok := cache.Get("ec2:DescribeInstances")
	if !ok {
		t.Fatal("expected hit")
	}
	items := got.([]map[string]any)
	if len(items) != 1 || items[0]["InstanceId"] != "i-1" {
		t.Fatalf("unexpected cached value: %v", items)
	}
}

func TestResponseCacheExpiry(t *testing.T) {
	cache := NewResponseCache(10 * time.Millisecond)
	cache.Put("s3:ListBuckets", "data")

	time.Sleep(20 * time.Millisecond)
	if _, ok := cache.Get("s3:ListBuckets"); ok {
		t.Fatal("expected entry to expire")
	}
}

func TestResponseCacheClear(t *testing.T) {
	cache := NewResponseCache(time.Minute)
	cache.Put("ec2:DescribeInstances", "a")
	cache.Put("ec2:DescribeVpcs", "b")
	cache.Put("s3:ListBuckets", "c")

	if n := cache.Clear("ec2:"); n != 2 {
		t.Fatalf("Clear(ec2:) removed %d entries, want 2", n)
	}
	if _, ok := cache.Get("s3:ListBuckets"); !ok {
		t.Fatal("unrelated entry should survive a prefixed clear")
	}

	if n := cache.Clear(""); n != 1 {
		t.Fatalf("Clear() removed %d entries, want 1", n)
	}
}

func TestRateLimiterSpacesCalls(t *testing.T) {
	rl := NewRateLimiter(100) // 10ms between calls

	start := time.Now()
	rl.Wait("ec2")
	rl.Wait("ec2")
	rl.Wait("ec2")
	elapsed := time.Since(start)

	if elapsed < 20*time.Millisecond {
		t.Fatalf("three calls completed in %v, want at least 20ms", elapsed)
	}
}

func TestRateLimiterIndependentServices(t *testing.T) {
	rl := NewRateLimiter(1) // 1s between calls to the same service

	start := time.Now()
	rl.Wait("ec2")
	rl.Wait("s3")
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("different services should not block each other, took %v", elapsed)
	}
}
