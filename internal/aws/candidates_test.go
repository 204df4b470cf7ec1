package aws

import (
	"context"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/awsdsc/awsdsc/internal/catalog"
)

func TestCandidatesFromCachedResponse(t *testing.T) {
	f := testFactory()
	f.cache.Put(cacheKey("ec2", "DescribeInstances", nil), []map[string]any{
		{"InstanceId": "i-2"},
		{"InstanceId": "i-1"},
		{"InstanceId": "i-1"},
		{"State": "running"}, // no identifier field
	})

	lister := NewCandidateLister(NewProvider(f), zerolog.Nop())
	entry := catalog.Entry{TypeName: "AWS::EC2::Instance", Service: "ec2", Operation: "DescribeInstances"}
	spec := catalog.ParameterSpec{Name: "InstanceId", Field: "InstanceId"}

	got := lister.Candidates(context.Background(), entry, spec)
	if want := []string{"i-1", "i-2"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("candidates = %v, want %v", got, want)
	}
}

func TestCandidatesWithoutCompletionField(t *testing.T) {
	lister := NewCandidateLister(NewProvider(testFactory()), zerolog.Nop())
	entry := catalog.Entry{Service: "ec2", Operation: "DescribeInstances"}

	if got := lister.Candidates(context.Background(), entry, catalog.ParameterSpec{Name: "State"}); got != nil {
		t.Fatalf("expected nil for parameter without a completion field, got %v", got)
	}
}
