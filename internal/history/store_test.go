package history

import (
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	s := testStore(t)

	id, err := s.Record("AWS::EC2::Instance", "InstanceId = i-1", "json", 1, "ok")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if id == "" {
		t.Fatal("expected assigned uuid")
	}
	if _, err := s.Record("AWS::S3::Bucket", "", "table", 12, "ok"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	invocations, err := s.List(0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(invocations) != 2 {
		t.Fatalf("got %d invocations, want 2", len(invocations))
	}
	for _, inv := range invocations {
		if inv.CreatedAt.IsZero() {
			t.Fatalf("invocation %s has no timestamp", inv.UUID)
		}
	}
}

func TestListLimit(t *testing.T) {
	s := testStore(t)
	for i := 0; i < 5; i++ {
		if _, err := s.Record("AWS::IAM::User", "", "json", i, "ok"); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	invocations, err := s.List(3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(invocations) != 3 {
		t.Fatalf("got %d invocations, want 3", len(invocations))
	}
}

func TestRecordFailureStatus(t *testing.T) {
	s := testStore(t)
	if _, err := s.Record("AWS::KMS::Key", "KeyId = nope", "json", 0, "error"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	invocations, err := s.List(1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if invocations[0].Status != "error" || invocations[0].ItemCount != 0 {
		t.Fatalf("unexpected invocation: %+v", invocations[0])
	}
}
