package render

import (
	"strings"
	"testing"

	"github.com/awsdsc/awsdsc/internal/dispatch"
)

func instanceResult() dispatch.InvocationResult {
	return dispatch.InvocationResult{
		TypeName: "AWS::EC2::Instance",
		Items: []map[string]any{
			{"InstanceId": "i-1", "State": "running"},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"", FormatJSON},
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
		{"YAML", FormatYAML},
		{"table", FormatTable},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseFormat("xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestRender_JSONContainsFields(t *testing.T) {
	out, err := Render(instanceResult(), FormatJSON)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "i-1") || !strings.Contains(out, "running") {
		t.Fatalf("rendered text missing fields:\n%s", out)
	}
}

func TestRender_SingleItemUnwrapped(t *testing.T) {
	out, err := Render(instanceResult(), FormatJSON)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "[") {
		t.Fatalf("single-element result should render as an object:\n%s", out)
	}
}

func TestRender_MultipleItemsAsArray(t *testing.T) {
	result := dispatch.InvocationResult{
		TypeName: "AWS::EC2::Instance",
		Items: []map[string]any{
			{"InstanceId": "i-1"},
			{"InstanceId": "i-2"},
		},
	}
	out, err := Render(result, FormatJSON)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), "[") {
		t.Fatalf("multi-element result should render as an array:\n%s", out)
	}
}

func TestRender_Idempotent(t *testing.T) {
	result := instanceResult()
	for _, f := range []Format{FormatJSON, FormatYAML, FormatTable} {
		first, err := Render(result, f)
		if err != nil {
			t.Fatalf("Render(%s): %v", f, err)
		}
		second, err := Render(result, f)
		if err != nil {
			t.Fatalf("Render(%s) second call: %v", f, err)
		}
		if first != second {
			t.Fatalf("%s rendering not idempotent", f)
		}
	}
}

func TestRender_YAML(t *testing.T) {
	out, err := Render(instanceResult(), FormatYAML)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "InstanceId: i-1") {
		t.Fatalf("yaml output missing field:\n%s", out)
	}
}

func TestRender_Table(t *testing.T) {
	result := dispatch.InvocationResult{
		TypeName: "AWS::EC2::Instance",
		Items: []map[string]any{
			{"InstanceId": "i-1", "State": "running"},
			{"InstanceId": "i-2", "Extra": "x"},
		},
	}
	out, err := Render(result, FormatTable)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, want := range []string{"i-1", "i-2", "running", "InstanceId", "Extra"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRender_EmptyItems(t *testing.T) {
	result := dispatch.InvocationResult{TypeName: "AWS::EC2::Vpc", Items: []map[string]any{}}
	out, err := Render(result, FormatJSON)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Fatalf("expected empty array, got:\n%s", out)
	}
}
