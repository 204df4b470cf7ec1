package query

import "testing"

func TestRecognizer_ToKeyValues(t *testing.T) {
	var rec Recognizer

	tests := []struct {
		name string
		text string
		want map[string]string
	}{
		{"single pair", "InstanceId=i-123", map[string]string{"InstanceId": "i-123"}},
		{"spaces around operator", " InstanceId = i-123 ", map[string]string{"InstanceId": "i-123"}},
		{"multiple pairs", "InstanceId=i-1,State=running", map[string]string{"InstanceId": "i-1", "State": "running"}},
		{"value with inner spaces", "InstanceId = i-1 i-2", map[string]string{"InstanceId": "i-1 i-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rec.ToKeyValues(tt.text)
			if err != nil {
				t.Fatalf("ToKeyValues(%q): %v", tt.text, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Fatalf("key %s: expected %q, got %q", k, v, got[k])
				}
			}
		})
	}
}

func TestRecognizer_ToKeyValues_Invalid(t *testing.T) {
	var rec Recognizer

	for _, text := range []string{"", "no-operator", "a=b=c", "=value", "key=", "a=b,,c=d"} {
		if _, err := rec.ToKeyValues(text); err == nil {
			t.Fatalf("expected parse error for %q", text)
		}
	}
}

func TestRecognizer_ToText(t *testing.T) {
	var rec Recognizer

	text := rec.ToText(map[string]string{"b": "2", "a": "1"})
	if text != "a = 1, b = 2" {
		t.Fatalf("expected sorted query text, got %q", text)
	}
}

func TestRecognizer_RoundTrip(t *testing.T) {
	var rec Recognizer

	orig := map[string]string{"GroupId": "sg-1", "GroupName": "web"}
	parsed, err := rec.ToKeyValues(rec.ToText(orig))
	if err != nil {
		t.Fatalf("round trip parse: %v", err)
	}
	for k, v := range orig {
		if parsed[k] != v {
			t.Fatalf("round trip lost %s=%s, got %q", k, v, parsed[k])
		}
	}
}
