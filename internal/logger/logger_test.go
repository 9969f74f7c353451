package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Init("info", "json", &buf); err != nil {
		t.Fatalf("init: %v", err)
	}
	For("runner").WithField("job_id", "abc").Info("job done")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if line["message"] != "job done" || line["component"] != "runner" || line["job_id"] != "abc" {
		t.Fatalf("unexpected log line: %v", line)
	}
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	if err := Init("chatty", "json", nil); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestDebugFilteredAtInfo(t *testing.T) {
	var buf bytes.Buffer
	if err := Init("info", "text", &buf); err != nil {
		t.Fatalf("init: %v", err)
	}
	For("server").Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
