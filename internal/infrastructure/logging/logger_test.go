package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewWithOutput(t *testing.T) {
	if l := New("nope"); l.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected info fallback, got %s", l.GetLevel())
	}

	var buf bytes.Buffer
	l := NewWithOutput("debug", &buf)
	if l.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug, got %s", l.GetLevel())
	}

	LogError(l, "import", "usecase", "submit_failed", logrus.Fields{"draft_id": "d-1"}, errors.New("boom"))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not json: %v (%s)", err, buf.String())
	}
	if line["msg"] != "[import][usecase] submit_failed" {
		t.Fatalf("unexpected msg %v", line["msg"])
	}
	if line["error"] != "boom" || line["draft_id"] != "d-1" || line["layer"] != "usecase" {
		t.Fatalf("missing fields: %v", line)
	}
}
