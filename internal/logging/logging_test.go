package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"WARN", logrus.WarnLevel},
		{"", logrus.InfoLevel},
		{"loud", logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			log := New(tt.in, FormatText, &bytes.Buffer{})
			if log.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", log.GetLevel(), tt.want)
			}
		})
	}
}

func TestNew_InvalidLevelWarns(t *testing.T) {
	var buf bytes.Buffer
	New("loud", FormatText, &buf)
	if !strings.Contains(buf.String(), "invalid log level") {
		t.Errorf("expected warning, got %q", buf.String())
	}
}

func TestNew_JSONFormatWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", FormatJSON, &buf)

	WithRound(log, "r1", "salt-creek").Info("round started")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["round_id"] != "r1" || entry["course_id"] != "salt-creek" {
		t.Errorf("missing fields: %v", entry)
	}
	if entry["msg"] != "round started" {
		t.Errorf("msg = %v", entry["msg"])
	}
}

func TestWithHelpers(t *testing.T) {
	log := Discard()
	if got := WithCourse(log, "c").Data["course_id"]; got != "c" {
		t.Errorf("course_id = %v", got)
	}
	if got := WithKey(log, "k").Data["key"]; got != "k" {
		t.Errorf("key = %v", got)
	}
	if _, ok := WithRound(log, "r", "").Data["course_id"]; ok {
		t.Error("empty course id should not be tagged")
	}
}
