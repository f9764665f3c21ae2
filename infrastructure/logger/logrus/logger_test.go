package logrus

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	logger := New("info")

	if logger == nil {
		t.Error("New returned nil")
	}
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	logger := New("chatty")
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.Debug("should be suppressed", nil)
	logger.Info("should be emitted", nil)

	output := buf.String()
	if strings.Contains(output, "should be suppressed") {
		t.Error("debug output should be suppressed at the fallback level")
	}
	if !strings.Contains(output, "should be emitted") {
		t.Error("info output should be emitted at the fallback level")
	}
}

func TestLogger_EmitsMessageAndFields(t *testing.T) {
	logger := New("debug")
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.Warn("feed fetch failed", map[string]interface{}{
		"url": "https://example.com/feed.xml",
	})

	output := buf.String()
	if !strings.Contains(output, "feed fetch failed") {
		t.Errorf("output missing message: %s", output)
	}
	if !strings.Contains(output, "https://example.com/feed.xml") {
		t.Errorf("output missing field value: %s", output)
	}
}

func TestLogger_DebugSuppressedAtWarnLevel(t *testing.T) {
	logger := New("warn")
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.Debug("noise", nil)
	logger.Info("more noise", nil)
	logger.Error("signal", nil)

	output := buf.String()
	if strings.Contains(output, "noise") {
		t.Error("debug and info output should be suppressed at warn level")
	}
	if !strings.Contains(output, "signal") {
		t.Error("error output should be emitted at warn level")
	}
}

func TestLogger_NilFields(t *testing.T) {
	logger := New("debug")
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.Info("no fields", nil)

	if !strings.Contains(buf.String(), "no fields") {
		t.Error("logging with nil fields should still emit the message")
	}
}
