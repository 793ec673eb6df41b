package logger

import (
	"bytes"
	"os"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestLevels_NoPanic(t *testing.T) {
	out := captureStdout(t, func() {
		Info("TAG", "message")
		Success("TAG", "message")
		Warn("TAG", "message")
		Error("TAG", "message")
	})
	if out == "" {
		t.Error("expected log output")
	}
}

func TestBanner_NoPanic(t *testing.T) {
	out := captureStdout(t, func() {
		Banner("v1.0.0")
		Banner("")
	})
	if out == "" {
		t.Error("expected banner output")
	}
}

func TestSectionStatsServer_NoPanic(t *testing.T) {
	captureStdout(t, func() {
		Section("Test")
		Stats("key", 42)
		Server("127.0.0.1:13380")
	})
}
