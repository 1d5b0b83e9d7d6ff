package logger

import (
	"bytes"
	"strings"
	"testing"
)

func newTestLogger(level LogLevel) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(Config{Level: level, Output: &buf}), &buf
}

func TestLevelFiltering(t *testing.T) {
	log, buf := newTestLogger(WARN)

	log.Debugf("debug %d", 1)
	log.Infof("info %d", 2)
	log.Warnf("warn %d", 3)
	log.Errorf("error %d", 4)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Errorf("Expected debug and info to be filtered, got:\n%s", out)
	}
	if !strings.Contains(out, "[WARN] warn 3") {
		t.Errorf("Expected warn line, got:\n%s", out)
	}
	if !strings.Contains(out, "[ERROR] error 4") {
		t.Errorf("Expected error line, got:\n%s", out)
	}
}

func TestWithPrefixSharesSink(t *testing.T) {
	parent, buf := newTestLogger(INFO)
	child := parent.WithPrefix("[queue]").WithPrefix("req=1")

	child.Infof("added %s", "song")
	parent.SetLevel(ERROR)
	child.Infof("hidden")

	out := buf.String()
	if !strings.Contains(out, "[INFO] [queue] req=1 added song") {
		t.Errorf("Expected prefixed line, got:\n%s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected child to follow parent level, got:\n%s", out)
	}
}

func TestFatalExits(t *testing.T) {
	log, buf := newTestLogger(INFO)
	code := -1
	log.exit = func(c int) { code = c }

	log.Fatalf("boom")

	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "[FATAL] boom") {
		t.Errorf("Expected fatal line, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", DEBUG, false},
		{"INFO", INFO, false},
		{"", INFO, false},
		{"warning", WARN, false},
		{"error", ERROR, false},
		{"verbose", INFO, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNoColorWhenDisabled(t *testing.T) {
	log, buf := newTestLogger(DEBUG)
	log.Warnf("plain")
	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("Expected no ANSI codes, got %q", buf.String())
	}
}
