package logging

import (
	"bytes"
	"testing"

	"github.com/megalamo/iconsync/pkg/iconsync"
)

func TestConsoleLogger_Verbose_WhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(true, &buf)

	logger.Verbose("test message: %s", "value")

	expected := "[VERBOSE] test message: value\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConsoleLogger_Verbose_WhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(false, &buf)

	logger.Verbose("test message")

	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

func TestConsoleLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(false, &buf)

	logger.Warn("cannot read %s: %v", "file.templ", "boom")

	expected := "Warning: cannot read file.templ: boom\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConsoleLogger_InfoAndError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(false, &buf)

	logger.Info("plain message")
	logger.Error("failed: %d", 7)

	expected := "plain message\n[ERROR] failed: 7\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

// Compile-time interface checks
var (
	_ iconsync.Logger = (*ConsoleLogger)(nil)
	_ iconsync.Logger = (*NullLogger)(nil)
)
