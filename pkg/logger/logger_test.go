package logger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"frame-inbox/pkg/logger"
)

func TestSetupLogger_WritesRotatedFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "frame-inbox.log")

	log, err := logger.SetupLogger(&logger.Config{
		Level:      "info",
		FormatJSON: true,
		Rotation:   logger.Rotation{File: file},
	})
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	log.Info("frames uploaded")
	log.Debug("hidden at info level")
	_ = log.Sync()

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	if !strings.Contains(string(data), `"msg":"frames uploaded"`) {
		t.Fatalf("expected info record in file, got %s", data)
	}

	if strings.Contains(string(data), "hidden at info level") {
		t.Fatalf("expected debug record to be filtered, got %s", data)
	}
}

func TestSetupLogger_InvalidLevel(t *testing.T) {
	if _, err := logger.SetupLogger(&logger.Config{Level: "loud"}); err == nil {
		t.Fatalf("expected err, got nil")
	}
}
