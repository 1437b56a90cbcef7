package logx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want zerolog.Level
	}{
		{raw: "TRACE", want: zerolog.TraceLevel},
		{raw: "debug", want: zerolog.DebugLevel},
		{raw: " info ", want: zerolog.InfoLevel},
		{raw: "WARNING", want: zerolog.WarnLevel},
		{raw: "error", want: zerolog.ErrorLevel},
		{raw: "", want: zerolog.InfoLevel},
		{raw: "verbose", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.raw, zerolog.InfoLevel); got != tt.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestNopLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var zero Logger
	zero.Info("no sink")

	log := Nop().With(String("k", "v"))
	log.Error("still nothing", Err(nil))
}

func TestServiceFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skill.log")

	svc, log := New(Config{
		Level: "INFO",
		File:  FileConfig{Enabled: true, Path: path},
	})

	log.Info("hello", String("intent", "WEATHER__INTENT"))
	log.Debug("filtered out")
	if err := svc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, `"intent":"WEATHER__INTENT"`) {
		t.Fatalf("structured field missing: %s", out)
	}
	if strings.Contains(out, "filtered out") {
		t.Fatalf("debug line written at INFO level: %s", out)
	}
}

func TestServiceApplySwapsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skill.log")

	svc, log := New(Config{
		Level: "ERROR",
		File:  FileConfig{Enabled: true, Path: path},
	})
	defer svc.Close()

	if log.Enabled(LevelInfo) {
		t.Fatal("info enabled at ERROR level")
	}

	svc.Apply(Config{Level: "DEBUG", File: FileConfig{Enabled: true, Path: path}})

	if !log.Enabled(LevelDebug) {
		t.Fatal("debug not enabled after Apply")
	}
}

func TestThrottledDropsOverLimit(t *testing.T) {
	t.Parallel()

	th := NewThrottled(Nop(), 1)

	for i := 0; i < 100; i++ {
		th.Warn("spam")
	}
	if th.dropped.Load() == 0 {
		t.Fatal("no events dropped at 1/s")
	}
}
