package skill

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stranac/voice-skill-sdk/responses"
)

func writeRuntimeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skill.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNewRuntime(t *testing.T) {
	path := writeRuntimeConfig(t, `
skill:
  id: skill:weather
  version: "1.2.0"
logging:
  level: ERROR
  console: false
`)

	rt, err := NewRuntime(path)
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}
	defer rt.Stop()

	if got := rt.Skill().ID(); got != "skill:weather" {
		t.Fatalf("ID = %q", got)
	}
	cfg := rt.Config()
	if cfg == nil || cfg.Skill.Version != "1.2.0" {
		t.Fatalf("Config = %+v", cfg)
	}

	// The runtime skill dispatches like a hand-built one.
	err = rt.Skill().OnIntent("PING", func(ctx context.Context, req *Request) (responses.Response, error) {
		return responses.TellText("pong"), nil
	})
	if err != nil {
		t.Fatalf("OnIntent: %v", err)
	}
	if res := TestIntent(rt.Skill(), "PING"); !res.OK() || res.Response.Text != "pong" {
		t.Fatalf("result = %+v", res)
	}
}

func TestNewRuntimeRejectsBadConfig(t *testing.T) {
	path := writeRuntimeConfig(t, "skill:\n  version: \"1.0\"\n")

	if _, err := NewRuntime(path); err == nil {
		t.Fatal("config without skill.id accepted")
	}
}

func TestRuntimeStartStop(t *testing.T) {
	path := writeRuntimeConfig(t, "skill:\n  id: skill:test\nlogging:\n  console: false\n")

	rt, err := NewRuntime(path)
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	rt.Start(ctx)
	defer cancel()

	updates := rt.updates
	if updates == nil {
		t.Fatal("Start did not subscribe to config updates")
	}

	rt.Stop()

	// Stop unsubscribes, which closes the channel.
	select {
	case _, ok := <-updates:
		if ok {
			t.Fatal("update delivered after Stop")
		}
	default:
		t.Fatal("updates channel still open after Stop")
	}
	if rt.updates != nil {
		t.Fatal("subscription not cleared")
	}
}
