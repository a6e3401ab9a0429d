package config

import (
	"testing"
	"time"
)

const testYAML = `
app:
  env: development
  server:
    cors: "https://a.example,https://b.example"
    http:
      read_timeout_seconds: 15
mail:
  port: 587
  enabled: true
  ratio: 0.5
`

func TestViperFromBytes(t *testing.T) {
	cfg, err := NewViperFromBytes("yaml", []byte(testYAML))
	if err != nil {
		t.Fatalf("new viper from bytes: %v", err)
	}

	if got := cfg.GetString("app.env"); got != "development" {
		t.Errorf("GetString = %q, want development", got)
	}
	if got := cfg.GetInt("mail.port"); got != 587 {
		t.Errorf("GetInt = %d, want 587", got)
	}
	if !cfg.GetBool("mail.enabled") {
		t.Error("GetBool = false, want true")
	}
	if got := cfg.GetFloat64("mail.ratio"); got != 0.5 {
		t.Errorf("GetFloat64 = %v, want 0.5", got)
	}
	if got := cfg.GetSecond("app.server.http.read_timeout_seconds"); got != 15*time.Second {
		t.Errorf("GetSecond = %v, want 15s", got)
	}

	arr := cfg.GetArray("app.server.cors")
	if len(arr) != 2 || arr[0] != "https://a.example" {
		t.Errorf("GetArray = %v", arr)
	}

	if got := cfg.GetString("does.not.exist"); got != "" {
		t.Errorf("missing key should be empty, got %q", got)
	}

	if err := cfg.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}

func TestViperFromBytesRequiresType(t *testing.T) {
	if _, err := NewViperFromBytes("  ", []byte("a: 1")); err == nil {
		t.Fatal("expected error for blank config type")
	}
}
