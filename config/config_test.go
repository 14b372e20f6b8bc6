package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFindConfig_Explicit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	os.WriteFile(path, []byte("log_level: debug\n"), 0600)

	got, err := FindConfig(path)
	if err != nil {
		t.Fatalf("FindConfig(%q) error: %v", path, err)
	}
	if got != path {
		t.Errorf("FindConfig(%q) = %q, want %q", path, got, path)
	}
}

func TestFindConfig_ExplicitMissing(t *testing.T) {
	_, err := FindConfig("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("FindConfig with missing explicit path should error")
	}
}

func TestFindConfig_SearchPath(t *testing.T) {
	// When no config exists anywhere, should error
	// (Save and restore CWD to avoid finding the repo's config.yaml)
	dir := t.TempDir()
	orig, _ := os.Getwd()
	os.Chdir(dir)
	defer os.Chdir(orig)

	_, err := FindConfig("")
	if err == nil {
		t.Fatal("FindConfig(\"\") with no config files should error")
	}
}

func TestFindConfig_CWD(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("log_level: info\n"), 0600)

	orig, _ := os.Getwd()
	os.Chdir(dir)
	defer os.Chdir(orig)

	got, err := FindConfig("")
	if err != nil {
		t.Fatalf("FindConfig(\"\") error: %v", err)
	}
	if got != "config.yaml" {
		t.Errorf("FindConfig(\"\") = %q, want %q", got, "config.yaml")
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("delegate:\n  api_key: ${FINSAGE_TEST_KEY}\n"), 0600)
	os.Setenv("FINSAGE_TEST_KEY", "secret123")
	defer os.Unsetenv("FINSAGE_TEST_KEY")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Delegate.APIKey != "secret123" {
		t.Errorf("api_key = %q, want %q", cfg.Delegate.APIKey, "secret123")
	}
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("delegate:\n  enabled: true\n"), 0600)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.Delegate.Enabled {
		t.Error("delegate should be enabled")
	}
	if cfg.Delegate.Model != "gemini-2.0-flash" {
		t.Errorf("model = %q, want default", cfg.Delegate.Model)
	}
	if cfg.Store.Driver != "memory" {
		t.Errorf("store driver = %q, want memory", cfg.Store.Driver)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log_level = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_FullConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte(`
log_level: debug
delegate:
  enabled: true
  model: gemini-2.0-pro
  timeout_sec: 5
retrieval:
  threshold: 0.75
store:
  driver: sqlite
  path: /tmp/finsage.db
market_data:
  enabled: true
`), 0600)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Delegate.Model != "gemini-2.0-pro" {
		t.Errorf("model = %q", cfg.Delegate.Model)
	}
	if cfg.Delegate.Timeout() != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.Delegate.Timeout())
	}
	if cfg.Retrieval.Threshold != 0.75 {
		t.Errorf("threshold = %v", cfg.Retrieval.Threshold)
	}
	if cfg.Store.Driver != "sqlite" || cfg.Store.Path != "/tmp/finsage.db" {
		t.Errorf("store = %+v", cfg.Store)
	}
	if !cfg.MarketData.Enabled {
		t.Error("market_data should be enabled")
	}
}

func TestDelegateTimeout_Default(t *testing.T) {
	var d DelegateConfig
	if d.Timeout() != 20*time.Second {
		t.Errorf("zero timeout_sec should default to 20s, got %v", d.Timeout())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"trace", LevelTrace, false},
		{"debug", slog.LevelDebug, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"  debug  ", slog.LevelDebug, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLogLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestReplaceLogLevelNames(t *testing.T) {
	a := slog.Attr{Key: slog.LevelKey, Value: slog.AnyValue(LevelTrace)}
	got := ReplaceLogLevelNames(nil, a)
	if got.Value.String() != "TRACE" {
		t.Errorf("trace level rendered as %q, want TRACE", got.Value.String())
	}

	b := slog.Attr{Key: slog.LevelKey, Value: slog.AnyValue(slog.LevelInfo)}
	got = ReplaceLogLevelNames(nil, b)
	if got.Value.Any().(slog.Level) != slog.LevelInfo {
		t.Errorf("info level should pass through unchanged, got %v", got.Value)
	}
}
