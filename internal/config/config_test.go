package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "greenmeans.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := newDefaults()

	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if time.Duration(cfg.Server.ShutdownTimeout) != 15*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 15s", time.Duration(cfg.Server.ShutdownTimeout))
	}
	if cfg.Database.Path != "data/greenmeans.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.Engine.BaseURL != "http://localhost:8000/api/v1" {
		t.Errorf("Engine.BaseURL = %q", cfg.Engine.BaseURL)
	}
	if cfg.Report.Enabled() {
		t.Error("reports enabled without an API key")
	}
	if cfg.Archive.Enabled() {
		t.Error("archive enabled without a bucket")
	}
	if !cfg.Archive.UseSSL {
		t.Error("UseSSL default = false, want true")
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
  read_timeout: 45s
engine:
  base_url: http://engine.internal:8000/api/v1
  timeout: 2m
report:
  model: gpt-4o
log:
  level: debug
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
	if time.Duration(cfg.Server.ReadTimeout) != 45*time.Second {
		t.Errorf("ReadTimeout = %v, want 45s", time.Duration(cfg.Server.ReadTimeout))
	}
	// Unspecified values keep defaults.
	if time.Duration(cfg.Server.WriteTimeout) != 30*time.Second {
		t.Errorf("WriteTimeout = %v, want default 30s", time.Duration(cfg.Server.WriteTimeout))
	}
	if cfg.Engine.BaseURL != "http://engine.internal:8000/api/v1" {
		t.Errorf("Engine.BaseURL = %q", cfg.Engine.BaseURL)
	}
	if time.Duration(cfg.Engine.Timeout) != 2*time.Minute {
		t.Errorf("Engine.Timeout = %v, want 2m", time.Duration(cfg.Engine.Timeout))
	}
	if cfg.Report.Model != "gpt-4o" {
		t.Errorf("Report.Model = %q", cfg.Report.Model)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestLoadFromFile_InvalidDuration(t *testing.T) {
	path := writeConfigFile(t, `
server:
  read_timeout: not-a-duration
`)

	_, err := LoadFromFile(path)
	if err == nil {
		t.Fatal("expected error for invalid duration")
	}
	if !strings.Contains(err.Error(), "invalid duration") {
		t.Errorf("error = %v, want invalid duration", err)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GREENMEANS_PORT", "7070")
	t.Setenv("GREENMEANS_DB_PATH", "/tmp/sessions.db")
	t.Setenv("GREENMEANS_ENGINE_URL", "http://override:8000")
	t.Setenv("GREENMEANS_ENGINE_TIMEOUT", "90s")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GREENMEANS_REPORT_MODEL", "gpt-4o")
	t.Setenv("GREENMEANS_LOG_LEVEL", "warn")

	cfg := newDefaults()
	applyEnvOverrides(cfg)

	if cfg.Server.Port != 7070 {
		t.Errorf("Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Database.Path != "/tmp/sessions.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.Engine.BaseURL != "http://override:8000" {
		t.Errorf("Engine.BaseURL = %q", cfg.Engine.BaseURL)
	}
	if time.Duration(cfg.Engine.Timeout) != 90*time.Second {
		t.Errorf("Engine.Timeout = %v, want 90s", time.Duration(cfg.Engine.Timeout))
	}
	if !cfg.Report.Enabled() || cfg.Report.APIKey != "sk-test" {
		t.Errorf("Report = %+v, want enabled with key", cfg.Report)
	}
	if cfg.Report.Model != "gpt-4o" {
		t.Errorf("Report.Model = %q", cfg.Report.Model)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestEnvOverrides_Archive(t *testing.T) {
	t.Setenv("GREENMEANS_ARCHIVE_ENDPOINT", "minio.internal:9000")
	t.Setenv("GREENMEANS_ARCHIVE_BUCKET", "submissions")
	t.Setenv("GREENMEANS_ARCHIVE_ACCESS_KEY", "ak")
	t.Setenv("GREENMEANS_ARCHIVE_SECRET_KEY", "sk")
	t.Setenv("GREENMEANS_ARCHIVE_USE_SSL", "false")

	cfg := newDefaults()
	applyEnvOverrides(cfg)

	if !cfg.Archive.Enabled() {
		t.Fatal("archive not enabled with bucket set")
	}
	if cfg.Archive.Endpoint != "minio.internal:9000" {
		t.Errorf("Endpoint = %q", cfg.Archive.Endpoint)
	}
	if cfg.Archive.UseSSL {
		t.Error("UseSSL = true, want false")
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("validate() = %v, want nil with credentials set", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := newDefaults()
	if err := cfg.validate(); err != nil {
		t.Errorf("validate() on defaults = %v", err)
	}

	cfg.Engine.BaseURL = ""
	if err := cfg.validate(); err == nil {
		t.Error("validate() passed with empty engine base_url")
	}

	cfg = newDefaults()
	cfg.Archive.Bucket = "submissions"
	if err := cfg.validate(); err == nil {
		t.Error("validate() passed with archive bucket but no credentials")
	}
}

func TestDurationYAMLRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)
	out, err := d.MarshalYAML()
	if err != nil {
		t.Fatal(err)
	}
	if out != "1m30s" {
		t.Errorf("MarshalYAML() = %v, want 1m30s", out)
	}
}
