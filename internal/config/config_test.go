package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Port != "8080" {
		t.Errorf("default port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Limits.MaxUploadMB <= 0 {
		t.Error("expected a positive upload cap")
	}
	if !cfg.Defaults.GenerateTOC || !cfg.Defaults.AddPageNumbers {
		t.Error("expected both options enabled by default")
	}
	if cfg.Output.Filename != "professional_bundle.pdf" {
		t.Errorf("default filename = %q", cfg.Output.Filename)
	}
}

func TestMaxUploadBytes(t *testing.T) {
	cfg := &Config{Limits: LimitsConfig{MaxUploadMB: 2}}
	if got := cfg.MaxUploadBytes(); got != 2<<20 {
		t.Errorf("MaxUploadBytes() = %d, want %d", got, 2<<20)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written config: %v", err)
	}
	if !strings.Contains(string(data), "max_upload_mb") {
		t.Error("expected limits keys in starter config")
	}

	t.Run("refuses to overwrite", func(t *testing.T) {
		if err := WriteDefault(path); err == nil {
			t.Error("expected error for existing file")
		}
	})
}

func TestManager_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "server:\n  port: \"9090\"\nlimits:\n  max_upload_mb: 10\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cm, err := NewManager(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := cm.Get()
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Limits.MaxUploadMB != 10 {
		t.Errorf("max_upload_mb = %d, want 10", cfg.Limits.MaxUploadMB)
	}
	// Unset keys fall back to defaults.
	if cfg.Output.Filename != DefaultOutputFilename {
		t.Errorf("filename = %q, want default", cfg.Output.Filename)
	}
}
