package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Name != "kodegend" {
		t.Errorf("expected server name 'kodegend', got %q", cfg.Server.Name)
	}
	if cfg.HTTP.Host != "mcp.kodegen.ai" {
		t.Errorf("expected host 'mcp.kodegen.ai', got %q", cfg.HTTP.Host)
	}
	if cfg.HTTP.NoTLS {
		t.Error("expected NoTLS to default to false")
	}
	if cfg.HTTP.MaxRetries != 1 {
		t.Errorf("expected max retries 1, got %d", cfg.HTTP.MaxRetries)
	}
	if cfg.Logging.LogFile != "kodegend.log" {
		t.Errorf("expected log file 'kodegend.log', got %q", cfg.Logging.LogFile)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := Load("")
	if err == nil {
		t.Error("expected error for empty path")
	}
	if err.Error() != "config path is required" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadNonExistentFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestLoadValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
server:
  name: "test-gateway"
  version: "1.0.0"

http:
  host: "upstream.example.com"
  no_tls: true
  max_retries: 5
  retry_backoff: "250ms"

tools:
  categories:
    - github
    - database
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Name != "test-gateway" {
		t.Errorf("expected server name 'test-gateway', got %q", cfg.Server.Name)
	}
	if cfg.HTTP.Host != "upstream.example.com" {
		t.Errorf("expected host 'upstream.example.com', got %q", cfg.HTTP.Host)
	}
	if !cfg.HTTP.NoTLS {
		t.Error("expected NoTLS to be true")
	}
	if cfg.HTTP.MaxRetries != 5 {
		t.Errorf("expected max retries 5, got %d", cfg.HTTP.MaxRetries)
	}
	if len(cfg.Tools.Categories) != 2 {
		t.Errorf("expected 2 categories, got %d", len(cfg.Tools.Categories))
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("tools:\n  categories: [a, b\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "empty server name",
			cfg:     Config{Server: ServerConfig{Name: ""}, HTTP: HTTPConfig{Host: "localhost"}},
			wantErr: true,
			errMsg:  "server.name is required",
		},
		{
			name:    "empty host",
			cfg:     Config{Server: ServerConfig{Name: "test"}, HTTP: HTTPConfig{Host: ""}},
			wantErr: true,
			errMsg:  "http.host is required",
		},
		{
			name:    "valid config",
			cfg:     Config{Server: ServerConfig{Name: "test"}, HTTP: HTTPConfig{Host: "localhost"}},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got nil")
				} else if err.Error() != tt.errMsg {
					t.Errorf("expected error %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConnectionTimeoutDuration(t *testing.T) {
	tests := []struct {
		name     string
		timeout  string
		expected time.Duration
	}{
		{"empty string", "", 30 * time.Second},
		{"valid duration", "20s", 20 * time.Second},
		{"invalid duration", "invalid", 30 * time.Second},
		{"milliseconds", "500ms", 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := HTTPConfig{ConnectionTimeout: tt.timeout}
			result := cfg.ConnectionTimeoutDuration()
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestRetryConfigDerivesFromHTTPConfig(t *testing.T) {
	h := HTTPConfig{MaxRetries: 4, RetryBackoff: "300ms", ConnectionTimeout: "5s"}
	rc := h.RetryConfig()
	if rc.MaxAttempts != 4 {
		t.Errorf("expected MaxAttempts 4, got %d", rc.MaxAttempts)
	}
	if rc.InitialBackoff != 300*time.Millisecond {
		t.Errorf("expected InitialBackoff 300ms, got %v", rc.InitialBackoff)
	}
	if rc.AttemptTimeout != 5*time.Second {
		t.Errorf("expected AttemptTimeout 5s, got %v", rc.AttemptTimeout)
	}
}

func TestLoadToolset(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "toolset.yaml")
	content := "tools:\n  - gh_list_repos\n  - db_query\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write toolset file: %v", err)
	}

	names, err := LoadToolset(path)
	if err != nil {
		t.Fatalf("failed to load toolset: %v", err)
	}
	if len(names) != 2 || names[0] != "gh_list_repos" || names[1] != "db_query" {
		t.Errorf("unexpected toolset contents: %v", names)
	}
}
