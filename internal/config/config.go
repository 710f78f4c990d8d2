package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kodegen/mcp-stdio-gateway/internal/upstream"
	"github.com/kodegen/mcp-stdio-gateway/internal/yamlcore"
)

const (
	// WorkspaceDirName is the directory name for project-level gateway config.
	WorkspaceDirName = ".kodegen"
	// WorkspaceConfigFile is the config file name inside the workspace directory.
	WorkspaceConfigFile = "config.yaml"
	// MaxSearchDepth limits how many parent directories to walk when discovering a workspace.
	MaxSearchDepth = 10
)

// WorkspaceOptions controls workspace discovery behavior.
type WorkspaceOptions struct {
	// Disable skips workspace discovery entirely (--no-workspace flag).
	Disable bool
	// ExplicitDir uses this directory as workspace root instead of walking up (--workspace-dir flag).
	ExplicitDir string
}

// Config captures all tunable settings for the stdio gateway.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	HTTP    HTTPConfig    `yaml:"http"`
	Logging LoggingConfig `yaml:"logging"`
	Tools   ToolsConfig   `yaml:"tools"`
}

type ServerConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// LoggingConfig controls where structured logs go. Stdio mode always
// requires a log file since stderr would interfere with MCP framing.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// HTTPConfig configures how the gateway dials each category's upstream
// MCP server.
type HTTPConfig struct {
	Host              string `yaml:"host"`
	NoTLS             bool   `yaml:"no_tls"`
	ConnectionTimeout string `yaml:"connection_timeout"`
	MaxRetries        int    `yaml:"max_retries"`
	RetryBackoff      string `yaml:"retry_backoff"`
}

// RetryConfig derives an upstream.RetryConfig from the configured timeouts,
// falling back to upstream.DefaultRetryConfig for any field left at zero.
func (h HTTPConfig) RetryConfig() upstream.RetryConfig {
	cfg := upstream.DefaultRetryConfig()
	if h.MaxRetries > 0 {
		cfg.MaxAttempts = h.MaxRetries
	}
	if d, err := time.ParseDuration(h.RetryBackoff); err == nil && d > 0 {
		cfg.InitialBackoff = d
	}
	if d, err := time.ParseDuration(h.ConnectionTimeout); err == nil && d > 0 {
		cfg.AttemptTimeout = d
	}
	return cfg
}

// ToolsConfig selects which tools/categories/toolset the gateway enables.
// Exactly one selection mechanism is expected to be set. cmd/kodegend does
// not read these fields; it selects tools from its own --tool, --tools and
// --toolset flags.
type ToolsConfig struct {
	Tools      []string `yaml:"tools"`
	Categories []string `yaml:"categories"`
	ToolsetPath string  `yaml:"toolset_path"`
}

// DefaultConfig provides reasonable defaults for local development.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Name:    "kodegend",
			Version: "0.1.0",
		},
		HTTP: HTTPConfig{
			Host:              "mcp.kodegen.ai",
			NoTLS:             false,
			ConnectionTimeout: "30s",
			MaxRetries:        1,
			RetryBackoff:      "100ms",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "kodegend.log",
		},
	}
}

// Load reads YAML config from disk and overlays defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, errors.New("config path is required")
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	if err := yamlcore.Decode(f, &cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// DiscoverWorkspace walks up from startDir looking for a .kodegen/config.yaml file.
// Returns the workspace root directory (parent of .kodegen/) or empty string if not found.
func DiscoverWorkspace(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving start directory: %w", err)
	}

	for i := 0; i < MaxSearchDepth; i++ {
		candidate := filepath.Join(dir, WorkspaceDirName, WorkspaceConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", nil
}

// LoadWithWorkspace implements multi-layer config merge:
//
//	DefaultConfig() <- .kodegen/config.yaml <- explicit --config <- CLI flags
//
// Returns the merged config and the workspace directory (empty if none found).
func LoadWithWorkspace(explicitConfig string, opts WorkspaceOptions) (Config, string, error) {
	cfg := DefaultConfig()
	wsDir := ""

	// Layer 1: Workspace config (if not disabled)
	if !opts.Disable {
		var err error
		if opts.ExplicitDir != "" {
			candidate := filepath.Join(opts.ExplicitDir, WorkspaceDirName, WorkspaceConfigFile)
			if _, statErr := os.Stat(candidate); statErr == nil {
				wsDir = opts.ExplicitDir
			}
		} else {
			cwd, cwdErr := os.Getwd()
			if cwdErr != nil {
				return cfg, "", fmt.Errorf("getting working directory: %w", cwdErr)
			}
			wsDir, err = DiscoverWorkspace(cwd)
			if err != nil {
				return cfg, "", fmt.Errorf("discovering workspace: %w", err)
			}
		}

		if wsDir != "" {
			wsConfigPath := filepath.Join(wsDir, WorkspaceDirName, WorkspaceConfigFile)
			if err := decodeInto(wsConfigPath, &cfg); err != nil {
				return cfg, "", fmt.Errorf("parsing workspace config %s: %w", wsConfigPath, err)
			}
			cfg = resolveWorkspacePaths(cfg, wsDir)
		}
	}

	// Layer 2: Explicit config file (--config flag)
	if explicitConfig != "" {
		if err := decodeInto(explicitConfig, &cfg); err != nil {
			return cfg, wsDir, fmt.Errorf("parsing explicit config %s: %w", explicitConfig, err)
		}
	}

	return cfg, wsDir, cfg.Validate()
}

func decodeInto(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	defer f.Close()
	return yamlcore.Decode(f, cfg)
}

// LoadToolset reads a YAML toolset file of the shape "tools: [name, ...]"
// and returns the listed tool names, unresolved against the registry; the
// caller validates every name before any network activity.
func LoadToolset(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading toolset %s: %w", path, err)
	}
	defer f.Close()

	var doc struct {
		Tools []string `yaml:"tools"`
	}
	if err := yamlcore.Decode(f, &doc); err != nil {
		return nil, fmt.Errorf("parsing toolset %s: %w", path, err)
	}
	return doc.Tools, nil
}

// InitWorkspace creates a .kodegen/ directory with a template config at root.
func InitWorkspace(root string) error {
	wsDir := filepath.Join(root, WorkspaceDirName)

	if _, err := os.Stat(wsDir); err == nil {
		return fmt.Errorf("workspace directory already exists: %s", wsDir)
	}

	if err := os.MkdirAll(wsDir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", wsDir, err)
	}

	templateConfig := `# kodegen stdio gateway project-level configuration
# Values here override defaults but are overridden by --config and CLI flags.

# http:
#   host: mcp.kodegen.ai
#   no_tls: false
#   max_retries: 3
#   retry_backoff: "200ms"

# tools:
#   categories:
#     - github
#     - database
`
	configPath := filepath.Join(wsDir, WorkspaceConfigFile)
	if err := os.WriteFile(configPath, []byte(templateConfig), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}

	gitignoreContent := "# Runtime data (logs) - do not version control\n*.log\n"
	gitignorePath := filepath.Join(wsDir, ".gitignore")
	if err := os.WriteFile(gitignorePath, []byte(gitignoreContent), 0644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	return nil
}

// resolveWorkspacePaths resolves relative paths in the config against the workspace directory.
func resolveWorkspacePaths(cfg Config, wsDir string) Config {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(wsDir, p)
	}

	cfg.Logging.LogFile = resolve(cfg.Logging.LogFile)
	cfg.Tools.ToolsetPath = resolve(cfg.Tools.ToolsetPath)
	return cfg
}

// Validate ensures required fields exist so the server can start deterministically.
func (c *Config) Validate() error {
	if c.Server.Name == "" {
		return errors.New("server.name is required")
	}
	if c.HTTP.Host == "" {
		return errors.New("http.host is required")
	}
	return nil
}

// ConnectionTimeoutDuration returns the parsed connection timeout with a sane default.
func (h HTTPConfig) ConnectionTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(h.ConnectionTimeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}
