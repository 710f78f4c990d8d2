// Command kodegend is the stdio-facing MCP gateway: it terminates a single
// MCP connection over stdin/stdout and forwards tool calls to the fixed set
// of per-category upstream MCP servers, rewriting session ids and
// recovering from expired upstream sessions along the way.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/kodegen/mcp-stdio-gateway/internal/config"
	"github.com/kodegen/mcp-stdio-gateway/internal/metrics"
	"github.com/kodegen/mcp-stdio-gateway/internal/proxy"
	"github.com/kodegen/mcp-stdio-gateway/internal/registry"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath   = flag.String("config", "", "Path to the gateway config file (overrides workspace config)")
		noWorkspace  = flag.Bool("no-workspace", false, "Disable .kodegen/ workspace discovery")
		workspaceDir = flag.String("workspace-dir", "", "Explicit workspace root (skip walk-up discovery)")
		initWS       = flag.Bool("init-workspace", false, "Create .kodegen/ template in current directory and exit")

		toolFlag      = flag.String("tool", "", "Tool name to enable (a comma-separated list enables several)")
		toolsFlag     = flag.String("tools", "", "Comma-separated list of tool names to enable")
		toolsetFlag   = flag.String("toolset", "", "Path to a YAML toolset file listing tool names to enable")
		listTools     = flag.Bool("list-tools", false, "Print every known tool, grouped by category, and exit")
		listCategories = flag.Bool("list-categories", false, "Print every known category and its port and exit")

		host             = flag.String("host", "mcp.kodegen.ai", "Upstream host every category server is dialed on")
		noTLS            = flag.Bool("no-tls", false, "Dial upstream category servers over plain HTTP instead of HTTPS")
		connTimeout      = flag.String("http-connection-timeout", "30s", "Per-attempt upstream connection timeout")
		maxRetries       = flag.Int("http-max-retries", 1, "Maximum connection attempts per category at startup/reconnect")
		retryBackoff     = flag.String("http-retry-backoff", "100ms", "Initial retry backoff, doubled each attempt up to 10s")
	)
	flag.Parse()

	if *initWS {
		root := "."
		if *workspaceDir != "" {
			root = *workspaceDir
		}
		if err := config.InitWorkspace(root); err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize workspace: %v\n", err)
			return 1
		}
		fmt.Fprintf(os.Stderr, "created .kodegen/ workspace in %s\n", root)
		return 0
	}

	reg, err := registry.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build tool registry: %v\n", err)
		return 1
	}

	if *listCategories {
		printCategories()
		return 0
	}
	if *listTools {
		printTools(reg)
		return 0
	}

	_ = godotenv.Load() // optional; GITHUB_TOKEN/GH_TOKEN pass through via the environment either way

	opts := config.WorkspaceOptions{Disable: *noWorkspace, ExplicitDir: *workspaceDir}
	cfg, wsDir, err := config.LoadWithWorkspace(*configPath, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	// flag.Visit only reports flags the operator actually passed, so a CLI
	// flag left at its zero-value default never clobbers a workspace/config
	// value with the flag's own default.
	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })

	if setFlags["host"] {
		cfg.HTTP.Host = *host
	}
	if setFlags["no-tls"] {
		cfg.HTTP.NoTLS = *noTLS
	}
	if setFlags["http-connection-timeout"] {
		cfg.HTTP.ConnectionTimeout = *connTimeout
	}
	if setFlags["http-max-retries"] {
		cfg.HTTP.MaxRetries = *maxRetries
	}
	if setFlags["http-retry-backoff"] {
		cfg.HTTP.RetryBackoff = *retryBackoff
	}

	logger, closeLog := setupLogging(cfg.Logging.LogFile)
	defer closeLog()

	if wsDir != "" {
		logger.Info().Str("workspace", wsDir).Msg("using workspace config")
	}

	enabled, err := resolveEnabledTools(reg, *toolFlag, *toolsFlag, *toolsetFlag)
	if err != nil {
		logger.Error().Err(err).Msg("failed to resolve enabled tool set")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	rec, err := metrics.New()
	if err != nil {
		logger.Warn().Err(err).Msg("metrics recorder unavailable, continuing without usage tracking")
	}

	httpCfg := proxy.HTTPConfig{
		Host:  cfg.HTTP.Host,
		NoTLS: cfg.HTTP.NoTLS,
		Retry: cfg.HTTP.RetryConfig(),
	}

	srv, err := proxy.NewServer(reg, enabled, httpCfg, rec)
	if err != nil {
		logger.Error().Err(err).Msg("failed to construct proxy server")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Dial(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to dial upstream categories")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	logger.Info().Str("connection_id", srv.ConnectionID()).Msg("starting kodegend stdio gateway")

	runErr := srv.Run(ctx)
	srv.Shutdown()
	if rec != nil {
		_ = rec.Shutdown(context.Background())
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		logger.Error().Err(runErr).Msg("gateway exited with error")
		return 1
	}
	return 0
}

// setupLogging redirects structured logs to a file, since stdio mode's
// stderr is reserved — writing log lines there would interfere with MCP
// framing on stdout/stdin. If the log file cannot be opened, logging is
// discarded rather than risk polluting the protocol stream.
func setupLogging(logFile string) (zerolog.Logger, func()) {
	if logFile == "" {
		return zerolog.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.New(io.Discard), func() {}
	}
	logger := zerolog.New(f).With().Timestamp().Logger()
	return logger, func() { f.Close() }
}

// resolveEnabledTools merges --tool, --tools, and --toolset into the union
// of tool names the spec requires (an empty result defaults to every known
// tool). Unknown names are rejected here, before Dial ever opens a socket.
func resolveEnabledTools(reg *registry.Registry, tool, tools, toolsetPath string) ([]string, error) {
	seen := make(map[string]bool)
	add := func(name string) error {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil
		}
		if _, ok := reg.Lookup(name); !ok {
			return fmt.Errorf("unknown tool %q", name)
		}
		seen[name] = true
		return nil
	}

	if tool != "" {
		for _, n := range strings.Split(tool, ",") {
			if err := add(n); err != nil {
				return nil, err
			}
		}
	}
	if tools != "" {
		for _, n := range strings.Split(tools, ",") {
			if err := add(n); err != nil {
				return nil, err
			}
		}
	}
	if toolsetPath != "" {
		names, err := config.LoadToolset(toolsetPath)
		if err != nil {
			return nil, err
		}
		for _, n := range names {
			if err := add(n); err != nil {
				return nil, err
			}
		}
	}

	if len(seen) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out, nil
}

func printCategories() {
	for _, cp := range registry.CategoryPorts {
		fmt.Printf("%-20s port %d\n", cp.Category, cp.Port)
	}
}

func printTools(reg *registry.Registry) {
	byCategory := make(map[string][]registry.ToolMetadata)
	for _, t := range reg.AllToolMetadata() {
		byCategory[t.Category] = append(byCategory[t.Category], t)
	}
	for _, cat := range registry.Categories() {
		tools := byCategory[cat]
		if len(tools) == 0 {
			continue
		}
		port, _ := registry.PortFor(cat)
		fmt.Printf("%s (port %d):\n", cat, port)
		for _, t := range tools {
			fmt.Printf("  %-32s %s\n", t.Name, t.Description)
		}
	}
}
