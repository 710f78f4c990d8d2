// Package proxy implements the stdio-facing MCP server: it answers
// tools/list from the static registry filtered by enabled+connected
// categories, and forwards tools/call to the right upstream category
// client, rewriting session ids and recovering once from a 401.
package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/google/uuid"
	sdkmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/kodegen/mcp-stdio-gateway/internal/metrics"
	"github.com/kodegen/mcp-stdio-gateway/internal/registry"
	"github.com/kodegen/mcp-stdio-gateway/internal/session"
	"github.com/kodegen/mcp-stdio-gateway/internal/upstream"
)

// HTTPConfig tunes upstream dialing: scheme, host, and the retry policy
// every category dial and reconnect uses.
type HTTPConfig struct {
	Host  string
	NoTLS bool
	Retry upstream.RetryConfig
}

func (c HTTPConfig) urlFor(port uint16) string {
	scheme := "https"
	if c.NoTLS {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s:%d/mcp", scheme, c.Host, port)
}

// Server is the stdio-facing MCP proxy: one process-wide connection id,
// one categoryHandle per dialed category, a session mapper shared across
// every call on this connection, and the underlying mcp-go server that
// terminates the stdio transport.
type Server struct {
	connectionID string
	enabled      map[string]bool
	reg          *registry.Registry
	httpCfg      HTTPConfig
	sessions     *session.Mapper
	metrics      *metrics.Recorder

	mu         sync.RWMutex
	categories map[string]*categoryHandle

	mcpServer *mcpserver.MCPServer
	shutdown  chan struct{}
	closeOnce sync.Once
}

// NewServer builds a proxy Server. enabledTools, when non-empty, restricts
// the catalog to those names (spec: union of --tool/--tools/--toolset,
// defaulting to all); an unknown name is an error so the caller can reject
// it before any network activity.
func NewServer(reg *registry.Registry, enabledTools []string, httpCfg HTTPConfig, rec *metrics.Recorder) (*Server, error) {
	enabled := make(map[string]bool)
	if len(enabledTools) == 0 {
		for _, t := range reg.AllToolMetadata() {
			enabled[t.Name] = true
		}
	} else {
		for _, name := range enabledTools {
			if _, ok := reg.Lookup(name); !ok {
				return nil, fmt.Errorf("proxy: unknown tool %q", name)
			}
			enabled[name] = true
		}
	}

	s := &Server{
		connectionID: uuid.NewString(),
		enabled:      enabled,
		reg:          reg,
		httpCfg:      httpCfg,
		sessions:     session.NewMapper(),
		metrics:      rec,
		categories:   make(map[string]*categoryHandle),
		shutdown:     make(chan struct{}),
		mcpServer: mcpserver.NewMCPServer(
			"kodegend",
			"0.1.0",
			mcpserver.WithToolCapabilities(true),
			mcpserver.WithLogging(),
			mcpserver.WithRecovery(),
		),
	}
	return s, nil
}

// ConnectionID returns this proxy instance's connection id, used as the
// outer key for session mapping and logged at cleanup.
func (s *Server) ConnectionID() string { return s.connectionID }

// categoriesToDial returns the distinct categories referenced by the
// enabled tool set.
func (s *Server) categoriesToDial() []string {
	seen := make(map[string]bool)
	for name := range s.enabled {
		route, ok := s.reg.Lookup(name)
		if !ok {
			continue
		}
		seen[route.Category] = true
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Dial connects every category referenced by the enabled tool set,
// concurrently, per spec §4.4 step 3. Categories that exhaust retries are
// recorded as Failed rather than aborting the whole startup; only a zero
// connected categories is fatal (step 4).
func (s *Server) Dial(ctx context.Context) error {
	categories := s.categoriesToDial()
	if len(categories) == 0 {
		return fmt.Errorf("proxy: no categories to dial (enabled tool set is empty)")
	}

	handles := make(map[string]*categoryHandle, len(categories))
	for _, cat := range categories {
		port, _ := registry.PortFor(cat)
		handles[cat] = newCategoryHandle(cat, s.httpCfg.urlFor(port), s.httpCfg.Retry)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, cat := range categories {
		h := handles[cat]
		g.Go(func() error {
			if err := h.dial(gctx, s.shutdown); err != nil {
				log.Warn().Str("category", h.category).Err(err).Msg("category failed to connect at startup")
			}
			return nil // a single category's failure never aborts the group
		})
	}
	_ = g.Wait()

	s.mu.Lock()
	s.categories = handles
	s.mu.Unlock()

	connected := 0
	for _, h := range handles {
		if h.ready() {
			connected++
		}
	}
	if connected == 0 {
		return fmt.Errorf("proxy: zero categories connected, aborting startup")
	}

	s.registerTools()
	return nil
}

// registerTools adds one mcp-go tool per enabled+connected tool to the
// live catalog, mirroring registerAllTools/registerTool in the teacher's
// MCP server.
func (s *Server) registerTools() {
	for _, t := range s.reg.AllToolMetadata() {
		if !s.enabled[t.Name] {
			continue
		}
		h := s.categoryFor(t.Name)
		if h == nil || !h.ready() {
			continue
		}
		s.addTool(t)
	}
}

func (s *Server) categoryFor(toolName string) *categoryHandle {
	route, ok := s.reg.Lookup(toolName)
	if !ok {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories[route.Category]
}

func (s *Server) addTool(t registry.ToolMetadata) {
	mcpTool := sdkmcp.NewToolWithRawSchema(t.Name, t.Description, mustMarshalSchema(t.Schema))
	s.mcpServer.AddTool(mcpTool, s.callToolHandler(t.Name))
}

// removeCategoryTools drops every tool belonging to category from the live
// list_tools response once its handle reaches the terminal Failed state,
// satisfying the "dynamic tool-list shrinkage" requirement.
func (s *Server) removeCategoryTools(category string) {
	var names []string
	for _, t := range s.reg.AllToolMetadata() {
		if t.Category == category && s.enabled[t.Name] {
			names = append(names, t.Name)
		}
	}
	if len(names) == 0 {
		return
	}
	s.mcpServer.DeleteTools(names...)
	log.Warn().Str("category", category).Strs("tools", names).Msg("category failed, removing its tools from the live catalog")
}

func (s *Server) callToolHandler(toolName string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
		return s.callTool(ctx, toolName, req.GetArguments())
	}
}

func (s *Server) callTool(ctx context.Context, toolName string, args map[string]any) (*sdkmcp.CallToolResult, error) {
	if !s.enabled[toolName] {
		return errorResult(ErrDisabledTool, fmt.Sprintf("tool %q is not enabled", toolName)), nil
	}
	route, ok := s.reg.Lookup(toolName)
	if !ok {
		return errorResult(ErrUnknownTool, fmt.Sprintf("tool %q is not routable", toolName)), nil
	}

	h := s.categoryFor(toolName)
	if h == nil {
		return errorResult(ErrCategoryUnavailable, fmt.Sprintf("category %q has no connection", route.Category)), nil
	}

	if args == nil {
		args = map[string]any{}
	}
	if clientSessionID, ok := args["session_id"].(string); ok {
		args["session_id"] = s.sessions.Map(s.connectionID, clientSessionID)
	}

	text, err := s.invoke(ctx, h, toolName, args)
	if err == nil {
		s.metrics.RecordSuccess(ctx, toolName, route.Category)
		return &sdkmcp.CallToolResult{Content: []sdkmcp.Content{sdkmcp.NewTextContent(text)}}, nil
	}

	if upstream.IsUnauthorized(err) {
		h.markExpired()
		if recErr := h.reconnect(ctx, s.shutdown); recErr != nil {
			s.removeCategoryTools(route.Category)
			s.metrics.RecordFailure(ctx, toolName, route.Category, ErrCategoryUnavailable.String())
			return errorResult(ErrCategoryUnavailable, fmt.Sprintf("category %q unavailable after reconnect failure: %v", route.Category, recErr)), nil
		}
		text, err = s.invoke(ctx, h, toolName, args)
		if err == nil {
			s.metrics.RecordSuccess(ctx, toolName, route.Category)
			return &sdkmcp.CallToolResult{Content: []sdkmcp.Content{sdkmcp.NewTextContent(text)}}, nil
		}
	}

	// An upstream tool that ran to completion and reported its own failure
	// (result.IsError) is a protocol-level outcome, not a transport fault:
	// its text is returned to the client behind the upstream_protocol_error
	// prefix errorResult adds, and it carries no failure metric.
	var toolErr *upstream.ToolError
	if errors.As(err, &toolErr) {
		return errorResult(ErrUpstreamProtocol, toolErr.Text), nil
	}

	kind := ErrUpstreamTransport
	s.metrics.RecordFailure(ctx, toolName, route.Category, kind.String())
	return errorResult(kind, err.Error()), nil
}

func (s *Server) invoke(ctx context.Context, h *categoryHandle, toolName string, args map[string]any) (string, error) {
	client, state := h.snapshot()
	if client == nil || state != StateReady {
		return "", newError(ErrCategoryUnavailable, fmt.Sprintf("category %q is not ready (state=%s)", h.category, state))
	}
	return client.CallTool(ctx, toolName, args)
}

func errorResult(kind ErrorKind, msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{sdkmcp.NewTextContent(fmt.Sprintf("[%s] %s", kind, msg))},
		IsError: true,
	}
}

func mustMarshalSchema(schema map[string]interface{}) []byte {
	raw, err := json.Marshal(schema)
	if err != nil {
		return []byte(`{"type":"object"}`)
	}
	return raw
}

// Run starts the stdio transport and blocks until ctx is cancelled or the
// transport returns an error.
func (s *Server) Run(ctx context.Context) error {
	stdio := mcpserver.NewStdioServer(s.mcpServer)
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}

// Shutdown cancels any in-flight dial/reconnect backoff and runs
// cleanup(connection_id) on the session mapper exactly once.
func (s *Server) Shutdown() {
	s.closeOnce.Do(func() {
		close(s.shutdown)
		cleaned := s.sessions.Cleanup(s.connectionID)
		log.Info().Str("connection_id", s.connectionID).Int("sessions_cleaned", cleaned).Msg("stdio connection closed")

		s.mu.RLock()
		defer s.mu.RUnlock()
		for _, h := range s.categories {
			if client, _ := h.snapshot(); client != nil {
				_ = client.Close()
			}
		}
	})
}
