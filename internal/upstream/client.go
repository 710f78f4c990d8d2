// Package upstream wraps a single category's MCP-over-SSE connection:
// dialing with retry/backoff, listing tools, and calling them. Every
// category server is treated as an opaque implementation behind this
// client's fixed URL.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	sdkclient "github.com/mark3labs/mcp-go/client"
	sdkmcp "github.com/mark3labs/mcp-go/mcp"
)

// ToolInfo mirrors the subset of an upstream tool descriptor the gateway
// needs to forward in its own list_tools response.
type ToolInfo struct {
	Name        string
	Description string
	InputSchema json.RawMessage
}

// Client wraps an mcp-go SSE client for one category server. It is safe
// for concurrent use; Connect may be called again after Close to
// re-establish the connection. The proxy's reconnect-on-401 path does not
// reuse a Client: it builds a new one with New.
type Client struct {
	category string
	url      string

	mu    sync.RWMutex
	inner sdkclient.MCPClient
}

// New returns an unconnected Client for a category's fixed URL.
func New(category, url string) *Client {
	return &Client{category: category, url: url}
}

// Category returns the category this client serves.
func (c *Client) Category() string { return c.category }

// URL returns the upstream URL this client dials.
func (c *Client) URL() string { return c.url }

// Connect dials the SSE transport and performs the MCP initialize
// handshake. It does not retry; callers needing retry/backoff should use
// ConnectWithRetry.
func (c *Client) Connect(ctx context.Context) error {
	inner, err := sdkclient.NewSSEMCPClient(c.url)
	if err != nil {
		return fmt.Errorf("upstream: create SSE client for %q: %w", c.category, err)
	}
	if err := inner.Start(ctx); err != nil {
		return fmt.Errorf("upstream: start SSE client for %q: %w", c.category, err)
	}

	_, err = inner.Initialize(ctx, sdkmcp.InitializeRequest{
		Params: sdkmcp.InitializeParams{
			ProtocolVersion: sdkmcp.LATEST_PROTOCOL_VERSION,
			ClientInfo: sdkmcp.Implementation{
				Name:    "kodegen-stdio-gateway",
				Version: "0.1.0",
			},
		},
	})
	if err != nil {
		_ = inner.Close()
		return fmt.Errorf("upstream: initialize %q: %w", c.category, err)
	}

	c.mu.Lock()
	c.inner = inner
	c.mu.Unlock()
	return nil
}

// Connected reports whether a handshake has completed and not since been
// closed.
func (c *Client) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner != nil
}

// ListTools returns the tool descriptors the upstream server currently
// exposes.
func (c *Client) ListTools(ctx context.Context) ([]ToolInfo, error) {
	inner, err := c.current()
	if err != nil {
		return nil, err
	}

	result, err := inner.ListTools(ctx, sdkmcp.ListToolsRequest{})
	if err != nil {
		return nil, fmt.Errorf("upstream: list tools on %q: %w", c.category, err)
	}

	tools := make([]ToolInfo, 0, len(result.Tools))
	for _, t := range result.Tools {
		schema, err := json.Marshal(t.InputSchema)
		if err != nil {
			schema = json.RawMessage("{}")
		}
		tools = append(tools, ToolInfo{Name: t.Name, Description: t.Description, InputSchema: schema})
	}
	return tools, nil
}

// CallTool invokes name on the upstream server, rewriting nothing — the
// caller is responsible for having already substituted any session id in
// args. It returns the concatenated text content of the response.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (string, error) {
	inner, err := c.current()
	if err != nil {
		return "", err
	}

	req := sdkmcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	result, err := inner.CallTool(ctx, req)
	if err != nil {
		return "", fmt.Errorf("upstream: call %q on %q: %w", name, c.category, err)
	}

	var parts []string
	for _, content := range result.Content {
		if tc, ok := content.(sdkmcp.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	text := strings.Join(parts, "\n")

	if result.IsError {
		return "", &ToolError{Tool: name, Text: text}
	}
	return text, nil
}

// ToolError reports that an upstream tool ran to completion and reported
// failure itself (the MCP result's IsError flag) — distinct from a
// transport failure, since the call succeeded at the protocol level. Text
// is the tool's own error content; the proxy returns it to the client with
// an upstream_protocol_error prefix.
type ToolError struct {
	Tool string
	Text string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("upstream: tool %q reported an error: %s", e.Tool, e.Text)
}

// Close terminates the connection. It is safe to call on an already
// closed or never-connected client.
func (c *Client) Close() error {
	c.mu.Lock()
	inner := c.inner
	c.inner = nil
	c.mu.Unlock()

	if inner == nil {
		return nil
	}
	return inner.Close()
}

func (c *Client) current() (sdkclient.MCPClient, error) {
	c.mu.RLock()
	inner := c.inner
	c.mu.RUnlock()
	if inner == nil {
		return nil, fmt.Errorf("upstream: %q is not connected", c.category)
	}
	return inner, nil
}

// IsUnauthorized reports whether err looks like an HTTP 401 from the
// upstream server, the signal that a server-side session has expired and
// the category needs to reconnect-and-retry once.
func IsUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "401") || strings.Contains(strings.ToLower(msg), "unauthorized")
}
