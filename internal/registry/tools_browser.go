package registry

// Argument shapes for the browser category. Session automation itself (the
// teacher's go-rod-backed implementation) lives behind this category's
// opaque upstream server; the gateway only routes calls to it.

type BrowserNewSessionArgs struct {
	URL     string `json:"url,omitempty" jsonschema:"description=Initial URL to navigate to."`
	Headful bool   `json:"headful,omitempty" jsonschema:"description=Launch with a visible window instead of headless."`
}

type BrowserNavigateArgs struct {
	SessionID string `json:"session_id" jsonschema:"description=Browser session to act on."`
	URL       string `json:"url" jsonschema:"description=URL to navigate to."`
}

type BrowserClickArgs struct {
	SessionID string `json:"session_id" jsonschema:"description=Browser session to act on."`
	Selector  string `json:"selector" jsonschema:"description=CSS selector of the element to click."`
}

type BrowserTypeArgs struct {
	SessionID string `json:"session_id" jsonschema:"description=Browser session to act on."`
	Selector  string `json:"selector" jsonschema:"description=CSS selector of the input element."`
	Text      string `json:"text" jsonschema:"description=Text to type into the element."`
}

type BrowserScreenshotArgs struct {
	SessionID string `json:"session_id" jsonschema:"description=Browser session to capture."`
	FullPage  bool   `json:"full_page,omitempty" jsonschema:"description=Capture the full scrollable page instead of the viewport."`
}

type BrowserEvaluateArgs struct {
	SessionID string `json:"session_id" jsonschema:"description=Browser session to act on."`
	Script    string `json:"script" jsonschema:"description=JavaScript expression to evaluate in the page context."`
}

type BrowserGetContentArgs struct {
	SessionID string `json:"session_id" jsonschema:"description=Browser session to read from."`
	Selector  string `json:"selector,omitempty" jsonschema:"description=Restrict to the element matching this selector (default: full page)."`
}

type BrowserWaitForArgs struct {
	SessionID  string `json:"session_id" jsonschema:"description=Browser session to act on."`
	Selector   string `json:"selector" jsonschema:"description=CSS selector to wait for."`
	TimeoutSec int    `json:"timeout_sec,omitempty" jsonschema:"description=Maximum seconds to wait before failing."`
}

type BrowserListSessionsArgs struct{}

type BrowserCloseSessionArgs struct {
	SessionID string `json:"session_id" jsonschema:"description=Browser session to close and release."`
}

func browserTools() []ToolMetadata {
	const cat = "browser"
	return []ToolMetadata{
		tool("browser_new_session", cat, "Launch a new browser session, optionally navigating to a URL.", schemaFor[BrowserNewSessionArgs]()),
		tool("browser_navigate", cat, "Navigate a session's active page to a URL.", schemaFor[BrowserNavigateArgs]()),
		tool("browser_click", cat, "Click the element matching a CSS selector.", schemaFor[BrowserClickArgs]()),
		tool("browser_type", cat, "Type text into the element matching a CSS selector.", schemaFor[BrowserTypeArgs]()),
		tool("browser_screenshot", cat, "Capture a screenshot of the current page.", schemaFor[BrowserScreenshotArgs](), readOnly),
		tool("browser_evaluate", cat, "Evaluate a JavaScript expression in the page context.", schemaFor[BrowserEvaluateArgs]()),
		tool("browser_get_content", cat, "Return the rendered HTML or text content of the page or an element.", schemaFor[BrowserGetContentArgs](), readOnly),
		tool("browser_wait_for", cat, "Block until a selector appears or a timeout elapses.", schemaFor[BrowserWaitForArgs](), readOnly),
		tool("browser_list_sessions", cat, "List currently open browser sessions.", schemaFor[BrowserListSessionsArgs](), readOnly),
		tool("browser_close_session", cat, "Close a browser session and release its resources.", schemaFor[BrowserCloseSessionArgs](), destructive),
	}
}
