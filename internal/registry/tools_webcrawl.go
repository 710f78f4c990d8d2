package registry

type CrawlFetchPageArgs struct {
	URL string `json:"url" jsonschema:"description=Page URL to fetch and extract readable content from."`
}

type CrawlFetchManyArgs struct {
	URLs []string `json:"urls" jsonschema:"description=Page URLs to fetch concurrently."`
}

type CrawlSiteMapArgs struct {
	URL      string `json:"url" jsonschema:"description=Root URL to crawl from."`
	MaxPages int    `json:"max_pages,omitempty" jsonschema:"description=Cap on pages visited (default: server-chosen limit)."`
	MaxDepth int    `json:"max_depth,omitempty" jsonschema:"description=Cap on link depth from the root URL."`
}

type CrawlExtractLinksArgs struct {
	URL string `json:"url" jsonschema:"description=Page URL to extract outbound links from."`
}

type CrawlSearchArgs struct {
	Query string `json:"query" jsonschema:"description=Web search query."`
	Limit int    `json:"limit,omitempty" jsonschema:"description=Maximum results to return."`
}

type CrawlScreenshotArgs struct {
	URL string `json:"url" jsonschema:"description=Page URL to render and screenshot."`
}

func webCrawlTools() []ToolMetadata {
	const cat = "web_crawl"
	return []ToolMetadata{
		tool("crawl_fetch_page", cat, "Fetch a URL and extract its readable text content.", schemaFor[CrawlFetchPageArgs](), readOnly),
		tool("crawl_fetch_many", cat, "Fetch multiple URLs concurrently and extract readable content from each.", schemaFor[CrawlFetchManyArgs](), readOnly),
		tool("crawl_site_map", cat, "Crawl a site from a root URL up to a page and depth limit.", schemaFor[CrawlSiteMapArgs](), readOnly),
		tool("crawl_extract_links", cat, "Extract outbound links from a page.", schemaFor[CrawlExtractLinksArgs](), readOnly),
		tool("crawl_search", cat, "Run a web search and return ranked results.", schemaFor[CrawlSearchArgs](), readOnly),
		tool("crawl_screenshot", cat, "Render a URL and return a screenshot.", schemaFor[CrawlScreenshotArgs](), readOnly),
	}
}
