package registry

import "fmt"

// Route is the routing-table value: which category a tool belongs to and the
// fixed port that category's server listens on.
type Route struct {
	Category string
	Port     uint16
}

// Registry is the built, validated tool catalog: the ordered metadata
// sequence plus the derived name -> (category, port) routing table.
type Registry struct {
	tools   []ToolMetadata
	routing map[string]Route
}

// Build assembles the full tool catalog from every category's contribution,
// sorts it deterministically, and derives the routing table. It fails
// (a "programming error" per spec §4.1) if two tools share a name or a tool
// references a category with no declared port.
func Build() (*Registry, error) {
	var all []ToolMetadata
	for _, contribute := range categoryBuilders {
		all = append(all, contribute()...)
	}
	sortMetadata(all)

	routing := make(map[string]Route, len(all))
	for i := range all {
		t := all[i]
		if !KnownCategory(t.Category) {
			return nil, fmt.Errorf("registry: tool %q references unknown category %q", t.Name, t.Category)
		}
		if _, dup := routing[t.Name]; dup {
			return nil, fmt.Errorf("registry: duplicate tool name %q", t.Name)
		}
		if t.Description == "" {
			return nil, fmt.Errorf("registry: tool %q has an empty description", t.Name)
		}
		if all[i].Schema == nil {
			all[i].Schema = map[string]interface{}{"type": "object"}
		}
		port, _ := PortFor(t.Category)
		routing[t.Name] = Route{Category: t.Category, Port: port}
	}

	return &Registry{tools: all, routing: routing}, nil
}

// AllToolMetadata returns the deterministic, ordered tool sequence.
func (r *Registry) AllToolMetadata() []ToolMetadata {
	return r.tools
}

// RoutingTable returns the derived tool_name -> (category, port) map.
func (r *Registry) RoutingTable() map[string]Route {
	return r.routing
}

// Lookup returns the route for a single tool name.
func (r *Registry) Lookup(name string) (Route, bool) {
	route, ok := r.routing[name]
	return route, ok
}

// categoryBuilders lists every per-category contribution to the catalog.
// Each entry is a function rather than a pre-built slice so schema
// reflection (which allocates) happens inside Build, once per Build call,
// rather than at package init.
var categoryBuilders = []func() []ToolMetadata{
	filesystemTools,
	terminalTools,
	gitTools,
	githubTools,
	databaseTools,
	browserTools,
	webCrawlTools,
	reasoningTools,
	agentDelegationTools,
	promptTools,
	memoryTools,
	introspectionTools,
	configTools,
	processTools,
	claudeAgentTools,
}
