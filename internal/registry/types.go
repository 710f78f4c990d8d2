// Package registry holds the compile-time tool metadata table: names,
// categories, descriptions, and JSON schemas for every tool the gateway can
// route to. Nothing in this package instantiates a tool implementation —
// tools live behind category HTTP servers the gateway treats as opaque.
package registry

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/invopop/jsonschema"
)

// ToolMetadata describes a single routable tool. It is immutable once built.
type ToolMetadata struct {
	Name        string
	Category    string
	Description string
	Schema      map[string]interface{}
	ReadOnly    bool
	Destructive bool
	Idempotent  bool
}

// schemaFor reflects a Go struct into a JSON-Schema object the same way the
// Rust original derives tool schemas from a `schemars::JsonSchema` impl via
// `schema_for!`. On reflection failure it falls back to an empty object
// rather than failing the whole registry build (spec: "malformed schema
// substitutes an empty object rather than failing").
func schemaFor[T any]() map[string]interface{} {
	reflector := &jsonschema.Reflector{
		ExpandedStruct:            true,
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	var zero T
	schema := reflector.Reflect(zero)

	raw, err := json.Marshal(schema)
	if err != nil {
		return map[string]interface{}{"type": "object"}
	}

	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return map[string]interface{}{"type": "object"}
	}
	// Schemas are self-contained tool arguments, not named entities; drop
	// the reflector's top-level $schema/title noise to keep them compact.
	delete(out, "$schema")
	delete(out, "title")
	return out
}

// tool is shorthand used by the per-category builders below.
func tool(name, category, description string, schema map[string]interface{}, opts ...func(*ToolMetadata)) ToolMetadata {
	m := ToolMetadata{
		Name:        name,
		Category:    category,
		Description: description,
		Schema:      schema,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.Description == "" {
		m.Description = fmt.Sprintf("%s tool.", name)
	}
	return m
}

func readOnly(m *ToolMetadata)    { m.ReadOnly = true }
func destructive(m *ToolMetadata) { m.Destructive = true }
func idempotent(m *ToolMetadata)  { m.Idempotent = true }

// sortMetadata orders tools by (category, name) so AllToolMetadata() is
// deterministic across runs, independent of map/slice iteration order during
// construction.
func sortMetadata(tools []ToolMetadata) {
	sort.Slice(tools, func(i, j int) bool {
		if tools[i].Category != tools[j].Category {
			return tools[i].Category < tools[j].Category
		}
		return tools[i].Name < tools[j].Name
	})
}
