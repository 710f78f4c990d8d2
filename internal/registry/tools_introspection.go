package registry

type IntrospectListCategoriesArgs struct{}

type IntrospectListToolsArgs struct {
	Category string `json:"category,omitempty" jsonschema:"description=Restrict to tools in this category."`
}

type IntrospectCategoryStatusArgs struct {
	Category string `json:"category,omitempty" jsonschema:"description=Restrict to a single category (default: all)."`
}

type IntrospectServerInfoArgs struct{}

func introspectionTools() []ToolMetadata {
	const cat = "introspection"
	return []ToolMetadata{
		tool("introspect_list_categories", cat, "List known tool categories and their fixed ports.", schemaFor[IntrospectListCategoriesArgs](), readOnly),
		tool("introspect_list_tools", cat, "List routable tools, optionally restricted to one category.", schemaFor[IntrospectListToolsArgs](), readOnly),
		tool("introspect_category_status", cat, "Report each category's upstream connectivity state.", schemaFor[IntrospectCategoryStatusArgs](), readOnly),
		tool("introspect_server_info", cat, "Report gateway version and build information.", schemaFor[IntrospectServerInfoArgs](), readOnly),
	}
}
