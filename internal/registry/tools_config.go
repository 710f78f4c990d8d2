package registry

type ConfigGetArgs struct {
	Key string `json:"key" jsonschema:"description=Dotted configuration key to read."`
}

type ConfigSetArgs struct {
	Key   string `json:"key" jsonschema:"description=Dotted configuration key to write."`
	Value string `json:"value" jsonschema:"description=New value, written to the workspace config layer."`
}

type ConfigListArgs struct {
	Prefix string `json:"prefix,omitempty" jsonschema:"description=Restrict to keys with this dotted prefix."`
}

func configTools() []ToolMetadata {
	const cat = "config"
	return []ToolMetadata{
		tool("config_get", cat, "Read a configuration value from the layered config.", schemaFor[ConfigGetArgs](), readOnly),
		tool("config_set", cat, "Write a configuration value to the workspace config layer.", schemaFor[ConfigSetArgs]()),
		tool("config_list", cat, "List effective configuration keys and their resolved values.", schemaFor[ConfigListArgs](), readOnly),
	}
}
