package registry

type PromptListArgs struct{}

type PromptGetArgs struct {
	Name string `json:"name" jsonschema:"description=Prompt template name."`
}

type PromptRenderArgs struct {
	Name      string            `json:"name" jsonschema:"description=Prompt template name."`
	Variables map[string]string `json:"variables,omitempty" jsonschema:"description=Values substituted into the template's placeholders."`
}

type PromptSaveArgs struct {
	Name string `json:"name" jsonschema:"description=Prompt template name to create or overwrite."`
	Body string `json:"body" jsonschema:"description=Template body, including any front-matter block."`
}

func promptTools() []ToolMetadata {
	const cat = "prompt"
	return []ToolMetadata{
		tool("prompt_list", cat, "List available prompt templates.", schemaFor[PromptListArgs](), readOnly),
		tool("prompt_get", cat, "Fetch a prompt template's raw body and front-matter.", schemaFor[PromptGetArgs](), readOnly),
		tool("prompt_render", cat, "Render a prompt template with the given variable substitutions.", schemaFor[PromptRenderArgs](), readOnly),
		tool("prompt_save", cat, "Create or overwrite a prompt template.", schemaFor[PromptSaveArgs]()),
	}
}
