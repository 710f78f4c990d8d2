package registry

type MemoryStoreArgs struct {
	Key   string `json:"key" jsonschema:"description=Memory key."`
	Value string `json:"value" jsonschema:"description=Value to store under the key."`
	Tags  []string `json:"tags,omitempty" jsonschema:"description=Tags to attach for later filtering."`
}

type MemoryRecallArgs struct {
	Key string `json:"key" jsonschema:"description=Memory key to fetch."`
}

type MemorySearchArgs struct {
	Query string `json:"query" jsonschema:"description=Free-text query matched against stored values and tags."`
	Limit int    `json:"limit,omitempty" jsonschema:"description=Maximum results to return."`
}

type MemoryDeleteArgs struct {
	Key string `json:"key" jsonschema:"description=Memory key to delete."`
}

type MemoryListKeysArgs struct {
	Prefix string `json:"prefix,omitempty" jsonschema:"description=Restrict to keys with this prefix."`
}

type MemoryForgetAllArgs struct {
	Confirm bool `json:"confirm" jsonschema:"description=Must be true; guards against accidental bulk deletion."`
}

func memoryTools() []ToolMetadata {
	const cat = "memory"
	return []ToolMetadata{
		tool("memory_store", cat, "Store a value under a key, optionally tagged.", schemaFor[MemoryStoreArgs]()),
		tool("memory_recall", cat, "Fetch the value stored under a key.", schemaFor[MemoryRecallArgs](), readOnly),
		tool("memory_search", cat, "Search stored values and tags by free-text query.", schemaFor[MemorySearchArgs](), readOnly),
		tool("memory_delete", cat, "Delete a stored key.", schemaFor[MemoryDeleteArgs](), destructive),
		tool("memory_list_keys", cat, "List stored keys, optionally restricted to a prefix.", schemaFor[MemoryListKeysArgs](), readOnly),
		tool("memory_forget_all", cat, "Delete every stored key. Requires explicit confirmation.", schemaFor[MemoryForgetAllArgs](), destructive),
	}
}
