package registry

type ReasonSequentialThinkArgs struct {
	Thought      string `json:"thought" jsonschema:"description=Current reasoning step."`
	ThoughtIndex int    `json:"thought_index" jsonschema:"description=1-indexed position of this thought in the chain."`
	TotalThought int    `json:"total_thoughts,omitempty" jsonschema:"description=Current estimate of how many thoughts the chain will take."`
	NeedsMore    bool   `json:"needs_more,omitempty" jsonschema:"description=Whether another thought should follow this one."`
}

type ReasonCritiqueArgs struct {
	Claim string `json:"claim" jsonschema:"description=Claim or plan to critique."`
}

type ReasonCompareOptionsArgs struct {
	Options []string `json:"options" jsonschema:"description=Candidate options to weigh against each other."`
	Goal    string   `json:"goal,omitempty" jsonschema:"description=Objective the options are being weighed against."`
}

type ReasonSummarizeThreadArgs struct {
	ThreadID string `json:"thread_id" jsonschema:"description=Reasoning thread to summarize."`
}

func reasoningTools() []ToolMetadata {
	const cat = "reasoning"
	return []ToolMetadata{
		tool("reason_sequential_think", cat, "Record one step of a sequential reasoning chain.", schemaFor[ReasonSequentialThinkArgs]()),
		tool("reason_critique", cat, "Critique a claim or plan for gaps and unstated assumptions.", schemaFor[ReasonCritiqueArgs](), readOnly),
		tool("reason_compare_options", cat, "Weigh a set of options against a stated goal.", schemaFor[ReasonCompareOptionsArgs](), readOnly),
		tool("reason_summarize_thread", cat, "Summarize a prior reasoning thread into its conclusion.", schemaFor[ReasonSummarizeThreadArgs](), readOnly),
	}
}
