package registry

type AgentDelegateTaskArgs struct {
	Task        string `json:"task" jsonschema:"description=Task description to hand off to a sub-agent."`
	AgentType   string `json:"agent_type,omitempty" jsonschema:"description=Sub-agent type to delegate to (default: general-purpose)."`
	Background  bool   `json:"background,omitempty" jsonschema:"description=Run the delegated task without blocking for its result."`
}

type AgentGetTaskStatusArgs struct {
	TaskID string `json:"task_id" jsonschema:"description=Handle returned by agent_delegate_task."`
}

type AgentCancelTaskArgs struct {
	TaskID string `json:"task_id" jsonschema:"description=Delegated task to cancel."`
}

type AgentListTasksArgs struct{}

func agentDelegationTools() []ToolMetadata {
	const cat = "agent_delegation"
	return []ToolMetadata{
		tool("agent_delegate_task", cat, "Hand a task off to a sub-agent, optionally running it in the background.", schemaFor[AgentDelegateTaskArgs]()),
		tool("agent_get_task_status", cat, "Fetch the status and, if finished, the result of a delegated task.", schemaFor[AgentGetTaskStatusArgs](), readOnly),
		tool("agent_cancel_task", cat, "Cancel a running delegated task.", schemaFor[AgentCancelTaskArgs](), destructive),
		tool("agent_list_tasks", cat, "List delegated tasks and their current status.", schemaFor[AgentListTasksArgs](), readOnly),
	}
}
