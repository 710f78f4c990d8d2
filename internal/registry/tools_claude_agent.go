package registry

// Argument shapes for the claude_agent category: a dedicated sub-agent
// tool server distinct from generic agent_delegation, used for
// Claude-specific skill invocation and session control.

type ClaudeAgentInvokeSkillArgs struct {
	Skill string            `json:"skill" jsonschema:"description=Skill name to invoke."`
	Args  map[string]string `json:"args,omitempty" jsonschema:"description=Arguments passed through to the skill."`
}

type ClaudeAgentStartSessionArgs struct {
	SystemPrompt string `json:"system_prompt,omitempty" jsonschema:"description=Override system prompt for the new session."`
}

type ClaudeAgentSendMessageArgs struct {
	SessionID string `json:"session_id" jsonschema:"description=Claude agent session to send a message to."`
	Message   string `json:"message" jsonschema:"description=Message content."`
}

type ClaudeAgentGetTranscriptArgs struct {
	SessionID string `json:"session_id" jsonschema:"description=Claude agent session to read."`
}

type ClaudeAgentStopSessionArgs struct {
	SessionID string `json:"session_id" jsonschema:"description=Claude agent session to terminate."`
}

func claudeAgentTools() []ToolMetadata {
	const cat = "claude_agent"
	return []ToolMetadata{
		tool("claude_agent_invoke_skill", cat, "Invoke a named skill within a Claude agent session.", schemaFor[ClaudeAgentInvokeSkillArgs]()),
		tool("claude_agent_start_session", cat, "Start a new Claude agent session.", schemaFor[ClaudeAgentStartSessionArgs]()),
		tool("claude_agent_send_message", cat, "Send a message to a running Claude agent session.", schemaFor[ClaudeAgentSendMessageArgs]()),
		tool("claude_agent_get_transcript", cat, "Fetch the message transcript for a Claude agent session.", schemaFor[ClaudeAgentGetTranscriptArgs](), readOnly),
		tool("claude_agent_stop_session", cat, "Terminate a Claude agent session.", schemaFor[ClaudeAgentStopSessionArgs](), destructive),
	}
}
