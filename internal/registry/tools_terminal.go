package registry

type TermRunCommandArgs struct {
	Command    string `json:"command" jsonschema:"description=Shell command line to execute."`
	Cwd        string `json:"cwd,omitempty" jsonschema:"description=Working directory for the command."`
	TimeoutSec int    `json:"timeout_sec,omitempty" jsonschema:"description=Maximum seconds to allow the command to run before it is killed."`
}

type TermStartSessionArgs struct {
	Shell string `json:"shell,omitempty" jsonschema:"description=Shell to launch (default: platform default shell)."`
	Cwd   string `json:"cwd,omitempty" jsonschema:"description=Initial working directory."`
}

type TermSendInputArgs struct {
	SessionID string `json:"session_id" jsonschema:"description=Terminal session to write to."`
	Input     string `json:"input" jsonschema:"description=Bytes to write to the session's stdin."`
}

type TermReadOutputArgs struct {
	SessionID string `json:"session_id" jsonschema:"description=Terminal session to read buffered output from."`
	MaxBytes  int    `json:"max_bytes,omitempty" jsonschema:"description=Cap on bytes returned; oldest-first truncation beyond this."`
}

type TermKillSessionArgs struct {
	SessionID string `json:"session_id" jsonschema:"description=Terminal session to terminate."`
}

type TermListSessionsArgs struct{}

func terminalTools() []ToolMetadata {
	const cat = "terminal"
	return []ToolMetadata{
		tool("term_run_command", cat, "Run a one-shot shell command and return its combined output and exit code.", schemaFor[TermRunCommandArgs]()),
		tool("term_start_session", cat, "Start a persistent interactive shell session.", schemaFor[TermStartSessionArgs]()),
		tool("term_send_input", cat, "Write input to a running terminal session's stdin.", schemaFor[TermSendInputArgs]()),
		tool("term_read_output", cat, "Read buffered stdout/stderr from a terminal session since the last read.", schemaFor[TermReadOutputArgs](), readOnly),
		tool("term_kill_session", cat, "Terminate a terminal session and release its resources.", schemaFor[TermKillSessionArgs](), destructive),
		tool("term_list_sessions", cat, "List currently tracked terminal sessions.", schemaFor[TermListSessionsArgs](), readOnly),
	}
}
