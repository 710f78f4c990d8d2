package registry

type ProcessListArgs struct {
	Filter string `json:"filter,omitempty" jsonschema:"description=Restrict to processes whose command line contains this substring."`
}

type ProcessInfoArgs struct {
	PID int `json:"pid" jsonschema:"description=Process ID to inspect."`
}

type ProcessKillArgs struct {
	PID    int    `json:"pid" jsonschema:"description=Process ID to signal."`
	Signal string `json:"signal,omitempty" jsonschema:"description=Signal to send (default: SIGTERM)."`
}

type ProcessSpawnArgs struct {
	Command string   `json:"command" jsonschema:"description=Executable to run."`
	Args    []string `json:"args,omitempty" jsonschema:"description=Arguments to pass to the executable."`
	Cwd     string   `json:"cwd,omitempty" jsonschema:"description=Working directory for the new process."`
}

func processTools() []ToolMetadata {
	const cat = "process"
	return []ToolMetadata{
		tool("process_list", cat, "List running processes, optionally filtered by command line.", schemaFor[ProcessListArgs](), readOnly),
		tool("process_info", cat, "Report detailed status for a single process.", schemaFor[ProcessInfoArgs](), readOnly),
		tool("process_kill", cat, "Send a signal to a process.", schemaFor[ProcessKillArgs](), destructive),
		tool("process_spawn", cat, "Spawn a detached process.", schemaFor[ProcessSpawnArgs]()),
	}
}
