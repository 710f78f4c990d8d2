package registry

// Argument shapes for the filesystem category. The filesystem tool server
// itself is an opaque upstream (spec §1 Out of scope); these structs only
// exist to derive JSON-Schema for the routing table.

type FsReadFileArgs struct {
	Path      string `json:"path" jsonschema:"description=Absolute or workspace-relative file path to read."`
	StartLine int    `json:"start_line,omitempty" jsonschema:"description=1-indexed line to start reading from."`
	EndLine   int    `json:"end_line,omitempty" jsonschema:"description=1-indexed line to stop reading at (inclusive)."`
}

type FsWriteFileArgs struct {
	Path    string `json:"path" jsonschema:"description=Destination file path."`
	Content string `json:"content" jsonschema:"description=Full file contents to write."`
}

type FsEditFileArgs struct {
	Path    string `json:"path" jsonschema:"description=File to edit in place."`
	OldText string `json:"old_text" jsonschema:"description=Exact text to replace; must match uniquely unless replace_all is set."`
	NewText string `json:"new_text" jsonschema:"description=Replacement text."`
	All     bool   `json:"replace_all,omitempty" jsonschema:"description=Replace every occurrence instead of requiring a unique match."`
}

type FsDeleteFileArgs struct {
	Path string `json:"path" jsonschema:"description=File or empty directory to delete."`
}

type FsListDirectoryArgs struct {
	Path      string `json:"path" jsonschema:"description=Directory to list."`
	Recursive bool   `json:"recursive,omitempty" jsonschema:"description=Recurse into subdirectories."`
}

type FsCreateDirectoryArgs struct {
	Path string `json:"path" jsonschema:"description=Directory path to create, including any missing parents."`
}

type FsMoveArgs struct {
	Source      string `json:"source" jsonschema:"description=Existing file or directory path."`
	Destination string `json:"destination" jsonschema:"description=New path; parent directories must already exist."`
}

type FsCopyArgs struct {
	Source      string `json:"source" jsonschema:"description=File or directory to copy."`
	Destination string `json:"destination" jsonschema:"description=Target path for the copy."`
}

type FsSearchFilesArgs struct {
	Root    string `json:"root" jsonschema:"description=Directory to search under."`
	Pattern string `json:"pattern" jsonschema:"description=Glob pattern matched against file paths."`
}

type FsGrepArgs struct {
	Root    string `json:"root" jsonschema:"description=Directory to search under."`
	Pattern string `json:"pattern" jsonschema:"description=Regular expression matched against file contents."`
	Glob    string `json:"glob,omitempty" jsonschema:"description=Restrict the search to files matching this glob."`
}

type FsFileInfoArgs struct {
	Path string `json:"path" jsonschema:"description=Path to stat."`
}

type FsWatchArgs struct {
	Path      string `json:"path" jsonschema:"description=Path to watch for changes."`
	SessionID string `json:"session_id,omitempty" jsonschema:"description=Opaque session handle returned by a prior watch call, for cancellation."`
}

func filesystemTools() []ToolMetadata {
	const cat = "filesystem"
	return []ToolMetadata{
		tool("fs_read_file", cat, "Read a text file, optionally restricted to a line range.", schemaFor[FsReadFileArgs](), readOnly),
		tool("fs_write_file", cat, "Write content to a file, creating or overwriting it.", schemaFor[FsWriteFileArgs]()),
		tool("fs_edit_file", cat, "Replace an exact text match within a file.", schemaFor[FsEditFileArgs]()),
		tool("fs_delete_file", cat, "Delete a file or empty directory. Irreversible.", schemaFor[FsDeleteFileArgs](), destructive),
		tool("fs_list_directory", cat, "List directory entries, optionally recursively.", schemaFor[FsListDirectoryArgs](), readOnly),
		tool("fs_create_directory", cat, "Create a directory and any missing parents.", schemaFor[FsCreateDirectoryArgs](), idempotent),
		tool("fs_move", cat, "Move or rename a file or directory.", schemaFor[FsMoveArgs]()),
		tool("fs_copy", cat, "Copy a file or directory tree to a new path.", schemaFor[FsCopyArgs]()),
		tool("fs_search_files", cat, "Find files under a root matching a glob pattern.", schemaFor[FsSearchFilesArgs](), readOnly),
		tool("fs_grep", cat, "Search file contents under a root for a regular expression.", schemaFor[FsGrepArgs](), readOnly),
		tool("fs_file_info", cat, "Return size, mode, and modification time for a path.", schemaFor[FsFileInfoArgs](), readOnly),
		tool("fs_watch", cat, "Watch a path for filesystem change events.", schemaFor[FsWatchArgs]()),
	}
}
