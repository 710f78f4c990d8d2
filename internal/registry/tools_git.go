package registry

type GitStatusArgs struct {
	Repo string `json:"repo" jsonschema:"description=Path to a git working tree."`
}

type GitLogArgs struct {
	Repo  string `json:"repo" jsonschema:"description=Path to a git working tree."`
	Limit int    `json:"limit,omitempty" jsonschema:"description=Maximum commits to return, most recent first."`
	Path  string `json:"path,omitempty" jsonschema:"description=Restrict history to commits touching this path."`
}

type GitDiffArgs struct {
	Repo    string `json:"repo" jsonschema:"description=Path to a git working tree."`
	BaseRef string `json:"base_ref,omitempty" jsonschema:"description=Base ref to diff from (default: working tree vs HEAD)."`
	HeadRef string `json:"head_ref,omitempty" jsonschema:"description=Ref to diff to."`
}

type GitShowArgs struct {
	Repo string `json:"repo" jsonschema:"description=Path to a git working tree."`
	Ref  string `json:"ref" jsonschema:"description=Commit-ish to show."`
}

type GitAddArgs struct {
	Repo  string   `json:"repo" jsonschema:"description=Path to a git working tree."`
	Paths []string `json:"paths" jsonschema:"description=Paths to stage."`
}

type GitResetArgs struct {
	Repo  string   `json:"repo" jsonschema:"description=Path to a git working tree."`
	Paths []string `json:"paths,omitempty" jsonschema:"description=Paths to unstage; empty unstages everything."`
}

type GitCommitArgs struct {
	Repo    string `json:"repo" jsonschema:"description=Path to a git working tree."`
	Message string `json:"message" jsonschema:"description=Commit message."`
}

type GitBranchListArgs struct {
	Repo string `json:"repo" jsonschema:"description=Path to a git working tree."`
}

type GitBranchCreateArgs struct {
	Repo string `json:"repo" jsonschema:"description=Path to a git working tree."`
	Name string `json:"name" jsonschema:"description=New branch name."`
	From string `json:"from,omitempty" jsonschema:"description=Starting point for the branch (default: current HEAD)."`
}

type GitCheckoutArgs struct {
	Repo string `json:"repo" jsonschema:"description=Path to a git working tree."`
	Ref  string `json:"ref" jsonschema:"description=Branch, tag, or commit to check out."`
}

type GitMergeArgs struct {
	Repo string `json:"repo" jsonschema:"description=Path to a git working tree."`
	Ref  string `json:"ref" jsonschema:"description=Ref to merge into the current branch."`
}

type GitPushArgs struct {
	Repo   string `json:"repo" jsonschema:"description=Path to a git working tree."`
	Remote string `json:"remote,omitempty" jsonschema:"description=Remote name (default: origin)."`
	Branch string `json:"branch,omitempty" jsonschema:"description=Branch to push (default: current branch)."`
	Force  bool   `json:"force,omitempty" jsonschema:"description=Force-push, overwriting the remote ref."`
}

type GitPullArgs struct {
	Repo   string `json:"repo" jsonschema:"description=Path to a git working tree."`
	Remote string `json:"remote,omitempty" jsonschema:"description=Remote name (default: origin)."`
}

type GitStashArgs struct {
	Repo    string `json:"repo" jsonschema:"description=Path to a git working tree."`
	Message string `json:"message,omitempty" jsonschema:"description=Optional stash message."`
}

type GitBlameArgs struct {
	Repo string `json:"repo" jsonschema:"description=Path to a git working tree."`
	Path string `json:"path" jsonschema:"description=File to blame."`
}

func gitTools() []ToolMetadata {
	const cat = "git"
	return []ToolMetadata{
		tool("git_status", cat, "Show working tree and index status.", schemaFor[GitStatusArgs](), readOnly),
		tool("git_log", cat, "Show commit history, optionally scoped to a path.", schemaFor[GitLogArgs](), readOnly),
		tool("git_diff", cat, "Show a diff between two refs, or working tree vs HEAD.", schemaFor[GitDiffArgs](), readOnly),
		tool("git_show", cat, "Show a single commit's metadata and diff.", schemaFor[GitShowArgs](), readOnly),
		tool("git_add", cat, "Stage paths for commit.", schemaFor[GitAddArgs]()),
		tool("git_reset", cat, "Unstage paths, or the entire index.", schemaFor[GitResetArgs]()),
		tool("git_commit", cat, "Create a commit from the current index.", schemaFor[GitCommitArgs]()),
		tool("git_branch_list", cat, "List local and remote-tracking branches.", schemaFor[GitBranchListArgs](), readOnly),
		tool("git_branch_create", cat, "Create a new branch.", schemaFor[GitBranchCreateArgs]()),
		tool("git_checkout", cat, "Check out a branch, tag, or commit.", schemaFor[GitCheckoutArgs]()),
		tool("git_merge", cat, "Merge a ref into the current branch.", schemaFor[GitMergeArgs]()),
		tool("git_push", cat, "Push the current or named branch to a remote.", schemaFor[GitPushArgs](), destructive),
		tool("git_pull", cat, "Fetch and merge from a remote.", schemaFor[GitPullArgs]()),
		tool("git_stash", cat, "Stash uncommitted changes.", schemaFor[GitStashArgs]()),
		tool("git_blame", cat, "Show per-line commit attribution for a file.", schemaFor[GitBlameArgs](), readOnly),
	}
}
