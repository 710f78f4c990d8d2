package registry

// Argument shapes for the github category. The GitHub tool server
// authenticates using GITHUB_TOKEN/GH_TOKEN passed through from the gateway's
// environment (spec §6); the gateway itself never calls the GitHub API.

type GhListReposArgs struct {
	Org string `json:"org,omitempty" jsonschema:"description=Organization or user login to list repositories for."`
}

type GhGetRepoArgs struct {
	Owner string `json:"owner" jsonschema:"description=Repository owner."`
	Repo  string `json:"repo" jsonschema:"description=Repository name."`
}

type GhCreateRepoArgs struct {
	Name    string `json:"name" jsonschema:"description=New repository name."`
	Private bool   `json:"private,omitempty" jsonschema:"description=Create the repository as private."`
}

type GhListIssuesArgs struct {
	Owner string `json:"owner" jsonschema:"description=Repository owner."`
	Repo  string `json:"repo" jsonschema:"description=Repository name."`
	State string `json:"state,omitempty" jsonschema:"description=Filter by state: open, closed, or all."`
}

type GhGetIssueArgs struct {
	Owner  string `json:"owner" jsonschema:"description=Repository owner."`
	Repo   string `json:"repo" jsonschema:"description=Repository name."`
	Number int    `json:"number" jsonschema:"description=Issue number."`
}

type GhCreateIssueArgs struct {
	Owner string `json:"owner" jsonschema:"description=Repository owner."`
	Repo  string `json:"repo" jsonschema:"description=Repository name."`
	Title string `json:"title" jsonschema:"description=Issue title."`
	Body  string `json:"body,omitempty" jsonschema:"description=Issue body (markdown)."`
}

type GhCommentIssueArgs struct {
	Owner  string `json:"owner" jsonschema:"description=Repository owner."`
	Repo   string `json:"repo" jsonschema:"description=Repository name."`
	Number int    `json:"number" jsonschema:"description=Issue or pull request number."`
	Body   string `json:"body" jsonschema:"description=Comment body (markdown)."`
}

type GhCloseIssueArgs struct {
	Owner  string `json:"owner" jsonschema:"description=Repository owner."`
	Repo   string `json:"repo" jsonschema:"description=Repository name."`
	Number int    `json:"number" jsonschema:"description=Issue number to close."`
}

type GhListPullRequestsArgs struct {
	Owner string `json:"owner" jsonschema:"description=Repository owner."`
	Repo  string `json:"repo" jsonschema:"description=Repository name."`
	State string `json:"state,omitempty" jsonschema:"description=Filter by state: open, closed, or all."`
}

type GhGetPullRequestArgs struct {
	Owner  string `json:"owner" jsonschema:"description=Repository owner."`
	Repo   string `json:"repo" jsonschema:"description=Repository name."`
	Number int    `json:"number" jsonschema:"description=Pull request number."`
}

type GhCreatePullRequestArgs struct {
	Owner string `json:"owner" jsonschema:"description=Repository owner."`
	Repo  string `json:"repo" jsonschema:"description=Repository name."`
	Title string `json:"title" jsonschema:"description=Pull request title."`
	Head  string `json:"head" jsonschema:"description=Branch containing the changes."`
	Base  string `json:"base" jsonschema:"description=Branch to merge into."`
	Body  string `json:"body,omitempty" jsonschema:"description=Pull request description (markdown)."`
}

type GhMergePullRequestArgs struct {
	Owner  string `json:"owner" jsonschema:"description=Repository owner."`
	Repo   string `json:"repo" jsonschema:"description=Repository name."`
	Number int    `json:"number" jsonschema:"description=Pull request number to merge."`
	Method string `json:"method,omitempty" jsonschema:"description=Merge method: merge, squash, or rebase."`
}

type GhReviewPullRequestArgs struct {
	Owner  string `json:"owner" jsonschema:"description=Repository owner."`
	Repo   string `json:"repo" jsonschema:"description=Repository name."`
	Number int    `json:"number" jsonschema:"description=Pull request number."`
	Event  string `json:"event" jsonschema:"description=Review verdict: approve, request_changes, or comment."`
	Body   string `json:"body,omitempty" jsonschema:"description=Review summary body."`
}

type GhListWorkflowRunsArgs struct {
	Owner string `json:"owner" jsonschema:"description=Repository owner."`
	Repo  string `json:"repo" jsonschema:"description=Repository name."`
}

type GhGetWorkflowRunArgs struct {
	Owner string `json:"owner" jsonschema:"description=Repository owner."`
	Repo  string `json:"repo" jsonschema:"description=Repository name."`
	RunID int64  `json:"run_id" jsonschema:"description=Workflow run ID."`
}

type GhListReleasesArgs struct {
	Owner string `json:"owner" jsonschema:"description=Repository owner."`
	Repo  string `json:"repo" jsonschema:"description=Repository name."`
}

type GhCreateReleaseArgs struct {
	Owner   string `json:"owner" jsonschema:"description=Repository owner."`
	Repo    string `json:"repo" jsonschema:"description=Repository name."`
	TagName string `json:"tag_name" jsonschema:"description=Tag to create the release from."`
	Name    string `json:"name,omitempty" jsonschema:"description=Release title."`
	Body    string `json:"body,omitempty" jsonschema:"description=Release notes (markdown)."`
}

type GhSearchCodeArgs struct {
	Query string `json:"query" jsonschema:"description=GitHub code search query."`
}

type GhGetFileContentsArgs struct {
	Owner string `json:"owner" jsonschema:"description=Repository owner."`
	Repo  string `json:"repo" jsonschema:"description=Repository name."`
	Path  string `json:"path" jsonschema:"description=File path within the repository."`
	Ref   string `json:"ref,omitempty" jsonschema:"description=Branch, tag, or commit (default: default branch)."`
}

type GhListCollaboratorsArgs struct {
	Owner string `json:"owner" jsonschema:"description=Repository owner."`
	Repo  string `json:"repo" jsonschema:"description=Repository name."`
}

func githubTools() []ToolMetadata {
	const cat = "github"
	return []ToolMetadata{
		tool("gh_list_repos", cat, "List repositories for an org or user.", schemaFor[GhListReposArgs](), readOnly),
		tool("gh_get_repo", cat, "Fetch repository metadata.", schemaFor[GhGetRepoArgs](), readOnly),
		tool("gh_create_repo", cat, "Create a new repository.", schemaFor[GhCreateRepoArgs]()),
		tool("gh_list_issues", cat, "List issues in a repository, optionally filtered by state.", schemaFor[GhListIssuesArgs](), readOnly),
		tool("gh_get_issue", cat, "Fetch a single issue.", schemaFor[GhGetIssueArgs](), readOnly),
		tool("gh_create_issue", cat, "Open a new issue.", schemaFor[GhCreateIssueArgs]()),
		tool("gh_comment_issue", cat, "Comment on an issue or pull request.", schemaFor[GhCommentIssueArgs]()),
		tool("gh_close_issue", cat, "Close an issue.", schemaFor[GhCloseIssueArgs]()),
		tool("gh_list_pull_requests", cat, "List pull requests, optionally filtered by state.", schemaFor[GhListPullRequestsArgs](), readOnly),
		tool("gh_get_pull_request", cat, "Fetch a single pull request including diff stats.", schemaFor[GhGetPullRequestArgs](), readOnly),
		tool("gh_create_pull_request", cat, "Open a pull request from one branch into another.", schemaFor[GhCreatePullRequestArgs]()),
		tool("gh_merge_pull_request", cat, "Merge a pull request using the given strategy.", schemaFor[GhMergePullRequestArgs](), destructive),
		tool("gh_review_pull_request", cat, "Submit a review on a pull request.", schemaFor[GhReviewPullRequestArgs]()),
		tool("gh_list_workflow_runs", cat, "List recent GitHub Actions workflow runs.", schemaFor[GhListWorkflowRunsArgs](), readOnly),
		tool("gh_get_workflow_run", cat, "Fetch status and logs summary for a workflow run.", schemaFor[GhGetWorkflowRunArgs](), readOnly),
		tool("gh_list_releases", cat, "List releases for a repository.", schemaFor[GhListReleasesArgs](), readOnly),
		tool("gh_create_release", cat, "Publish a release from a tag.", schemaFor[GhCreateReleaseArgs]()),
		tool("gh_search_code", cat, "Search code across GitHub using the code search syntax.", schemaFor[GhSearchCodeArgs](), readOnly),
		tool("gh_get_file_contents", cat, "Fetch a file's contents at a given ref.", schemaFor[GhGetFileContentsArgs](), readOnly),
		tool("gh_list_collaborators", cat, "List a repository's collaborators and their permission level.", schemaFor[GhListCollaboratorsArgs](), readOnly),
	}
}
